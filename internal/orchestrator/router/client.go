package router

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxResponseBody bounds how much of a downstream response is relayed.
const maxResponseBody = 1 << 20

// ErrResponseTooLarge marks a downstream answer over maxResponseBody. Such a
// response is never relayed cut short.
var ErrResponseTooLarge = errors.New("downstream response exceeds size limit")

type DeploymentClient interface {
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)
}

type SubmitRequest struct {
	BaseURL string
	Path    string
	Body    []byte
	Index   int
	Name    string
}

type SubmitResponse struct {
	StatusCode   int
	Body         []byte
	ContentType  string
	Error        error
	ResponseTime time.Duration
}

type deploymentClient struct {
	client *http.Client
}

func joinURL(base string, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}

// Submit returns an error only when the request cannot be built; transport
// failures are reported in SubmitResponse.Error.
func (d *deploymentClient) Submit(ctx context.Context, sr SubmitRequest) (SubmitResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(sr.BaseURL, sr.Path), bytes.NewReader(sr.Body))
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("DeploymentClient.Submit creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Deployment-Index", strconv.Itoa(sr.Index))
	req.Header.Set("X-Deployment-Name", sr.Name)

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		return SubmitResponse{Error: err, ResponseTime: time.Since(start)}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	res := SubmitResponse{
		StatusCode:   resp.StatusCode,
		Body:         body,
		ContentType:  resp.Header.Get("Content-Type"),
		ResponseTime: time.Since(start),
	}
	if err != nil {
		res.Error = fmt.Errorf("reading response body: %w", err)
	} else if len(body) > maxResponseBody {
		res.Body = nil
		res.Error = fmt.Errorf("status %d: %w", resp.StatusCode, ErrResponseTooLarge)
	}
	return res, nil
}

func NewDeploymentClient(requestTimeout time.Duration) DeploymentClient {
	return &deploymentClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}
