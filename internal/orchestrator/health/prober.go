package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type ProbeResult struct {
	Healthy      bool
	StatusCode   int
	ResponseTime time.Duration
	Error        string
	Timestamp    time.Time
}

type Prober interface {
	Probe(ctx context.Context, baseURL string, path string) ProbeResult
}

type prober struct {
	client *http.Client
}

// IsHealthyStatus reports whether a probe status counts as healthy. The probe
// endpoint only accepts POST, so 405 proves the deployment is serving.
func IsHealthyStatus(statusCode int) bool {
	return statusCode == http.StatusOK || statusCode == http.StatusMethodNotAllowed
}

func (p *prober) Probe(ctx context.Context, baseURL string, path string) ProbeResult {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	start := time.Now()
	res := ProbeResult{Timestamp: start.UTC()}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, strings.TrimRight(baseURL, "/")+path, nil)
	if err != nil {
		res.Error = fmt.Sprintf("creating request: %v", err)
		return res
	}
	resp, err := p.client.Do(req)
	res.ResponseTime = time.Since(start)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Healthy = IsHealthyStatus(resp.StatusCode)
	if !res.Healthy {
		res.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return res
}

func NewProber(timeout time.Duration) Prober {
	return &prober{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}
