package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/metrics"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"go.uber.org/zap"
)

const (
	outcomeSuccess        = "success"
	outcomeServerError    = "server_error"
	outcomeTransportError = "transport_error"
	outcomeClientError    = "client_error"

	resultDelivered   = "delivered"
	resultPassthrough = "passthrough"
	resultExhausted   = "exhausted"
)

const MsgAllUnavailable = "All API endpoints unavailable"

// Result is what the inbound caller receives. Index is -1 when no deployment
// accepted or answered the submission.
type Result struct {
	StatusCode  int
	Body        []byte
	ContentType string
	Index       int
	Attempts    int
}

type Router interface {
	// Route delivers body starting at the registry's active deployment.
	Route(ctx context.Context, body []byte) (Result, error)
	// RouteFrom delivers body starting at start, which must be a valid index.
	RouteFrom(ctx context.Context, body []byte, start int) (Result, error)
}

type router struct {
	stateRepo  repository.StateRepository
	client     DeploymentClient
	wrapAround bool
	logger     *zap.Logger
}

type deliveredBody struct {
	Ok       bool   `json:"ok"`
	Endpoint string `json:"endpoint"`
	Source   string `json:"source"`
	Index    int    `json:"index"`
	Attempts int    `json:"attempts"`
}

type exhaustedBody struct {
	Error string `json:"error"`
	Tried int    `json:"tried"`
}

func (r *router) Route(ctx context.Context, body []byte) (Result, error) {
	return r.RouteFrom(ctx, body, -1)
}

func (r *router) RouteFrom(ctx context.Context, body []byte, start int) (Result, error) {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("Router.RouteFrom: %w", err)
	}
	if start < 0 || !cfg.InRange(start) {
		start = cfg.ActiveIndex
	}

	begin := time.Now()
	defer func() {
		metrics.RouteDuration.Observe(time.Since(begin).Seconds())
	}()

	order := make([]int, 0, len(cfg.Deployments))
	for i := start; i < len(cfg.Deployments); i++ {
		order = append(order, i)
	}
	if r.wrapAround {
		for i := 0; i < start; i++ {
			order = append(order, i)
		}
	}

	attempts := 0
	for _, i := range order {
		if ctx.Err() != nil {
			break
		}
		d := cfg.Deployments[i]
		attempts++
		res, err := r.client.Submit(ctx, SubmitRequest{
			BaseURL: d.URL,
			Path:    cfg.SubmitPath,
			Body:    body,
			Index:   i,
			Name:    d.Name,
		})
		if err != nil {
			metrics.RouteAttempts.WithLabelValues(d.Name, outcomeTransportError).Inc()
			r.logger.Warn("failed to build request for deployment",
				zap.Int("deployment_index", i), zap.String("deployment", d.Name), zap.Error(err))
			continue
		}
		if res.Error != nil {
			metrics.RouteAttempts.WithLabelValues(d.Name, outcomeTransportError).Inc()
			r.logger.Warn("deployment unreachable, trying next",
				zap.Int("deployment_index", i), zap.String("deployment", d.Name), zap.Error(res.Error))
			continue
		}

		switch {
		case res.StatusCode >= 200 && res.StatusCode < 300:
			metrics.RouteAttempts.WithLabelValues(d.Name, outcomeSuccess).Inc()
			metrics.RouteResults.WithLabelValues(resultDelivered).Inc()
			r.logger.Info("submission delivered",
				zap.Int("deployment_index", i), zap.String("deployment", d.Name),
				zap.Int("attempts", attempts), zap.Duration("response_time", res.ResponseTime))
			b, _ := json.Marshal(deliveredBody{
				Ok:       true,
				Endpoint: d.URL,
				Source:   d.Name,
				Index:    i,
				Attempts: attempts,
			})
			return Result{StatusCode: http.StatusOK, Body: b, ContentType: "application/json", Index: i, Attempts: attempts}, nil
		case res.StatusCode >= 500:
			metrics.RouteAttempts.WithLabelValues(d.Name, outcomeServerError).Inc()
			r.logger.Warn("deployment returned server error, trying next",
				zap.Int("deployment_index", i), zap.String("deployment", d.Name), zap.Int("status_code", res.StatusCode))
			continue
		default:
			metrics.RouteAttempts.WithLabelValues(d.Name, outcomeClientError).Inc()
			metrics.RouteResults.WithLabelValues(resultPassthrough).Inc()
			r.logger.Info("deployment rejected submission, passing response through",
				zap.Int("deployment_index", i), zap.String("deployment", d.Name), zap.Int("status_code", res.StatusCode))
			return Result{StatusCode: res.StatusCode, Body: res.Body, ContentType: res.ContentType, Index: i, Attempts: attempts}, nil
		}
	}

	metrics.RouteResults.WithLabelValues(resultExhausted).Inc()
	r.logger.Error("all deployments unavailable", zap.Int("attempts", attempts))
	b, _ := json.Marshal(exhaustedBody{Error: MsgAllUnavailable, Tried: attempts})
	return Result{StatusCode: http.StatusServiceUnavailable, Body: b, ContentType: "application/json", Index: -1, Attempts: attempts}, nil
}

func NewRouter(stateRepo repository.StateRepository, client DeploymentClient, wrapAround bool, logger *zap.Logger) Router {
	return &router{
		stateRepo:  stateRepo,
		client:     client,
		wrapAround: wrapAround,
		logger:     logger,
	}
}
