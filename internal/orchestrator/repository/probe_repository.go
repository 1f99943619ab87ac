package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/elastic/go-elasticsearch/v9"
)

type ProbeRecord struct {
	DeploymentIndex int       `json:"deployment_index"`
	DeploymentName  string    `json:"deployment_name"`
	URL             string    `json:"url"`
	Healthy         bool      `json:"healthy"`
	StatusNumeric   int       `json:"status_numeric"`
	StatusCode      int       `json:"status_code"`
	ResponseTimeMs  int64     `json:"response_time_ms"`
	Error           string    `json:"error,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// ProbeRepository keeps the full probe history in Elasticsearch; the metrics
// document only holds running aggregates.
type ProbeRepository interface {
	IndexProbes(ctx context.Context, records []ProbeRecord) error
	GetUptimePercentage(ctx context.Context, deploymentName string, startTime time.Time, endTime time.Time) (float64, error)
}

type probeRepository struct {
	es    *elasticsearch.Client
	index string
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esBulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		Status int `json:"status"`
		Error  struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

func (p *probeRepository) IndexProbes(ctx context.Context, records []ProbeRecord) error {
	if len(records) == 0 {
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, r := range records {
		meta := map[string]interface{}{"index": map[string]interface{}{"_index": p.index}}
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("ProbeRepository.IndexProbes encode meta: %w", err)
		}
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("ProbeRepository.IndexProbes encode record: %w", err)
		}
	}
	res, err := p.es.Bulk(&buf, p.es.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ProbeRepository.IndexProbes: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("ProbeRepository.IndexProbes decode err response: %w", err)
		}
		return fmt.Errorf("ProbeRepository.IndexProbes: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var bulkRes esBulkResponse
	if err = json.NewDecoder(res.Body).Decode(&bulkRes); err != nil {
		return fmt.Errorf("ProbeRepository.IndexProbes decode response: %w", err)
	}
	if bulkRes.Errors {
		for _, item := range bulkRes.Items {
			for _, op := range item {
				if op.Status >= 300 {
					return fmt.Errorf("ProbeRepository.IndexProbes: %w", apperrors.NewElasticSearchError(op.Status, op.Error.Type, op.Error.Reason))
				}
			}
		}
	}
	return nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (p *probeRepository) GetUptimePercentage(ctx context.Context, deploymentName string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"deployment_name.keyword": deploymentName,
						},
					},
					{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "status_numeric",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("ProbeRepository.GetUptimePercentage encode query: %w", err)
	}
	res, err := p.es.Search(
		p.es.Search.WithContext(ctx),
		p.es.Search.WithIndex(p.index),
		p.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("ProbeRepository.GetUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return 0, fmt.Errorf("ProbeRepository.GetUptimePercentage decode err response: %w", err)
		}
		return 0, fmt.Errorf("ProbeRepository.GetUptimePercentage: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("ProbeRepository.GetUptimePercentage decode response: %w", err)
	}
	return uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

func NewProbeRepository(esClient *elasticsearch.Client, index string) ProbeRepository {
	return &probeRepository{
		es:    esClient,
		index: index,
	}
}
