package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrCorruptDocument  = errors.New("document is corrupt")
	ErrInvalidRegistry  = errors.New("invalid deployment registry")
	ErrInvalidIndex     = errors.New("invalid deployment index")
	ErrNoDeployments    = errors.New("no deployments registered")
	ErrInvalidToken     = errors.New("invalid token")

	ErrProbeHistoryUnavailable = errors.New("probe history store not configured")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
