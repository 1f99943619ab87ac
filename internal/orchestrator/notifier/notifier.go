// Package notifier fans switch events and probe records out to Kafka,
// Elasticsearch and alert mail. Each sink is optional; callers always get a
// usable implementation.
package notifier

import (
	"context"
	"errors"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
)

type SwitchNotifier interface {
	SwitchOccurred(ctx context.Context, event model.SwitchEvent) error
	// NoCandidate reports an unhealthy active deployment that could not be
	// replaced.
	NoCandidate(ctx context.Context, active model.Deployment, threshold int) error
}

type ProbeSink interface {
	IndexProbes(ctx context.Context, records []repository.ProbeRecord) error
}

type multiNotifier struct {
	notifiers []SwitchNotifier
}

func (m *multiNotifier) SwitchOccurred(ctx context.Context, event model.SwitchEvent) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.SwitchOccurred(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multiNotifier) NoCandidate(ctx context.Context, active model.Deployment, threshold int) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.NoCandidate(ctx, active, threshold); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewMultiNotifier delivers to every notifier, continuing past failures.
func NewMultiNotifier(notifiers ...SwitchNotifier) SwitchNotifier {
	return &multiNotifier{
		notifiers: notifiers,
	}
}

type nopNotifier struct{}

func (nopNotifier) SwitchOccurred(context.Context, model.SwitchEvent) error { return nil }

func (nopNotifier) NoCandidate(context.Context, model.Deployment, int) error { return nil }

func NewNopNotifier() SwitchNotifier {
	return nopNotifier{}
}

type nopProbeSink struct{}

func (nopProbeSink) IndexProbes(context.Context, []repository.ProbeRecord) error { return nil }

func NewNopProbeSink() ProbeSink {
	return nopProbeSink{}
}
