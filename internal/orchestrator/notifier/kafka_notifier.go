package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/pkg/infra"
	"github.com/segmentio/kafka-go"
)

const (
	EventTypeSwitch      = "switch"
	EventTypeNoCandidate = "no_candidate"
)

type kafkaEvent struct {
	Type            string             `json:"type"`
	Timestamp       time.Time          `json:"timestamp"`
	DeploymentIndex int                `json:"deployment_index"`
	Switch          *model.SwitchEvent `json:"switch,omitempty"`
	FailureCount    int                `json:"failure_count,omitempty"`
}

type kafkaNotifier struct {
	kafka infra.KafkaWriter
	now   func() time.Time
}

func (k *kafkaNotifier) write(ctx context.Context, event kafkaEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.DeploymentIndex)),
		Value: b,
	})
}

func (k *kafkaNotifier) SwitchOccurred(ctx context.Context, event model.SwitchEvent) error {
	err := k.write(ctx, kafkaEvent{
		Type:            EventTypeSwitch,
		Timestamp:       event.Timestamp,
		DeploymentIndex: event.DeploymentIndex,
		Switch:          &event,
	})
	if err != nil {
		return fmt.Errorf("KafkaNotifier.SwitchOccurred: %w", err)
	}
	return nil
}

func (k *kafkaNotifier) NoCandidate(ctx context.Context, active model.Deployment, _ int) error {
	err := k.write(ctx, kafkaEvent{
		Type:            EventTypeNoCandidate,
		Timestamp:       k.now().UTC(),
		DeploymentIndex: active.Index,
		FailureCount:    active.FailureCount,
	})
	if err != nil {
		return fmt.Errorf("KafkaNotifier.NoCandidate: %w", err)
	}
	return nil
}

func NewKafkaNotifier(writer infra.KafkaWriter) SwitchNotifier {
	return &kafkaNotifier{
		kafka: writer,
		now:   time.Now,
	}
}
