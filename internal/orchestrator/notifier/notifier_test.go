package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/pkg/infra"
	mockmail "github.com/digirealtydrew93/tackettweb/pkg/mail"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testEvent = model.SwitchEvent{
	ID:              "evt-1",
	Timestamp:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	From:            "Primary",
	To:              "Secondary",
	Reason:          "Failed 3 health checks",
	Trigger:         model.SwitchTriggerHealth,
	FromIndex:       0,
	DeploymentIndex: 1,
}

func TestKafkaNotifier_SwitchOccurred(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		writeErr  error
		expectErr bool
	}{
		{name: "Success event written"},
		{name: "Error write fails", writeErr: errors.New("broker unavailable"), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := infra.NewMockKafkaWriter(ctrl)
			writer.EXPECT().
				WriteMessages(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
					require.Len(t, msgs, 1)
					assert.Equal(t, "1", string(msgs[0].Key))
					var got kafkaEvent
					require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
					assert.Equal(t, EventTypeSwitch, got.Type)
					require.NotNil(t, got.Switch)
					assert.Equal(t, testEvent.ID, got.Switch.ID)
					return tc.writeErr
				})

			err := NewKafkaNotifier(writer).SwitchOccurred(ctx, testEvent)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaNotifier_NoCandidate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	writer := infra.NewMockKafkaWriter(ctrl)
	writer.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			var got kafkaEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, EventTypeNoCandidate, got.Type)
			assert.Equal(t, 2, got.DeploymentIndex)
			assert.Equal(t, 3, got.FailureCount)
			return nil
		})

	err := NewKafkaNotifier(writer).NoCandidate(ctx, model.Deployment{Index: 2, Name: "C", FailureCount: 3}, 3)

	assert.NoError(t, err)
}

func TestMailNotifier(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		call      func(n SwitchNotifier) error
		subject   string
		sendErr   error
		expectErr bool
	}{
		{
			name:    "Success switch mail",
			call:    func(n SwitchNotifier) error { return n.SwitchOccurred(ctx, testEvent) },
			subject: "[orchestrator] traffic switched to Secondary",
		},
		{
			name: "Success no candidate mail",
			call: func(n SwitchNotifier) error {
				return n.NoCandidate(ctx, model.Deployment{Name: "Primary", URL: "http://a", FailureCount: 3}, 3)
			},
			subject: "[orchestrator] Primary is failing and no standby is healthy",
		},
		{
			name:      "Error sender fails",
			call:      func(n SwitchNotifier) error { return n.SwitchOccurred(ctx, testEvent) },
			subject:   "[orchestrator] traffic switched to Secondary",
			sendErr:   errors.New("smtp error"),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mockmail.NewMockSender(ctrl)
			sender.EXPECT().
				SendMail(gomock.Any()).
				DoAndReturn(func(msg mockmail.Message) error {
					assert.Equal(t, []string{"ops@example.com"}, msg.To)
					assert.Equal(t, tc.subject, msg.Subject)
					assert.NotEmpty(t, msg.TextBody)
					return tc.sendErr
				})

			err := tc.call(NewMailNotifier(sender, "ops@example.com"))

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type recordingNotifier struct {
	switches int
	err      error
}

func (r *recordingNotifier) SwitchOccurred(context.Context, model.SwitchEvent) error {
	r.switches++
	return r.err
}

func (r *recordingNotifier) NoCandidate(context.Context, model.Deployment, int) error {
	return r.err
}

func TestMultiNotifier_ContinuesPastFailures(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("kafka down")}
	ok := &recordingNotifier{}

	err := NewMultiNotifier(failing, ok).SwitchOccurred(context.Background(), testEvent)

	assert.ErrorIs(t, err, failing.err)
	assert.Equal(t, 1, failing.switches)
	assert.Equal(t, 1, ok.switches)
	assert.NoError(t, NewMultiNotifier(ok).NoCandidate(context.Background(), model.Deployment{}, 3))
}

func TestNopSinks(t *testing.T) {
	assert.NoError(t, NewNopNotifier().SwitchOccurred(context.Background(), testEvent))
	assert.NoError(t, NewNopProbeSink().IndexProbes(context.Background(), nil))
}
