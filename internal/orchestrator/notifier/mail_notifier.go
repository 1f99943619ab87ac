package notifier

import (
	"context"
	"fmt"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/pkg/mail"
)

type mailNotifier struct {
	sender mail.Sender
	to     []string
}

func (m *mailNotifier) SwitchOccurred(_ context.Context, event model.SwitchEvent) error {
	subject := fmt.Sprintf("[orchestrator] traffic switched to %s", event.To)
	text := fmt.Sprintf("Active deployment changed from %s (#%d) to %s (#%d).\nTrigger: %s\nReason: %s\nTime: %s\n",
		event.From, event.FromIndex, event.To, event.DeploymentIndex, event.Trigger, event.Reason,
		event.Timestamp.Format("2006-01-02 15:04:05 MST"))
	html := fmt.Sprintf("<p>Active deployment changed from <b>%s</b> to <b>%s</b>.</p><p>Trigger: %s<br>Reason: %s</p>",
		event.From, event.To, event.Trigger, event.Reason)
	if err := m.sender.SendMail(mail.Message{To: m.to, Subject: subject, TextBody: text, HTMLBody: html}); err != nil {
		return fmt.Errorf("MailNotifier.SwitchOccurred: %w", err)
	}
	return nil
}

func (m *mailNotifier) NoCandidate(_ context.Context, active model.Deployment, threshold int) error {
	subject := fmt.Sprintf("[orchestrator] %s is failing and no standby is healthy", active.Name)
	text := fmt.Sprintf("%s (%s) failed %d consecutive health checks (threshold %d) and every other deployment is unhealthy. Traffic stays on %s.\n",
		active.Name, active.URL, active.FailureCount, threshold, active.Name)
	if err := m.sender.SendMail(mail.Message{To: m.to, Subject: subject, TextBody: text}); err != nil {
		return fmt.Errorf("MailNotifier.NoCandidate: %w", err)
	}
	return nil
}

func NewMailNotifier(sender mail.Sender, to ...string) SwitchNotifier {
	return &mailNotifier{
		sender: sender,
		to:     to,
	}
}
