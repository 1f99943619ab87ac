package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/export"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"github.com/digirealtydrew93/tackettweb/pkg/mail"
	"go.uber.org/zap"
)

type ReportService interface {
	// SendDailyReport mails a summary of every deployment for [startDate, endDate)
	// with the state workbook attached.
	SendDailyReport(ctx context.Context, startDate time.Time, endDate time.Time) error
}

type reportRow struct {
	Name     string
	URL      string
	Status   string
	Active   bool
	SmsCount int
	Uptime   float64
}

type reportService struct {
	stateRepo  repository.StateRepository
	probeRepo  repository.ProbeRepository
	mailSender mail.Sender
	recipient  string
	logger     *zap.Logger
}

func (r *reportService) SendDailyReport(ctx context.Context, startDate time.Time, endDate time.Time) error {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	metricsDoc, err := r.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	quota, err := r.stateRepo.LoadQuota(ctx, cfg.Deployments)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	rotation, err := r.stateRepo.LoadRotation(ctx, cfg.Deployments)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}

	rows := make([]reportRow, 0, len(cfg.Deployments))
	for i, d := range cfg.Deployments {
		row := reportRow{
			Name:     d.Name,
			URL:      d.URL,
			Status:   d.Status,
			Active:   i == cfg.ActiveIndex,
			SmsCount: quota.Count(i),
			Uptime:   float64(metricsDoc.DeploymentStats[d.Name].SuccessRate()),
		}
		if r.probeRepo != nil {
			uptime, e := r.probeRepo.GetUptimePercentage(ctx, d.Name, startDate, endDate)
			if e != nil {
				r.logger.Warn("probe history unavailable, using stored uptime",
					zap.String("deployment", d.Name), zap.Error(e))
			} else {
				row.Uptime = uptime
			}
		}
		rows = append(rows, row)
	}

	var workbook bytes.Buffer
	err = export.Write(&workbook, export.Snapshot{
		Registry: cfg,
		Metrics:  metricsDoc,
		Quota:    quota,
		Rotation: rotation,
	})
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}

	subject := fmt.Sprintf("Deployment Status Report From %s To %s",
		startDate.Format(time.RFC3339), endDate.Add(-1*time.Second).Format(time.RFC3339))
	err = r.mailSender.SendMail(mail.Message{
		To:       []string{r.recipient},
		Subject:  subject,
		HTMLBody: generateReportHTMLBody(rows, metricsDoc),
		TextBody: generateReportTextBody(rows, metricsDoc),
		Attachments: []mail.Attachment{
			{
				Name:    fmt.Sprintf("deployments-%s.xlsx", startDate.Format("2006-01-02")),
				Content: &workbook,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	r.logger.Info("deployment report sent", zap.String("recipient", r.recipient), zap.Int("deployments", len(rows)))
	return nil
}

func generateReportTextBody(rows []reportRow, m model.Metrics) string {
	var b strings.Builder
	b.WriteString("--- SUMMARY ---\n")
	fmt.Fprintf(&b, "Health Checks: %d\n", m.TotalRequests)
	fmt.Fprintf(&b, "Switches: %d\n\n", len(m.Switches))
	for _, r := range rows {
		active := ""
		if r.Active {
			active = " (active)"
		}
		fmt.Fprintf(&b, "%s%s: %s, %d SMS, uptime %.2f%%\n", r.Name, active, r.Status, r.SmsCount, r.Uptime)
	}
	return b.String()
}

func generateReportHTMLBody(rows []reportRow, m model.Metrics) string {
	const cell = `<td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>`
	var b strings.Builder
	b.WriteString(`<body>`)
	fmt.Fprintf(&b, `<p>Health checks: %d. Switches: %d.</p>`, m.TotalRequests, len(m.Switches))
	b.WriteString(`<table style="width:100%; border-collapse: collapse;"><tr>`)
	for _, h := range []string{"Deployment", "URL", "Status", "Active", "SMS", "Uptime"} {
		fmt.Fprintf(&b, `<th style="border: 1px solid #dddddd; padding: 8px; background-color: #f2f2f2;">%s</th>`, h)
	}
	b.WriteString(`</tr>`)
	for _, r := range rows {
		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, cell, html.EscapeString(r.Name))
		fmt.Fprintf(&b, cell, html.EscapeString(r.URL))
		fmt.Fprintf(&b, cell, html.EscapeString(r.Status))
		fmt.Fprintf(&b, cell, fmt.Sprintf("%t", r.Active))
		fmt.Fprintf(&b, cell, fmt.Sprintf("%d", r.SmsCount))
		fmt.Fprintf(&b, cell, fmt.Sprintf("%.2f%%", r.Uptime))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</table></body>`)
	return b.String()
}

func NewReportService(stateRepo repository.StateRepository, probeRepo repository.ProbeRepository, mailSender mail.Sender, recipient string, logger *zap.Logger) ReportService {
	return &reportService{
		stateRepo:  stateRepo,
		probeRepo:  probeRepo,
		mailSender: mailSender,
		recipient:  recipient,
		logger:     logger,
	}
}
