package model

import "time"

type QuotaEntry struct {
	Index     int        `json:"index"`
	Name      string     `json:"name"`
	SmsCount  int        `json:"smsCount"`
	LastReset *time.Time `json:"lastReset"`
}

type QuotaLog struct {
	Deployments  []QuotaEntry `json:"deployments"`
	TotalSmsSent int64        `json:"totalSmsSent"`
	LastUpdated  *time.Time   `json:"lastUpdated,omitempty"`
}

func NewQuotaLog(deployments []Deployment) QuotaLog {
	q := QuotaLog{Deployments: []QuotaEntry{}}
	q.Align(deployments)
	return q
}

// Align keeps one entry per registry deployment, in registry order.
func (q *QuotaLog) Align(deployments []Deployment) {
	if len(q.Deployments) > len(deployments) {
		q.Deployments = q.Deployments[:len(deployments)]
	}
	for i, d := range deployments {
		if i < len(q.Deployments) {
			q.Deployments[i].Index = i
			q.Deployments[i].Name = d.Name
			continue
		}
		q.Deployments = append(q.Deployments, QuotaEntry{Index: i, Name: d.Name})
	}
}

func (q *QuotaLog) Count(index int) int {
	if index < 0 || index >= len(q.Deployments) {
		return 0
	}
	return q.Deployments[index].SmsCount
}

func (q *QuotaLog) Reset(now time.Time) {
	t := now.UTC()
	for i := range q.Deployments {
		q.Deployments[i].SmsCount = 0
		q.Deployments[i].LastReset = &t
	}
	q.TotalSmsSent = 0
}
