// Package reconciler decides when the active deployment changes. Health and
// quota signals both resolve here so the two policies cannot disagree: a
// deployment at or over the failure threshold is never picked for quota
// reasons unless every deployment is.
package reconciler

import (
	"fmt"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/google/uuid"
)

type Decision struct {
	Switch  bool
	From    int
	To      int
	Trigger string
	Reason  string
	// NoCandidate is set when the active deployment is unhealthy but every
	// other deployment is at or over the failure threshold.
	NoCandidate bool
}

func healthy(cfg *model.RegistryConfig, i int) bool {
	return cfg.Deployments[i].FailureCount < cfg.FailureThreshold
}

// HealthDecision picks a replacement for an active deployment that reached the
// failure threshold: the first other healthy deployment still under its SMS
// limit, otherwise the first other healthy deployment in registry order. Health
// takes precedence over quota: quota only ranks the healthy candidates and never
// keeps traffic on a failing deployment.
func HealthDecision(cfg *model.RegistryConfig, quota *model.QuotaLog) Decision {
	d := Decision{From: cfg.ActiveIndex, To: cfg.ActiveIndex, Trigger: model.SwitchTriggerHealth}
	if !cfg.AutoSwitchEnabled || healthy(cfg, cfg.ActiveIndex) {
		return d
	}

	fallback := -1
	for i := range cfg.Deployments {
		if i == cfg.ActiveIndex || !healthy(cfg, i) {
			continue
		}
		if quota == nil || quota.Count(i) < cfg.SmsLimit {
			d.To = i
			break
		}
		if fallback == -1 {
			fallback = i
		}
	}
	if d.To == cfg.ActiveIndex {
		d.To = fallback
	}
	if d.To == -1 {
		d.To = cfg.ActiveIndex
		d.NoCandidate = true
		return d
	}
	d.Switch = true
	d.Reason = fmt.Sprintf("Failed %d health checks", cfg.Deployments[cfg.ActiveIndex].FailureCount)
	return d
}

// QuotaDecision runs after a delivery was counted against index. It only fires
// on the delivery that makes the count equal the limit.
func QuotaDecision(cfg *model.RegistryConfig, quota *model.QuotaLog, index int) Decision {
	d := Decision{From: cfg.ActiveIndex, To: cfg.ActiveIndex, Trigger: model.SwitchTriggerQuota}
	count := quota.Count(index)
	if count != cfg.SmsLimit {
		return d
	}

	pick := lowestCount(cfg, quota, true)
	if pick == -1 {
		pick = lowestCount(cfg, quota, false)
	}
	if pick == cfg.ActiveIndex {
		return d
	}
	d.Switch = true
	d.To = pick
	d.Reason = fmt.Sprintf("SMS limit reached (%d/%d)", count, cfg.SmsLimit)
	return d
}

func lowestCount(cfg *model.RegistryConfig, quota *model.QuotaLog, healthyOnly bool) int {
	pick := -1
	for i := range cfg.Deployments {
		if healthyOnly && !healthy(cfg, i) {
			continue
		}
		if pick == -1 || quota.Count(i) < quota.Count(pick) {
			pick = i
		}
	}
	return pick
}

// Apply performs a switching decision on the registry and records it in the
// metrics history. It returns the recorded event; ok is false when d does not
// switch.
func Apply(cfg *model.RegistryConfig, metrics *model.Metrics, d Decision, now time.Time) (event model.SwitchEvent, ok bool) {
	if !d.Switch || !cfg.InRange(d.To) || d.To == cfg.ActiveIndex {
		return model.SwitchEvent{}, false
	}
	from := cfg.ActiveIndex
	fromName := cfg.Label(from)
	if d.Trigger == model.SwitchTriggerHealth {
		cfg.Deployments[from].FailureCount = 0
	}
	cfg.SetActive(d.To)

	event = model.SwitchEvent{
		ID:              uuid.NewString(),
		Timestamp:       now.UTC(),
		From:            fromName,
		To:              cfg.Label(d.To),
		Reason:          d.Reason,
		Trigger:         d.Trigger,
		FromIndex:       from,
		DeploymentIndex: d.To,
	}
	metrics.AppendSwitch(event)
	return event, true
}

// Manual builds a decision for operator and rotation initiated switches.
func Manual(cfg *model.RegistryConfig, to int, trigger string, reason string) Decision {
	return Decision{
		Switch:  to != cfg.ActiveIndex,
		From:    cfg.ActiveIndex,
		To:      to,
		Trigger: trigger,
		Reason:  reason,
	}
}
