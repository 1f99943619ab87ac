// Package export renders the orchestrator state as an xlsx workbook for
// operators.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/xuri/excelize/v2"
)

const (
	SheetDeployments = "Deployments"
	SheetSwitches    = "Switches"
	timeLayout       = "2006-01-02 15:04:05"
)

type Snapshot struct {
	Registry model.RegistryConfig
	Metrics  model.Metrics
	Quota    model.QuotaLog
	Rotation model.RotationLog
}

func writeRows(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &r); err != nil {
			return err
		}
	}
	return nil
}

func NewWorkbook(s Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetDeployments); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetSwitches); err != nil {
		return nil, err
	}

	headers := []interface{}{"index", "name", "url", "status", "failure_count", "sms_count", "deploy_count", "last_deployed", "checks", "success_rate", "avg_response_ms"}
	rows := make([][]interface{}, 0, len(s.Registry.Deployments))
	for i, d := range s.Registry.Deployments {
		stats := s.Metrics.DeploymentStats[d.Name]
		lastDeployed := ""
		deployCount := 0
		if i < len(s.Rotation.Deployments) {
			deployCount = s.Rotation.Deployments[i].DeployCount
			if t := s.Rotation.Deployments[i].LastDeployed; t != nil {
				lastDeployed = t.Format(timeLayout)
			}
		}
		rows = append(rows, []interface{}{
			i,
			d.Name,
			d.URL,
			d.Status,
			d.FailureCount,
			s.Quota.Count(i),
			deployCount,
			lastDeployed,
			stats.Checks,
			stats.SuccessRate(),
			stats.AvgResponseTime,
		})
	}
	if err := writeRows(f, SheetDeployments, headers, rows); err != nil {
		return nil, err
	}

	switches := append([]model.SwitchEvent(nil), s.Metrics.Switches...)
	sort.SliceStable(switches, func(i, j int) bool {
		return switches[i].Timestamp.After(switches[j].Timestamp)
	})
	headers = []interface{}{"timestamp", "trigger", "from", "to", "reason"}
	rows = rows[:0]
	for _, e := range switches {
		rows = append(rows, []interface{}{e.Timestamp.Format(timeLayout), e.Trigger, e.From, e.To, e.Reason})
	}
	if err := writeRows(f, SheetSwitches, headers, rows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write renders the snapshot and streams the workbook to w.
func Write(w io.Writer, s Snapshot) error {
	f, err := NewWorkbook(s)
	if err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	defer f.Close()
	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	return nil
}
