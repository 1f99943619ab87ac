package deployctl

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const recentSwitches = 5

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe every deployment once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := a.deps.Monitor.Check(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Deployment Health Status:")
			for _, r := range results {
				status := "UP  "
				if !r.Probe.Healthy {
					status = "DOWN"
				}
				fmt.Fprintf(out, "%s [%d] %s (%s)\n", status, r.Index, r.Name, r.Status)
				fmt.Fprintf(out, "    URL: %s\n", r.URL)
				fmt.Fprintf(out, "    Response Time: %dms\n", r.Probe.ResponseTime.Milliseconds())
				if r.Probe.StatusCode != 0 {
					fmt.Fprintf(out, "    Status Code: %d\n", r.Probe.StatusCode)
				}
				if r.Probe.Error != "" {
					fmt.Fprintf(out, "    Error: %s\n", r.Probe.Error)
				}
			}
			return nil
		},
	}
}

func newMetricsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show health check metrics and recent switches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.deps.Registry.List(cmd.Context())
			if err != nil {
				return err
			}
			m, err := a.deps.Registry.Metrics(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Uptime: %d%%\n", m.Uptime)
			fmt.Fprintf(out, "Health Checks: %d\n", m.TotalRequests)
			fmt.Fprintf(out, "Successful Probes: %d\n", m.SuccessfulRequests)
			fmt.Fprintf(out, "Failed Probes: %d\n", m.FailedRequests)
			if m.LastHealthCheck != nil {
				fmt.Fprintf(out, "Last Health Check: %s\n", m.LastHealthCheck.Format(time.RFC3339))
			}
			fmt.Fprintln(out, "\nDeployment Stats:")
			for _, d := range cfg.Deployments {
				s, ok := m.DeploymentStats[d.Name]
				if !ok {
					continue
				}
				fmt.Fprintf(out, "  %s: %d%% (%d/%d checks, avg %dms)\n", d.Name, s.SuccessRate(), s.Successes, s.Checks, s.AvgResponseTime)
			}
			fmt.Fprintln(out, "\nRecent Switches:")
			switches := m.RecentSwitches(recentSwitches)
			for i := len(switches) - 1; i >= 0; i-- {
				s := switches[i]
				fmt.Fprintf(out, "  [%s] %s -> %s (%s: %s)\n", s.Timestamp.Format(time.RFC3339), s.From, s.To, s.Trigger, s.Reason)
			}
			return nil
		},
	}
}

func newMonitorCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Run the failover monitor until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.deps.Registry.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Starting deployment monitor")
			fmt.Fprintf(out, "    Health Check Interval: %s\n", cfg.Interval())
			fmt.Fprintf(out, "    Failure Threshold: %d checks\n", cfg.FailureThreshold)
			fmt.Fprintf(out, "    Auto-Switch: %t\n", cfg.AutoSwitchEnabled)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			a.deps.Monitor.Start()
			<-ctx.Done()
			a.deps.Monitor.Stop()
			fmt.Fprintln(out, "Deployment monitor stopped")
			return nil
		},
	}
}
