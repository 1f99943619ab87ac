package deployctl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/quota"
	"github.com/spf13/cobra"
)

const usageBarWidth = 20

func usageBar(percent int) string {
	filled := percent * usageBarWidth / 100
	if filled > usageBarWidth {
		filled = usageBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", usageBarWidth-filled) + "]"
}

func newQuotaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Track per-deployment delivery quotas",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show delivery counts, highest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				status, err := a.deps.Tracker.Status(cmd.Context())
				if err != nil {
					return err
				}
				entries := append([]quota.StatusEntry(nil), status.Deployments...)
				sort.SliceStable(entries, func(i, j int) bool {
					return entries[i].SmsCount > entries[j].SmsCount
				})
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total Sent: %d\n", status.TotalSmsSent)
				fmt.Fprintf(out, "Limit: %d per deployment\n\n", status.Limit)
				for _, e := range entries {
					fmt.Fprintf(out, "%s [%d] %s\n", activeMarker(e.Active), e.Index, e.Name)
					fmt.Fprintf(out, "    %s %d/%d (%d%%)\n", usageBar(e.Percent), e.SmsCount, status.Limit, e.Percent)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "log <index>",
			Short: "Count one delivery against a deployment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				res, err := a.deps.Tracker.RecordDelivery(cmd.Context(), index)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Logged delivery for [%d] %s: %d/%d\n", res.Index, res.Name, res.SmsCount, res.Limit)
				if res.Switch != nil {
					fmt.Fprintf(out, "Limit reached, switched: %s -> %s\n", res.Switch.From, res.Switch.To)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Clear every delivery counter",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.deps.Tracker.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Quota counters reset")
				return nil
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Show the quota limit of the active deployment",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := a.deps.Tracker.Config(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Limit: %d per deployment\n", cfg.Limit)
				fmt.Fprintf(out, "Active: [%d] %s\n", cfg.ActiveIndex, cfg.ActiveName)
				fmt.Fprintf(out, "Used: %d/%d\n", cfg.ActiveCount, cfg.Limit)
				if cfg.LimitReached {
					fmt.Fprintln(out, "LIMIT REACHED")
				}
				return nil
			},
		},
	)
	return cmd
}
