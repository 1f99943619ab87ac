package deployctl

import (
	"fmt"
	"sort"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/rotation"
	"github.com/spf13/cobra"
)

const defaultScheduleLength = 6

func lastDeployed(e model.RotationEntry) string {
	if e.LastDeployed == nil {
		return "Never"
	}
	return e.LastDeployed.Format(time.RFC3339)
}

func newRotationCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Plan release rotation across deployments",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show deployment history, most recent first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				log, err := a.deps.Scheduler.Status(cmd.Context())
				if err != nil {
					return err
				}
				entries := append([]model.RotationEntry(nil), log.Deployments...)
				sort.SliceStable(entries, func(i, j int) bool {
					x, y := entries[i].LastDeployed, entries[j].LastDeployed
					if x == nil || y == nil {
						return x != nil
					}
					return x.After(*y)
				})
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total Deployments Tracked: %d\n\n", log.TotalDeployments)
				for _, e := range entries {
					fmt.Fprintf(out, "[%d] %s\n", e.Index, e.Name)
					fmt.Fprintf(out, "    Last Deployed: %s\n", lastDeployed(e))
					fmt.Fprintf(out, "    Total Deploys: %d\n", e.DeployCount)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "next",
			Short: "Show the next release target",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				next, err := a.deps.Scheduler.NextTarget(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Deploy to: [%d] %s\n", next.Index, next.Name)
				fmt.Fprintf(out, "URL: %s\n", next.URL)
				fmt.Fprintf(out, "Last Deployed: %s\n", lastDeployed(next))
				return nil
			},
		},
		&cobra.Command{
			Use:   "mark <index>",
			Short: "Record a release to a deployment and make it active",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				res, err := a.deps.Scheduler.MarkDeployed(cmd.Context(), index)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Deployment %d marked as updated\n", index)
				fmt.Fprintf(out, "    %s\n", res.Entry.Name)
				fmt.Fprintf(out, "    Time: %s\n", lastDeployed(res.Entry))
				fmt.Fprintf(out, "    Total: %d deployments\n", res.Entry.DeployCount)
				if res.Switch != nil {
					fmt.Fprintf(out, "Switched: %s -> %s\n", res.Switch.From, res.Switch.To)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "schedule [n]",
			Short: "List the next n release targets",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n := defaultScheduleLength
				if len(args) == 1 {
					v, err := parseIndex(args[0])
					if err != nil || v <= 0 || v > rotation.MaxScheduleLength {
						return fmt.Errorf("n must be an integer between 1 and %d, got %q", rotation.MaxScheduleLength, args[0])
					}
					n = v
				}
				targets, err := a.deps.Scheduler.Schedule(cmd.Context(), n)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for i, t := range targets {
					fmt.Fprintf(out, "Deploy %d: -> [%d] %s\n", i+1, t.Index, t.Name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Clear the release history",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.deps.Scheduler.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Deployment log reset")
				return nil
			},
		},
	)
	return cmd
}
