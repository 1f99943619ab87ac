package deployctl

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/dto/request"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/jwt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index must be an integer, got %q", arg)
	}
	return index, nil
}

func activeMarker(active bool) string {
	if active {
		return "*"
	}
	return " "
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered deployments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.deps.Registry.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Deployments:")
			for i, d := range cfg.Deployments {
				fmt.Fprintf(out, "%s [%d] %s (%s)\n", activeMarker(i == cfg.ActiveIndex), i, d.Name, d.Status)
				fmt.Fprintf(out, "    URL: %s\n", d.URL)
			}
			return nil
		},
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.deps.Registry.List(cmd.Context())
			if err != nil {
				return err
			}
			active := cfg.Active()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Active Deployment: [%d] %s\n", active.Index, active.Name)
			fmt.Fprintf(out, "URL: %s\n", active.URL)
			fmt.Fprintf(out, "Submit Path: %s\n", cfg.SubmitPath)
			if cfg.LastUpdated != nil {
				fmt.Fprintf(out, "Last Updated: %s\n", cfg.LastUpdated.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <index>",
		Short: "Switch traffic to a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			event, err := a.deps.Registry.SetActive(cmd.Context(), index)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if event == nil {
				fmt.Fprintf(out, "Deployment %d is already active\n", index)
				return nil
			}
			fmt.Fprintf(out, "Switched: %s -> %s\n", event.From, event.To)
			return nil
		},
	}
}

func newAddCommand(a *app) *cobra.Command {
	validate := validator.New()
	return &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Register a new standby deployment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.AddDeploymentRequest{Name: args[0], URL: args[1]}
			if err := validate.Struct(req); err != nil {
				return fmt.Errorf("invalid deployment: %w", err)
			}
			d, err := a.deps.Registry.Add(cmd.Context(), req.Name, req.URL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added [%d] %s (%s)\n", d.Index, d.Name, d.URL)
			return nil
		},
	}
}

func newResetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default deployment registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.deps.Registry.Reset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry reset, %d deployments, active: %s\n", len(cfg.Deployments), cfg.Active().Name)
			return nil
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show failover configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.deps.Registry.List(cmd.Context())
			if err != nil {
				return err
			}
			autoSwitch := "No"
			if cfg.AutoSwitchEnabled {
				autoSwitch = "Yes"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Auto-Switch Enabled: %s\n", autoSwitch)
			fmt.Fprintf(out, "Health Check Interval: %s\n", cfg.Interval())
			fmt.Fprintf(out, "Failure Threshold: %d checks\n", cfg.FailureThreshold)
			fmt.Fprintf(out, "SMS Limit: %d per deployment\n", cfg.SmsLimit)
			fmt.Fprintf(out, "\nActive Deployment: %s\n", cfg.Active().Name)
			fmt.Fprintln(out, "\nAll Deployments:")
			for i, d := range cfg.Deployments {
				fmt.Fprintf(out, "%s [%d] %s\n", activeMarker(i == cfg.ActiveIndex), i, d.Name)
				fmt.Fprintf(out, "    URL: %s\n", d.URL)
				fmt.Fprintf(out, "    Failures: %d/%d\n", d.FailureCount, cfg.FailureThreshold)
			}
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write registry, metrics, quota and rotation state to a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err = a.deps.Registry.Export(cmd.Context(), f); err != nil {
				_ = f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
}

func newTokenCommand(a *app) *cobra.Command {
	var scopes []string
	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an admin API access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.deps.Tokens == nil {
				return fmt.Errorf("ADMIN_JWT_SECRET is not set")
			}
			token, err := a.deps.Tokens.CreateAccessToken(args[0], scopes...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token.Token)
			fmt.Fprintf(cmd.ErrOrStderr(), "scopes: %s, expires in %s\n", strings.Join(scopes, ","), token.TTL)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{jwt.ScopeDeploymentsRead, jwt.ScopeDeploymentsWrite}, "Scopes granted by the token")
	return cmd
}
