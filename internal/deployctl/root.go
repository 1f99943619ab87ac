// Package deployctl implements the operator CLI over the orchestrator
// components. Every command reads and writes the same state store as the server.
package deployctl

import (
	"fmt"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/health"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/jwt"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/quota"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/rotation"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/service"
	"github.com/spf13/cobra"
)

type Deps struct {
	Registry  service.RegistryService
	Monitor   health.Monitor
	Tracker   quota.Tracker
	Scheduler rotation.Scheduler
	// Tokens is nil when no admin secret is configured.
	Tokens jwt.Utils
}

// DepsLoader builds the components once per invocation. The cleanup runs after
// the command finishes.
type DepsLoader func(cmd *cobra.Command) (*Deps, func(), error)

type app struct {
	load    DepsLoader
	deps    *Deps
	cleanup func()
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	deps, cleanup, err := a.load(cmd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	a.deps = deps
	a.cleanup = cleanup
	return nil
}

func (a *app) close(_ *cobra.Command, _ []string) {
	if a.cleanup != nil {
		a.cleanup()
	}
}

func NewRootCommand(load DepsLoader) *cobra.Command {
	a := &app{load: load}
	rootCmd := &cobra.Command{
		Use:   "deployctl",
		Short: "deployctl - operate the deployment orchestrator",
		Long: `deployctl manages the deployment registry shared with the orchestrator server.

It can:
  - List, add and switch deployments
  - Probe deployment health and run the failover monitor
  - Track per-deployment delivery quotas
  - Plan release rotation across deployments`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: a.close,
	}
	rootCmd.PersistentFlags().String("env-file", "./.env", "Path to the environment file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newListCommand(a),
		newStatusCommand(a),
		newSetCommand(a),
		newAddCommand(a),
		newResetCommand(a),
		newConfigCommand(a),
		newExportCommand(a),
		newTokenCommand(a),
		newHealthCommand(a),
		newMetricsCommand(a),
		newMonitorCommand(a),
		newQuotaCommand(a),
		newRotationCommand(a),
	)
	return rootCmd
}
