package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/cmd/assessments"
	authcmd "github.com/Arden28/studely-client/cmd/studelyctl/cmd/auth"
	"github.com/Arden28/studely-client/cmd/studelyctl/cmd/colleges"
	"github.com/Arden28/studely-client/cmd/studelyctl/cmd/evaluate"
	"github.com/Arden28/studely-client/cmd/studelyctl/cmd/modules"
	"github.com/Arden28/studely-client/cmd/studelyctl/cmd/students"
	"github.com/Arden28/studely-client/cmd/studelyctl/internal/client"
	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
)

var (
	serverURL      string
	configPath     string
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "studelyctl",
	Short: "Studely CLI - admin console for the Studely assessment platform",
	Long: `studelyctl is the command-line console for Studely. Use it to manage
students, modules, colleges and assessments, and to work through the
evaluator queue.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check for STUDELY_NON_INTERACTIVE environment variable
		if os.Getenv("STUDELY_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		fileCfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if serverURL != "" {
			fileCfg.ServerURL = serverURL
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		cfg := &config.GlobalConfig{
			ServerURL:      fileCfg.ServerURL,
			Device:         fileCfg.Device,
			NonInteractive: nonInteractive,
			Logger:         logger,
			Provider:       client.NewProvider(fileCfg.ServerURL, fileCfg.Device, fileCfg.ConfirmTimeout, logger),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Studely API server URL (overrides config file and STUDELY_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.studely/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via STUDELY_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(authcmd.AuthCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(students.StudentsCmd)
	rootCmd.AddCommand(modules.ModulesCmd)
	rootCmd.AddCommand(colleges.CollegesCmd)
	rootCmd.AddCommand(assessments.AssessmentsCmd)
	rootCmd.AddCommand(evaluate.EvaluateCmd)
}
