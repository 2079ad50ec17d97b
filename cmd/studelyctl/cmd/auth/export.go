package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
)

var (
	shellFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the API token as an environment variable",
	Long: `Export the stored bearer token as the STUDELY_TOKEN environment variable,
for scripts and tools that call the Studely API directly.

Supported shells:
  - posix (bash, zsh, sh) - default
  - fish
  - powershell

Usage:
  # POSIX shells (bash/zsh/sh)
  eval $(studelyctl auth export)

  # Fish shell
  eval (studelyctl auth export --shell fish)

  # PowerShell
  studelyctl auth export --shell powershell | Invoke-Expression`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Shell format: posix, fish, powershell (auto-detected if not specified)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.MustFromContext(cmd.Context())

	store, err := cfg.Provider.Store()
	if err != nil {
		return err
	}
	token := store.Token()
	if token == "" {
		return fmt.Errorf("not logged in; run `studelyctl auth login` first")
	}

	if shellFormat == "" {
		shellFormat = detectShell()
	}

	switch strings.ToLower(shellFormat) {
	case "posix", "bash", "zsh", "sh":
		printPosixExport(token)
	case "fish":
		printFishExport(token)
	case "powershell", "pwsh", "ps1":
		printPowerShellExport(token)
	default:
		return fmt.Errorf("unsupported shell format: %s\n\nSupported formats: posix, fish, powershell", shellFormat)
	}

	return nil
}

// detectShell attempts to detect the current shell from the SHELL environment variable
func detectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "posix"
	}

	switch filepath.Base(shell) {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	default:
		// Default to POSIX for bash, zsh, sh, and unknown shells
		return "posix"
	}
}

func printPosixExport(token string) {
	// Only print instructions if stdout is a TTY (interactive mode, not being piped/eval'd)
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   eval $(studelyctl auth export)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("export STUDELY_TOKEN=\"%s\"\n", token)
}

func printFishExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   eval (studelyctl auth export --shell fish)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("set -x STUDELY_TOKEN \"%s\"\n", token)
}

func printPowerShellExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   studelyctl auth export --shell powershell | Invoke-Expression")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("$env:STUDELY_TOKEN=\"%s\"\n", token)
}

// isTerminal checks if the given file is a terminal (TTY)
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
