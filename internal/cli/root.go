package cli

import (
	"fmt"
	"os"

	"github.com/fileguard/fileguard-cli/internal/format"
	"github.com/fileguard/fileguard-cli/internal/logging"
	"github.com/fileguard/fileguard-cli/internal/vault"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type App struct {
	RegistryPath string
	Format       string
	PrettyJSON   bool
	Verbose      bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "fileguard",
		Short:        "Local file toolbox: delete, password-protect, obfuscate, and hide data in PNGs",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.ConfigureRuntime(app.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand on a terminal => interactive menu.
			if cmd.HasSubCommands() && len(args) == 0 && stdinIsTTY() {
				return runInteractive(app)
			}
			return cmd.Help()
		},
	}

	defaultRegistry, _ := vault.DefaultRegistryPath()
	cmd.PersistentFlags().StringVar(&app.RegistryPath, "registry", envOr("FILEGUARD_REGISTRY", defaultRegistry), "Path to the protected-files registry JSON")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FILEGUARD_FORMAT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newProtectCmd(app))
	cmd.AddCommand(newObfuscateCmd(app))
	cmd.AddCommand(newDeobfuscateCmd(app))
	cmd.AddCommand(newStegoCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

func appVault(app *App) (vault.Vault, error) {
	if app.RegistryPath == "" {
		return vault.Vault{}, fmt.Errorf("missing --registry")
	}
	return vault.Vault{RegistryPath: app.RegistryPath}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func stdinIsTTY() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
