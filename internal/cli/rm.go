package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fileguard/fileguard-cli/internal/fsops"
	"github.com/fileguard/fileguard-cli/internal/prompt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newRmCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Permanently delete a file or directory",
		Long: "Permanently delete a file, or a directory with everything in it.\n" +
			"The target is inspected and shown before anything is removed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.Trim(strings.TrimSpace(args[0]), `"'`)
			if path == "" {
				return writeFailure(cmd, app, "invalid_path", errors.New("missing path"), "")
			}
			target, err := fsops.Inspect(path)
			if err != nil {
				return writeFailure(cmd, app, "inspect_failed", err, "")
			}
			if !yes {
				if !stdinIsTTY() {
					return writeFailure(cmd, app, "confirmation_required",
						errors.New("refusing to delete without confirmation"),
						"re-run with --yes to skip the prompt")
				}
				ok, err := prompt.Confirm(deletePrompt(target))
				if err != nil {
					return err
				}
				if !ok {
					return writeData(cmd, app, nil, map[string]any{
						"path":      path,
						"deleted":   false,
						"cancelled": true,
					})
				}
			}
			if err := fsops.Delete(path); err != nil {
				return writeFailure(cmd, app, "delete_failed", err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"path":    path,
				"deleted": true,
				"target":  target,
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Delete without asking for confirmation")
	return cmd
}

func deletePrompt(t *fsops.Target) string {
	if t.IsDir {
		return fmt.Sprintf("Delete directory %s and roughly %d files inside it?", t.Path, t.FileCount)
	}
	return fmt.Sprintf("Delete file %s (%s)?", t.Path, humanize.Bytes(uint64(t.Size)))
}
