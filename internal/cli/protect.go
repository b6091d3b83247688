package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fileguard/fileguard-cli/internal/prompt"
	"github.com/fileguard/fileguard-cli/internal/vault"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// minPasswordLen applies to newly protected files only; existing sealed
// files unlock with whatever password they were sealed with.
const minPasswordLen = 4

func newProtectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protect",
		Short: "Password-protect files",
		Long: "Replace a file with a password-sealed copy and track it in a registry.\n" +
			"The seal deters casual inspection; treat it as obfuscation, not strong encryption.",
	}
	cmd.AddCommand(newProtectLockCmd(app))
	cmd.AddCommand(newProtectOpenCmd(app))
	cmd.AddCommand(newProtectRestoreCmd(app))
	cmd.AddCommand(newProtectRmCmd(app))
	cmd.AddCommand(newProtectListCmd(app))
	return cmd
}

func newProtectLockCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "lock <path>",
		Short: "Seal a file with a password and remove the original",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appVault(app)
			if err != nil {
				return writeFailure(cmd, app, "no_registry", err, "")
			}
			pw, err := newPassword(password, "Password for this file")
			if err != nil {
				return writeFailure(cmd, app, "invalid_password", err, "")
			}
			entry, err := v.Lock(cleanPathArg(args[0]), pw)
			if err != nil {
				return writeFailure(cmd, app, protectErrCode(err), err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"id":            entry.ID,
				"path":          cleanPathArg(args[0]),
				"encryptedPath": entry.EncryptedPath,
				"size":          humanize.Bytes(uint64(entry.OriginalSize)),
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	return cmd
}

func newProtectOpenCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Decrypt to a temporary copy, keeping the file protected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appVault(app)
			if err != nil {
				return writeFailure(cmd, app, "no_registry", err, "")
			}
			pw, err := existingPassword(password)
			if err != nil {
				return writeFailure(cmd, app, "invalid_password", err, "")
			}
			out, err := v.Open(cleanPathArg(args[0]), pw)
			if err != nil {
				return writeFailure(cmd, app, protectErrCode(err), err, "")
			}
			return writeData(cmd, app, map[string]any{
				"note": "delete the temporary copy when done",
			}, map[string]any{
				"path":     cleanPathArg(args[0]),
				"tempPath": out,
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	return cmd
}

func newProtectRestoreCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "restore <path>",
		Short: "Decrypt back to the original path and stop tracking it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appVault(app)
			if err != nil {
				return writeFailure(cmd, app, "no_registry", err, "")
			}
			pw, err := existingPassword(password)
			if err != nil {
				return writeFailure(cmd, app, "invalid_password", err, "")
			}
			path := cleanPathArg(args[0])
			if err := v.Restore(path, pw); err != nil {
				return writeFailure(cmd, app, protectErrCode(err), err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"path":     path,
				"restored": true,
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	return cmd
}

func newProtectRmCmd(app *App) *cobra.Command {
	var password string
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a protected file without decrypting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appVault(app)
			if err != nil {
				return writeFailure(cmd, app, "no_registry", err, "")
			}
			pw, err := existingPassword(password)
			if err != nil {
				return writeFailure(cmd, app, "invalid_password", err, "")
			}
			path := cleanPathArg(args[0])
			if !yes {
				if !stdinIsTTY() {
					return writeFailure(cmd, app, "confirmation_required",
						errors.New("refusing to delete without confirmation"),
						"re-run with --yes to skip the prompt")
				}
				ok, err := prompt.Confirm(fmt.Sprintf("Permanently delete the protected file %s?", path))
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
			if err := v.Remove(path, pw); err != nil {
				return writeFailure(cmd, app, protectErrCode(err), err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"path":    path,
				"deleted": true,
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Delete without asking for confirmation")
	return cmd
}

func newProtectListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List protected files",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appVault(app)
			if err != nil {
				return writeFailure(cmd, app, "no_registry", err, "")
			}
			statuses, err := v.List()
			if err != nil {
				return writeFailure(cmd, app, "registry_error", err, "")
			}
			sort.Slice(statuses, func(i, j int) bool { return statuses[i].Path < statuses[j].Path })
			rows := make([]map[string]any, 0, len(statuses))
			for _, s := range statuses {
				rows = append(rows, map[string]any{
					"path":            s.Path,
					"encryptedPath":   s.EncryptedPath,
					"size":            humanize.Bytes(uint64(s.OriginalSize)),
					"protectedAt":     s.ProtectedAt,
					"encryptedExists": s.EncryptedExists,
				})
			}
			return writeData(cmd, app, map[string]any{"count": len(rows)}, rows)
		},
	}
	return cmd
}

func cleanPathArg(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"'`)
}

// newPassword resolves the password for a lock: flag first, interactive
// double-entry prompt as fallback.
func newPassword(flagVal, title string) (string, error) {
	if flagVal != "" {
		if len(flagVal) < minPasswordLen {
			return "", fmt.Errorf("password must be at least %d characters", minPasswordLen)
		}
		return flagVal, nil
	}
	if !stdinIsTTY() {
		return "", errors.New("missing --password")
	}
	return prompt.NewPassword(title, minPasswordLen)
}

// existingPassword resolves the password for operations on an already
// protected file.
func existingPassword(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if !stdinIsTTY() {
		return "", errors.New("missing --password")
	}
	return prompt.Password("Password")
}

func protectErrCode(err error) string {
	switch {
	case errors.Is(err, vault.ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, vault.ErrAlreadyProtected):
		return "already_protected"
	case errors.Is(err, vault.ErrNotProtected):
		return "not_protected"
	default:
		return "protect_failed"
	}
}
