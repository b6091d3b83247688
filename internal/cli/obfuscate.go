package cli

import (
	"errors"
	"os"

	"github.com/fileguard/fileguard-cli/internal/obfuscate"
	"github.com/fileguard/fileguard-cli/internal/prompt"

	"github.com/spf13/cobra"
)

func newObfuscateCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "obfuscate <path>",
		Short: "XOR-scramble a file, or every file under a directory",
		Long: "Scramble a file against a password-derived keystream, writing <path>.obf\n" +
			"and removing the original. Given a directory, every file under it is\n" +
			"scrambled; files already ending in .obf are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cleanPathArg(args[0])
			info, err := os.Stat(path)
			if err != nil {
				return writeFailure(cmd, app, "inspect_failed", err, "")
			}
			pw, err := obfuscatePassword(password)
			if err != nil {
				return writeFailure(cmd, app, "invalid_password", err, "")
			}
			if info.IsDir() {
				res, err := obfuscate.Tree(path, pw)
				if err != nil {
					return writeFailure(cmd, app, "obfuscate_failed", err, "")
				}
				return writeData(cmd, app, nil, map[string]any{
					"path":   path,
					"result": res,
				})
			}
			out, err := obfuscate.File(path, pw)
			if err != nil {
				return writeFailure(cmd, app, "obfuscate_failed", err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"path":       path,
				"obfuscated": out,
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	return cmd
}

func newDeobfuscateCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "deobfuscate <path>",
		Short: "Reverse obfuscation for a file or directory",
		Long: "Restore an obfuscated file, removing the .obf copy. Given a directory,\n" +
			"only files ending in .obf are processed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cleanPathArg(args[0])
			info, err := os.Stat(path)
			if err != nil {
				return writeFailure(cmd, app, "inspect_failed", err, "")
			}
			pw, err := existingObfuscatePassword(password)
			if err != nil {
				return writeFailure(cmd, app, "invalid_password", err, "")
			}
			if info.IsDir() {
				res, err := obfuscate.RestoreTree(path, pw)
				if err != nil {
					return writeFailure(cmd, app, "deobfuscate_failed", err, "")
				}
				return writeData(cmd, app, nil, map[string]any{
					"path":   path,
					"result": res,
				})
			}
			out, err := obfuscate.Restore(path, pw)
			if err != nil {
				return writeFailure(cmd, app, "deobfuscate_failed", err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"path":     path,
				"restored": out,
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	return cmd
}

func obfuscatePassword(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if !stdinIsTTY() {
		return "", errors.New("missing --password")
	}
	return prompt.NewPassword("Password", 1)
}

func existingObfuscatePassword(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if !stdinIsTTY() {
		return "", errors.New("missing --password")
	}
	return prompt.Password("Password")
}
