package cli

import (
	"errors"
	"os"

	"github.com/fileguard/fileguard-cli/internal/prompt"
	"github.com/fileguard/fileguard-cli/internal/stego"

	"github.com/spf13/cobra"
)

func newStegoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stego",
		Short: "Hide and reveal messages in PNG metadata",
		Long: "Store text messages in standard PNG tEXt chunks. The image renders\n" +
			"unchanged; anyone who inspects the metadata can read the message.",
	}
	cmd.AddCommand(newStegoHideCmd(app))
	cmd.AddCommand(newStegoRevealCmd(app))
	return cmd
}

func newStegoHideCmd(app *App) *cobra.Command {
	var key string
	var message string

	cmd := &cobra.Command{
		Use:   "hide <in.png> <out.png>",
		Short: "Hide a message in a PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cleanPathArg(args[0])
			out := cleanPathArg(args[1])

			k, msg, err := stegoInputs(key, message)
			if err != nil {
				return writeFailure(cmd, app, "invalid_message", err, "")
			}
			png, err := os.ReadFile(in)
			if err != nil {
				return writeFailure(cmd, app, "read_failed", err, "")
			}
			hidden, err := stego.Hide(png, k, msg)
			if err != nil {
				return writeFailure(cmd, app, "hide_failed", err, "")
			}
			if err := os.WriteFile(out, hidden, 0o644); err != nil {
				return writeFailure(cmd, app, "write_failed", err, "")
			}
			return writeData(cmd, app, nil, map[string]any{
				"in":      in,
				"out":     out,
				"keyword": k,
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "Keyword (tag) for the message")
	cmd.Flags().StringVar(&message, "message", "", "Message text to hide")
	return cmd
}

func newStegoRevealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal <in.png>",
		Short: "List messages hidden in a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := os.ReadFile(cleanPathArg(args[0]))
			if err != nil {
				return writeFailure(cmd, app, "read_failed", err, "")
			}
			msgs, err := stego.Reveal(png)
			if err != nil {
				return writeFailure(cmd, app, "reveal_failed", err, "")
			}
			if msgs == nil {
				msgs = []stego.Message{}
			}
			return writeData(cmd, app, map[string]any{"count": len(msgs)}, msgs)
		},
	}
	return cmd
}

func stegoInputs(key, message string) (string, string, error) {
	if key != "" && message != "" {
		return key, message, nil
	}
	if !stdinIsTTY() {
		return "", "", errors.New("missing --key or --message")
	}
	var err error
	if key == "" {
		key, err = prompt.Input("Keyword (tag) for the message")
		if err != nil {
			return "", "", err
		}
	}
	if message == "" {
		message, err = prompt.Input("Message to hide")
		if err != nil {
			return "", "", err
		}
	}
	return key, message, nil
}
