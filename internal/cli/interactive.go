package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fileguard/fileguard-cli/internal/fsops"
	"github.com/fileguard/fileguard-cli/internal/obfuscate"
	"github.com/fileguard/fileguard-cli/internal/prompt"
	"github.com/fileguard/fileguard-cli/internal/stego"
	"github.com/fileguard/fileguard-cli/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
)

// runInteractive loops menu -> form -> operation until the user quits.
// Aborting a form (esc/ctrl+c) returns to the menu, not out of the program.
func runInteractive(app *App) error {
	for {
		action, err := tui.Choose()
		if err != nil {
			return err
		}
		if action == tui.ActionQuit {
			return nil
		}
		if err := runAction(app, action); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			fmt.Fprintln(os.Stderr, tui.ErrStyle.Render("✗ ")+err.Error())
			continue
		}
	}
}

func runAction(app *App, action tui.Action) error {
	switch action {
	case tui.ActionRm:
		return interactiveRm()
	case tui.ActionProtectLock:
		return interactiveProtectLock(app)
	case tui.ActionProtectOpen:
		return interactiveProtectOpen(app)
	case tui.ActionProtectRestore:
		return interactiveProtectRestore(app)
	case tui.ActionProtectRemove:
		return interactiveProtectRemove(app)
	case tui.ActionProtectList:
		return interactiveProtectList(app)
	case tui.ActionObfuscate:
		return interactiveObfuscate(false)
	case tui.ActionDeobfuscate:
		return interactiveObfuscate(true)
	case tui.ActionStegoHide:
		return interactiveStegoHide()
	case tui.ActionStegoReveal:
		return interactiveStegoReveal()
	default:
		return nil
	}
}

func okLine(msg string) {
	fmt.Println(tui.OKStyle.Render("✓ ") + tui.TextStyle.Render(msg))
}

func dimLine(msg string) {
	fmt.Println(tui.DimStyle.Render(msg))
}

func interactiveRm() error {
	path, err := prompt.Path("Path to delete")
	if err != nil {
		return err
	}
	target, err := fsops.Inspect(path)
	if err != nil {
		return err
	}
	ok, err := prompt.Confirm(deletePrompt(target))
	if err != nil {
		return err
	}
	if !ok {
		dimLine("Deletion cancelled.")
		return nil
	}
	if err := fsops.Delete(path); err != nil {
		return err
	}
	okLine(fmt.Sprintf("Deleted %s", path))
	return nil
}

func interactiveProtectLock(app *App) error {
	v, err := appVault(app)
	if err != nil {
		return err
	}
	path, err := prompt.Path("File to protect")
	if err != nil {
		return err
	}
	pw, err := prompt.NewPassword("Password for this file", minPasswordLen)
	if err != nil {
		return err
	}
	entry, err := v.Lock(path, pw)
	if err != nil {
		return err
	}
	okLine(fmt.Sprintf("Protected %s (%s) -> %s", path, humanize.Bytes(uint64(entry.OriginalSize)), entry.EncryptedPath))
	return nil
}

func interactiveProtectOpen(app *App) error {
	v, err := appVault(app)
	if err != nil {
		return err
	}
	path, err := prompt.Path("Original file path")
	if err != nil {
		return err
	}
	pw, err := prompt.Password("Password")
	if err != nil {
		return err
	}
	out, err := v.Open(path, pw)
	if err != nil {
		return err
	}
	okLine(fmt.Sprintf("Temporary copy at %s", out))
	dimLine("Delete the temporary copy when done.")
	return nil
}

func interactiveProtectRestore(app *App) error {
	v, err := appVault(app)
	if err != nil {
		return err
	}
	path, err := prompt.Path("Original file path")
	if err != nil {
		return err
	}
	pw, err := prompt.Password("Password")
	if err != nil {
		return err
	}
	if err := v.Restore(path, pw); err != nil {
		return err
	}
	okLine(fmt.Sprintf("Restored %s", path))
	return nil
}

func interactiveProtectRemove(app *App) error {
	v, err := appVault(app)
	if err != nil {
		return err
	}
	path, err := prompt.Path("Original file path")
	if err != nil {
		return err
	}
	pw, err := prompt.Password("Password")
	if err != nil {
		return err
	}
	ok, err := prompt.Confirm(fmt.Sprintf("Permanently delete the protected file %s?", path))
	if err != nil {
		return err
	}
	if !ok {
		dimLine("Deletion cancelled.")
		return nil
	}
	if err := v.Remove(path, pw); err != nil {
		return err
	}
	okLine(fmt.Sprintf("Deleted protected file %s", path))
	return nil
}

func interactiveProtectList(app *App) error {
	v, err := appVault(app)
	if err != nil {
		return err
	}
	statuses, err := v.List()
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		dimLine("No protected files.")
		return nil
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Path < statuses[j].Path })
	for _, s := range statuses {
		marker := tui.OKStyle.Render("✓")
		if !s.EncryptedExists {
			marker = tui.ErrStyle.Render("missing")
		}
		fmt.Printf("%s  %s  %s\n",
			tui.TextStyle.Render(s.Path),
			tui.DimStyle.Render(humanize.Bytes(uint64(s.OriginalSize))),
			marker)
	}
	return nil
}

func interactiveObfuscate(restore bool) error {
	title := "File or folder to obfuscate"
	if restore {
		title = "File or folder to deobfuscate"
	}
	path, err := prompt.Path(title)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	var pw string
	if restore {
		pw, err = prompt.Password("Password")
	} else {
		pw, err = prompt.NewPassword("Password", 1)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		var res obfuscate.TreeResult
		if restore {
			res, err = obfuscate.RestoreTree(path, pw)
		} else {
			res, err = obfuscate.Tree(path, pw)
		}
		if err != nil {
			return err
		}
		okLine(fmt.Sprintf("Processed %d/%d files", res.Succeeded, res.Total))
		if res.Failed > 0 {
			dimLine(fmt.Sprintf("%d files failed and were left in place.", res.Failed))
		}
		return nil
	}
	var out string
	if restore {
		out, err = obfuscate.Restore(path, pw)
	} else {
		out, err = obfuscate.File(path, pw)
	}
	if err != nil {
		return err
	}
	okLine(fmt.Sprintf("%s -> %s", path, out))
	return nil
}

func interactiveStegoHide() error {
	in, err := prompt.Path("Path to the source PNG")
	if err != nil {
		return err
	}
	out, err := prompt.Path("Output PNG path")
	if err != nil {
		return err
	}
	key, err := prompt.Input("Keyword (tag) for the message")
	if err != nil {
		return err
	}
	msg, err := prompt.Input("Message to hide")
	if err != nil {
		return err
	}
	png, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	hidden, err := stego.Hide(png, key, msg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, hidden, 0o644); err != nil {
		return err
	}
	okLine(fmt.Sprintf("Message hidden in %s", out))
	return nil
}

func interactiveStegoReveal() error {
	in, err := prompt.Path("PNG to inspect")
	if err != nil {
		return err
	}
	png, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	msgs, err := stego.Reveal(png)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		dimLine("No hidden messages found.")
		return nil
	}
	for i, m := range msgs {
		fmt.Printf("%s [%s]: %s\n",
			tui.DimStyle.Render(fmt.Sprintf("%d.", i+1)),
			tui.OKStyle.Render(m.Keyword),
			tui.TextStyle.Render(m.Text))
	}
	return nil
}
