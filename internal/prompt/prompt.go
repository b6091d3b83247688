// Package prompt wraps the interactive forms used when a command is run on a
// TTY without the relevant flags.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

var ErrMismatch = errors.New("passwords do not match")

// Input asks for a single line of text.
func Input(title string) (string, error) {
	var v string
	err := huh.NewInput().Title(title).Value(&v).Run()
	return strings.TrimSpace(v), err
}

// Path asks for a filesystem path, stripping surrounding quotes that users
// tend to paste along with the path.
func Path(title string) (string, error) {
	v, err := Input(title)
	if err != nil {
		return "", err
	}
	return strings.Trim(v, `"'`), nil
}

// Password asks for a password without echoing it.
func Password(title string) (string, error) {
	var v string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&v).
		Run()
	return v, err
}

// NewPassword asks for a password twice and enforces a minimum length.
func NewPassword(title string, minLen int) (string, error) {
	pw, err := Password(title)
	if err != nil {
		return "", err
	}
	if len(pw) < minLen {
		return "", fmt.Errorf("password must be at least %d characters", minLen)
	}
	confirm, err := Password("Confirm password")
	if err != nil {
		return "", err
	}
	if pw != confirm {
		return "", ErrMismatch
	}
	return pw, nil
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}
