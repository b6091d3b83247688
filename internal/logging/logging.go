// Package logging configures the process-wide zerolog logger once. The CLI
// is quiet at info level by default; --verbose or FILEGUARD_LOG_LEVEL turns
// on debug output from the tool packages.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "FILEGUARD_LOG_LEVEL"
	EnvLogNoColor = "FILEGUARD_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

func ConfigureRuntime(verbose bool) {
	Configure(ProfileRuntime, verbose)
}

func ConfigureTests() {
	Configure(ProfileTest, false)
}

func Configure(profile Profile, verbose bool) {
	configureOnce.Do(func() {
		level := zerolog.WarnLevel
		if verbose || profile == ProfileTest {
			level = zerolog.DebugLevel
		}
		if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
			level = lvl
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: noColor(),
		})
	})
}

func ParseLevel(s string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "disabled", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}

func noColor() bool {
	v := strings.TrimSpace(os.Getenv(EnvLogNoColor))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
