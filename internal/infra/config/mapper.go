package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

var (
	validFormats = []string{"pretty", "json", "yaml"}
	validColors  = []string{"auto", "always", "never"}
)

func mapConfig(path, root string, fc fileConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Root = root

	cfg.Run.StopOnFirstFailure = fc.Run.StopOnFirstFailure
	cfg.Run.Verbose = fc.Run.Verbose
	cfg.Run.Filter = strings.TrimSpace(fc.Run.Filter)
	cfg.Run.Save = fc.Run.Save
	cfg.Run.Builtin = fc.Run.Builtin

	format := strings.ToLower(strings.TrimSpace(fc.Run.Format))
	if format != "" {
		if !oneOf(format, validFormats) {
			return domain.Config{}, invalidField(path, "run.format", fmt.Sprintf("unsupported format %q", fc.Run.Format))
		}
		cfg.Run.Format = format
	}

	color := strings.ToLower(strings.TrimSpace(fc.Output.Color))
	if color != "" {
		if !oneOf(color, validColors) {
			return domain.Config{}, invalidField(path, "output.color", fmt.Sprintf("unsupported color mode %q", fc.Output.Color))
		}
		cfg.Output.Color = color
	}

	if d := strings.TrimSpace(fc.Paths.DoctestsDir); d != "" {
		cfg.Paths.DoctestsDir = d
	}
	if d := strings.TrimSpace(fc.Paths.RunsDir); d != "" {
		cfg.Paths.RunsDir = d
	}

	return cfg, nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
