package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/aalvaropc/primer/internal/domain"
)

const (
	FileName  = "primer.yaml"
	EnvPrefix = "PRIMER_"
)

// flagKeys maps command-line flag names onto config keys. Flags not listed
// here are not configuration.
var flagKeys = map[string]string{
	"stop-on-failure": "run.stop_on_first_failure",
	"keep-going":      "run.stop_on_first_failure",
	"verbose":         "run.verbose",
	"run":             "run.filter",
	"format":          "run.format",
	"no-save":         "run.save",
	"no-builtin":      "run.builtin",
	"doctests":        "paths.doctests_dir",
	"color":           "output.color",
}

// negatedFlags store the inverse of their boolean value.
var negatedFlags = map[string]bool{
	"keep-going": true,
	"no-save":    true,
	"no-builtin": true,
}

// Options controls where configuration is read from.
type Options struct {
	// Root is the workspace root used to resolve primer.yaml and relative paths.
	Root string
	// File overrides <Root>/primer.yaml.
	File string
	// Flags are applied last, only those explicitly set.
	Flags *pflag.FlagSet
	// Environ replaces the process environment, mainly for tests.
	Environ func() []string
}

// Load merges, from lowest to highest priority: defaults, primer.yaml,
// PRIMER_* environment variables and explicitly set flags.
func Load(opts Options) (domain.Config, error) {
	k := koanf.New(".")

	root := opts.Root
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	def := domain.DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"run.stop_on_first_failure": def.Run.StopOnFirstFailure,
		"run.verbose":               def.Run.Verbose,
		"run.filter":                def.Run.Filter,
		"run.format":                def.Run.Format,
		"run.save":                  def.Run.Save,
		"run.builtin":               def.Run.Builtin,
		"paths.doctests_dir":        def.Paths.DoctestsDir,
		"paths.runs_dir":            def.Paths.RunsDir,
		"output.color":              def.Output.Color,
	}, "."), nil); err != nil {
		return domain.Config{}, &domain.OpError{Op: "config.defaults", Kind: domain.KindInvalidConfig, Err: err}
	}

	path := opts.File
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return domain.Config{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if opts.Environ == nil {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return domain.Config{}, &domain.OpError{Op: "config.env", Kind: domain.KindInvalidConfig, Err: err}
		}
	} else if m := envValues(opts.Environ()); len(m) > 0 {
		if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
			return domain.Config{}, &domain.OpError{Op: "config.env", Kind: domain.KindInvalidConfig, Err: err}
		}
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			if negatedFlags[f.Name] {
				v, err := opts.Flags.GetBool(f.Name)
				if err != nil {
					return "", nil
				}
				return key, !v
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return domain.Config{}, &domain.OpError{Op: "config.flags", Kind: domain.KindInvalidConfig, Err: err}
		}
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.unmarshal",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, root, fc)
}

func envValues(environ []string) map[string]interface{} {
	out := map[string]interface{}{}
	for _, kv := range environ {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if key := envKey(name); key != "" {
			out[key] = val
		}
	}
	return out
}

// envKey turns PRIMER_RUN_STOP_ON_FIRST_FAILURE into run.stop_on_first_failure.
// The first segment after the prefix names the section.
func envKey(name string) string {
	s := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, rest, ok := strings.Cut(s, "_")
	if !ok || rest == "" {
		return ""
	}
	switch section {
	case "run", "paths", "output":
		return section + "." + rest
	default:
		return ""
	}
}

// ResolvePath resolves p relative to the workspace root unless it is absolute.
func ResolvePath(cfg domain.Config, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.Root, p)
}
