package domain

// Config represents the primer configuration loaded from primer.yaml,
// PRIMER_* environment variables and command-line flags.
type Config struct {
	Root   string
	Run    RunConfig
	Paths  PathsConfig
	Output OutputConfig
}

type RunConfig struct {
	StopOnFirstFailure bool
	Verbose            bool
	Filter             string
	Format             string
	Save               bool
	Builtin            bool
}

type PathsConfig struct {
	DoctestsDir string
	RunsDir     string
}

type OutputConfig struct {
	Color string
}

// DefaultConfig provides sane defaults if primer.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Root: ".",
		Run: RunConfig{
			StopOnFirstFailure: true,
			Verbose:            false,
			Format:             "pretty",
			Save:               true,
			Builtin:            true,
		},
		Paths: PathsConfig{
			DoctestsDir: "doctests",
			RunsDir:     "runs",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// RunOptions returns the runner options described by the config.
func (c Config) RunOptions() RunOptions {
	return RunOptions{
		StopOnFirstFailure: c.Run.StopOnFirstFailure,
		Verbose:            c.Run.Verbose,
		Filter:             c.Run.Filter,
	}
}

// WorkspaceSpec describes where a workspace should be scaffolded.
type WorkspaceSpec struct {
	Root string
}
