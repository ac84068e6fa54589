package config

// fileConfig mirrors the layout of primer.yaml. Every layer (defaults, file,
// environment, flags) is merged into this shape before mapping.
type fileConfig struct {
	Run struct {
		StopOnFirstFailure bool   `koanf:"stop_on_first_failure"`
		Verbose            bool   `koanf:"verbose"`
		Filter             string `koanf:"filter"`
		Format             string `koanf:"format"`
		Save               bool   `koanf:"save"`
		Builtin            bool   `koanf:"builtin"`
	} `koanf:"run"`

	Paths struct {
		DoctestsDir string `koanf:"doctests_dir"`
		RunsDir     string `koanf:"runs_dir"`
	} `koanf:"paths"`

	Output struct {
		Color string `koanf:"color"`
	} `koanf:"output"`
}
