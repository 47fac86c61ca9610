package spec

// Config is the oracle configuration file.
type Config struct {
	Version   int           `yaml:"version" toml:"version"`
	Runs      int           `yaml:"runs" toml:"runs"`
	Grammar   string        `yaml:"grammar" toml:"grammar"`
	FailFast  bool          `yaml:"fail_fast" toml:"fail_fast"`
	Simulator CommandConfig `yaml:"simulator" toml:"simulator"`
	Checker   CommandConfig `yaml:"checker" toml:"checker"`
	Output    OutputConfig  `yaml:"output" toml:"output"`
}

// CommandConfig describes an external program invoked once per run.
type CommandConfig struct {
	Command string `yaml:"command" toml:"command"`
	Dir     string `yaml:"dir" toml:"dir"`
}

// OutputConfig controls where artifacts go and how results are shown.
type OutputConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"`
	UI     string `yaml:"ui" toml:"ui"`
	DuckDB string `yaml:"duckdb" toml:"duckdb"`
}
