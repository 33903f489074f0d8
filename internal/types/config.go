package types

// RunConfig declares the ties and the project tree for one build run.
// Tie file paths are relative to the directory holding the config file.
type RunConfig struct {
	Root     string          `yaml:"root"`
	Ties     []string        `yaml:"ties,omitempty"`
	TieFiles []string        `yaml:"tie_files,omitempty"`
	Projects []ProjectConfig `yaml:"projects"`
}

type ProjectConfig struct {
	Name     string   `yaml:"name"`
	Requests []string `yaml:"requests,omitempty"`
}
