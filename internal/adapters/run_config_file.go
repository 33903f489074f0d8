package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"relman/internal/ports"
	"relman/internal/types"
)

type RunConfigFileAdapter struct{}

func NewRunConfigFileAdapter() RunConfigFileAdapter {
	return RunConfigFileAdapter{}
}

func (a RunConfigFileAdapter) LoadRunConfig(path string) (types.RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RunConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("run config file not found").
			WithCause(err)
	}
	var config types.RunConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return types.RunConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse run config yaml").
			WithCause(err)
	}
	return config, nil
}

var _ ports.RunConfigPort = RunConfigFileAdapter{}
