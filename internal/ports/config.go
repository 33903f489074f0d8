package ports

import "relman/internal/types"

type RunConfigPort interface {
	LoadRunConfig(path string) (types.RunConfig, error)
}
