package app

import (
	"io"
	"os"

	"relman/internal/adapters"
	"relman/internal/ports"
)

type Service struct {
	ConfigLoader ports.RunConfigPort
	TieFiles     ports.TieFilePort
	OutputReader ports.OutputReaderPort
	Stdout       io.Writer
}

func NewService() Service {
	return Service{
		ConfigLoader: adapters.NewRunConfigFileAdapter(),
		TieFiles:     adapters.NewTieFileAdapter(),
		OutputReader: adapters.NewOutputReaderAdapter(),
		Stdout:       os.Stdout,
	}
}
