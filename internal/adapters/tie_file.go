package adapters

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"relman/internal/core"
	"relman/internal/ports"
	"relman/internal/types"
)

const maxLoggedLineLength = 256

// TieFileAdapter loads ties from delimited text files, one tie per line.
// Malformed lines of any length are skipped with a warning; I/O failures
// and rejected ties abort the load.
type TieFileAdapter struct{}

func NewTieFileAdapter() TieFileAdapter {
	return TieFileAdapter{}
}

func (a TieFileAdapter) Load(ctx context.Context, path string, sink ports.TieSinkPort) (stats types.TieLoadStats, err error) {
	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		absPath = path
	}
	file, err := os.Open(path)
	if err != nil {
		return stats, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("tie file not readable: %s", absPath)).
			WithCause(err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to close tie file: %s", absPath)).
				WithCause(closeErr)
		}
	}()

	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to read tie file: %s", absPath)).
				WithCause(readErr)
		}
		if raw == "" && errors.Is(readErr, io.EOF) {
			break
		}
		lineNumber++
		line := strings.TrimSpace(raw)
		if line != "" {
			groupID, artifactID, version, ok := core.ParseTieLine(line)
			if !ok {
				log.Ctx(ctx).Warn().
					Int("line", lineNumber).
					Str("file", absPath).
					Str("content", loggedLine(line)).
					Msg("tie line ignored")
				stats.Skipped++
			} else {
				if err := sink.Tie(groupID, artifactID, version); err != nil {
					return stats, errbuilder.New().
						WithCode(errbuilder.CodeOf(err)).
						WithMsg(fmt.Sprintf("line %d in file %s: %s", lineNumber, absPath, err.Error())).
						WithCause(err)
				}
				stats.Ties++
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
	}
	log.Ctx(ctx).Debug().Str("file", absPath).Int("ties", stats.Ties).Int("skipped", stats.Skipped).Msg("tie file loaded")
	return stats, nil
}

// loggedLine caps an ignored line before it goes into a warning.
func loggedLine(line string) string {
	if len(line) <= maxLoggedLineLength {
		return line
	}
	return line[:maxLoggedLineLength] + "..."
}

var _ ports.TieFilePort = TieFileAdapter{}
