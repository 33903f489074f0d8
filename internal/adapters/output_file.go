package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"relman/internal/ports"
	"relman/internal/types"
)

const (
	ForcedModulesFile    = "forced.modules"
	UntiedReportFile     = "untied.report"
	ResolutionReportFile = "resolution.report"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteForcedModules(modules []string) error {
	path, err := a.ensurePath(ForcedModulesFile)
	if err != nil {
		return err
	}
	ordered := slices.Clone(modules)
	slices.Sort(ordered)
	return writeLines(path, ordered)
}

// WriteUntiedReport keeps the order it is given.
func (a OutputFileAdapter) WriteUntiedReport(untied []types.VersionedArtifactName) error {
	path, err := a.ensurePath(UntiedReportFile)
	if err != nil {
		return err
	}
	lines := make([]string, 0, len(untied))
	for _, entry := range untied {
		lines = append(lines, entry.Coordinates())
	}
	return writeLines(path, lines)
}

func (a OutputFileAdapter) WriteResolutionReport(records []types.ResolutionRecord) error {
	path, err := a.ensurePath(ResolutionReportFile)
	if err != nil {
		return err
	}
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(x, y types.ResolutionRecord) int {
		if c := strings.Compare(x.Project, y.Project); c != 0 {
			return c
		}
		return x.Requested.Compare(y.Requested)
	})
	lines := make([]string, 0, len(ordered))
	for _, record := range ordered {
		lines = append(lines, fmt.Sprintf(
			"%s,%s,%s,%s,%s,%s",
			record.Project,
			record.Requested.Coordinates(),
			record.Decision.Kind,
			record.Decision.Target,
			strconv.FormatBool(record.Forced),
			record.Selected,
		))
	}
	return writeLines(path, lines)
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func writeLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", filepath.Base(path))).
			WithCause(err)
	}
	return nil
}

var _ ports.OutputPort = OutputFileAdapter{}
