package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fatih/color"

	"relman/internal/types"
)

const (
	noUntiedMessage = "No untied dependencies found."
	untiedHeader    = "Untied dependencies found:"
	// UntiedFailureMessage is the error message of a failed untied check.
	UntiedFailureMessage = "there are untied dependencies, see report above"
)

// PrintUntied resolves the run and prints every untied dependency that is
// not a project of the build itself.
func (s Service) PrintUntied(ctx context.Context, req UntiedRequest) (UntiedResult, error) {
	result, err := s.Resolve(ctx, ResolveRequest{RunRequest: req.RunRequest})
	if err != nil {
		return UntiedResult{}, err
	}
	if err := writeUntiedReport(s.stdout(), result.Reportable); err != nil {
		return UntiedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to print untied report").
			WithCause(err)
	}
	return UntiedResult{Untied: result.Reportable}, nil
}

// FailOnUntied prints the untied report and fails when it is not empty.
func (s Service) FailOnUntied(ctx context.Context, req UntiedRequest) (UntiedResult, error) {
	result, err := s.PrintUntied(ctx, req)
	if err != nil {
		return UntiedResult{}, err
	}
	if len(result.Untied) > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(UntiedFailureMessage)
	}
	return result, nil
}

func writeUntiedReport(w io.Writer, untied []types.VersionedArtifactName) error {
	if len(untied) == 0 {
		_, err := fmt.Fprintln(w, noUntiedMessage)
		return err
	}
	if _, err := fmt.Fprintln(w, color.YellowString(untiedHeader)); err != nil {
		return err
	}
	for _, entry := range untied {
		if _, err := fmt.Fprintln(w, entry.Coordinates()); err != nil {
			return err
		}
	}
	return nil
}

func (s Service) stdout() io.Writer {
	if s.Stdout == nil {
		return io.Discard
	}
	return s.Stdout
}
