package cli

import (
	"github.com/spf13/cobra"

	"relman/internal/app"
)

func newPrintUntiedCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "print-untied",
		Short: "Print dependencies that no tie applies to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			_, err := service.PrintUntied(cmd.Context(), app.UntiedRequest{RunRequest: runRequest(cmd, opts)})
			return err
		},
	}
	addRunFlags(cmd, &opts)
	return cmd
}

func newFailOnUntiedCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "fail-on-untied",
		Short: "Print untied dependencies and fail when there are any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			_, err := service.FailOnUntied(cmd.Context(), app.UntiedRequest{RunRequest: runRequest(cmd, opts)})
			return err
		},
	}
	addRunFlags(cmd, &opts)
	return cmd
}
