package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"relman/internal/app"
)

type resolveOptions struct {
	runOptions
	OutputDir string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve every project through the run ties and write reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	addRunFlags(cmd, &opts.runOptions)
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService(cmd)
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RunRequest: runRequest(cmd, opts.runOptions),
		OutputDir:  resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "resolved: %d requests across %d projects\n", len(result.Records), len(result.Projects))
	fmt.Fprintf(out, "forced modules: %d\n", len(result.Forced))
	fmt.Fprintf(out, "untied dependencies: %d\n", len(result.Reportable))
	if result.OutputDir != "" {
		fmt.Fprintf(out, "reports written to %s\n", result.OutputDir)
	}
	return nil
}
