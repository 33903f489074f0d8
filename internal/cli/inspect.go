package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"relman/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the reports written by resolve",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService(cmd)
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "forced.modules entries: %d\n", len(result.ForcedModules))
	for _, module := range result.ForcedModules {
		fmt.Fprintf(out, "- %s\n", module)
	}
	fmt.Fprintf(out, "untied.report entries: %d\n", len(result.Untied))
	for _, entry := range result.Untied {
		fmt.Fprintf(out, "- %s\n", entry.Coordinates())
	}
	fmt.Fprintf(out, "resolution.report records: %d (substituted=%d, forced=%d)\n", len(result.Records), result.Substituted, result.Forced)
	for _, record := range result.Records {
		fmt.Fprintf(out, "- %s %s %s -> %s\n", record.Project, record.Requested.Coordinates(), record.Decision.Kind, record.Selected)
	}
	return nil
}
