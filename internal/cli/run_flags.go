package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"relman/internal/app"
)

const defaultWorkers = 4

// runOptions are the flags shared by every command that configures a run.
type runOptions struct {
	RunConfig string
	Root      string
	Ties      []string
	TieFiles  []string
	Workers   int
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.RunConfig, "run-config", "", "Run config path (root, ties, tie files, projects)")
	cmd.Flags().StringVar(&opts.Root, "root", "", "Root project name (overrides the run config)")
	cmd.Flags().StringSliceVar(&opts.Ties, "tie", nil, "Tie as group:artifact:version, or group:*:version")
	cmd.Flags().StringSliceVar(&opts.TieFiles, "tie-file", nil, "Delimited tie file path(s)")
	cmd.Flags().IntVar(&opts.Workers, "workers", defaultWorkers, "Projects resolved concurrently")

	_ = viper.BindPFlag("run_config", cmd.Flags().Lookup("run-config"))
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("ties", cmd.Flags().Lookup("tie"))
	_ = viper.BindPFlag("tie_files", cmd.Flags().Lookup("tie-file"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
}

func runRequest(cmd *cobra.Command, opts runOptions) app.RunRequest {
	return app.RunRequest{
		ConfigPath: resolveString(cmd, opts.RunConfig, "run_config", "run-config"),
		Root:       resolveString(cmd, opts.Root, "root", "root"),
		Ties:       resolveStrings(cmd, opts.Ties, "ties", "tie"),
		TieFiles:   resolveStrings(cmd, opts.TieFiles, "tie_files", "tie-file"),
		Workers:    resolveInt(cmd, opts.Workers, "workers", "workers"),
	}
}
