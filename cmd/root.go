package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anaypant119/har2openapi/cmd/internal/cmderr"
	"github.com/anaypant119/har2openapi/cmd/internal/ingest"
	"github.com/anaypant119/har2openapi/cmd/internal/merge"
	"github.com/anaypant119/har2openapi/cmd/internal/reconcile"
	"github.com/anaypant119/har2openapi/printer"
	"github.com/anaypant119/har2openapi/util"
	"github.com/anaypant119/har2openapi/version"
)

var (
	debugFlag    bool
	jsonLogsFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "har2openapi",
	Short:         "Turn recorded HTTP traffic into an OpenAPI specification.",
	Version:       version.CLIDisplayString(),
	SilenceErrors: true, // We print our own errors from subcommands in Execute function
	// Don't print usage after error, we only print help if we cannot parse
	// flags. See Execute below.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if jsonLogsFlag {
			printer.SwitchToJSON()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if _, isPipelineErr := err.(cmderr.PipelineErr); !isPipelineErr {
			// Print usage for CLI usage errors (e.g. missing arg) but not for
			// pipeline errors (e.g. a capture file that fails to parse).
			cmd.Println(cmd.UsageString())
		}

		exitCode := 1
		var exitErr util.ExitError
		if isExitErr := errors.As(err, &exitErr); isExitErr {
			exitCode = exitErr.ExitCode
		}
		printer.Stderr.Errorf("%s\n", err)
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "If set, outputs detailed information for debugging.")
	rootCmd.PersistentFlags().MarkHidden("debug")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.PersistentFlags().BoolVar(&jsonLogsFlag, "json-logs", false, "Emit log lines as JSON objects, for driving the CLI from another program.")

	// Register subcommands.
	rootCmd.AddCommand(ingest.Cmd)
	rootCmd.AddCommand(reconcile.Cmd)
	rootCmd.AddCommand(merge.Cmd)
}
