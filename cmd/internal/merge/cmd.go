package merge

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anaypant119/har2openapi/cmd/internal/cmderr"
	"github.com/anaypant119/har2openapi/printer"
	"github.com/anaypant119/har2openapi/spec"
	"github.com/anaypant119/har2openapi/util"
)

var outFlag string

var Cmd = &cobra.Command{
	Use:          "merge MASTER.json OTHER.json [OTHER.json ...]",
	Short:        "Merge specs into the first one; the master wins on conflicts.",
	SilenceUsage: true,
	Args:         cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := run(args); err != nil {
			return cmderr.PipelineErr{Err: err}
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVar(
		&outFlag,
		"out",
		"",
		"Path to write the merged spec to; .yaml or .yml selects YAML output.")
	Cmd.MarkFlagRequired("out")
}

func run(paths []string) error {
	master, err := spec.ReadFile(paths[0])
	if err != nil {
		return errors.Wrapf(err, "failed to load master spec %s", paths[0])
	}
	for _, path := range paths[1:] {
		other, err := spec.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to load spec %s", path)
		}
		master = spec.Merge(master, other)
	}

	format := util.DetectFormat(outFlag)
	if err := spec.WriteFile(outFlag, master, format, nil); err != nil {
		return err
	}
	printer.Infof("Wrote %s\n", outFlag)
	return nil
}
