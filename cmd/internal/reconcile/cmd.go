package reconcile

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anaypant119/har2openapi/cfg"
	"github.com/anaypant119/har2openapi/cmd/internal/cmderr"
	"github.com/anaypant119/har2openapi/config"
	"github.com/anaypant119/har2openapi/examples"
	"github.com/anaypant119/har2openapi/inference"
	"github.com/anaypant119/har2openapi/printer"
	reconciler "github.com/anaypant119/har2openapi/reconcile"
	"github.com/anaypant119/har2openapi/rest"
	"github.com/anaypant119/har2openapi/samples"
	"github.com/anaypant119/har2openapi/spec"
	"github.com/anaypant119/har2openapi/util"
)

var Cmd = &cobra.Command{
	Use:          "reconcile",
	Short:        "Attach curated examples and inferred schemas to a spec skeleton.",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath := configFlag
		if configPath == "" {
			configPath = cfg.GetDefaultConfigPath()
		}
		c, err := config.Load(configPath)
		if err != nil {
			return cmderr.PipelineErr{Err: errors.Wrap(err, "failed to load configuration")}
		}

		if err := run(cmd, c); err != nil {
			return cmderr.PipelineErr{Err: err}
		}
		return nil
	},
}

func run(cmd *cobra.Command, c *config.Config) error {
	prior, err := spec.ReadFile(priorFlag)
	if err != nil {
		return errors.Wrap(err, "failed to load prior spec")
	}
	curated, err := samples.Load(samplesFlag)
	if err != nil {
		return errors.Wrap(err, "failed to load samples")
	}

	var inf inference.Inferencer
	if inferenceURLFlag != "" {
		client, err := rest.NewInferenceClient(inferenceURLFlag)
		if err != nil {
			return errors.Wrap(err, "failed to configure inference client")
		}
		inf = client
	} else {
		inf = inference.NewLocal()
	}

	result, err := reconciler.Reconcile(cmd.Context(), prior, curated, inf)
	if err != nil {
		return fatal(err)
	}

	format := util.DetectFormat(outFlag)
	if err := spec.WriteFile(outFlag, result, format, c.OutputSubstitutions); err != nil {
		return err
	}
	printer.Infof("Wrote %s\n", outFlag)
	return nil
}

// fatal attaches the documented exit code for the failure class.
func fatal(err error) error {
	var curationErr examples.IncompleteCurationError
	if errors.As(err, &curationErr) {
		return util.ExitError{ExitCode: util.ExitCodeIncompleteCuration, Err: err}
	}
	var inferErr reconciler.InferenceError
	if errors.As(err, &inferErr) {
		return util.ExitError{ExitCode: util.ExitCodeInferenceFailure, Err: err}
	}
	return err
}
