package ingest

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anaypant119/har2openapi/cfg"
	"github.com/anaypant119/har2openapi/cmd/internal/cmderr"
	"github.com/anaypant119/har2openapi/config"
	"github.com/anaypant119/har2openapi/printer"
	"github.com/anaypant119/har2openapi/samples"
	"github.com/anaypant119/har2openapi/spec"
	"github.com/anaypant119/har2openapi/synth"
	"github.com/anaypant119/har2openapi/util"
)

var Cmd = &cobra.Command{
	Use:          "ingest [CAPTURE.har ...]",
	Short:        "Convert HAR captures into an OpenAPI skeleton and example pools.",
	SilenceUsage: true,
	Args:         cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if formatFlag != "json" && formatFlag != "yaml" {
			return errors.Errorf("unsupported output format %q, expected json or yaml", formatFlag)
		}

		configPath := configFlag
		if configPath == "" {
			configPath = cfg.GetDefaultConfigPath()
		}
		c, err := config.Load(configPath)
		if err != nil {
			return cmderr.PipelineErr{Err: errors.Wrap(err, "failed to load configuration")}
		}

		if err := run(c, args); err != nil {
			return cmderr.PipelineErr{Err: err}
		}
		return nil
	},
}

func run(c *config.Config, harPaths []string) error {
	r, err := synth.NewRun(c)
	if err != nil {
		return err
	}

	for _, path := range harPaths {
		if err := r.ProcessHARFile(path); err != nil {
			return util.ExitError{ExitCode: util.ExitCodeBadCapture, Err: err}
		}
	}
	if r.Skipped() > 0 {
		printer.Infof("Skipped %d transactions outside the configured API surface.\n", r.Skipped())
	}

	result := r.Spec()
	if priorFlag != "" {
		prior, err := spec.ReadFile(priorFlag)
		if err != nil {
			return errors.Wrap(err, "failed to load prior spec")
		}
		result = spec.Merge(prior, result)
	}

	if err := util.EnsureDir(outFlag); err != nil {
		return err
	}

	specPath := filepath.Join(outFlag, "spec."+formatFlag)
	if err := spec.WriteFile(specPath, result, formatFlag, c.OutputSubstitutions); err != nil {
		return err
	}
	if err := samples.Write(filepath.Join(outFlag, "samples.json"), r.Samples()); err != nil {
		return err
	}

	// Debug artifacts for eyeballing the normalization result.
	if err := util.WriteLines(filepath.Join(outFlag, "paths.txt"), r.PathTemplates()); err != nil {
		return err
	}
	if err := util.WriteLines(filepath.Join(outFlag, "operations.txt"), r.OperationRows()); err != nil {
		return err
	}

	printer.Infof("Wrote %s\n", specPath)
	return nil
}
