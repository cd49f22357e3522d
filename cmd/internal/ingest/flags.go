package ingest

var (
	configFlag string
	outFlag    string
	formatFlag string
	priorFlag  string
)

func init() {
	Cmd.Flags().StringVar(
		&configFlag,
		"config",
		"",
		"Path to the pipeline configuration file. Defaults to ~/.har2openapi/config.yaml.")

	Cmd.Flags().StringVar(
		&outFlag,
		"out",
		".",
		"Directory to write the spec, samples, and debug artifacts to.")

	Cmd.Flags().StringVar(
		&formatFlag,
		"format",
		"json",
		"Spec output format, 'json' or 'yaml'.")

	Cmd.Flags().StringVar(
		&priorFlag,
		"prior",
		"",
		"Previously generated spec to merge the new traffic into; the prior spec wins on conflicts.")
}
