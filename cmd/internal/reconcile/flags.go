package reconcile

var (
	configFlag       string
	priorFlag        string
	samplesFlag      string
	outFlag          string
	inferenceURLFlag string
)

func init() {
	Cmd.Flags().StringVar(
		&configFlag,
		"config",
		"",
		"Path to the pipeline configuration file. Defaults to ~/.har2openapi/config.yaml.")

	Cmd.Flags().StringVar(
		&priorFlag,
		"prior",
		"",
		"Spec skeleton produced by ingest (or a previously reconciled spec).")
	Cmd.MarkFlagRequired("prior")

	Cmd.Flags().StringVar(
		&samplesFlag,
		"samples",
		"",
		"Curated samples file with publication markers applied.")
	Cmd.MarkFlagRequired("samples")

	Cmd.Flags().StringVar(
		&outFlag,
		"out",
		"",
		"Path to write the reconciled spec to; .yaml or .yml selects YAML output.")
	Cmd.MarkFlagRequired("out")

	Cmd.Flags().StringVar(
		&inferenceURLFlag,
		"inference-url",
		"",
		"Base URL of the schema inference service. When unset, schemas are inferred locally.")
}
