package cmderr

// Wrapper distinguishing pipeline-generated errors from CLI parsing errors.
// Used to decide whether to print the usage message on error.
type PipelineErr struct {
	Err error
}

func (p PipelineErr) Error() string {
	return p.Err.Error()
}

// github.com/pkg/errors causer interface
func (p PipelineErr) Cause() error {
	return p.Err
}

// github.com/pkg/errors Unwrap interface
func (p PipelineErr) Unwrap() error {
	return p.Err
}
