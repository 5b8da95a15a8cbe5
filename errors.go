package pkoffee

import "fmt"

// InputError reports a failure to load or use the input table.
// Nothing was computed.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports a failure to write the figure after the analysis
// completed successfully.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s: analysis completed but the figure could not be written: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
