package resolve

import "fmt"

// DefaultsError reports a defaults record that could not be loaded or did not
// validate while defaults were requested.
type DefaultsError struct {
	Source string
	Err    error
}

func (e *DefaultsError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("resolve: default settings: %v", e.Err)
	}
	return fmt.Sprintf("resolve: default settings (%s): %v", e.Source, e.Err)
}

func (e *DefaultsError) Unwrap() error {
	return e.Err
}

// CLIError reports command-line options rejected by the validator.
type CLIError struct {
	Err error
}

func (e *CLIError) Error() string {
	return fmt.Sprintf("resolve: command-line options: %v", e.Err)
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// CancelledError reports that the user aborted a prompt. No configuration is
// produced. It unwraps to the renderer error, which wraps
// prompt.ErrCancelled.
type CancelledError struct {
	Stage string
	Err   error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("resolve: cancelled during %s prompts", e.Stage)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}
