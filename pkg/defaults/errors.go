package defaults

import "fmt"

// ParseError reports a user defaults file that exists but cannot be read as
// an options record. It is never recovered by falling back to the built-in
// defaults.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("defaults: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
