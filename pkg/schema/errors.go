package schema

import "fmt"

// UnknownOptionError reports a lookup for a name the registry does not hold.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("schema: unknown option %q", e.Name)
}
