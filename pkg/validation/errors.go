package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-snowstart/pkg/schema"
)

// OptionNameError reports a record key that is not a known option.
type OptionNameError struct {
	Name string
}

func (e *OptionNameError) Error() string {
	return fmt.Sprintf("validation: unknown option: %s", e.Name)
}

// OptionValueTypeError reports a value whose runtime type disagrees with the
// option descriptor.
type OptionValueTypeError struct {
	Name     string
	Expected schema.Type
	Actual   string
}

func (e *OptionValueTypeError) Error() string {
	return fmt.Sprintf("validation: expected value of type %s for %s, received %s", e.Expected, e.Name, e.Actual)
}

// OptionChoiceError reports a value outside the enumerated choices of a
// select or multiselect option.
type OptionChoiceError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *OptionChoiceError) Error() string {
	return fmt.Sprintf("validation: invalid value %q for %s, expected one of %s", e.Value, e.Name, strings.Join(e.Allowed, "/"))
}
