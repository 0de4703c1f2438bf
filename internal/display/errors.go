package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-snowstart/pkg/defaults"
	"github.com/goliatone/go-snowstart/pkg/resolve"
	"github.com/goliatone/go-snowstart/pkg/schema"
	"github.com/goliatone/go-snowstart/pkg/validation"
)

// Fatal prints a terminal error. Known error kinds get a headline and a
// message built from their fields.
func (p *Printer) Fatal(err error) {
	if err == nil {
		return
	}
	var cancelled *resolve.CancelledError
	if errors.As(err, &cancelled) {
		fmt.Fprintf(p.out, "\n%s\n\n", p.styles.fatal.Render("Keyboard exit"))
		return
	}
	var defErr *resolve.DefaultsError
	if errors.As(err, &defErr) {
		fmt.Fprintln(p.out, p.styles.fatal.Render("Error while processing default settings"))
	}
	fmt.Fprintln(p.out, p.styles.failure.Render(Describe(err)))
}

// Describe returns a user-facing message for err without package prefixes.
func Describe(err error) string {
	var (
		nameErr    *validation.OptionNameError
		typeErr    *validation.OptionValueTypeError
		choiceErr  *validation.OptionChoiceError
		parseErr   *defaults.ParseError
		unknownErr *schema.UnknownOptionError
	)
	switch {
	case errors.As(err, &nameErr):
		return fmt.Sprintf("Unknown option: %s", nameErr.Name)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Expected value of type %s for %s, received %s", typeErr.Expected, typeErr.Name, typeErr.Actual)
	case errors.As(err, &choiceErr):
		return fmt.Sprintf("Invalid value %q for %s, expected one of %s", choiceErr.Value, choiceErr.Name, strings.Join(choiceErr.Allowed, "/"))
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Cannot read %s: %v", parseErr.Path, parseErr.Err)
	case errors.As(err, &unknownErr):
		return fmt.Sprintf("Unknown option: %s", unknownErr.Name)
	default:
		return err.Error()
	}
}
