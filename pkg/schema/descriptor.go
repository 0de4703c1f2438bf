package schema

// Type is the semantic type an option value must carry.
type Type string

const (
	TypeString     Type = "string"
	TypeBoolean    Type = "boolean"
	TypeStringList Type = "stringList"
)

// PromptKind selects how an option is asked interactively.
type PromptKind string

const (
	PromptText        PromptKind = "text"
	PromptToggle      PromptKind = "toggle"
	PromptSelect      PromptKind = "select"
	PromptMultiSelect PromptKind = "multiselect"
)

// Choice is one selectable alternative of a select or multiselect option.
type Choice struct {
	Title string
	Value string
}

// Flag describes the command-line surface of an option. Negatable flags get a
// paired --no-<name> form.
type Flag struct {
	Name      string
	Shorthand string
	Negatable bool
	Usage     string
}

// Descriptor is the schema entry for one configurable option.
type Descriptor struct {
	Name    string
	Type    Type
	Kind    PromptKind
	Message string
	Choices []Choice
	Flag    Flag

	// When is a visibility rule; the option is only prompted when the rule
	// holds against answers collected in the same prompting round.
	When string
	// DependsOn lists the options referenced by When.
	DependsOn []string

	// ValidateInput checks free-text answers before they are accepted.
	ValidateInput func(string) error
}

// Check reports whether value has the runtime type the descriptor requires.
func (d Descriptor) Check(value any) bool {
	switch d.Type {
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeStringList:
		switch list := value.(type) {
		case []string:
			return true
		case []any:
			for _, item := range list {
				if _, ok := item.(string); !ok {
					return false
				}
			}
			return true
		default:
			return false
		}
	default:
		_, ok := value.(string)
		return ok
	}
}

// HasChoices reports whether the option is restricted to an enumerated set.
func (d Descriptor) HasChoices() bool {
	return len(d.Choices) > 0
}

// ChoiceValues returns the choice values in menu order.
func (d Descriptor) ChoiceValues() []string {
	out := make([]string, len(d.Choices))
	for i, c := range d.Choices {
		out[i] = c.Value
	}
	return out
}

// ChoiceIndex returns the menu position of value, or -1.
func (d Descriptor) ChoiceIndex(value string) int {
	for i, c := range d.Choices {
		if c.Value == value {
			return i
		}
	}
	return -1
}

// Conditional reports whether the option carries a visibility rule.
func (d Descriptor) Conditional() bool {
	return d.When != ""
}

func (d Descriptor) clone() Descriptor {
	out := d
	out.Choices = append([]Choice(nil), d.Choices...)
	out.DependsOn = append([]string(nil), d.DependsOn...)
	return out
}
