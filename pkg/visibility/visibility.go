// Package visibility decides whether a conditional option is asked. Rules
// are expressions over option values, e.g. `license == "mit"`.
package visibility

// Evaluator determines whether an option should be prompted based on a rule
// string and the values collected so far.
type Evaluator interface {
	Eval(option, rule string, ctx Context) (bool, error)
}

// Context provides inputs to an Evaluator. Values holds option answers; Extras
// carries caller-supplied data reachable under the `extras` identifier.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(option, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(option, rule string, ctx Context) (bool, error) {
	return fn(option, rule, ctx)
}
