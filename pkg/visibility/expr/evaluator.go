package expr

import (
	"fmt"
	"strings"
	"sync"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/goliatone/go-snowstart/pkg/visibility"
)

// Evaluator runs visibility rules with github.com/expr-lang/expr.
//
// Option values are exposed as top-level identifiers (`license == "mit"`,
// `"eslint" in codeFormatters`) and caller extras under `extras`
// (`extras.ci == true`). Identifiers missing from the context evaluate to
// nil, so a rule over an unanswered option is false rather than an error.
// Compiled programs are cached per rule.
type Evaluator struct {
	mu       sync.RWMutex
	programs map[string]*exprvm.Program
}

var _ visibility.Evaluator = (*Evaluator)(nil)

// New constructs an Evaluator with an empty program cache.
func New() *Evaluator {
	return &Evaluator{programs: make(map[string]*exprvm.Program)}
}

// Eval reports whether rule holds. An empty rule always holds.
func (e *Evaluator) Eval(option, rule string, ctx visibility.Context) (bool, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}

	program, err := e.compile(trimmed)
	if err != nil {
		return false, &EvaluationError{Option: option, Rule: trimmed, Err: err}
	}

	out, err := exprlang.Run(program, environment(ctx))
	if err != nil {
		return false, &EvaluationError{Option: option, Rule: trimmed, Err: err}
	}
	result, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Option: option,
			Rule:   trimmed,
			Err:    fmt.Errorf("rule evaluated to %T, want bool", out),
		}
	}
	return result, nil
}

func (e *Evaluator) compile(rule string) (*exprvm.Program, error) {
	e.mu.RLock()
	program, ok := e.programs[rule]
	e.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := exprlang.Compile(rule,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.programs == nil {
		e.programs = make(map[string]*exprvm.Program)
	}
	e.programs[rule] = program
	e.mu.Unlock()
	return program, nil
}

func environment(ctx visibility.Context) map[string]any {
	env := make(map[string]any, len(ctx.Values)+1)
	for key, value := range ctx.Values {
		env[key] = value
	}
	extras := ctx.Extras
	if extras == nil {
		extras = map[string]any{}
	}
	env["extras"] = extras
	return env
}

// EvaluationError captures the rule and option alongside the engine error.
type EvaluationError struct {
	Option string
	Rule   string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("visibility/expr: option %s rule %q: %v", e.Option, e.Rule, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
