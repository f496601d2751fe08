package filter

import (
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Predicate is a compiled boolean expression evaluated against a resource
// environment. Predicates are safe for concurrent evaluation.
type Predicate struct {
	expression string
	program    *vm.Program
}

// Compiler compiles predicate expressions, caching compiled programs by
// expression text.
type Compiler struct {
	mu    sync.Mutex
	cache map[string]*Predicate
}

// NewCompiler creates a predicate compiler.
func NewCompiler() *Compiler {
	return &Compiler{cache: make(map[string]*Predicate)}
}

// Compile parses and compiles an expression into a Predicate. Resource
// fields are resolved at evaluation time, so undefined variables are
// allowed here.
func (c *Compiler) Compile(expression string) (*Predicate, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	c.mu.Lock()
	cached, ok := c.cache[expression]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	p := &Predicate{expression: expression, program: program}

	c.mu.Lock()
	c.cache[expression] = p
	c.mu.Unlock()
	return p, nil
}

// Compile compiles an expression with a throwaway compiler.
func Compile(expression string) (*Predicate, error) {
	return NewCompiler().Compile(expression)
}

// Match evaluates the predicate against a resource environment.
func (p *Predicate) Match(env map[string]any) (bool, error) {
	merged := make(map[string]any, len(env)+16)
	addHelperFunctions(merged)
	for k, v := range env {
		merged[k] = v
	}

	result, err := expr.Run(p.program, merged)
	if err != nil {
		return false, &EvaluationError{
			Expression: p.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}
	return result.(bool), nil
}

// Expression returns the original expression text.
func (p *Predicate) Expression() string {
	return p.expression
}

func helperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions installs the helpers available inside expressions.
func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}
