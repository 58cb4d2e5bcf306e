package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled notification filter expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter. Notification
// fields resolve at evaluation time, so unknown identifiers are allowed
// here; only syntax and helper usage are validated.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
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

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one notification. Evaluation errors
// count as no match, so a bad field reference skips entries instead of
// aborting the listing.
func (f *Filter) Match(n Notification) bool {
	result, err := expr.Run(f.program, environment(n))
	if err != nil {
		return false
	}

	// AsBool during compilation guarantees the assertion.
	return result.(bool)
}

// Apply returns the notifications that satisfy the filter, preserving
// their order.
func (f *Filter) Apply(notifications []Notification) []Notification {
	matches := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		if f.Match(n) {
			matches = append(matches, n)
		}
	}
	return matches
}

// helperFunctions is the static environment used for compile-time
// validation.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

// addHelperFunctions adds the expression helpers to the provided map.
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["hoursSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours())
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers, all case-insensitive
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
	// Current time
	env["now"] = time.Now
}

// environment builds the runtime environment for one notification.
func environment(n Notification) map[string]any {
	env := make(map[string]any, 24)
	addHelperFunctions(env)

	env["Site"] = n.Site
	env["SiteID"] = n.SiteID
	env["Type"] = n.Type
	env["Message"] = n.Message
	env["Received"] = n.Received
	env["Raw"] = n.Raw

	return env
}
