// Package filter narrows the visible result list with expr expressions such
// as `rating >= 7 && runtime < 120` or `lower(title) contains "star"`.
//
// Filtering only changes what is shown. The result list itself is never
// modified.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"moviezone/internal/domain"
)

// Filter is a compiled expression over a result item
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression. Available variables are id, title,
// rating, runtime (0 when unknown) and hasPoster.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(domain.ResultItem{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the trimmed source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one item. Items that fail to
// evaluate do not match.
func (f *Filter) Match(item domain.ResultItem) bool {
	result, err := expr.Run(f.program, environment(item))
	if err != nil {
		return false
	}
	// AsBool guarantees the type
	return result.(bool)
}

// Apply returns the matching items in their original order. A nil filter
// matches everything.
func (f *Filter) Apply(items []domain.ResultItem) []domain.ResultItem {
	if f == nil {
		return items
	}
	out := make([]domain.ResultItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

func environment(item domain.ResultItem) map[string]any {
	return map[string]any{
		"id":        item.ID,
		"title":     item.Title,
		"rating":    item.VoteAverage,
		"runtime":   item.Runtime(),
		"hasPoster": item.HasPoster(),
	}
}
