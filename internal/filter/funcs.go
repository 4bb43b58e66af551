package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// CompileOptions returns expr options with the site environment and helper
// functions registered.
func CompileOptions() []expr.Option {
	return []expr.Option{
		expr.Env(Site{}),
		expr.AsBool(),
		expr.Function("hasSubstr", hasSubstrFunc,
			new(func(string, string) bool),
		),
		expr.Function("oneOf", oneOfFunc,
			new(func(string, []any) bool),
		),
	}
}

// hasSubstrFunc backs hasSubstr: whether a string contains a substring,
// ignoring case.
// Usage: hasSubstr(host, "news")
func hasSubstrFunc(params ...any) (any, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("hasSubstr: expected 2 arguments, got %d", len(params))
	}
	haystack, ok := params[0].(string)
	if !ok {
		return nil, fmt.Errorf("hasSubstr: expected string, got %T", params[0])
	}
	needle, ok := params[1].(string)
	if !ok {
		return nil, fmt.Errorf("hasSubstr: expected string, got %T", params[1])
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle)), nil
}

// oneOf reports whether s equals any element of list.
// Usage: oneOf(tld, ["org", "dev"])
func oneOfFunc(params ...any) (any, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("oneOf: expected 2 arguments, got %d", len(params))
	}
	s, ok := params[0].(string)
	if !ok {
		return nil, fmt.Errorf("oneOf: expected string, got %T", params[0])
	}
	items, ok := params[1].([]any)
	if !ok {
		return nil, fmt.Errorf("oneOf: expected list, got %T", params[1])
	}
	for _, item := range items {
		if fmt.Sprint(item) == s {
			return true, nil
		}
	}
	return false, nil
}
