// Package filter narrows a loaded site list with a boolean expr-lang
// expression evaluated once per entry. It removes entries; it never weights
// them.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled site filter. The zero value and a nil *Filter keep
// every entry.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses src. An empty source yields a filter that keeps everything.
// The expression may optionally be wrapped in ${ }.
func Compile(src string) (*Filter, error) {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, "${") && strings.HasSuffix(trimmed, "}") {
		trimmed = strings.TrimSpace(trimmed[2 : len(trimmed)-1])
	}
	if trimmed == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(trimmed, CompileOptions()...)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", trimmed, err)
	}
	return &Filter{source: trimmed, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Empty reports whether the filter keeps every entry.
func (f *Filter) Empty() bool {
	return f == nil || f.program == nil
}

// Match evaluates the filter for one site.
func (f *Filter) Match(s Site) (bool, error) {
	if f.Empty() {
		return true, nil
	}
	out, err := expr.Run(f.program, s)
	if err != nil {
		return false, fmt.Errorf("filter %q on %q: %w", f.source, s.Raw, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the entries of list that match, in their original order.
func (f *Filter) Apply(list []string) ([]string, error) {
	if f.Empty() {
		return list, nil
	}
	kept := make([]string, 0, len(list))
	for i, raw := range list {
		ok, err := f.Match(NewSite(raw, i))
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, raw)
		}
	}
	return kept, nil
}
