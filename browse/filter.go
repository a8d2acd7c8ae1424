package browse

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a pure visibility predicate over property names. It is
// supplied by the consumer, not hard-coded: the browser UI decides what
// "show advanced" means.
type Filter func(name string) bool

// ShowAll admits every property.
func ShowAll(string) bool {
	return true
}

// HideExtensions hides code-specific extension properties, which NOMAD
// namespaces with an "x_" prefix.
func HideExtensions(name string) bool {
	return !strings.HasPrefix(name, "x_")
}

// ExprFilter compiles an expr-lang expression into a Filter. The
// expression sees the property name as "name" and must yield a bool:
//
//	f, err := browse.ExprFilter(`not (name startsWith "x_") and name != "raw"`)
//
// A runtime evaluation failure hides the property rather than erroring,
// so one bad name cannot break enumeration.
func ExprFilter(src string) (Filter, error) {
	program, err := expr.Compile(src,
		expr.Env(map[string]any{"name": ""}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return exprRunner(program), nil
}

func exprRunner(program *vm.Program) Filter {
	return func(name string) bool {
		out, err := expr.Run(program, map[string]any{"name": name})
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}
}
