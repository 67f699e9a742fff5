// Package validate checks generated dashboards and rules against the set of
// metric names the backend actually exports, so a renamed metric breaks the
// build instead of silently producing empty panels.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Dashboard validates every PromQL expression found in the dashboard
// against known metric names. The dashboard is inspected through its JSON
// form, so any builder output the Grafana SDK produces can be checked.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard JSON: %v", err))
		return res
	}

	res.merge(Exprs(collectExprs(doc), known))
	return res
}

// Exprs parses each PromQL expression and verifies every vector selector
// references a known metric or recording rule.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, expr := range exprs {
		node, err := parser.ParseExpr(expr)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
			continue
		}

		//nolint:errcheck // the inspector never returns an error
		parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
			vs, ok := n.(*parser.VectorSelector)
			if !ok || vs.Name == "" {
				return nil
			}
			if !known[baseName(vs.Name)] {
				res.Errors = append(res.Errors,
					fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
			}
			return nil
		})
	}
	return res
}

// collectExprs walks an arbitrary JSON document and gathers every non-empty
// "expr" string field.
func collectExprs(doc any) []string {
	var exprs []string
	switch v := doc.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}

// baseName strips histogram series suffixes so bucket and count selectors
// validate against the base metric name.
func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}
