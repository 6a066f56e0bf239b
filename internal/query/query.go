// Package query evaluates filter expressions over decoded fields.
//
// Expressions use govaluate syntax. Every field is available under its tag
// name (FNumber, Make, GPSLatitude) and under its directory-qualified name,
// which needs brackets because of the dot: [Exif.FNumber], [IFD1.Compression].
// When a tag appears in several directories the bare name refers to the
// first occurrence.
//
//	FNumber < 4 && Make == 'Canon'
//	PhotographicSensitivity >= 800 || [IFD0.Orientation] != 1
package query

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/simonhull/exifmeta/internal/display"
	"github.com/simonhull/exifmeta/internal/types"
)

// Filter is a compiled filter expression.
type Filter struct {
	expr *govaluate.EvaluableExpression
	src  string
}

// Compile parses src.
func Compile(src string) (*Filter, error) {
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	return &Filter{expr: expr, src: src}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.src
}

// Match evaluates the filter against fields. A filter naming a field the
// set does not contain does not match. Boolean results are used as is;
// strings match when non-empty and numbers when non-zero.
func (f *Filter) Match(fields []types.Field) (bool, error) {
	params := Parameters(fields)
	for _, name := range f.expr.Vars() {
		if _, ok := params[name]; !ok {
			return false, nil
		}
	}

	rs, err := f.expr.Evaluate(params)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.src, err)
	}

	switch rs := rs.(type) {
	case bool:
		return rs, nil
	case string:
		return rs != "", nil
	case float64:
		return rs != 0, nil
	}
	return false, nil
}

// Parameters maps field names to expression values. Text fields become
// strings, single numbers become float64 (rationals divided) and anything
// else its plain rendering. Fields that failed to decode are left out.
func Parameters(fields []types.Field) map[string]interface{} {
	params := make(map[string]interface{}, 2*len(fields))
	for _, f := range fields {
		v, ok := parameter(f.Value)
		if !ok {
			continue
		}
		name := f.Name()
		if _, seen := params[name]; !seen {
			params[name] = v
		}
		params[f.IFD.String()+"."+name] = v
	}
	return params
}

func parameter(v types.Value) (interface{}, bool) {
	switch v := v.(type) {
	case nil, types.Invalid:
		return nil, false
	case types.ASCII:
		return v.Text(), true
	case types.Undefined:
		return display.Value(v), true
	}
	if v.Len() == 1 {
		if x, ok := types.Float(v, 0); ok {
			return x, true
		}
	}
	return display.Value(v), true
}
