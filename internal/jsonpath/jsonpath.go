// Package jsonpath evaluates JSONPath expressions against the body records
// retained in a finished store, for ad-hoc inspection without external tools.
package jsonpath

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Expr is a compiled JSONPath selector.
type Expr struct {
	x   jp.Expr
	src string
}

func Parse(selector string) (*Expr, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return &Expr{x: x, src: selector}, nil
}

func (e *Expr) String() string { return e.src }

// Get returns every value the selector matches in doc.
func (e *Expr) Get(doc any) []any {
	return e.x.Get(doc)
}

// ParseDocument parses raw JSON into the generic value tree Get operates on.
func ParseDocument(data []byte) (any, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// Render serializes a matched value back to compact JSON for display.
func Render(v any) string {
	return oj.JSON(v)
}
