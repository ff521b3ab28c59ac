package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ComplexityGuard rejects operations that select too many fields.
// Each selected field costs 1; fragments are expanded where they are spread.
type ComplexityGuard struct {
	schema *ast.Schema
	limit  int
}

// Operation describes the operation a request will execute.
type Operation struct {
	Name       string
	Type       ast.Operation
	Complexity int
}

// NewComplexityGuard loads sdl for static analysis.
func NewComplexityGuard(sdl string, limit int) (*ComplexityGuard, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return &ComplexityGuard{schema: schema, limit: limit}, nil
}

// Analyze parses query and selects the operation named operationName.
// ok is false when the document does not validate or the operation is absent;
// the executor reports those errors itself.
func (g *ComplexityGuard) Analyze(query, operationName string) (op Operation, ok bool) {
	doc, errs := gqlparser.LoadQueryWithRules(g.schema, query, nil)
	if len(errs) > 0 || doc == nil {
		return Operation{}, false
	}

	def := doc.Operations.ForName(operationName)
	if def == nil {
		return Operation{}, false
	}

	return Operation{
		Name:       def.Name,
		Type:       def.Operation,
		Complexity: countFields(def.SelectionSet),
	}, true
}

// OperationType reports the type of the operation named operationName using
// syntax alone, so documents that fail schema validation are still classified.
// ok is false when the document does not parse or the operation is absent.
func OperationType(query, operationName string) (typ ast.Operation, ok bool) {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil || doc == nil {
		return "", false
	}
	def := doc.Operations.ForName(operationName)
	if def == nil {
		return "", false
	}
	return def.Operation, true
}

// Exceeds reports whether op is over the configured limit.
func (g *ComplexityGuard) Exceeds(op Operation) bool {
	return g.limit > 0 && op.Complexity > g.limit
}

// Limit returns the configured field limit.
func (g *ComplexityGuard) Limit() int { return g.limit }

func countFields(set ast.SelectionSet) int {
	n := 0
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			n += 1 + countFields(s.SelectionSet)
		case *ast.InlineFragment:
			n += countFields(s.SelectionSet)
		case *ast.FragmentSpread:
			if s.Definition != nil {
				n += countFields(s.Definition.SelectionSet)
			}
		}
	}
	return n
}
