// Package classify partitions one scope's sibling statements by kind.
package classify

import "github.com/rokudocs/brsdoc/internal/syntax"

// Groups holds the statements of one scope partitioned into the four kinds
// the engine documents. Each slice preserves original relative order.
type Groups struct {
	Comments   []*syntax.Comment
	Functions  []*syntax.Function
	Classes    []*syntax.Class
	Namespaces []*syntax.Namespace
}

// Partition splits sibling statements into ordered groups. Statements of any
// other kind are silently dropped; that is not an error.
func Partition(stmts []syntax.Stmt) Groups {
	var g Groups
	for _, s := range stmts {
		switch s := s.(type) {
		case *syntax.Comment:
			g.Comments = append(g.Comments, s)
		case *syntax.Function:
			g.Functions = append(g.Functions, s)
		case *syntax.Class:
			g.Classes = append(g.Classes, s)
		case *syntax.Namespace:
			g.Namespaces = append(g.Namespaces, s)
		}
	}
	return g
}

// Fields returns the field declarations of a class body, in order.
func Fields(stmts []syntax.Stmt) []*syntax.Field {
	var fields []*syntax.Field
	for _, s := range stmts {
		if f, ok := s.(*syntax.Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
