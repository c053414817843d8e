package syntax

import (
	"encoding/json"
	"fmt"
)

// node is the wire form of one statement as emitted by the parser.
type node struct {
	Kind        string      `json:"kind"`
	Range       Range       `json:"range"`
	Text        string      `json:"text,omitempty"`
	Name        string      `json:"name,omitempty"`
	Visibility  string      `json:"visibility,omitempty"`
	Overrides   bool        `json:"overrides,omitempty"`
	Params      []paramNode `json:"params,omitempty"`
	ReturnType  string      `json:"returnType,omitempty"`
	Parent      string      `json:"parent,omitempty"`
	Type        string      `json:"type,omitempty"`
	Annotations []Range     `json:"annotations,omitempty"`
	Body        []node      `json:"body,omitempty"`
}

type paramNode struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default *Range `json:"default,omitempty"`
}

// Decode converts the parser's JSON statement tree (a top-level array of
// statements) into typed statements. A malformed tree is a hard failure,
// propagated to the caller unmodified.
func Decode(data []byte) ([]Stmt, error) {
	var nodes []node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("failed to decode statement tree: %w", err)
	}
	return convertAll(nodes), nil
}

func convertAll(nodes []node) []Stmt {
	stmts := make([]Stmt, 0, len(nodes))
	for _, n := range nodes {
		stmts = append(stmts, convert(n))
	}
	return stmts
}

func convert(n node) Stmt {
	switch n.Kind {
	case "comment":
		return &Comment{Range: n.Range, Text: n.Text}
	case "function", "method":
		fn := &Function{
			Range:       n.Range,
			Name:        n.Name,
			Visibility:  visibility(n.Visibility),
			Overrides:   n.Overrides,
			ReturnType:  n.ReturnType,
			Annotations: n.Annotations,
		}
		for _, p := range n.Params {
			fn.Params = append(fn.Params, Param{Name: p.Name, Type: p.Type, Default: p.Default})
		}
		return fn
	case "class":
		return &Class{Range: n.Range, Name: n.Name, Parent: n.Parent, Body: convertAll(n.Body)}
	case "namespace":
		return &Namespace{Range: n.Range, Name: n.Name, Body: convertAll(n.Body)}
	case "field":
		return &Field{Range: n.Range, Name: n.Name, Type: n.Type, Visibility: visibility(n.Visibility)}
	default:
		return &Unknown{Range: n.Range, Kind: n.Kind}
	}
}

func visibility(s string) Visibility {
	if s == "private" {
		return Private
	}
	return Public
}
