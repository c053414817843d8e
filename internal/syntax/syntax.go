// Package syntax defines the statement tree consumed from the external
// BrighterScript parser. The engine never parses source itself; it receives
// typed statements with position ranges and works from those.
package syntax

// DynamicType is the marker used when no better type name is resolvable.
const DynamicType = "dynamic"

// TypeName resolves a declared type name, falling back to the dynamic marker
// when the declaration carries none. User-defined types arrive from the
// parser as their declared name and are returned as-is.
func TypeName(declared string) string {
	if declared == "" {
		return DynamicType
	}
	return declared
}

// Pos is a position in source text. Lines and columns are both 1-based.
type Pos struct {
	Line int `json:"line"`
	Col  int `json:"column"`
}

// Range spans source text from Start up to but not including End's column.
// The convention is fixed: 1-based lines and columns, end-exclusive columns.
// Every statement, annotation and default-value expression carries one.
type Range struct {
	Start Pos `json:"start"`
	End   Pos `json:"end"`
}

// Visibility is the declared access level of a member.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// Stmt is the closed set of statement kinds the engine works with. The
// classifier and renderer type-switch over these; anything the parser emits
// outside this set decodes as *Unknown and is ignored.
type Stmt interface {
	Span() Range
	stmtNode()
}

// Comment is a documentation comment block, raw text as written.
type Comment struct {
	Range Range
	Text  string
}

// Param is one parameter of a callable declaration.
type Param struct {
	Name string
	// Type is the declared type name, empty when untyped.
	Type string
	// Default is the source range of the default value expression,
	// nil when the parameter has none.
	Default *Range
}

// Function is a function or method declaration. Methods additionally carry
// visibility and override information from the class body.
type Function struct {
	Range      Range
	Name       string
	Visibility Visibility
	Overrides  bool
	Params     []Param
	// ReturnType is the declared return type name, empty when undeclared.
	ReturnType string
	// Annotations are the ranges of annotations written above the
	// declaration; comment association uses the first one as the
	// effective start.
	Annotations []Range
}

// Class is a class declaration with its ordered body statements
// (fields, methods and comments interleaved in source order).
type Class struct {
	Range Range
	Name  string
	// Parent is the declared parent type name, empty when the class
	// extends nothing.
	Parent string
	Body   []Stmt
}

// Namespace is a namespace declaration. Name may be a dotted path.
type Namespace struct {
	Range Range
	Name  string
	Body  []Stmt
}

// Field is a class field declaration.
type Field struct {
	Range      Range
	Name       string
	Type       string
	Visibility Visibility
}

// Unknown is any statement kind the engine does not document.
type Unknown struct {
	Range Range
	Kind  string
}

func (c *Comment) Span() Range   { return c.Range }
func (f *Function) Span() Range  { return f.Range }
func (c *Class) Span() Range     { return c.Range }
func (n *Namespace) Span() Range { return n.Range }
func (f *Field) Span() Range     { return f.Range }
func (u *Unknown) Span() Range   { return u.Range }

func (*Comment) stmtNode()   {}
func (*Function) stmtNode()  {}
func (*Class) stmtNode()     {}
func (*Namespace) stmtNode() {}
func (*Field) stmtNode()     {}
func (*Unknown) stmtNode()   {}
