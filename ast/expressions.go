package ast

import (
	"bytes"
	"strings"
)

// Ident is an expression node that refers to a variable by name. It is also
// a valid call/index target.
type Ident struct {
	Name string // identifier name
}

func (x *Ident) exprNode()   {}
func (x *Ident) prefixNode() {}

func (x *Ident) String() string { return x.Name }

// Unary is an operator expression where the operator precedes the operand.
// Examples include "not x", "-x" and "#t".
type Unary struct {
	Op string // operator: "not", "-", "#"
	X  Expr   // operand
}

func (x *Unary) exprNode() {}

func (x *Unary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	if x.Op == "not" {
		out.WriteString(" ")
	}
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// Binary is an operator expression where the operator is between the
// operands. Examples include "x + y" and "a .. b".
type Binary struct {
	X  Expr   // left operand
	Op string // operator: "+", "-", "..", "==", etc.
	Y  Expr   // right operand
}

func (x *Binary) exprNode() {}

func (x *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Parenthese is an expression node that wraps another expression in
// parentheses, truncating multiple values to one.
type Parenthese struct {
	X Expr // wrapped expression
}

func (x *Parenthese) exprNode()   {}
func (x *Parenthese) prefixNode() {}

func (x *Parenthese) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// FunctionCall is a node that describes the invocation of a function. A call
// is an expression, a statement, and a valid call/index target. Method holds
// the name after ":" for method-style calls; it is empty otherwise.
type FunctionCall struct {
	Prefix Prefix // call target
	Method string // method name; empty for plain calls
	Args   []Expr // call arguments
}

func (x *FunctionCall) exprNode()   {}
func (x *FunctionCall) stmtNode()   {}
func (x *FunctionCall) prefixNode() {}

func (x *FunctionCall) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString(x.Prefix.String())
	if x.Method != "" {
		out.WriteString(":")
		out.WriteString(x.Method)
	}
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// FieldExpression is an expression node that describes the access of a named
// field on a value, like "string.format".
type FieldExpression struct {
	Prefix Prefix // value whose field is accessed
	Field  string // field name
}

func (x *FieldExpression) exprNode()   {}
func (x *FieldExpression) prefixNode() {}

func (x *FieldExpression) String() string {
	var out bytes.Buffer
	out.WriteString(x.Prefix.String())
	out.WriteString(".")
	out.WriteString(x.Field)
	return out.String()
}

// IndexExpression is an expression node that describes indexing a value with
// an arbitrary expression, like "t[k]".
type IndexExpression struct {
	Prefix Prefix // value being indexed
	Index  Expr   // index expression
}

func (x *IndexExpression) exprNode()   {}
func (x *IndexExpression) prefixNode() {}

func (x *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString(x.Prefix.String())
	out.WriteString("[")
	out.WriteString(x.Index.String())
	out.WriteString("]")
	return out.String()
}

// Function is an expression node that holds a function literal.
type Function struct {
	Params     []*Ident // parameter names
	IsVariadic bool     // true when the parameter list ends with "..."
	Body       *Block   // function body
}

func (x *Function) exprNode() {}

func (x *Function) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(x.Params)+1)
	for _, p := range x.Params {
		params = append(params, p.Name)
	}
	if x.IsVariadic {
		params = append(params, "...")
	}
	out.WriteString("function(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	out.WriteString(" end")
	return out.String()
}

// TableEntry represents a single entry in a table constructor. A nil Key
// marks a positional (array part) entry.
type TableEntry struct {
	Key   Expr // nil for positional entries
	Value Expr
}

// Table is an expression node that builds a table value.
type Table struct {
	Entries []TableEntry // ordered table entries
}

func (x *Table) exprNode() {}

func (x *Table) String() string {
	var out bytes.Buffer
	entries := make([]string, 0, len(x.Entries))
	for _, entry := range x.Entries {
		if entry.Key == nil {
			entries = append(entries, entry.Value.String())
		} else {
			entries = append(entries, "["+entry.Key.String()+"] = "+entry.Value.String())
		}
	}
	out.WriteString("{")
	out.WriteString(strings.Join(entries, ", "))
	out.WriteString("}")
	return out.String()
}
