package ast

import (
	"bytes"
	"strings"
)

// Block is a node that holds an ordered sequence of statements. This is used
// to represent a chunk, a function body, or the body of a control structure.
// A block owns its statements exclusively.
type Block struct {
	Stmts []Stmt // the statements in program order
}

func (b *Block) String() string {
	var out bytes.Buffer
	for i, s := range b.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// InsertStatement inserts stmt at the given index, shifting subsequent
// statements without disturbing their content.
func (b *Block) InsertStatement(index int, stmt Stmt) {
	b.Stmts = append(b.Stmts, nil)
	copy(b.Stmts[index+1:], b.Stmts[index:])
	b.Stmts[index] = stmt
}

// LocalAssign is a statement that declares local variables with optional
// initial values, like "local a, b = 1, 2".
type LocalAssign struct {
	Names  []*Ident // variables being declared
	Values []Expr   // initial values; may be shorter than Names
}

func (s *LocalAssign) stmtNode() {}

func (s *LocalAssign) String() string {
	var out bytes.Buffer
	names := make([]string, 0, len(s.Names))
	for _, name := range s.Names {
		names = append(names, name.Name)
	}
	out.WriteString("local ")
	out.WriteString(strings.Join(names, ", "))
	if len(s.Values) > 0 {
		values := make([]string, 0, len(s.Values))
		for _, value := range s.Values {
			values = append(values, value.String())
		}
		out.WriteString(" = ")
		out.WriteString(strings.Join(values, ", "))
	}
	return out.String()
}

// Assign is a statement that assigns values to existing variables or fields,
// like "a, t.x = 1, 2".
type Assign struct {
	Targets []Expr // assignment targets
	Values  []Expr // assigned values
}

func (s *Assign) stmtNode() {}

func (s *Assign) String() string {
	var out bytes.Buffer
	targets := make([]string, 0, len(s.Targets))
	for _, target := range s.Targets {
		targets = append(targets, target.String())
	}
	values := make([]string, 0, len(s.Values))
	for _, value := range s.Values {
		values = append(values, value.String())
	}
	out.WriteString(strings.Join(targets, ", "))
	out.WriteString(" = ")
	out.WriteString(strings.Join(values, ", "))
	return out.String()
}

// Do is a statement that introduces a nested block scope.
type Do struct {
	Body *Block
}

func (s *Do) stmtNode() {}

func (s *Do) String() string {
	var out bytes.Buffer
	out.WriteString("do ")
	out.WriteString(s.Body.String())
	out.WriteString(" end")
	return out.String()
}

// IfClause is one condition/body pair of an if statement.
type IfClause struct {
	Cond Expr
	Body *Block
}

// If is a statement that branches between one or more condition clauses and
// an optional else block.
type If struct {
	Clauses []IfClause // "if"/"elseif" clauses, at least one
	Else    *Block     // else branch; nil if no else
}

func (s *If) stmtNode() {}

func (s *If) String() string {
	var out bytes.Buffer
	for i, clause := range s.Clauses {
		if i == 0 {
			out.WriteString("if ")
		} else {
			out.WriteString(" elseif ")
		}
		out.WriteString(clause.Cond.String())
		out.WriteString(" then ")
		out.WriteString(clause.Body.String())
	}
	if s.Else != nil {
		out.WriteString(" else ")
		out.WriteString(s.Else.String())
	}
	out.WriteString(" end")
	return out.String()
}

// While is a statement that repeats a block while a condition holds.
type While struct {
	Cond Expr
	Body *Block
}

func (s *While) stmtNode() {}

func (s *While) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(s.Cond.String())
	out.WriteString(" do ")
	out.WriteString(s.Body.String())
	out.WriteString(" end")
	return out.String()
}

// Repeat is a statement that repeats a block until a condition holds. The
// condition is evaluated in the scope of the body, so it can read locals
// declared inside the block.
type Repeat struct {
	Body *Block
	Cond Expr
}

func (s *Repeat) stmtNode() {}

func (s *Repeat) String() string {
	var out bytes.Buffer
	out.WriteString("repeat ")
	out.WriteString(s.Body.String())
	out.WriteString(" until ")
	out.WriteString(s.Cond.String())
	return out.String()
}

// NumericFor is a statement that iterates a variable over a numeric range.
type NumericFor struct {
	Name  *Ident // loop variable
	Start Expr   // start value
	Limit Expr   // end value
	Step  Expr   // step value; nil for the default step of 1
	Body  *Block
}

func (s *NumericFor) stmtNode() {}

func (s *NumericFor) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	out.WriteString(s.Name.Name)
	out.WriteString(" = ")
	out.WriteString(s.Start.String())
	out.WriteString(", ")
	out.WriteString(s.Limit.String())
	if s.Step != nil {
		out.WriteString(", ")
		out.WriteString(s.Step.String())
	}
	out.WriteString(" do ")
	out.WriteString(s.Body.String())
	out.WriteString(" end")
	return out.String()
}

// GenericFor is a statement that iterates variables over iterator
// expressions, like "for k, v in pairs(t) do ... end".
type GenericFor struct {
	Names []*Ident // loop variables
	Exprs []Expr   // iterator expressions
	Body  *Block
}

func (s *GenericFor) stmtNode() {}

func (s *GenericFor) String() string {
	var out bytes.Buffer
	names := make([]string, 0, len(s.Names))
	for _, name := range s.Names {
		names = append(names, name.Name)
	}
	exprs := make([]string, 0, len(s.Exprs))
	for _, expr := range s.Exprs {
		exprs = append(exprs, expr.String())
	}
	out.WriteString("for ")
	out.WriteString(strings.Join(names, ", "))
	out.WriteString(" in ")
	out.WriteString(strings.Join(exprs, ", "))
	out.WriteString(" do ")
	out.WriteString(s.Body.String())
	out.WriteString(" end")
	return out.String()
}

// LocalFunction is a statement that declares a local function. The name is
// in scope inside the function body, allowing recursion.
type LocalFunction struct {
	Name *Ident
	Func *Function
}

func (s *LocalFunction) stmtNode() {}

func (s *LocalFunction) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(s.Func.Params)+1)
	for _, p := range s.Func.Params {
		params = append(params, p.Name)
	}
	if s.Func.IsVariadic {
		params = append(params, "...")
	}
	out.WriteString("local function ")
	out.WriteString(s.Name.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(s.Func.Body.String())
	out.WriteString(" end")
	return out.String()
}

// Return is a statement that returns zero or more values from a function.
type Return struct {
	Values []Expr
}

func (s *Return) stmtNode() {}

func (s *Return) String() string {
	var out bytes.Buffer
	out.WriteString("return")
	if len(s.Values) > 0 {
		values := make([]string, 0, len(s.Values))
		for _, value := range s.Values {
			values = append(values, value.String())
		}
		out.WriteString(" ")
		out.WriteString(strings.Join(values, ", "))
	}
	return out.String()
}

// Break is a statement that exits the innermost enclosing loop.
type Break struct{}

func (s *Break) stmtNode() {}

func (s *Break) String() string { return "break" }
