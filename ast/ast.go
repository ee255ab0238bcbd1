// Package ast defines the abstract syntax tree representation of Lua code
// that the transformation rules operate on. Nodes are pure data: every field
// is exported, two nodes are structurally equal when their field trees are
// equal, and deep copies are made with the Clone functions.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements appear in blocks and do not
// evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Prefix represents an expression that may be the target of a call, a field
// access, or an index: a name, a parenthesized expression, or another
// call/field/index.
type Prefix interface {
	Node
	prefixNode()
}
