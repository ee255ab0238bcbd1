package ast

// Visitor defines the interface for read-only AST traversal. If Visit
// returns nil, children of the node are not visited. Otherwise, the returned
// Visitor is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
// Walk does not mutate the tree; in-place rewriting is done with the
// process package.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Block:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	// Statements
	case *LocalAssign:
		for _, name := range n.Names {
			Walk(v, name)
		}
		for _, value := range n.Values {
			Walk(v, value)
		}
	case *Assign:
		for _, target := range n.Targets {
			Walk(v, target)
		}
		for _, value := range n.Values {
			Walk(v, value)
		}
	case *Do:
		Walk(v, n.Body)
	case *If:
		for _, clause := range n.Clauses {
			Walk(v, clause.Cond)
			Walk(v, clause.Body)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *While:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *Repeat:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *NumericFor:
		Walk(v, n.Name)
		Walk(v, n.Start)
		Walk(v, n.Limit)
		if n.Step != nil {
			Walk(v, n.Step)
		}
		Walk(v, n.Body)
	case *GenericFor:
		for _, name := range n.Names {
			Walk(v, name)
		}
		for _, expr := range n.Exprs {
			Walk(v, expr)
		}
		Walk(v, n.Body)
	case *LocalFunction:
		Walk(v, n.Name)
		Walk(v, n.Func)
	case *Return:
		for _, value := range n.Values {
			Walk(v, value)
		}
	case *Break:
		// No children

	// Expressions
	case *Ident:
		// No children
	case *Number:
		// No children
	case *Bool:
		// No children
	case *Nil:
		// No children
	case *Varargs:
		// No children
	case *String:
		// No children
	case *InterpolatedString:
		for _, segment := range n.Segments {
			Walk(v, segment)
		}
	case *TextSegment:
		// No children
	case *ValueSegment:
		Walk(v, n.X)
	case *Unary:
		Walk(v, n.X)
	case *Binary:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *Parenthese:
		Walk(v, n.X)
	case *FunctionCall:
		Walk(v, n.Prefix)
		for _, arg := range n.Args {
			Walk(v, arg)
		}
	case *FieldExpression:
		Walk(v, n.Prefix)
	case *IndexExpression:
		Walk(v, n.Prefix)
		Walk(v, n.Index)
	case *Function:
		for _, param := range n.Params {
			Walk(v, param)
		}
		Walk(v, n.Body)
	case *Table:
		for _, entry := range n.Entries {
			if entry.Key != nil {
				Walk(v, entry.Key)
			}
			Walk(v, entry.Value)
		}
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}
