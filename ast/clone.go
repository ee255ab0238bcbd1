package ast

// CloneExpr returns a deep copy of an expression. The copy shares no mutable
// state with the original.
func CloneExpr(expr Expr) Expr {
	if expr == nil {
		return nil
	}
	switch x := expr.(type) {
	case *Ident:
		return &Ident{Name: x.Name}
	case *Number:
		return &Number{Literal: x.Literal, Value: x.Value}
	case *Bool:
		return &Bool{Value: x.Value}
	case *Nil:
		return &Nil{}
	case *Varargs:
		return &Varargs{}
	case *String:
		return &String{Value: x.Value}
	case *InterpolatedString:
		clone := &InterpolatedString{}
		if x.Segments != nil {
			clone.Segments = make([]Segment, len(x.Segments))
			for i, segment := range x.Segments {
				clone.Segments[i] = cloneSegment(segment)
			}
		}
		return clone
	case *Unary:
		return &Unary{Op: x.Op, X: CloneExpr(x.X)}
	case *Binary:
		return &Binary{X: CloneExpr(x.X), Op: x.Op, Y: CloneExpr(x.Y)}
	case *Parenthese:
		return &Parenthese{X: CloneExpr(x.X)}
	case *FunctionCall:
		return cloneFunctionCall(x)
	case *FieldExpression:
		return &FieldExpression{Prefix: ClonePrefix(x.Prefix), Field: x.Field}
	case *IndexExpression:
		return &IndexExpression{Prefix: ClonePrefix(x.Prefix), Index: CloneExpr(x.Index)}
	case *Function:
		return cloneFunction(x)
	case *Table:
		clone := &Table{}
		if x.Entries != nil {
			clone.Entries = make([]TableEntry, len(x.Entries))
			for i, entry := range x.Entries {
				clone.Entries[i] = TableEntry{
					Key:   CloneExpr(entry.Key),
					Value: CloneExpr(entry.Value),
				}
			}
		}
		return clone
	default:
		panic("ast: unknown expression type")
	}
}

// ClonePrefix returns a deep copy of a call/index target.
func ClonePrefix(prefix Prefix) Prefix {
	if prefix == nil {
		return nil
	}
	switch x := prefix.(type) {
	case *Ident:
		return &Ident{Name: x.Name}
	case *Parenthese:
		return &Parenthese{X: CloneExpr(x.X)}
	case *FunctionCall:
		return cloneFunctionCall(x)
	case *FieldExpression:
		return &FieldExpression{Prefix: ClonePrefix(x.Prefix), Field: x.Field}
	case *IndexExpression:
		return &IndexExpression{Prefix: ClonePrefix(x.Prefix), Index: CloneExpr(x.Index)}
	default:
		panic("ast: unknown prefix type")
	}
}

// CloneStmt returns a deep copy of a statement.
func CloneStmt(stmt Stmt) Stmt {
	if stmt == nil {
		return nil
	}
	switch s := stmt.(type) {
	case *LocalAssign:
		return &LocalAssign{Names: cloneIdents(s.Names), Values: cloneExprs(s.Values)}
	case *Assign:
		return &Assign{Targets: cloneExprs(s.Targets), Values: cloneExprs(s.Values)}
	case *FunctionCall:
		return cloneFunctionCall(s)
	case *Do:
		return &Do{Body: s.Body.Clone()}
	case *If:
		clone := &If{}
		if s.Clauses != nil {
			clone.Clauses = make([]IfClause, len(s.Clauses))
			for i, clause := range s.Clauses {
				clone.Clauses[i] = IfClause{
					Cond: CloneExpr(clause.Cond),
					Body: clause.Body.Clone(),
				}
			}
		}
		if s.Else != nil {
			clone.Else = s.Else.Clone()
		}
		return clone
	case *While:
		return &While{Cond: CloneExpr(s.Cond), Body: s.Body.Clone()}
	case *Repeat:
		return &Repeat{Body: s.Body.Clone(), Cond: CloneExpr(s.Cond)}
	case *NumericFor:
		return &NumericFor{
			Name:  &Ident{Name: s.Name.Name},
			Start: CloneExpr(s.Start),
			Limit: CloneExpr(s.Limit),
			Step:  CloneExpr(s.Step),
			Body:  s.Body.Clone(),
		}
	case *GenericFor:
		return &GenericFor{
			Names: cloneIdents(s.Names),
			Exprs: cloneExprs(s.Exprs),
			Body:  s.Body.Clone(),
		}
	case *LocalFunction:
		return &LocalFunction{Name: &Ident{Name: s.Name.Name}, Func: cloneFunction(s.Func)}
	case *Return:
		return &Return{Values: cloneExprs(s.Values)}
	case *Break:
		return &Break{}
	default:
		panic("ast: unknown statement type")
	}
}

// Clone returns a deep copy of the block and every statement it owns.
func (b *Block) Clone() *Block {
	clone := &Block{}
	if b.Stmts != nil {
		clone.Stmts = make([]Stmt, len(b.Stmts))
		for i, stmt := range b.Stmts {
			clone.Stmts[i] = CloneStmt(stmt)
		}
	}
	return clone
}

func cloneSegment(segment Segment) Segment {
	switch s := segment.(type) {
	case *TextSegment:
		return &TextSegment{Value: s.Value}
	case *ValueSegment:
		return &ValueSegment{X: CloneExpr(s.X)}
	default:
		panic("ast: unknown segment type")
	}
}

func cloneFunctionCall(call *FunctionCall) *FunctionCall {
	return &FunctionCall{
		Prefix: ClonePrefix(call.Prefix),
		Method: call.Method,
		Args:   cloneExprs(call.Args),
	}
}

func cloneFunction(fn *Function) *Function {
	return &Function{
		Params:     cloneIdents(fn.Params),
		IsVariadic: fn.IsVariadic,
		Body:       fn.Body.Clone(),
	}
}

func cloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	clones := make([]Expr, len(exprs))
	for i, expr := range exprs {
		clones[i] = CloneExpr(expr)
	}
	return clones
}

func cloneIdents(idents []*Ident) []*Ident {
	if idents == nil {
		return nil
	}
	clones := make([]*Ident, len(idents))
	for i, ident := range idents {
		clones[i] = &Ident{Name: ident.Name}
	}
	return clones
}
