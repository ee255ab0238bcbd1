package process

import "github.com/MaiFengYXD/darklua/ast"

// VisitBlock performs a depth-first walk of the block and every nested
// statement and expression reachable from it, mutating the tree in place.
// Each hook fires before the engine descends into the node occupying the
// slot, and descent continues into whatever node occupies the slot after the
// hook returns: a replacement node is itself walked, so a processor that
// rewrites a node into one containing copies of its children will see those
// copies visited. Expressions that already existed are each offered to
// ProcessExpression exactly once, in source order.
//
// When the processor also implements Scope, the engine opens a frame around
// every block, function body, and loop header, closes it when it leaves that
// subtree, and records local declarations, function parameters, and loop
// variables as they come into scope.
//
// Traversal itself cannot fail; a panic raised by a hook aborts the whole
// walk with no partial-application rollback.
func VisitBlock(block *ast.Block, processor NodeProcessor) {
	v := &visitor{processor: processor, scope: nopScope{}}
	if s, ok := processor.(Scope); ok {
		v.scope = s
	}
	v.visitBlock(block)
}

type visitor struct {
	processor NodeProcessor
	scope     Scope
}

// nopScope stands in when the processor does not track identifiers.
type nopScope struct{}

func (nopScope) PushScope() {}

func (nopScope) PopScope() {}

func (nopScope) DeclareIdentifier(string) {}

func (v *visitor) visitBlock(block *ast.Block) {
	v.processor.ProcessBlock(block)
	v.scope.PushScope()
	defer v.scope.PopScope()
	v.visitStatements(block)
}

func (v *visitor) visitStatements(block *ast.Block) {
	for i := 0; i < len(block.Stmts); i++ {
		v.visitStatement(&block.Stmts[i])
	}
}

func (v *visitor) visitStatement(stmt *ast.Stmt) {
	v.processor.ProcessStatement(stmt)
	switch s := (*stmt).(type) {
	case *ast.LocalAssign:
		// values are visited first: in "local x = x" the right-hand side
		// refers to the outer x
		for i := range s.Values {
			v.visitExpression(&s.Values[i])
		}
		for _, name := range s.Names {
			v.scope.DeclareIdentifier(name.Name)
		}
	case *ast.Assign:
		for i := range s.Targets {
			v.visitExpression(&s.Targets[i])
		}
		for i := range s.Values {
			v.visitExpression(&s.Values[i])
		}
	case *ast.FunctionCall:
		v.visitCall(s)
	case *ast.Do:
		v.visitBlock(s.Body)
	case *ast.If:
		for i := range s.Clauses {
			v.visitExpression(&s.Clauses[i].Cond)
			v.visitBlock(s.Clauses[i].Body)
		}
		if s.Else != nil {
			v.visitBlock(s.Else)
		}
	case *ast.While:
		v.visitExpression(&s.Cond)
		v.visitBlock(s.Body)
	case *ast.Repeat:
		v.visitRepeat(s)
	case *ast.NumericFor:
		v.visitExpression(&s.Start)
		v.visitExpression(&s.Limit)
		if s.Step != nil {
			v.visitExpression(&s.Step)
		}
		v.visitLoopBody(s.Body, s.Name)
	case *ast.GenericFor:
		for i := range s.Exprs {
			v.visitExpression(&s.Exprs[i])
		}
		v.visitLoopBody(s.Body, s.Names...)
	case *ast.LocalFunction:
		// the name is declared before the body so the function can recurse
		v.scope.DeclareIdentifier(s.Name.Name)
		v.visitFunction(s.Func)
	case *ast.Return:
		for i := range s.Values {
			v.visitExpression(&s.Values[i])
		}
	case *ast.Break:
		// No children
	}
}

// visitRepeat visits the until condition inside the body's frame, since Lua
// evaluates it in the scope of the repeated block.
func (v *visitor) visitRepeat(s *ast.Repeat) {
	v.processor.ProcessBlock(s.Body)
	v.scope.PushScope()
	defer v.scope.PopScope()
	v.visitStatements(s.Body)
	v.visitExpression(&s.Cond)
}

// visitLoopBody opens a frame holding the loop variables around the body.
func (v *visitor) visitLoopBody(body *ast.Block, names ...*ast.Ident) {
	v.scope.PushScope()
	defer v.scope.PopScope()
	for _, name := range names {
		v.scope.DeclareIdentifier(name.Name)
	}
	v.visitBlock(body)
}

func (v *visitor) visitFunction(fn *ast.Function) {
	v.scope.PushScope()
	defer v.scope.PopScope()
	for _, param := range fn.Params {
		v.scope.DeclareIdentifier(param.Name)
	}
	v.visitBlock(fn.Body)
}

func (v *visitor) visitExpression(expr *ast.Expr) {
	v.processor.ProcessExpression(expr)
	switch x := (*expr).(type) {
	case *ast.Unary:
		v.visitExpression(&x.X)
	case *ast.Binary:
		v.visitExpression(&x.X)
		v.visitExpression(&x.Y)
	case *ast.Parenthese:
		v.visitExpression(&x.X)
	case *ast.FunctionCall:
		v.visitCall(x)
	case *ast.FieldExpression:
		v.visitPrefix(&x.Prefix)
	case *ast.IndexExpression:
		v.visitPrefix(&x.Prefix)
		v.visitExpression(&x.Index)
	case *ast.Function:
		v.visitFunction(x)
	case *ast.Table:
		for i := range x.Entries {
			if x.Entries[i].Key != nil {
				v.visitExpression(&x.Entries[i].Key)
			}
			v.visitExpression(&x.Entries[i].Value)
		}
	case *ast.InterpolatedString:
		for _, segment := range x.Segments {
			if value, ok := segment.(*ast.ValueSegment); ok {
				v.visitExpression(&value.X)
			}
		}
	}
}

func (v *visitor) visitCall(call *ast.FunctionCall) {
	v.visitPrefix(&call.Prefix)
	for i := range call.Args {
		v.visitExpression(&call.Args[i])
	}
}

func (v *visitor) visitPrefix(prefix *ast.Prefix) {
	v.processor.ProcessPrefix(prefix)
	switch p := (*prefix).(type) {
	case *ast.Parenthese:
		v.visitExpression(&p.X)
	case *ast.FunctionCall:
		v.visitCall(p)
	case *ast.FieldExpression:
		v.visitPrefix(&p.Prefix)
	case *ast.IndexExpression:
		v.visitPrefix(&p.Prefix)
		v.visitExpression(&p.Index)
	}
}
