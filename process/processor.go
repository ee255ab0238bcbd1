// Package process implements the scope-aware traversal engine that rewrite
// rules ride on. A rule provides a NodeProcessor; VisitBlock walks a block
// depth-first and offers every node to the processor, which may replace a
// node wholesale through the slot pointer it receives.
package process

import "github.com/MaiFengYXD/darklua/ast"

// NodeProcessor reacts to nodes as the traversal engine encounters them.
// Each hook receives exclusive mutable access to exactly one slot and may
// assign a new node to it. Embed NoopProcessor to get no-op defaults for the
// hooks a processor does not care about.
type NodeProcessor interface {
	ProcessBlock(block *ast.Block)
	ProcessStatement(stmt *ast.Stmt)
	ProcessExpression(expr *ast.Expr)
	ProcessPrefix(prefix *ast.Prefix)
}

// NoopProcessor implements NodeProcessor with hooks that leave every node
// unchanged. Processors embed it and override the hooks they need.
type NoopProcessor struct{}

func (NoopProcessor) ProcessBlock(block *ast.Block) {}

func (NoopProcessor) ProcessStatement(stmt *ast.Stmt) {}

func (NoopProcessor) ProcessExpression(expr *ast.Expr) {}

func (NoopProcessor) ProcessPrefix(prefix *ast.Prefix) {}

// Scope is an optional capability a processor may implement, typically by
// embedding an *IdentifierTracker. When the processor passed to VisitBlock
// implements Scope, the engine opens and closes frames around scoping
// constructs and records declared names as it goes.
type Scope interface {
	PushScope()
	PopScope()
	DeclareIdentifier(name string)
}
