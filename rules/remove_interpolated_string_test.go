package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MaiFengYXD/darklua/ast"
)

func newRule() *RemoveInterpolatedString {
	return NewRemoveInterpolatedString()
}

func TestSerializeDefaultRule(t *testing.T) {
	rule := newRule()
	require.Equal(t, RemoveInterpolatedStringRuleName, rule.Name())
	require.Empty(t, rule.SerializeToProperties())
}

func TestConfigureRoundTrip(t *testing.T) {
	rule := newRule()
	require.NoError(t, rule.Configure(RuleProperties{}))
	require.Empty(t, rule.SerializeToProperties())
}

func TestConfigureWithExtraFieldError(t *testing.T) {
	var document map[string]any
	require.NoError(t, yaml.Unmarshal([]byte("prop: something\n"), &document))

	properties, err := PropertiesFromMap(document)
	require.NoError(t, err)

	rule := newRule()
	err = rule.Configure(properties)
	require.EqualError(t, err, "unexpected field 'prop'")

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	require.Equal(t, UnexpectedProperty, confErr.Kind)
	require.Equal(t, "prop", confErr.Key)

	// the rejected bag left the configuration unchanged
	require.Empty(t, rule.SerializeToProperties())
}

func TestConfigureReportsFirstKeyInSortedOrder(t *testing.T) {
	err := newRule().Configure(RuleProperties{
		"zeta":  StringProperty("1"),
		"alpha": StringProperty("2"),
	})
	require.EqualError(t, err, "unexpected field 'alpha'")
}

func interpolated(segments ...ast.Segment) *ast.InterpolatedString {
	return &ast.InterpolatedString{Segments: segments}
}

func text(value string) *ast.TextSegment { return &ast.TextSegment{Value: value} }

func value(x ast.Expr) *ast.ValueSegment { return &ast.ValueSegment{X: x} }

func processBlock(t *testing.T, block *ast.Block) {
	t.Helper()
	require.NoError(t, newRule().Process(block, &Context{}))
}

func requireNoInterpolatedString(t *testing.T, block *ast.Block) {
	t.Helper()
	ast.Inspect(block, func(node ast.Node) bool {
		_, ok := node.(*ast.InterpolatedString)
		require.False(t, ok, "interpolated string survived the rewrite")
		return true
	})
}

func TestRewritesSimpleInterpolation(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.Return{Values: []ast.Expr{
			interpolated(text("x="), value(&ast.Ident{Name: "a"}), text("!")),
		}},
	}}

	processBlock(t, block)

	require.Len(t, block.Stmts, 2)
	require.Equal(t, "local __DARKLUA_STR_FMT = string.format", block.Stmts[0].String())
	require.Equal(t, `return __DARKLUA_STR_FMT("x=%*!", a)`, block.Stmts[1].String())
	requireNoInterpolatedString(t, block)
}

func TestEmptyInterpolationBecomesEmptyString(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.Return{Values: []ast.Expr{interpolated()}},
	}}

	processBlock(t, block)

	// no prelude: the block still holds a single statement
	require.Len(t, block.Stmts, 1)
	require.Equal(t, `return ""`, block.Stmts[0].String())
}

func TestEscapesPercentInTextSegments(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.Return{Values: []ast.Expr{
			interpolated(text("100% of "), value(&ast.Ident{Name: "n"}), text(" (or 50%)")),
		}},
	}}

	processBlock(t, block)

	call := block.Stmts[1].(*ast.Return).Values[0].(*ast.FunctionCall)
	template := call.Args[0].(*ast.String)
	require.Equal(t, "100%% of %* (or 50%%)", template.Value)
}

func TestArgumentOrderMatchesSegmentOrder(t *testing.T) {
	first := &ast.FieldExpression{Prefix: &ast.Ident{Name: "t"}, Field: "a"}
	second := &ast.Binary{X: &ast.Ident{Name: "x"}, Op: "+", Y: &ast.Number{Value: 1}}

	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.Return{Values: []ast.Expr{
			interpolated(value(first), text(" and "), value(second)),
		}},
	}}

	processBlock(t, block)

	call := block.Stmts[1].(*ast.Return).Values[0].(*ast.FunctionCall)
	require.Len(t, call.Args, 3)
	require.Equal(t, "%* and %*", string(call.Args[0].(*ast.String).Value))

	// arguments are deep-equal duplicates of the embedded expressions
	require.Equal(t, ast.Expr(first), call.Args[1])
	require.Equal(t, ast.Expr(second), call.Args[2])
	require.NotSame(t, ast.Expr(first), call.Args[1])
	require.NotSame(t, ast.Expr(second), call.Args[2])
}

func TestSinglePreludeAcrossNestedScopes(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.Do{Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.FunctionCall{
				Prefix: &ast.Ident{Name: "print"},
				Args:   []ast.Expr{interpolated(text("a="), value(&ast.Ident{Name: "a"}))},
			},
		}}},
		&ast.While{
			Cond: &ast.Bool{Value: true},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.FunctionCall{
					Prefix: &ast.Ident{Name: "print"},
					Args:   []ast.Expr{interpolated(text("b="), value(&ast.Ident{Name: "b"}))},
				},
			}},
		},
	}}

	processBlock(t, block)

	// exactly one declaration, at index 0 of the top-level block only
	var declarations int
	ast.Inspect(block, func(node ast.Node) bool {
		if local, ok := node.(*ast.LocalAssign); ok && len(local.Names) == 1 {
			if local.Names[0].Name == "__DARKLUA_STR_FMT" {
				declarations++
			}
		}
		return true
	})
	require.Equal(t, 1, declarations)
	require.Equal(t, "local __DARKLUA_STR_FMT = string.format", block.Stmts[0].String())
	requireNoInterpolatedString(t, block)
}

func TestNoOpOnBlockWithoutInterpolation(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.LocalAssign{
			Names:  []*ast.Ident{{Name: "x"}},
			Values: []ast.Expr{&ast.String{Value: "plain"}},
		},
		&ast.Return{Values: []ast.Expr{&ast.Ident{Name: "x"}}},
	}}
	before := block.Clone()

	processBlock(t, block)

	require.Equal(t, before, block)
}

func TestNestedInterpolationInsideValueSegment(t *testing.T) {
	inner := interpolated(text("inner "), value(&ast.Ident{Name: "v"}))
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.Return{Values: []ast.Expr{
			interpolated(text("outer "), value(inner)),
		}},
	}}

	processBlock(t, block)

	requireNoInterpolatedString(t, block)
	require.Equal(
		t,
		`return __DARKLUA_STR_FMT("outer %*", __DARKLUA_STR_FMT("inner %*", v))`,
		block.Stmts[1].String(),
	)
}

func TestRewritesInterpolationInCallArguments(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.FunctionCall{
			Prefix: &ast.FieldExpression{Prefix: &ast.Ident{Name: "log"}, Field: "info"},
			Args: []ast.Expr{
				interpolated(text("ready: "), value(&ast.Ident{Name: "ok"})),
			},
		},
	}}

	processBlock(t, block)

	require.Len(t, block.Stmts, 2)
	require.Equal(t, `log.info(__DARKLUA_STR_FMT("ready: %*", ok))`, block.Stmts[1].String())
}
