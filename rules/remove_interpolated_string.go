package rules

import (
	"strings"

	"github.com/MaiFengYXD/darklua/ast"
	"github.com/MaiFengYXD/darklua/process"
)

// RemoveInterpolatedStringRuleName selects the rule from a registry or a
// configuration file.
const RemoveInterpolatedStringRuleName = "remove_interpolated_string"

const (
	// stringFormatIdentifier is the synthetic name bound to the runtime
	// formatter. The double-underscore prefix makes a collision with a
	// user-written name exceedingly unlikely; the rule trusts the
	// convention and does not consult the identifier tracker. A program
	// that already declares this exact name will shadow the binding.
	stringFormatIdentifier = "__DARKLUA_STR_FMT"

	defaultStringLibrary    = "string"
	defaultStringFormatName = "format"
)

// RemoveInterpolatedString is a rule that removes interpolated strings,
// lowering them to string.format calls.
type RemoveInterpolatedString struct{}

// NewRemoveInterpolatedString returns the rule with its default (and only)
// configuration.
func NewRemoveInterpolatedString() *RemoveInterpolatedString {
	return &RemoveInterpolatedString{}
}

// Name implements Rule.
func (r *RemoveInterpolatedString) Name() string {
	return RemoveInterpolatedStringRuleName
}

// Configure implements Rule. The rule has no configurable options, so every
// key is rejected with an unexpected-field error.
func (r *RemoveInterpolatedString) Configure(properties RuleProperties) error {
	return verifyNoProperties(properties)
}

// SerializeToProperties implements Rule.
func (r *RemoveInterpolatedString) SerializeToProperties() RuleProperties {
	return RuleProperties{}
}

// Process implements Rule. The transformation cannot fail.
func (r *RemoveInterpolatedString) Process(block *ast.Block, ctx *Context) error {
	r.FlawlessProcess(block, ctx)
	return nil
}

// FlawlessProcess rewrites every interpolated string reachable from the
// block into a call against the runtime formatter. When at least one
// non-empty interpolated string was rewritten, a single declaration binding
// the formatter is inserted at the top of this block, even when the strings
// lived in nested scopes.
func (r *RemoveInterpolatedString) FlawlessProcess(block *ast.Block, _ *Context) {
	processor := &removeInterpolatedStringProcessor{
		IdentifierTracker:      process.NewIdentifierTracker(),
		stringFormatIdentifier: stringFormatIdentifier,
	}
	process.VisitBlock(block, processor)

	if processor.defineStringFormat {
		block.InsertStatement(0, &ast.LocalAssign{
			Names: []*ast.Ident{{Name: stringFormatIdentifier}},
			Values: []ast.Expr{
				&ast.FieldExpression{
					Prefix: &ast.Ident{Name: defaultStringLibrary},
					Field:  defaultStringFormatName,
				},
			},
		})
	}
}

type removeInterpolatedStringProcessor struct {
	process.NoopProcessor
	*process.IdentifierTracker

	stringFormatIdentifier string
	defineStringFormat     bool
}

func (p *removeInterpolatedStringProcessor) ProcessExpression(expr *ast.Expr) {
	if interpolated, ok := (*expr).(*ast.InterpolatedString); ok {
		*expr = p.replaceWith(interpolated)
	}
}

func (p *removeInterpolatedStringProcessor) replaceWith(interpolated *ast.InterpolatedString) ast.Expr {
	if interpolated.IsEmpty() {
		return &ast.String{Value: ""}
	}

	p.defineStringFormat = true

	// literal "%" must not read as a formatter placeholder
	var format strings.Builder
	for segment := range interpolated.IterSegments() {
		switch segment := segment.(type) {
		case *ast.TextSegment:
			format.WriteString(strings.ReplaceAll(segment.Value, "%", "%%"))
		case *ast.ValueSegment:
			format.WriteString("%*")
		}
	}

	arguments := []ast.Expr{&ast.String{Value: format.String()}}
	for segment := range interpolated.IterSegments() {
		if value, ok := segment.(*ast.ValueSegment); ok {
			arguments = append(arguments, ast.CloneExpr(value.X))
		}
	}

	return &ast.FunctionCall{
		Prefix: &ast.Ident{Name: p.stringFormatIdentifier},
		Args:   arguments,
	}
}
