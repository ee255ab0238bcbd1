// Package rules defines the transformation rule contract and the rules that
// rewrite Lua syntax trees in place. A rule is selected by name, configured
// from a property bag, and then applied to a block of statements.
package rules

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/MaiFengYXD/darklua/ast"
)

// Context carries cross-rule metadata supplied by the pipeline that
// sequences rules over a program. The rules in this package never inspect
// it; it is passed through for the benefit of rules defined elsewhere.
type Context struct {
	// Path identifies the source being transformed, when known.
	Path string

	// Metadata holds arbitrary pipeline-provided values.
	Metadata map[string]any
}

// Rule is a transformation that rewrites a block of statements in place.
type Rule interface {
	// Name returns the stable identifier used to select this rule from a
	// registry or a configuration file.
	Name() string

	// Configure validates the property bag against the rule's recognized
	// options and mutates the rule's configuration. A bag with any invalid
	// entry is rejected as a unit and leaves the configuration unchanged.
	Configure(properties RuleProperties) error

	// SerializeToProperties returns a bag holding every option the rule
	// currently has a non-default value for. A rule configured from an
	// empty bag serializes back to an empty bag.
	SerializeToProperties() RuleProperties

	// Process applies the rule to the block.
	Process(block *ast.Block, ctx *Context) error
}

// FlawlessRule is implemented by rules whose transformation cannot fail.
// Such rules also implement Rule with a Process method that always returns
// nil.
type FlawlessRule interface {
	FlawlessProcess(block *ast.Block, ctx *Context)
}

var logger = zerolog.Nop()

// SetLogger installs the logger used to trace rule application. The package
// default discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Apply runs one rule over a block, tracing its name and duration through
// the package logger. Errors propagate unchanged to the caller, which
// decides whether to abort the run or skip the rule.
func Apply(rule Rule, block *ast.Block, ctx *Context) error {
	start := time.Now()
	if err := rule.Process(block, ctx); err != nil {
		logger.Error().Str("rule", rule.Name()).Err(err).Msg("rule failed")
		return err
	}
	logger.Debug().
		Str("rule", rule.Name()).
		Dur("elapsed", time.Since(start)).
		Msg("applied rule")
	return nil
}

// verifyNoProperties rejects every key of the bag for rules that have no
// configurable options. Keys are checked in sorted order so the reported
// key is deterministic.
func verifyNoProperties(properties RuleProperties) error {
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return NewUnexpectedProperty(keys[0])
}
