package process

// IdentifierTracker records which identifiers are declared at each lexical
// nesting level during a traversal. It is a stack of scope frames: a frame is
// pushed when traversal enters a scoping construct and popped on exit, and
// declarations in an inner frame never leak to an outer frame after the pop.
//
// The zero value is ready to use with no frames pushed.
type IdentifierTracker struct {
	scopes []map[string]struct{}
}

// NewIdentifierTracker returns a tracker with no frames pushed.
func NewIdentifierTracker() *IdentifierTracker {
	return &IdentifierTracker{}
}

// PushScope opens a new empty scope frame.
func (t *IdentifierTracker) PushScope() {
	t.scopes = append(t.scopes, make(map[string]struct{}))
}

// PopScope closes the innermost scope frame, discarding its declarations.
// Calling PopScope with no frame pushed is a programmer error and panics.
func (t *IdentifierTracker) PopScope() {
	if len(t.scopes) == 0 {
		panic("process: PopScope called without a matching PushScope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// DeclareIdentifier records a name in the innermost scope frame. Calling
// DeclareIdentifier with no frame pushed is a programmer error and panics.
func (t *IdentifierTracker) DeclareIdentifier(name string) {
	if len(t.scopes) == 0 {
		panic("process: DeclareIdentifier called without a pushed scope")
	}
	t.scopes[len(t.scopes)-1][name] = struct{}{}
}

// IsIdentifierUsed reports whether the name is declared in any frame,
// searching from the innermost frame outward.
func (t *IdentifierTracker) IsIdentifierUsed(name string) bool {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if _, ok := t.scopes[i][name]; ok {
			return true
		}
	}
	return false
}
