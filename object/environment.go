package object

// Environment is a single frame of the name-to-value chain described in
// spec §3.5. Lookup walks inner-first out through Outer; Set always binds
// in the current frame, with no shadow check — a deliberate simplification
// from the teacher's scope.Scope, which additionally tracks const-ness and
// declared types for its richer language. This language has neither.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a root environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child environment whose outer is the
// given environment. A function call creates one of these with outer set to
// the function's *captured* environment, not the caller's — the detail that
// makes closures correct (spec §3.5 "Lifecycle").
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get searches this frame, then walks outer frames, returning the first
// binding found.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set unconditionally binds name to val in this frame.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
