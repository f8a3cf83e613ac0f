package lox

// Environment is the stack of lexical scopes. The last scope is the innermost
// one.
type Environment struct {
	scopes []map[string]Value
}

// NewEnvironment creates an environment holding a single global scope.
func NewEnvironment() *Environment {
	env := new(Environment)
	env.Push()
	return env
}

// Push enters a new empty scope.
func (env *Environment) Push() {
	env.scopes = append(env.scopes, make(map[string]Value))
}

// Pop leaves the innermost scope, dropping all of its bindings.
func (env *Environment) Pop() {
	env.scopes[len(env.scopes)-1] = nil
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Depth returns the number of scopes currently on the stack.
func (env *Environment) Depth() int {
	return len(env.scopes)
}

// Set binds name in the innermost scope. A binding of the same name in an
// outer scope is shadowed, not modified.
func (env *Environment) Set(name string, value Value) {
	env.scopes[len(env.scopes)-1][name] = value
}

// Get looks name up from the innermost scope outwards.
func (env *Environment) Get(name string) (Value, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if value, ok := env.scopes[i][name]; ok {
			return value, true
		}
	}
	return nil, false
}
