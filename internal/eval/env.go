package eval

// Func is a bound function callable as f(args...). Side effects inside are
// the caller's business; the engine only guarantees when they run.
type Func func(args []Value) (Value, error)

// Method is a bound method callable as recv.name(args...) or as a bare
// property recv.name.
type Method func(recv Value, args []Value) (Value, error)

// Env is the variable-binding environment for one evaluation. It is created
// fresh per assertion and confined to the calling goroutine.
type Env struct {
	vars    map[string]Value
	funcs   map[string]Func
	methods map[string]Method

	// BlockEval evaluates an opaque parser-built block from its source text.
	// When nil, such blocks fail with ErrOpaqueBlock.
	BlockEval func(text string) (any, error)
}

func NewEnv() *Env {
	return &Env{
		vars:    make(map[string]Value),
		funcs:   make(map[string]Func),
		methods: make(map[string]Method),
	}
}

// Bind binds a variable name to a value, replacing any previous binding.
func (env *Env) Bind(name string, v Value) *Env {
	env.vars[name] = v
	return env
}

// BindFunc binds a callable function name.
func (env *Env) BindFunc(name string, fn Func) *Env {
	env.funcs[name] = fn
	return env
}

// BindMethod binds a method/property name, shadowing the builtin of the same
// name if one exists.
func (env *Env) BindMethod(name string, m Method) *Env {
	env.methods[name] = m
	return env
}

// Lookup resolves a variable binding.
func (env *Env) Lookup(name string) (Value, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// LookupFunc resolves a function binding.
func (env *Env) LookupFunc(name string) (Func, bool) {
	fn, ok := env.funcs[name]
	return fn, ok
}

// LookupMethod resolves a method binding, falling back to the builtins for
// sequences and strings.
func (env *Env) LookupMethod(name string) (Method, bool) {
	if m, ok := env.methods[name]; ok {
		return m, true
	}
	m, ok := builtinMethods[name]
	return m, ok
}
