package driver

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"assay/internal/eval"
)

// Bindings is the decoded contents of a TOML bindings file: plain name→value
// pairs that seed the evaluation environment for every assertion in a run.
type Bindings map[string]any

// LoadBindings reads and decodes a TOML bindings file.
func LoadBindings(path string) (Bindings, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("bindings %s: %w", path, err)
	}
	b := Bindings(raw)
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("bindings %s: %w", path, err)
	}
	return b, nil
}

// validate rejects shapes the engine has no value for: nested tables,
// datetimes, anything toml decodes beyond scalars and arrays.
func (b Bindings) validate() error {
	for name, v := range b {
		if !bindable(v) {
			return fmt.Errorf("binding %q: unsupported value %T", name, v)
		}
	}
	return nil
}

func bindable(v any) bool {
	switch x := v.(type) {
	case bool, int64, float64, string:
		return true
	case []any:
		for _, el := range x {
			if !bindable(el) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Env builds a fresh environment from the bindings. Each assertion gets its
// own Env, so evaluations never share mutable state.
func (b Bindings) Env() *eval.Env {
	env := eval.NewEnv()
	for name, v := range b {
		env.Bind(name, eval.FromAny(v))
	}
	return env
}

// Hash digests the bindings in a key-sorted canonical form, for use in cache
// keys: same bindings, same digest, regardless of map iteration order.
func (b Bindings) Hash() Digest {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%#v\n", k, b[k])
	}
	return sha256.Sum256([]byte(sb.String()))
}
