package constant

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/codata/pkg/unit"
)

// Registry holds interned constant definitions, keyed by name and by
// symbol alias. Definitions are established during initialization and
// are immutable afterwards; Define is nonetheless serialized so the
// no-duplicate invariant holds under concurrent definition.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*def
	bySymbol map[string]*def
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]*def),
		bySymbol: make(map[string]*def),
	}
}

// Define registers a literal constant. It fails with
// *DuplicateNameError on a name or symbol collision, with
// *unit.DimensionMismatchError when re-defining a name under a
// different dimension, and with *ConsistencyError when the definition
// fails its self checks. On failure the registry is unchanged.
func (r *Registry) Define(in Definition) (Constant, error) {
	d, err := newLiteralDef(in)
	if err != nil {
		return Constant{}, err
	}
	return r.register(d)
}

// DefineDerived registers a constant whose value, uncertainty, and
// measurement are a closed form over other constants. The formula is
// not evaluated eagerly beyond the definition-time self checks; each
// access re-evaluates it at the requested kind and precision.
func (r *Registry) DefineDerived(in DerivedDefinition) (Constant, error) {
	d, err := newDerivedDef(in)
	if err != nil {
		return Constant{}, err
	}
	return r.register(d)
}

// MustDefine is Define for static constant tables; it panics on error.
func (r *Registry) MustDefine(in Definition) Constant {
	c, err := r.Define(in)
	if err != nil {
		panic(err)
	}
	return c
}

// MustDefineDerived is DefineDerived for static constant tables.
func (r *Registry) MustDefineDerived(in DerivedDefinition) Constant {
	c, err := r.DefineDerived(in)
	if err != nil {
		panic(err)
	}
	return c
}

func (r *Registry) register(d *def) (Constant, error) {
	if err := r.checkCollision(d); err != nil {
		return Constant{}, err
	}
	if err := verify(d); err != nil {
		return Constant{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under the write lock: a concurrent Define may have won.
	if err := r.collisionLocked(d); err != nil {
		return Constant{}, err
	}
	r.byName[d.name] = d
	r.bySymbol[d.symbol] = d
	return Constant{d: d}, nil
}

func (r *Registry) checkCollision(d *def) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collisionLocked(d)
}

// collisionLocked enforces one flat namespace across names and symbol
// aliases. A redefinition under a different dimension is reported as a
// dimension mismatch rather than a plain duplicate.
func (r *Registry) collisionLocked(d *def) error {
	if existing, ok := r.byName[d.name]; ok {
		if existing.u.Dimension() != d.u.Dimension() {
			return &unit.DimensionMismatchError{
				Op:    "define " + d.name,
				Left:  existing.u.Dimension(),
				Right: d.u.Dimension(),
			}
		}
		return &DuplicateNameError{Key: d.name, Kind: "name"}
	}
	if _, ok := r.bySymbol[d.name]; ok {
		return &DuplicateNameError{Key: d.name, Kind: "name"}
	}
	if _, ok := r.bySymbol[d.symbol]; ok {
		return &DuplicateNameError{Key: d.symbol, Kind: "symbol"}
	}
	if _, ok := r.byName[d.symbol]; ok {
		return &DuplicateNameError{Key: d.symbol, Kind: "symbol"}
	}
	return nil
}

// Lookup resolves a constant by name or symbol alias.
func (r *Registry) Lookup(key string) (Constant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.byName[key]; ok {
		return Constant{d: d}, true
	}
	if d, ok := r.bySymbol[key]; ok {
		return Constant{d: d}, true
	}
	return Constant{}, false
}

// Get is Lookup with a typed error listing the available names.
func (r *Registry) Get(key string) (Constant, error) {
	if c, ok := r.Lookup(key); ok {
		return c, nil
	}
	return Constant{}, &UnknownConstantError{Key: key, Available: r.Names()}
}

// Names returns all registered constant names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered constants sorted by name.
func (r *Registry) List() []Constant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Constant, 0, len(r.byName))
	for _, d := range r.byName {
		out = append(out, Constant{d: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].d.name < out[j].d.name })
	return out
}

// Len returns the number of registered constants.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// The default registry backs the package-level definition and lookup
// functions; the codata table registers into it at init.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry.
func Default() *Registry { return defaultRegistry }

// Define registers a literal constant in the default registry.
func Define(in Definition) (Constant, error) { return defaultRegistry.Define(in) }

// DefineDerived registers a derived constant in the default registry.
func DefineDerived(in DerivedDefinition) (Constant, error) {
	return defaultRegistry.DefineDerived(in)
}

// MustDefine registers a literal constant in the default registry,
// panicking on error.
func MustDefine(in Definition) Constant { return defaultRegistry.MustDefine(in) }

// MustDefineDerived registers a derived constant in the default
// registry, panicking on error.
func MustDefineDerived(in DerivedDefinition) Constant {
	return defaultRegistry.MustDefineDerived(in)
}

// Lookup resolves a name or symbol in the default registry.
func Lookup(key string) (Constant, bool) { return defaultRegistry.Lookup(key) }

// Get resolves a name or symbol in the default registry with a typed
// error.
func Get(key string) (Constant, error) { return defaultRegistry.Get(key) }

// List returns the default registry's constants sorted by name.
func List() []Constant { return defaultRegistry.List() }
