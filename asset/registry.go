package asset

import (
	"slices"
	"sync"

	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/errors"
)

// Registry maps record type names to decoders.
//
// Registration normally happens once at startup; lookups may run
// concurrently with each other and with late registrations.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds a decoder for a type name. Registering a name twice is an
// error.
func (r *Registry) Register(name string, dec Decoder) error {
	if name == "" || dec == nil {
		return errors.Registration(name, "empty name or nil decoder")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[name]; exists {
		return errors.Registration(name, "already registered")
	}
	r.decoders[name] = dec
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, dec Decoder) {
	if err := r.Register(name, dec); err != nil {
		panic(err)
	}
}

// Get returns the decoder for a type name.
func (r *Registry) Get(name string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dec, ok := r.decoders[name]
	return dec, ok
}

// Has reports whether a type name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.decoders))
	for name := range r.decoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Decode reads a record of the named type from rd.
func (r *Registry) Decode(name string, rd *binary.Reader) (Record, error) {
	dec, ok := r.Get(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDecode, "record type", name)
	}
	return dec(rd)
}
