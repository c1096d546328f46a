package extension

import (
	"sync"

	"github.com/andaru/syndication/synerr"
	"github.com/pkg/errors"
)

// Registry is a set of extension factories, keyed by the type of the
// extensions they create.
type Registry struct {
	mu        sync.RWMutex
	factories []Factory
}

// NewRegistry returns a Registry holding factories. Factories creating a
// type already registered are ignored.
func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{}
	for _, f := range factories {
		_ = r.Register(f)
	}
	return r
}

// Register adds f. It is an error to register a second factory for
// the same extension type.
func (r *Registry) Register(f Factory) error {
	if f == nil {
		return errors.WithStack(synerr.Precondition("Registry.Register", synerr.WithMessage("factory must not be nil")))
	}
	t := typeOf(f.New())
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.factories {
		if typeOf(it.New()) == t {
			return errors.WithStack(synerr.Precondition("Registry.Register",
				synerr.WithMessage("extension type "+t.String()+" is already registered")))
		}
	}
	// copy on write: slices handed out by Lookup are never modified
	next := make([]Factory, 0, len(r.factories)+1)
	r.factories = append(append(next, r.factories...), f)
	return nil
}

// Unregister removes the factory creating the same extension type as f.
func (r *Registry) Unregister(f Factory) bool {
	if f == nil {
		return false
	}
	t := typeOf(f.New())
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.factories {
		if typeOf(it.New()) == t {
			next := make([]Factory, 0, len(r.factories)-1)
			r.factories = append(append(next, r.factories[:i]...), r.factories[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup returns the factories handling namespace, in registration
// order.
func (r *Registry) Lookup(namespace string) (found []Factory) {
	for _, f := range r.Factories() {
		if f.Matches(namespace) {
			found = append(found, f)
		}
	}
	return found
}

// Factories returns every registered factory, in registration order.
func (r *Registry) Factories() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories
}

func (r *Registry) Len() int { return len(r.Factories()) }
