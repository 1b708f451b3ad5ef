package robot

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/robobattle/oerror"
)

var (
	registryMu sync.RWMutex
	registry   = orderedmap.NewOrderedMap[string, Factory]()
)

// Register makes a controller available under a fully qualified name, such as "bots.Hunter". It panics
// if the name is empty, already taken or f is nil.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || f == nil {
		panic(oerror.New("robot: invalid registration of %q", name))
	}
	if _, ok := registry.Get(name); ok {
		panic(oerror.New("robot: %q registered twice", name))
	}
	registry.Set(name, f)
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry.Get(name)
	if !ok {
		return nil, oerror.New("no controller registered as %q", name)
	}
	return f, nil
}

// Names returns every registered name in registration order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry.Keys()
}
