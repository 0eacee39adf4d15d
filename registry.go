package expects

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
)

// registry collects Registrations during package initialisation. It is
// sealed by the first read and never changes afterwards.
type registry struct {
	mu      sync.Mutex
	sealed  bool
	index   map[reflect.Type]int
	entries []Registration
}

// global is the process-wide registry filled by generated init functions.
var global = &registry{}

// Register records the contract of the declaring component type T.
//
// Register is called from the init function expectgen generates; a package
// declaring contracts therefore contributes them as soon as it is linked into
// the program. Registering the same type again is a no-op.
//
// Register panics if T is not a struct, declares no expected components, or
// if the registry has already been read by Registrations or Plugin.
func Register[T Contract]() {
	global.add(registrationOf[T]())
}

// Registrations returns every registered contract. The order is unspecified.
// The first call seals the registry.
func Registrations() []Registration {
	return global.snapshot()
}

func (r *registry) add(reg Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		panic(fmt.Sprintf("expects: %s registered after startup; Register must only be called from init", reg.name))
	}
	if _, ok := r.index[reg.typ]; ok {
		slog.Debug("expects: duplicate registration ignored", "type", reg.name)
		return
	}
	if r.index == nil {
		r.index = make(map[reflect.Type]int)
	}
	r.index[reg.typ] = len(r.entries)
	r.entries = append(r.entries, reg)
}

func (r *registry) snapshot() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
	return slices.Clone(r.entries)
}
