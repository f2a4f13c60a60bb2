package pdf

import (
	"fmt"
	"sort"
	"sync"
)

var (
	backendsMu sync.RWMutex
	backends   = map[string]Backend{}
)

// RegisterBackend makes a backend available to WithBackends under its name.
// Registering a name twice replaces the earlier backend.
func RegisterBackend(b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[b.Name()] = b
}

// Backends returns the names of all registered backends, sorted
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultBackends returns the order Open tries backends in when no
// WithBackends option is given.
func DefaultBackends() []string {
	return []string{"pdfcpu", "ledongthuc", "dslipak"}
}

func lookupBackends(names []string) ([]Backend, error) {
	if len(names) == 0 {
		return nil, configError(fmt.Errorf("no backends selected"))
	}

	backendsMu.RLock()
	defer backendsMu.RUnlock()

	selected := make([]Backend, 0, len(names))
	for _, name := range names {
		b, ok := backends[name]
		if !ok {
			return nil, configError(fmt.Errorf("unknown backend %q", name))
		}
		selected = append(selected, b)
	}
	return selected, nil
}

// maxPageTreeDepth bounds page tree walks; a cyclic /Kids reference hits it
const maxPageTreeDepth = 64
