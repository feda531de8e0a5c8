package token

import (
	"strings"
	"sync"
)

// Dynamic kind registry. IDs start after maxBuiltin (999).
var (
	registryMu   sync.RWMutex
	nextKindID   = maxBuiltin
	dynamicKinds = make(map[Kind]string)
	dynamicNames = make(map[string]Kind)
)

// Register registers a new literal kind with the given name and returns its
// ID. Registering the same name again returns the existing ID.
// Names are stored lowercase.
func Register(name string) Kind {
	name = strings.ToLower(name)

	registryMu.Lock()
	defer registryMu.Unlock()

	if k, ok := dynamicNames[name]; ok {
		return k
	}
	nextKindID++
	k := nextKindID
	dynamicKinds[k] = name
	dynamicNames[name] = k
	return k
}

// getDynamicName returns the name of a dynamic kind.
func getDynamicName(k Kind) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := dynamicKinds[k]
	return name, ok
}

// LookupDynamic returns the kind registered under name.
// Returns Invalid and false if the name is not registered.
func LookupDynamic(name string) (Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if k, ok := dynamicNames[strings.ToLower(name)]; ok {
		return k, true
	}
	return Invalid, false
}

// IsDynamic returns true if the kind was registered at runtime.
func IsDynamic(k Kind) bool {
	return k > maxBuiltin
}

// RegisteredKinds returns a copy of all registered dynamic kinds.
func RegisteredKinds() map[Kind]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make(map[Kind]string, len(dynamicKinds))
	for k, v := range dynamicKinds {
		result[k] = v
	}
	return result
}
