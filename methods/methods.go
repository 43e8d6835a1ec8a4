// Package methods holds the static dispatch table for the JSON-RPC API:
// the bidirectional mapping between the snake_case aliases and the
// camelCase wire names, and the declared parameter list of every method.
//
// The table is fixed at build time. Register exists as a forward
// compatibility hook for callers that talk to nodes with custom modules.
package methods

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned when a name matches neither a snake alias
// nor a wire name in the table.
var ErrUnknownMethod = errors.New("unknown RPC method")

// Param describes one declared parameter of an RPC method.
type Param struct {
	// Name is the keyword under which the parameter may be bound.
	Name string

	// Required marks parameters that the caller must supply.
	Required bool

	// Default is substituted when an optional parameter is left unbound.
	Default interface{}

	// Null serializes an unbound optional as an explicit JSON null.
	Null bool

	// Omit drops an unbound optional from params entirely. Only trailing
	// parameters may use this mode.
	Omit bool
}

// Method is one row of the dispatch table.
type Method struct {
	// Name is the canonical wire name sent in the request's method field.
	Name string

	// Alias is the snake_case spelling accepted by Resolve.
	Alias string

	// ID is the fixed request id the upstream API documentation uses for
	// this method. Clients may substitute a sequential id instead.
	ID uint64

	// Params is the ordered parameter list.
	Params []Param
}

// Index returns the position of the named parameter, or -1.
func (m *Method) Index(name string) int {
	for i := range m.Params {
		if m.Params[i].Name == name {
			return i
		}
	}
	return -1
}

var (
	byWire  = make(map[string]*Method)
	byAlias = make(map[string]*Method)
)

func init() {
	for i := range table {
		if err := register(&table[i]); err != nil {
			panic(err)
		}
	}
}

func register(m *Method) error {
	if _, ok := byWire[m.Name]; ok {
		return fmt.Errorf("method %q registered twice", m.Name)
	}
	if other, ok := byAlias[m.Alias]; ok && other.Name != m.Name {
		return fmt.Errorf("alias %q maps to both %q and %q", m.Alias, other.Name, m.Name)
	}
	byWire[m.Name] = m
	byAlias[m.Alias] = m
	return nil
}

// Register adds a method to the table at runtime. It fails if either
// spelling collides with an existing entry.
func Register(m Method) error {
	return register(&m)
}

// Resolve maps either spelling of a method name to its canonical wire name.
func Resolve(name string) (string, error) {
	if m, ok := byAlias[name]; ok {
		return m.Name, nil
	}
	if m, ok := byWire[name]; ok {
		return m.Name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Alias maps either spelling of a method name to its snake_case alias.
func Alias(name string) (string, error) {
	if m, ok := byWire[name]; ok {
		return m.Alias, nil
	}
	if m, ok := byAlias[name]; ok {
		return m.Alias, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Get returns the table row for a canonical wire name.
func Get(wireName string) (*Method, bool) {
	m, ok := byWire[wireName]
	return m, ok
}

// All returns every registered method, keyed by wire name. The map is a
// copy; the rows are shared and must not be mutated.
func All() map[string]*Method {
	out := make(map[string]*Method, len(byWire))
	for k, v := range byWire {
		out[k] = v
	}
	return out
}
