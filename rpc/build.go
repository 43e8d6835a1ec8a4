package rpc

import (
	"errors"
	"fmt"

	"github.com/qchain/ethrpc/methods"
)

// Argument binding errors. All of them surface before any transport I/O.
var (
	ErrUnsupportedMethod  = errors.New("unsupported RPC method")
	ErrMissingArgument    = errors.New("missing required argument")
	ErrDuplicateArgument  = errors.New("argument bound both positionally and by name")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// BindOptions adjusts how unbound optionals are filled.
type BindOptions struct {
	// Defaults overrides the table default of the named parameters. Only
	// consulted for optional parameters the caller left unbound and whose
	// table entry carries a plain default.
	Defaults map[string]interface{}
}

// Build constructs a request for the canonical wire method name. Positional
// arguments bind to the declared parameter order; named arguments overlay by
// parameter name. Unbound optionals take their declared defaults.
func Build(wireName string, id uint64, positional []interface{}, named map[string]interface{}) (*Request, error) {
	return BuildWith(wireName, id, positional, named, BindOptions{})
}

// BuildWith is Build with per-call default overrides.
func BuildWith(wireName string, id uint64, positional []interface{}, named map[string]interface{}, opts BindOptions) (*Request, error) {
	spec, ok := methods.Get(wireName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, wireName)
	}

	if len(positional) > len(spec.Params) {
		return nil, fmt.Errorf("%w: %s takes at most %d positional arguments, got %d",
			ErrUnexpectedArgument, wireName, len(spec.Params), len(positional))
	}

	values := make([]interface{}, len(spec.Params))
	bound := make([]bool, len(spec.Params))
	for i, v := range positional {
		values[i] = v
		bound[i] = true
	}

	for name, v := range named {
		i := spec.Index(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnexpectedArgument, wireName, name)
		}
		if bound[i] {
			return nil, fmt.Errorf("%w: %s parameter %q", ErrDuplicateArgument, wireName, name)
		}
		values[i] = v
		bound[i] = true
	}

	params := make([]interface{}, 0, len(spec.Params))
	for i, p := range spec.Params {
		if bound[i] {
			params = append(params, values[i])
			continue
		}
		switch {
		case p.Required:
			return nil, fmt.Errorf("%w: %s parameter %q", ErrMissingArgument, wireName, p.Name)
		case p.Omit:
			if laterBound(bound, i) {
				// A dropped parameter cannot precede a bound one without
				// shifting positions; hold its slot with a null.
				params = append(params, nil)
			}
		case p.Null:
			params = append(params, nil)
		default:
			if v, ok := opts.Defaults[p.Name]; ok {
				params = append(params, v)
			} else {
				params = append(params, p.Default)
			}
		}
	}

	return &Request{
		Version: Version,
		Method:  spec.Name,
		Params:  params,
		ID:      id,
	}, nil
}

func laterBound(bound []bool, i int) bool {
	for _, b := range bound[i+1:] {
		if b {
			return true
		}
	}
	return false
}
