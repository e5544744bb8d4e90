package hostfuncs

import (
	"context"
	"fmt"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/errors"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// AccessCheckName is the handler name scripts invoke to ask whether a
// reflective operation is allowed.
const AccessCheckName = "access_check"

// Wire values for AccessCheckRequest.Kind.
const (
	WireKindMethod         = "method"
	WireKindStaticMethod   = "staticMethod"
	WireKindConstructor    = "new"
	WireKindFieldGet       = "fieldGet"
	WireKindFieldSet       = "fieldSet"
	WireKindStaticFieldGet = "staticFieldGet"
	WireKindStaticFieldSet = "staticFieldSet"
)

// AccessCheckRequest describes one reflective operation a script wants to
// perform on the host object graph.
type AccessCheckRequest struct {
	Kind           string   `json:"kind"`
	DeclaringType  string   `json:"declaring_type"`
	Member         string   `json:"member,omitempty"`
	ParameterTypes []string `json:"parameter_types,omitempty"`
}

// AccessCheckResponse is the verdict for one AccessCheckRequest.
type AccessCheckResponse struct {
	Error     *entities.ErrorDetail `json:"error,omitempty"`
	Signature string                `json:"signature,omitempty"`
	Permitted bool                  `json:"permitted"`
}

// accessCheckConfig holds configuration for the access-check handler.
type accessCheckConfig struct {
	denialHandler ports.DenialHandler
}

func defaultAccessCheckConfig() accessCheckConfig {
	return accessCheckConfig{}
}

// AccessCheckOption configures the access-check handler.
type AccessCheckOption func(*accessCheckConfig)

// WithDenialHandler sets the handler notified when the chain's final
// verdict is deny. Rechecks inside the chain never reach it.
func WithDenialHandler(h ports.DenialHandler) AccessCheckOption {
	return func(c *accessCheckConfig) {
		c.denialHandler = h
	}
}

// NewAccessCheckHandler builds the access-check host function backed by a
// policy chain.
func NewAccessCheckHandler(chain ports.Whitelist, opts ...AccessCheckOption) HostFunc[AccessCheckRequest, AccessCheckResponse] {
	cfg := defaultAccessCheckConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, req AccessCheckRequest) AccessCheckResponse {
		descriptor, err := descriptorFromWire(req)
		if err != nil {
			return AccessCheckResponse{
				Error: entities.NewErrorDetail("validation", err.Error()),
			}
		}

		signature := descriptor.Signature()
		if dispatch(chain, descriptor) {
			return AccessCheckResponse{Permitted: true, Signature: signature}
		}

		if cfg.denialHandler != nil {
			cfg.denialHandler.OnDenial(signature, "no whitelist permitted it")
		}
		rejected := &errors.RejectedAccessError{
			Rejection: entities.NewRejection(descriptor),
		}
		return AccessCheckResponse{
			Signature: signature,
			Error:     rejected.ToErrorDetail(),
		}
	}
}

// descriptorFromWire validates and converts a wire request.
func descriptorFromWire(req AccessCheckRequest) (entities.AccessDescriptor, error) {
	if req.DeclaringType == "" {
		return entities.AccessDescriptor{}, fmt.Errorf("declaring_type is required")
	}

	switch req.Kind {
	case WireKindConstructor:
		return entities.ConstructorAccess(req.DeclaringType, req.ParameterTypes...), nil
	case WireKindMethod, WireKindStaticMethod, WireKindFieldGet, WireKindFieldSet,
		WireKindStaticFieldGet, WireKindStaticFieldSet:
		if req.Member == "" {
			return entities.AccessDescriptor{}, fmt.Errorf("member is required for kind %q", req.Kind)
		}
	default:
		return entities.AccessDescriptor{}, fmt.Errorf("unknown access kind %q", req.Kind)
	}

	switch req.Kind {
	case WireKindMethod:
		return entities.MethodAccess(req.DeclaringType, req.Member, req.ParameterTypes...), nil
	case WireKindStaticMethod:
		return entities.StaticMethodAccess(req.DeclaringType, req.Member, req.ParameterTypes...), nil
	case WireKindFieldGet:
		return entities.FieldGetAccess(req.DeclaringType, req.Member), nil
	case WireKindFieldSet:
		return entities.FieldSetAccess(req.DeclaringType, req.Member), nil
	case WireKindStaticFieldGet:
		return entities.StaticFieldGetAccess(req.DeclaringType, req.Member), nil
	default:
		return entities.StaticFieldSetAccess(req.DeclaringType, req.Member), nil
	}
}

// dispatch routes the descriptor to the matching chain entry point.
// Receivers, arguments and values never cross the wire, so those are nil.
func dispatch(chain ports.Whitelist, d entities.AccessDescriptor) bool {
	switch d.Kind {
	case entities.KindMethod:
		return chain.PermitsMethod(d, nil, nil)
	case entities.KindConstructor:
		return chain.PermitsConstructor(d, nil)
	case entities.KindStaticMethod:
		return chain.PermitsStaticMethod(d, nil)
	case entities.KindFieldGet:
		return chain.PermitsFieldGet(d, nil)
	case entities.KindFieldSet:
		return chain.PermitsFieldSet(d, nil, nil)
	case entities.KindStaticFieldGet:
		return chain.PermitsStaticFieldGet(d)
	default:
		return chain.PermitsStaticFieldSet(d, nil)
	}
}

// AccessBundle registers the access-check handler backed by the given
// chain.
func AccessBundle(chain ports.Whitelist, opts ...AccessCheckOption) RegistryOption {
	return WithHandler(AccessCheckName, NewAccessCheckHandler(chain, opts...))
}
