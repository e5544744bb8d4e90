package entities

import "strings"

// AccessKind identifies the kind of reflective operation a sandboxed script
// is attempting against the host object graph.
type AccessKind int

const (
	KindMethod AccessKind = iota
	KindStaticMethod
	KindConstructor
	KindFieldGet
	KindFieldSet
	KindStaticFieldGet
	KindStaticFieldSet
)

// String returns the canonical signature prefix for the kind.
// Field get and set share one prefix, as do the static field operations.
func (k AccessKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindStaticMethod:
		return "staticMethod"
	case KindConstructor:
		return "new"
	case KindFieldGet, KindFieldSet:
		return "field"
	case KindStaticFieldGet, KindStaticFieldSet:
		return "staticField"
	default:
		return "unknown"
	}
}

// AccessDescriptor identifies a single reflective operation: kind, declaring
// type, member name and parameter type list. It carries no live reflection
// handles; policies and signature formatting operate purely on this value.
type AccessDescriptor struct {
	Kind           AccessKind
	DeclaringType  string
	Member         string
	ParameterTypes []string
}

// MethodAccess builds a descriptor for an instance method call.
func MethodAccess(declaringType, member string, parameterTypes ...string) AccessDescriptor {
	return AccessDescriptor{Kind: KindMethod, DeclaringType: declaringType, Member: member, ParameterTypes: parameterTypes}
}

// StaticMethodAccess builds a descriptor for a static method call.
func StaticMethodAccess(declaringType, member string, parameterTypes ...string) AccessDescriptor {
	return AccessDescriptor{Kind: KindStaticMethod, DeclaringType: declaringType, Member: member, ParameterTypes: parameterTypes}
}

// ConstructorAccess builds a descriptor for a constructor invocation.
func ConstructorAccess(declaringType string, parameterTypes ...string) AccessDescriptor {
	return AccessDescriptor{Kind: KindConstructor, DeclaringType: declaringType, ParameterTypes: parameterTypes}
}

// FieldGetAccess builds a descriptor for an instance field read.
func FieldGetAccess(declaringType, member string) AccessDescriptor {
	return AccessDescriptor{Kind: KindFieldGet, DeclaringType: declaringType, Member: member}
}

// FieldSetAccess builds a descriptor for an instance field write.
func FieldSetAccess(declaringType, member string) AccessDescriptor {
	return AccessDescriptor{Kind: KindFieldSet, DeclaringType: declaringType, Member: member}
}

// StaticFieldGetAccess builds a descriptor for a static field read.
func StaticFieldGetAccess(declaringType, member string) AccessDescriptor {
	return AccessDescriptor{Kind: KindStaticFieldGet, DeclaringType: declaringType, Member: member}
}

// StaticFieldSetAccess builds a descriptor for a static field write.
func StaticFieldSetAccess(declaringType, member string) AccessDescriptor {
	return AccessDescriptor{Kind: KindStaticFieldSet, DeclaringType: declaringType, Member: member}
}

// Signature renders the canonical signature string for the descriptor,
// e.g. "staticMethod os Getenv string" or "new os.File string".
// Constructors omit the member name; field accesses omit parameters.
// Audit logging and the deny list both match on this exact format.
func (d AccessDescriptor) Signature() string {
	parts := make([]string, 0, 3+len(d.ParameterTypes))
	parts = append(parts, d.Kind.String(), d.DeclaringType)
	if d.Kind != KindConstructor && d.Member != "" {
		parts = append(parts, d.Member)
	}
	switch d.Kind {
	case KindMethod, KindStaticMethod, KindConstructor:
		parts = append(parts, d.ParameterTypes...)
	}
	return strings.Join(parts, " ")
}
