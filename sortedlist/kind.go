package sortedlist

import (
	"fmt"
	"strings"
)

// Kind identifies which of the two supported element types a list holds.
type Kind uint8

const (
	// KindUnset means no element type has been fixed yet.
	KindUnset Kind = iota
	// KindIntegral holds signed 64-bit integers in numeric order.
	KindIntegral
	// KindText holds strings in byte-wise (or natural) order.
	KindText
)

// Valid reports whether k is one of the supported element kinds.
func (k Kind) Valid() bool {
	return k == KindIntegral || k == KindText
}

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindIntegral:
		return "integral"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a user-facing type name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer", "integral":
		return KindIntegral, nil
	case "str", "string", "text":
		return KindText, nil
	default:
		return KindUnset, fmt.Errorf("%w: unknown element kind %q", ErrInvalidConfiguration, s)
	}
}
