package slicer

import "fmt"

// Kind identifies the closed taxonomy of abort-worthy error categories.
// Only these kinds ever abort a core operation; per-triangle and
// per-chain degeneracies are counted and recovered instead (see
// slice.Statistics).
type Kind uint32

const (
	// KindNone indicates success; a nil *Error always carries this kind.
	KindNone Kind = iota

	// KindInvalidInput flags a caller error: non-positive layer height, a
	// mesh with zero triangles, or a vertex index out of range.
	KindInvalidInput

	// KindOutOfRange flags numeric overflow during scaled conversion.
	KindOutOfRange

	// KindDegenerateGeometry flags a ring shorter than 3 distinct points
	// after stitching, or a plane that yielded no closed ring where
	// topology implied at least one.
	KindDegenerateGeometry

	// KindCancelled flags an operation that observed a cancellation signal
	// at a checkpoint.
	KindCancelled

	// KindInconsistency flags an internal invariant violation: AABB
	// validation failure or a containment-tree cycle. It indicates a
	// predicate bug, never bad input.
	KindInconsistency
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindInvalidInput:
		return "invalid input"
	case KindOutOfRange:
		return "out of range"
	case KindDegenerateGeometry:
		return "degenerate geometry"
	case KindCancelled:
		return "cancelled"
	case KindInconsistency:
		return "inconsistency"
	default:
		return fmt.Sprintf("unknown error kind 0x%x", uint32(k))
	}
}

// Error is the error type returned by operations that can abort.
// Every abort-worthy failure carries one Kind; callers that
// need to branch on the taxonomy should use errors.As against *Error and
// inspect Kind, rather than comparing error strings.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf builds an *Error of the given kind with a formatted message. It is
// exported so sub-packages (bvh, slice) can raise the same taxonomy.
func Errorf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *Error of kind k.
func IsKind(err error, k Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == k
}
