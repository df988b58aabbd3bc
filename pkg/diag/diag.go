// Package diag implements the two diagnostic kinds that flow out of lane
// inference: non-aborting Warnings and the single aborting RoadError.
package diag

import (
	"fmt"
	"strings"

	"laneinfer/pkg/tags"
)

// Kind classifies a diagnostic. The same Kind values are used for both
// warnings (recoverable) and errors (aborting); which list a diagnostic
// lands in is a pass's decision, not the Kind's.
type Kind int

const (
	Unimplemented Kind = iota
	Deprecated
	Ambiguous
	Unsupported
	Internal
)

func (k Kind) String() string {
	switch k {
	case Unimplemented:
		return "unimplemented"
	case Deprecated:
		return "deprecated"
	case Ambiguous:
		return "ambiguous"
	case Unsupported:
		return "unsupported"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Msg is a single diagnostic: a kind, a human-readable description, and the
// subset of tags that triggered it, so callers can display context.
type Msg struct {
	Kind        Kind
	Description string
	Tags        tags.Tags
}

func (m Msg) String() string {
	keys := m.Tags.Keys()
	if len(keys) == 0 {
		return fmt.Sprintf("%s: %s", m.Kind, m.Description)
	}
	return fmt.Sprintf("%s: %s (tags: %s)", m.Kind, m.Description, strings.Join(keys, ", "))
}

// Warnings accumulates non-aborting diagnostics in the order the mode
// passes produced them. Determinism requires pass order to dictate warning
// order, so Warnings is append-only.
type Warnings struct {
	list []Msg
}

// Add appends a warning.
func (w *Warnings) Add(kind Kind, description string, t tags.Tags) {
	w.list = append(w.list, Msg{Kind: kind, Description: description, Tags: t})
}

// List returns the accumulated warnings, in emission order.
func (w *Warnings) List() []Msg {
	return w.list
}

// Empty reports whether no warnings have been recorded.
func (w *Warnings) Empty() bool {
	return len(w.list) == 0
}

// Error is the single aborting error the pipeline can return. It wraps
// exactly one Msg.
type Error struct {
	Msg Msg
}

// NewError builds an aborting Error of the given kind.
func NewError(kind Kind, description string, t tags.Tags) *Error {
	return &Error{Msg: Msg{Kind: kind, Description: description, Tags: t}}
}

func (e *Error) Error() string {
	return e.Msg.String()
}

// Is supports errors.Is comparisons against a Kind wrapped as an error via
// KindError, so callers (e.g. an HTTP layer) can branch on diagnostic kind
// without type-asserting to *Error.
func (e *Error) Is(target error) bool {
	ke, ok := target.(kindError)
	return ok && e.Msg.Kind == Kind(ke)
}

// kindError lets a bare Kind be compared against with errors.Is.
type kindError Kind

func (k kindError) Error() string { return Kind(k).String() }

// KindError returns a sentinel error usable with errors.Is to test an
// Error's Kind, e.g. errors.Is(err, diag.KindError(diag.Unsupported)).
func KindError(k Kind) error { return kindError(k) }

// ErrorFromWarnings aggregates a non-empty Warnings into a single Error,
// for the error_on_warnings config option.
func ErrorFromWarnings(w *Warnings) *Error {
	if w.Empty() {
		return nil
	}
	descs := make([]string, len(w.list))
	for i, m := range w.list {
		descs[i] = m.String()
	}
	return &Error{Msg: Msg{
		Kind:        Internal,
		Description: fmt.Sprintf("%d warning(s) treated as fatal: %s", len(w.list), strings.Join(descs, "; ")),
	}}
}
