package replacer

import (
	"github.com/schemax/exemplar/internal/types"
)

// ReplaceState holds information about the current position of a generation run.
//
// NamePath is a slice of names of the current element.
// It is used to build a path to the current element.
// For example, "users", "name", "first".
//
// ElementIndex is an index of the current element if the structure being
// generated is an array.
//
// RefStack is the stack of definition names whose references are currently
// being expanded on this branch. Re-entering a name on the stack means the
// definitions table contains a reference cycle.
type ReplaceState struct {
	NamePath     []string
	ElementIndex int
	RefStack     []string
}

func NewReplaceState(opts ...ReplaceStateOption) *ReplaceState {
	return (&ReplaceState{
		NamePath: []string{},
	}).WithOptions(opts...)
}

// NewFrom creates a new ReplaceState instance from the given one.
// Slices are copied so sibling branches never observe each other's path.
func (s *ReplaceState) NewFrom(src *ReplaceState) *ReplaceState {
	namePath := make([]string, len(src.NamePath))
	copy(namePath, src.NamePath)

	refStack := make([]string, len(src.RefStack))
	copy(refStack, src.RefStack)

	return &ReplaceState{
		NamePath: namePath,
		RefStack: refStack,
	}
}

// InRef reports whether the named definition is already being expanded
// on this branch.
func (s *ReplaceState) InRef(name string) bool {
	return types.SliceContains(s.RefStack, name)
}

type ReplaceStateOption func(*ReplaceState)

func (s *ReplaceState) WithOptions(options ...ReplaceStateOption) *ReplaceState {
	for _, opt := range options {
		opt(s)
	}
	return s
}

func WithName(name string) ReplaceStateOption {
	return func(state *ReplaceState) {
		state.NamePath = append(state.NamePath, name)
	}
}

func WithElementIndex(value int) ReplaceStateOption {
	return func(state *ReplaceState) {
		state.ElementIndex = value
	}
}

func WithRef(name string) ReplaceStateOption {
	return func(state *ReplaceState) {
		state.RefStack = append(state.RefStack, name)
	}
}
