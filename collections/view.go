package collections

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrExhausted is returned by [Cursor.Next] when no accepted element is left.
var ErrExhausted = errors.New("collections: iteration exhausted")

// Policy decides whether an element is visible during a traversal.
type Policy[T any] func(T) bool

// AcceptAll returns the default policy, which accepts every element.
func AcceptAll[T any]() Policy[T] {
	return func(T) bool { return true }
}

// View exposes a fixed slice through a replaceable iteration policy.
//
// The policy is consulted lazily, one element at a time, so replacing it
// affects every element a traversal has not reached yet, including
// traversals already in progress.
//
// A View is not safe for concurrent policy mutation and traversal without
// external synchronization.
type View[T any] struct {
	elems  []T
	policy Policy[T]
}

// NewView returns a view over elems. The slice is kept by reference and is
// never written to. Without a policy (or with a nil one) every element is
// accepted.
//
// Example:
//
//	v := NewView([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
//	for it := range v.All() {
//		fmt.Println(it) // 2, 4
//	}
func NewView[T any](elems []T, policy ...Policy[T]) *View[T] {
	v := &View[T]{elems: elems}
	var p Policy[T]
	if len(policy) > 0 {
		p = policy[0]
	}
	v.SetPolicy(p)
	return v
}

// SetPolicy replaces the iteration policy. A nil policy accepts everything.
func (v *View[T]) SetPolicy(p Policy[T]) {
	if p == nil {
		p = AcceptAll[T]()
	}
	v.policy = p
}

// Len returns the number of backing elements, ignoring the policy.
func (v *View[T]) Len() int {
	return len(v.elems)
}

// Iter starts a new traversal from the first element.
func (v *View[T]) Iter() *Cursor[T] {
	return &Cursor[T]{v: v}
}

// All returns a lazy sequence of the accepted elements.
// Every range over it starts a new traversal, and the policy is called
// once per element reached.
func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(v.elems); i++ {
			it := v.elems[i]
			if v.policy(it) && !yield(it) {
				return
			}
		}
	}
}

// String formats all the backing elements, e.g. "[1, 2, 3]".
//
// Note that the policy is ignored here: the result always lists the
// unfiltered elements. Use [View.All] to see what a traversal would yield.
func (v *View[T]) String() string {
	strs := Map(v.elems, func(it T) string { return fmt.Sprint(it) })
	return "[" + strings.Join(strs, ", ") + "]"
}

// Cursor is a single traversal over a [View].
type Cursor[T any] struct {
	v     *View[T]
	pos   int
	found bool // elems[pos] was accepted by HasNext
}

// HasNext reports whether an accepted element remains.
// Rejected elements before it are skipped. Once an element is accepted it
// stays the next one, so the policy is called once per element.
func (c *Cursor[T]) HasNext() bool {
	if c.found {
		return true
	}
	for c.pos < len(c.v.elems) {
		if c.v.policy(c.v.elems[c.pos]) {
			c.found = true
			return true
		}
		c.pos++
	}
	return false
}

// Next returns the next accepted element, or [ErrExhausted] if there is none.
func (c *Cursor[T]) Next() (res T, err error) {
	if !c.HasNext() {
		err = ErrExhausted
		return
	}
	res = c.v.elems[c.pos]
	c.pos++
	c.found = false
	return
}
