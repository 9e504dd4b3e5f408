// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package step

import "fmt"

// Pair is one (scope, step) entry of a drained collection.
type Pair[K Scope, S any] struct {
	Scope K
	Step  S
}

// Collection stores the step instances of one step kind, one per scope value.
// It is how the scope of a step kind is defined:
//
//   - Unique for step kinds that are globally unique (scope Unit).
//   - Keyed for step kinds scoped by a key such as a target.
type Collection[K Scope, S any] interface {
	// Factory returns the step instance for scope, creating it on first use.
	Factory(scope K) S

	// Len is the number of step instances created so far.
	Len() int

	// Drain hands every (scope, step) pair to the caller and closes the
	// collection. Any later Factory or Drain call panics.
	Drain() []Pair[K, S]
}

// Keyed is a map-backed collection. Entries are never evicted, and Drain
// yields them in the order their scopes were first registered.
type Keyed[K Scope, S any] struct {
	newStep func(K) S
	order   []K
	items   map[K]S
	drained bool
}

// NewKeyed creates an empty keyed collection. newStep constructs the step
// instance for a scope the first time an operand is registered under it.
//
// Factory hands out S by value, so S must be a pointer type for appends to
// reach the stored step.
func NewKeyed[K Scope, S any](newStep func(K) S) *Keyed[K, S] {
	return &Keyed[K, S]{
		newStep: newStep,
		items:   make(map[K]S),
	}
}

// Factory implements Collection.
func (c *Keyed[K, S]) Factory(scope K) S {
	if c.drained {
		panic(fmt.Sprintf("step: keyed collection of %T used after drain", *new(S)))
	}
	if s, ok := c.items[scope]; ok {
		return s
	}
	s := c.newStep(scope)
	c.items[scope] = s
	c.order = append(c.order, scope)
	return s
}

// Len implements Collection.
func (c *Keyed[K, S]) Len() int {
	return len(c.items)
}

// Drain implements Collection.
func (c *Keyed[K, S]) Drain() []Pair[K, S] {
	if c.drained {
		panic(fmt.Sprintf("step: keyed collection of %T drained twice", *new(S)))
	}
	pairs := make([]Pair[K, S], 0, len(c.order))
	for _, scope := range c.order {
		pairs = append(pairs, Pair[K, S]{Scope: scope, Step: c.items[scope]})
	}
	c.drained = true
	c.order = nil
	c.items = nil
	return pairs
}

// Unique holds at most one step instance. Reaching its Factory twice means
// the same singleton step was registered through two paths, which is a wiring
// bug, so it panics.
type Unique[S any] struct {
	name    string
	newStep func(Unit) S
	slot    S
	set     bool
	drained bool
}

// NewUnique creates an empty unique collection. name identifies the step
// kind in the panic message.
func NewUnique[S any](name string, newStep func(Unit) S) *Unique[S] {
	return &Unique[S]{name: name, newStep: newStep}
}

// Factory implements Collection.
func (c *Unique[S]) Factory(scope Unit) S {
	if c.drained {
		panic(fmt.Sprintf("step: unique collection for %s used after drain", c.name))
	}
	if c.set {
		panic(fmt.Sprintf("step: tried to insert twice into unique collection for %s", c.name))
	}
	c.slot = c.newStep(scope)
	c.set = true
	return c.slot
}

// Len implements Collection.
func (c *Unique[S]) Len() int {
	if c.set {
		return 1
	}
	return 0
}

// Drain implements Collection.
func (c *Unique[S]) Drain() []Pair[Unit, S] {
	if c.drained {
		panic(fmt.Sprintf("step: unique collection for %s drained twice", c.name))
	}
	c.drained = true
	if !c.set {
		return nil
	}
	pairs := []Pair[Unit, S]{{Scope: Unit{}, Step: c.slot}}
	var zero S
	c.slot = zero
	c.set = false
	return pairs
}

var (
	_ Collection[Unit, any] = (*Keyed[Unit, any])(nil)
	_ Collection[Unit, any] = (*Unique[any])(nil)
)
