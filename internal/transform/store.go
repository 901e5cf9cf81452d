package transform

import (
	"fmt"
	"slices"
)

// Listener is notified after a parameter has been written.
type Listener func(p Param, value float64)

// Store is the single shared TransformSet. Renderers and UI controls each
// hold a reference to the same Store instead of a process-wide singleton.
//
// Store is not safe for concurrent use: it is read and written only from the
// render goroutine, where pointer handlers run to completion before the next
// frame reads the values.
type Store struct {
	values    Values
	listeners []*Listener
}

func NewStore(initial Values) *Store {
	return &Store{values: initial}
}

// Get returns the current value of the named parameter.
func (s *Store) Get(id string) (float64, error) {
	p, err := ParseParam(id)
	if err != nil {
		return 0, err
	}
	return s.values[p], nil
}

// Set replaces the value of the named parameter. The store does not clamp;
// range discipline is up to the caller.
func (s *Store) Set(id string, value float64) error {
	p, err := ParseParam(id)
	if err != nil {
		return err
	}
	s.SetValue(p, value)
	return nil
}

func (s *Store) Value(p Param) float64 {
	if !p.valid() {
		panic(fmt.Sprintf("transform: %v", p))
	}
	return s.values[p]
}

// SetValue writes p and synchronously notifies every listener registered
// when the write happened, in subscription order.
func (s *Store) SetValue(p Param, value float64) {
	if !p.valid() {
		panic(fmt.Sprintf("transform: %v", p))
	}
	s.values[p] = value

	for _, l := range slices.Clone(s.listeners) {
		(*l)(p, value)
	}
}

// Snapshot returns a copy of the whole set.
func (s *Store) Snapshot() Values {
	return s.values
}

// Subscribe registers fn for change notifications. Calling the returned
// function removes it; calling it again does nothing.
func (s *Store) Subscribe(fn Listener) func() {
	l := &fn
	s.listeners = append(s.listeners, l)

	return func() {
		for i, existing := range s.listeners {
			if existing == l {
				s.listeners = slices.Delete(slices.Clone(s.listeners), i, i+1)
				return
			}
		}
	}
}
