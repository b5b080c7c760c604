// Package dom provides a minimal element abstraction for controllers to
// mutate. It models just the class-list surface a drop-zone controller
// needs; the real element lives in whatever rendering layer hosts the
// controller.
package dom

import (
	"strings"
	"sync"
)

// Element is a class-list holder bound to one controller instance.
// All methods are safe for concurrent use.
type Element struct {
	mu      sync.RWMutex
	order   []string
	classes map[string]struct{}
}

// NewElement creates an element with the given initial class tokens.
func NewElement(classes ...string) *Element {
	e := &Element{
		classes: make(map[string]struct{}),
	}
	e.AddClass(classes...)
	return e
}

// AddClass adds the given class tokens. Adding a class that is already
// present is a no-op.
func (e *Element) AddClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := e.classes[name]; ok {
			continue
		}
		e.classes[name] = struct{}{}
		e.order = append(e.order, name)
	}
}

// RemoveClass removes the given class tokens. Removing an absent class is
// a no-op, not an error.
func (e *Element) RemoveClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		if _, ok := e.classes[name]; !ok {
			continue
		}
		delete(e.classes, name)
		for i, existing := range e.order {
			if existing == name {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// HasClass returns true if the class token is present.
func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.classes[name]
	return ok
}

// ClassName returns the class tokens joined by single spaces, in the order
// they were first added.
func (e *Element) ClassName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return strings.Join(e.order, " ")
}
