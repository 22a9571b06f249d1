package ui

import (
	"github.com/viant/sitekit/internal/collection"
	"sort"
	"sync"
)

// MemoryElement is an in-memory Element
type MemoryElement struct {
	ID      string
	mu      sync.RWMutex
	classes map[string]bool
}

func (e *MemoryElement) AddClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[name] = true
}

func (e *MemoryElement) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, name)
}

func (e *MemoryElement) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.classes[name]
}

// Classes returns sorted class names
func (e *MemoryElement) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ret := make([]string, 0, len(e.classes))
	for name := range e.classes {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Hidden reports whether the element carries the hidden class
func (e *MemoryElement) Hidden() bool {
	return e.HasClass(HiddenClass)
}

// MemoryDocument is an in-memory Document
type MemoryDocument struct {
	elements *collection.SyncMap[string, *MemoryElement]
}

func (d *MemoryDocument) ElementByID(id string) (Element, bool) {
	element, ok := d.elements.Get(id)
	if !ok {
		return nil, false
	}
	return element, true
}

// Add creates or returns the element with id and initial classes
func (d *MemoryDocument) Add(id string, classes ...string) *MemoryElement {
	element, ok := d.elements.Get(id)
	if !ok {
		element = &MemoryElement{ID: id, classes: map[string]bool{}}
		d.elements.Put(id, element)
	}
	for _, name := range classes {
		element.AddClass(name)
	}
	return element
}

func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{elements: collection.NewSyncMap[string, *MemoryElement]()}
}
