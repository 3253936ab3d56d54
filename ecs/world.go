package ecs

import (
	"github.com/milk9111/santa/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, resources and the entity hierarchy.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]store
	resources map[component.ComponentID]any

	parents  map[Entity]Entity
	children map[Entity][]Entity
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]store),
		resources: make(map[component.ComponentID]any),
		parents:   make(map[Entity]Entity),
		children:  make(map[Entity][]Entity),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and detaches it from its parent.
// Children are left alive; use DestroyRecursive to take a subtree down.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	w.detach(e)
	for _, child := range w.children[e] {
		delete(w.parents, child)
	}
	delete(w.children, e)
	return w.entities.destroy(e)
}

// DestroyRecursive destroys e and all of its descendants. It returns the
// number of entities destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if w == nil || !w.entities.isAlive(e) {
		return 0
	}
	n := 0
	kids := append([]Entity(nil), w.children[e]...)
	for _, child := range kids {
		n += DestroyRecursive(w, child)
	}
	if DestroyEntity(w, e) {
		n++
	}
	return n
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// SetParent attaches child under parent. Reparenting moves the child.
func SetParent(w *World, child, parent Entity) error {
	if !IsAlive(w, child) || !IsAlive(w, parent) {
		return component.ErrEntityNotAlive
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Parent returns the parent of e, if any.
func Parent(w *World, e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of the direct children of e.
func Children(w *World, e Entity) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.children[e]...)
}

func (w *World) detach(child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, s := range siblings {
		if s == child {
			w.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }
