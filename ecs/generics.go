package ecs

import (
	"fmt"

	"github.com/milk9111/santa/ecs/component"
)

func storeOf[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	s := &sparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add inserts or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeOf(w, kind, true).set(e.id(), value)
	return nil
}

// Remove deletes the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeOf(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeOf(w, kind, false)
	return s != nil && s.has(e.id())
}

// Get returns the component of the given kind on e. The pointer is live:
// writes through it are visible to every other system.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := storeOf(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// Count returns how many live entities carry the kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := storeOf(w, kind, false)
	if s == nil {
		return 0
	}
	return s.len()
}

// First returns any entity carrying the kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeOf(w, kind, false)
	if s == nil || s.len() == 0 {
		return 0, false
	}
	return w.entities.resolve(s.ids()[0])
}

// Single returns the one entity carrying the kind and panics when there is
// not exactly one. Use it for singletons like the player and the camera.
func Single[T any](w *World, kind component.ComponentKind[T]) Entity {
	if n := Count(w, kind); n != 1 {
		panic(fmt.Sprintf("ecs: expected exactly one %T entity, found %d", *new(T), n))
	}
	e, _ := First(w, kind)
	return e
}

// Query returns the entities carrying every listed kind.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
	for _, id := range smallest.ids() {
		matched := true
		for _, s := range stores {
			if !s.has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.resolve(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// ForEach calls fn for every entity carrying kind. The id list is snapshotted
// first so fn may add or remove components and entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeOf(w, kind, false)
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.ids()...)
	for _, id := range ids {
		e, ok := w.entities.resolve(id)
		if !ok {
			continue
		}
		v, ok := s.get(id)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 iterates entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range Query(w, ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 iterates entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range Query(w, ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// ForEach4 iterates entities carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range Query(w, ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}

// SetResource stores a world-wide singleton, replacing any previous value.
func SetResource[T any](w *World, kind component.ComponentKind[T], value *T) {
	if w == nil || !kind.Valid() || value == nil {
		return
	}
	w.resources[kind.ID()] = value
}

// Resource returns the world-wide singleton of the given kind.
func Resource[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() {
		return nil, false
	}
	v, ok := w.resources[kind.ID()]
	if !ok {
		return nil, false
	}
	typed, ok := v.(*T)
	return typed, ok
}

// MustResource is Resource for resources the game cannot run without.
func MustResource[T any](w *World, kind component.ComponentKind[T]) *T {
	v, ok := Resource(w, kind)
	if !ok {
		panic(fmt.Sprintf("ecs: missing resource %T", *new(T)))
	}
	return v
}
