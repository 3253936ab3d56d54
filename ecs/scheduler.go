package ecs

import (
	"errors"
	"fmt"
)

var ErrSchedulerBuilt = errors.New("ecs: scheduler already built")

// SystemOption configures how a system is ordered inside its stage.
type SystemOption func(*systemNode)

// Label names a system so other systems in the same stage can order against it.
func Label(label string) SystemOption {
	return func(n *systemNode) { n.label = label }
}

// Before orders the system ahead of the labelled systems.
func Before(labels ...string) SystemOption {
	return func(n *systemNode) { n.before = append(n.before, labels...) }
}

// After orders the system behind the labelled systems.
func After(labels ...string) SystemOption {
	return func(n *systemNode) { n.after = append(n.after, labels...) }
}

type systemNode struct {
	system System
	label  string
	before []string
	after  []string
}

type stage struct {
	name     string
	criteria func(w *World) bool
	nodes    []*systemNode
	order    []System
}

// Scheduler runs named stages in a fixed order. Inside a stage, systems run in
// the order implied by their Before/After constraints, falling back to
// registration order.
type Scheduler struct {
	stages []*stage
	built  bool
}

func NewScheduler(stages ...string) *Scheduler {
	s := &Scheduler{}
	for _, name := range stages {
		s.stages = append(s.stages, &stage{name: name})
	}
	return s
}

// SetRunCriteria gates a whole stage. The stage is skipped on ticks where fn
// returns false.
func (s *Scheduler) SetRunCriteria(stageName string, fn func(w *World) bool) error {
	st, err := s.stage(stageName)
	if err != nil {
		return err
	}
	st.criteria = fn
	return nil
}

// Add registers a system in a stage.
func (s *Scheduler) Add(stageName string, system System, opts ...SystemOption) error {
	if s.built {
		return ErrSchedulerBuilt
	}
	if system == nil {
		return fmt.Errorf("ecs: nil system in stage %q", stageName)
	}
	st, err := s.stage(stageName)
	if err != nil {
		return err
	}
	n := &systemNode{system: system}
	for _, opt := range opts {
		opt(n)
	}
	st.nodes = append(st.nodes, n)
	return nil
}

// Build resolves the ordering constraints of every stage. It fails on unknown
// labels, duplicate labels and cycles.
func (s *Scheduler) Build() error {
	if s.built {
		return nil
	}
	for _, st := range s.stages {
		order, err := sortStage(st)
		if err != nil {
			return err
		}
		st.order = order
	}
	s.built = true
	return nil
}

// Update runs every stage once.
func (s *Scheduler) Update(w *World) {
	if !s.built {
		if err := s.Build(); err != nil {
			panic("scheduler: " + err.Error())
		}
	}
	for _, st := range s.stages {
		if st.criteria != nil && !st.criteria(w) {
			continue
		}
		for _, system := range st.order {
			system.Update(w)
		}
	}
}

// Systems returns the resolved order of a stage.
func (s *Scheduler) Systems(stageName string) []System {
	st, err := s.stage(stageName)
	if err != nil {
		return nil
	}
	return append([]System(nil), st.order...)
}

func (s *Scheduler) stage(name string) (*stage, error) {
	for _, st := range s.stages {
		if st.name == name {
			return st, nil
		}
	}
	return nil, fmt.Errorf("ecs: unknown stage %q", name)
}

func sortStage(st *stage) ([]System, error) {
	byLabel := make(map[string]int, len(st.nodes))
	for i, n := range st.nodes {
		if n.label == "" {
			continue
		}
		if _, dup := byLabel[n.label]; dup {
			return nil, fmt.Errorf("ecs: stage %q: duplicate label %q", st.name, n.label)
		}
		byLabel[n.label] = i
	}

	edges := make([][]int, len(st.nodes))
	indegree := make([]int, len(st.nodes))
	link := func(from, to int) {
		edges[from] = append(edges[from], to)
		indegree[to]++
	}
	for i, n := range st.nodes {
		for _, l := range n.before {
			j, ok := byLabel[l]
			if !ok {
				return nil, fmt.Errorf("ecs: stage %q: unknown label %q", st.name, l)
			}
			link(i, j)
		}
		for _, l := range n.after {
			j, ok := byLabel[l]
			if !ok {
				return nil, fmt.Errorf("ecs: stage %q: unknown label %q", st.name, l)
			}
			link(j, i)
		}
	}

	// Kahn's algorithm, always picking the earliest registered ready node.
	done := make([]bool, len(st.nodes))
	order := make([]System, 0, len(st.nodes))
	for len(order) < len(st.nodes) {
		next := -1
		for i := range st.nodes {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("ecs: stage %q: ordering cycle", st.name)
		}
		done[next] = true
		order = append(order, st.nodes[next].system)
		for _, j := range edges[next] {
			indegree[j]--
		}
	}
	return order, nil
}
