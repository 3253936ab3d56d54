package ecs

import (
	"reflect"
	"testing"
)

func recorder(log *[]string, name string) System {
	return SystemFunc(func(*World) { *log = append(*log, name) })
}

func TestSchedulerOrdering(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Scheduler, log *[]string) error
		want  []string
	}{
		{
			name: "registration_order",
			setup: func(s *Scheduler, log *[]string) error {
				_ = s.Add("update", recorder(log, "a"))
				return s.Add("update", recorder(log, "b"))
			},
			want: []string{"a", "b"},
		},
		{
			name: "after_reorders",
			setup: func(s *Scheduler, log *[]string) error {
				_ = s.Add("update", recorder(log, "clamp"), Label("clamp"), After("move"))
				_ = s.Add("update", recorder(log, "move"), Label("move"), After("gravity"))
				return s.Add("update", recorder(log, "gravity"), Label("gravity"))
			},
			want: []string{"gravity", "move", "clamp"},
		},
		{
			name: "before_reorders",
			setup: func(s *Scheduler, log *[]string) error {
				_ = s.Add("update", recorder(log, "physics"), Label("physics"))
				return s.Add("update", recorder(log, "control"), Before("physics"))
			},
			want: []string{"control", "physics"},
		},
		{
			name: "stages_run_in_order",
			setup: func(s *Scheduler, log *[]string) error {
				_ = s.Add("level", recorder(log, "level"))
				return s.Add("update", recorder(log, "update"))
			},
			want: []string{"update", "level"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			s := NewScheduler("update", "level")
			if err := tc.setup(s, &log); err != nil {
				t.Fatalf("setup: %v", err)
			}
			if err := s.Build(); err != nil {
				t.Fatalf("build: %v", err)
			}
			s.Update(NewWorld())
			if !reflect.DeepEqual(log, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, log)
			}
		})
	}
}

func TestSchedulerBuildErrors(t *testing.T) {
	noop := SystemFunc(func(*World) {})
	tests := []struct {
		name  string
		setup func(s *Scheduler) error
	}{
		{
			name: "cycle",
			setup: func(s *Scheduler) error {
				_ = s.Add("update", noop, Label("a"), After("b"))
				return s.Add("update", noop, Label("b"), After("a"))
			},
		},
		{
			name: "unknown_label",
			setup: func(s *Scheduler) error {
				return s.Add("update", noop, After("missing"))
			},
		},
		{
			name: "duplicate_label",
			setup: func(s *Scheduler) error {
				_ = s.Add("update", noop, Label("a"))
				return s.Add("update", noop, Label("a"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScheduler("update")
			if err := tc.setup(s); err != nil {
				t.Fatalf("setup: %v", err)
			}
			if err := s.Build(); err == nil {
				t.Fatalf("expected build error")
			}
		})
	}
}

func TestSchedulerRunCriteria(t *testing.T) {
	var log []string
	s := NewScheduler("physics")
	_ = s.Add("physics", recorder(&log, "step"))
	run := false
	if err := s.SetRunCriteria("physics", func(*World) bool { return run }); err != nil {
		t.Fatal(err)
	}

	w := NewWorld()
	s.Update(w)
	run = true
	s.Update(w)

	if len(log) != 1 {
		t.Fatalf("expected stage to run once, ran %d times", len(log))
	}
	if err := s.Add("physics", recorder(&log, "late")); err != ErrSchedulerBuilt {
		t.Fatalf("expected ErrSchedulerBuilt, got %v", err)
	}
	if err := s.Add("nope", recorder(&log, "x")); err == nil {
		t.Fatalf("expected error")
	}
}
