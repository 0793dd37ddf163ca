package htn

import "testing"

// A tiny one-dimensional "robot on a line" domain, used only to exercise
// the engine's dispatch, backtracking, and verification machinery.

const lineMax = 5

func moveRight(s *State, args ...any) (*State, bool) {
	robot := args[0].(string)
	pos, _ := s.Get("pos", robot)
	p := pos.(int)
	if p >= lineMax {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("pos", robot, p+1)
	return ns, true
}

func moveLeft(s *State, args ...any) (*State, bool) {
	robot := args[0].(string)
	pos, _ := s.Get("pos", robot)
	p := pos.(int)
	if p <= 0 {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("pos", robot, p-1)
	return ns, true
}

func reachDirect(s *State, args ...any) ([]TodoItem, bool, error) {
	robot := args[0].(string)
	target := args[1].(int)
	pos, _ := s.Get("pos", robot)
	if pos.(int) == target {
		return []TodoItem{}, true, nil
	}
	return nil, false, nil
}

func reachStep(s *State, args ...any) ([]TodoItem, bool, error) {
	robot := args[0].(string)
	target := args[1].(int)
	pos, _ := s.Get("pos", robot)
	p := pos.(int)
	switch {
	case p < target:
		return []TodoItem{Action("moveRight", robot), Task("reach", robot, target)}, true, nil
	case p > target:
		return []TodoItem{Action("moveLeft", robot), Task("reach", robot, target)}, true, nil
	default:
		return nil, false, nil
	}
}

func unigoalReachPos(s *State, arg string, value any) ([]TodoItem, bool) {
	return []TodoItem{Task("reach", arg, value)}, true
}

func newLineDomain(t *testing.T) *Domain {
	t.Helper()
	d := NewDomain("line-test")
	if err := DeclareActions(moveRight, moveLeft); err != nil {
		t.Fatalf("DeclareActions: %v", err)
	}
	if err := DeclareTaskMethods("reach", reachDirect, reachStep); err != nil {
		t.Fatalf("DeclareTaskMethods: %v", err)
	}
	if err := DeclareUnigoalMethods("pos", unigoalReachPos); err != nil {
		t.Fatalf("DeclareUnigoalMethods: %v", err)
	}
	if err := DeclareMultigoalMethods(SplitMultigoal); err != nil {
		t.Fatalf("DeclareMultigoalMethods: %v", err)
	}
	return d
}

func TestFindPlanReachesTarget(t *testing.T) {
	Verbosity = 0
	newLineDomain(t)

	s0 := NewState("s0")
	s0.Set("pos", "r1", 0)

	plan, ok, err := FindPlan(s0, []TodoItem{Task("reach", "r1", 3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a plan")
	}
	if len(plan) != 3 {
		t.Fatalf("expected 3 actions, got %d: %v", len(plan), plan)
	}
	for _, step := range plan {
		if step.Name != "moveRight" {
			t.Fatalf("expected only moveRight steps, got %v", step)
		}
	}
}

func TestFindPlanOutOfRangeFails(t *testing.T) {
	Verbosity = 0
	newLineDomain(t)

	s0 := NewState("s0")
	s0.Set("pos", "r1", 0)

	_, ok, err := FindPlan(s0, []TodoItem{Task("reach", "r1", lineMax+5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected planning to fail for an unreachable target")
	}
}

func TestFindPlanUnigoalUsesTaskMethod(t *testing.T) {
	Verbosity = 0
	newLineDomain(t)

	s0 := NewState("s0")
	s0.Set("pos", "r1", 1)

	plan, ok, err := FindPlan(s0, []TodoItem{Goal("pos", "r1", 4)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || len(plan) != 3 {
		t.Fatalf("expected a 3-step plan, got ok=%v plan=%v", ok, plan)
	}
}

func TestFindPlanMultigoalSplitsAndVerifies(t *testing.T) {
	Verbosity = 0
	newLineDomain(t)

	s0 := NewState("s0")
	s0.Set("pos", "r1", 0)
	s0.Set("pos", "r2", 5)

	mg := NewMultigoal("g0")
	mg.Set("pos", "r1", 2)
	mg.Set("pos", "r2", 3)

	plan, ok, err := FindPlan(s0, []TodoItem{mg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a plan")
	}
	final := s0
	for _, step := range plan {
		fn := map[string]ActionFunc{"moveRight": moveRight, "moveLeft": moveLeft}[step.Name]
		ns, applicable := fn(final, step.Args...)
		if !applicable {
			t.Fatalf("replaying the returned plan failed at %v", step)
		}
		final = ns
	}
	if !mg.Satisfied(final) {
		t.Fatalf("multigoal not satisfied after executing the returned plan")
	}
}

func TestFindPlanUnknownTaskIsMalformed(t *testing.T) {
	Verbosity = 0
	newLineDomain(t)

	s0 := NewState("s0")
	_, _, err := FindPlan(s0, []TodoItem{Task("no_such_task")})
	if err == nil {
		t.Fatalf("expected an error for an unregistered task")
	}
}

func TestRunLazyLookaheadReachesTarget(t *testing.T) {
	Verbosity = 0
	newLineDomain(t)

	s0 := NewState("s0")
	s0.Set("pos", "r1", 0)

	final, err := RunLazyLookahead(s0, []TodoItem{Task("reach", "r1", 4)}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, _ := final.Get("pos", "r1")
	if pos.(int) != 4 {
		t.Fatalf("expected final pos 4, got %v", pos)
	}
}
