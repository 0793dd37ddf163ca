package backtracking

import (
	"testing"

	"github.com/dananau/gtpyhop-go/internal/htn"
)

func actionNames(plan htn.Plan) []string {
	names := make([]string, len(plan))
	for i, a := range plan {
		names[i] = a.Name
	}
	return names
}

func TestPutItBacktracksOnceForNeed0(t *testing.T) {
	htn.Verbosity = 0
	NewDomain()
	s0 := InitialState()

	plan, ok, err := htn.FindPlan(s0, []htn.TodoItem{htn.Task("put_it"), htn.Task("need0")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a plan")
	}
	want := []string{"putv", "getv", "getv"}
	got := actionNames(plan)
	if len(got) != len(want) {
		t.Fatalf("got %v, want shape %v", got, want)
	}
	if plan[0].Args[0] != 0 || plan[1].Args[0] != 0 || plan[2].Args[0] != 0 {
		t.Fatalf("expected the flag=0 solution, got %v", plan)
	}
}

func TestPutItBacktracksTwiceForNeed1(t *testing.T) {
	htn.Verbosity = 0
	NewDomain()
	s0 := InitialState()

	plan, ok, err := htn.FindPlan(s0, []htn.TodoItem{htn.Task("put_it"), htn.Task("need1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a plan")
	}
	if plan[0].Args[0] != 1 {
		t.Fatalf("expected the flag=1 solution, got %v", plan)
	}
}

func TestNeed10TriesBothOrders(t *testing.T) {
	htn.Verbosity = 0
	NewDomain()
	s0 := InitialState()

	plan, ok, err := htn.FindPlan(s0, []htn.TodoItem{htn.Task("put_it"), htn.Task("need10")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a plan")
	}
	if plan[0].Args[0] != 0 {
		t.Fatalf("expected the flag=0 solution, got %v", plan)
	}
}
