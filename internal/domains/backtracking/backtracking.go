// Package backtracking is a minimal domain with no purpose other than to
// force the planner to backtrack across both methods and actions, useful
// for exercising seekPlan's search behavior directly.
package backtracking

import "github.com/dananau/gtpyhop-go/internal/htn"

func putv(s *htn.State, args ...any) (*htn.State, bool) {
	ns := s.Copy()
	ns.Set("flag", "v", args[0])
	return ns, true
}

func getv(s *htn.State, args ...any) (*htn.State, bool) {
	v, ok := s.Get("flag", "v")
	if !ok || v != args[0] {
		return nil, false
	}
	return s, true
}

// mErr always proposes a combination that getv will reject, so the planner
// is forced to try the next method for put_it.
func mErr(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	return []htn.TodoItem{htn.Action("putv", 0), htn.Action("getv", 1)}, true, nil
}

func m0(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	return []htn.TodoItem{htn.Action("putv", 0), htn.Action("getv", 0)}, true, nil
}

func m1(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	return []htn.TodoItem{htn.Action("putv", 1), htn.Action("getv", 1)}, true, nil
}

func mNeed0(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	return []htn.TodoItem{htn.Action("getv", 0)}, true, nil
}

func mNeed1(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	return []htn.TodoItem{htn.Action("getv", 1)}, true, nil
}

// NewDomain builds and registers the domain and returns it.
func NewDomain() *htn.Domain {
	d := htn.NewDomain("backtracking")

	must(htn.DeclareActions(putv, getv))
	must(htn.DeclareTaskMethods("put_it", mErr, m0, m1))
	must(htn.DeclareTaskMethods("need0", mNeed0))
	must(htn.DeclareTaskMethods("need1", mNeed1))
	must(htn.DeclareTaskMethods("need01", mNeed0, mNeed1))
	must(htn.DeclareTaskMethods("need10", mNeed1, mNeed0))

	return d
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// InitialState returns the domain's prototypical starting state: flag
// unset (represented as -1).
func InitialState() *htn.State {
	s := htn.NewState("state0")
	s.Set("flag", "v", -1)
	return s
}
