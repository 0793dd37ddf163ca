package htn

import "fmt"

// verifyGoalItem and verifyMultigoalItem are synthetic todo-list items the
// engine inserts after expanding a unigoal or multigoal via a method. They
// are never authored by domain code. When seekPlan reaches one, it checks
// that the goal actually holds in the current state; if a method lied about
// what it achieves, planning stops immediately with
// ErrMethodVerificationFailed rather than silently backtracking, since that
// indicates a bug in the domain rather than an ordinary dead end.
type verifyGoalItem struct {
	method string
	goal   Unigoal
}

func (v verifyGoalItem) isTodoItem() {}
func (v verifyGoalItem) String() string {
	return fmt.Sprintf("<verify %s>", v.goal)
}

type verifyMultigoalItem struct {
	method string
	mg     *Multigoal
}

func (v verifyMultigoalItem) isTodoItem() {}
func (v verifyMultigoalItem) String() string {
	return fmt.Sprintf("<verify %s>", v.mg)
}

func verifyGoal(s *State, v verifyGoalItem) error {
	have, ok := s.Get(v.goal.Var, v.goal.Arg)
	if ok && valuesEqual(have, v.goal.Value) {
		return nil
	}
	method := v.method
	if method == "" {
		method = "unknown method"
	}
	return fmt.Errorf("%w: %s claimed to achieve %s but it does not hold", ErrMethodVerificationFailed, method, v.goal)
}

func verifyMultigoal(s *State, v verifyMultigoalItem) error {
	unmet := goalsNotAchieved(s, v.mg)
	if len(unmet) == 0 {
		return nil
	}
	method := v.method
	if method == "" {
		method = "unknown method"
	}
	return fmt.Errorf("%w: %s claimed to achieve %s but %d goal(s) remain unmet", ErrMethodVerificationFailed, method, v.mg, len(unmet))
}
