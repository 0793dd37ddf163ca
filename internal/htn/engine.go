package htn

import (
	"fmt"
	"os"
)

// FindPlan searches for a totally-ordered sequence of actions that
// accomplishes every item in todo, starting from state. It returns
// (plan, true, nil) on success, (nil, false, nil) if no plan exists, and
// (nil, false, err) if a domain method is malformed or lied about what it
// achieves — a condition that is never worth retrying with another method.
func FindPlan(state *State, todo []TodoItem) (Plan, bool, error) {
	if Verbosity >= 1 {
		fmt.Fprintf(os.Stdout, "FindPlan> initial state %s, todo %v\n", state.Name, Plan(nil))
		fmt.Fprintf(os.Stdout, "FindPlan> todo list: %v\n", todo)
	}
	plan, ok, err := seekPlan(state, todo, Plan{}, 0)
	if Verbosity >= 1 {
		switch {
		case err != nil:
			fmt.Fprintf(os.Stdout, "FindPlan> fatal error: %v\n", err)
		case ok:
			fmt.Fprintf(os.Stdout, "FindPlan> result: %v\n", plan)
		default:
			fmt.Fprintf(os.Stdout, "FindPlan> no plan found\n")
		}
	}
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return plan, true, nil
}

func seekPlan(state *State, todo []TodoItem, plan Plan, depth int) (Plan, bool, error) {
	if Verbosity >= 2 {
		fmt.Fprintf(os.Stdout, "%sdepth %d, todo %v\n", indent(depth), depth, todo)
	}
	if len(todo) == 0 {
		return plan, true, nil
	}
	item := todo[0]
	rest := todo[1:]

	if CurrentDomain == nil {
		return nil, false, ErrNoCurrentDomain
	}

	switch it := item.(type) {
	case ActionCall:
		return seekAction(state, it, rest, plan, depth)
	case TaskCall:
		return seekTask(state, it, rest, plan, depth)
	case Unigoal:
		return seekUnigoal(state, it, rest, plan, depth)
	case *Multigoal:
		return seekMultigoal(state, it, rest, plan, depth)
	case verifyGoalItem:
		if err := verifyGoal(state, it); err != nil {
			return nil, false, err
		}
		return seekPlan(state, rest, plan, depth+1)
	case verifyMultigoalItem:
		if err := verifyMultigoal(state, it); err != nil {
			return nil, false, err
		}
		return seekPlan(state, rest, plan, depth+1)
	default:
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedItem, item)
	}
}

func seekAction(state *State, it ActionCall, rest []TodoItem, plan Plan, depth int) (Plan, bool, error) {
	fn, ok := CurrentDomain.actions[it.Name]
	if !ok {
		return nil, false, fmt.Errorf("%w: unknown action %q", ErrMalformedItem, it.Name)
	}
	newState, applicable := fn(state.Copy(), it.Args...)
	if !applicable {
		if Verbosity >= 3 {
			fmt.Fprintf(os.Stdout, "%saction %v inapplicable\n", indent(depth), it)
		}
		return nil, false, nil
	}
	return seekPlan(newState, rest, append(append(Plan{}, plan...), it), depth+1)
}

func seekTask(state *State, it TaskCall, rest []TodoItem, plan Plan, depth int) (Plan, bool, error) {
	methods, ok := CurrentDomain.taskMethods[it.Name]
	if !ok || len(methods) == 0 {
		return nil, false, fmt.Errorf("%w: unknown task %q", ErrMalformedItem, it.Name)
	}
	for _, m := range methods {
		subtodo, applicable, err := m.fn(state, it.Args...)
		if err != nil {
			return nil, false, err
		}
		if !applicable {
			continue
		}
		if Verbosity >= 3 {
			fmt.Fprintf(os.Stdout, "%stask %v -> method %s -> %v\n", indent(depth), it, m.name, subtodo)
		}
		newTodo := append(append([]TodoItem{}, subtodo...), rest...)
		result, ok2, err2 := seekPlan(state, newTodo, plan, depth+1)
		if err2 != nil {
			return nil, false, err2
		}
		if ok2 {
			return result, true, nil
		}
	}
	return nil, false, nil
}

func seekUnigoal(state *State, it Unigoal, rest []TodoItem, plan Plan, depth int) (Plan, bool, error) {
	if have, ok := state.Get(it.Var, it.Arg); ok && valuesEqual(have, it.Value) {
		return seekPlan(state, rest, plan, depth+1)
	}
	methods, ok := CurrentDomain.unigoalMethods[it.Var]
	if !ok || len(methods) == 0 {
		return nil, false, fmt.Errorf("%w: no unigoal methods for variable %q", ErrMalformedItem, it.Var)
	}
	for _, m := range methods {
		subtodo, applicable := m.fn(state, it.Arg, it.Value)
		if !applicable {
			continue
		}
		if Verbosity >= 3 {
			fmt.Fprintf(os.Stdout, "%sgoal %v -> method %s -> %v\n", indent(depth), it, m.name, subtodo)
		}
		newTodo := make([]TodoItem, 0, len(subtodo)+1+len(rest))
		newTodo = append(newTodo, subtodo...)
		newTodo = append(newTodo, verifyGoalItem{method: m.name, goal: it})
		newTodo = append(newTodo, rest...)
		result, ok2, err2 := seekPlan(state, newTodo, plan, depth+1)
		if err2 != nil {
			return nil, false, err2
		}
		if ok2 {
			return result, true, nil
		}
	}
	return nil, false, nil
}

func seekMultigoal(state *State, it *Multigoal, rest []TodoItem, plan Plan, depth int) (Plan, bool, error) {
	for _, m := range CurrentDomain.multigoalMethods {
		subtodo, applicable := m.fn(state, it)
		if !applicable {
			continue
		}
		if Verbosity >= 3 {
			fmt.Fprintf(os.Stdout, "%smultigoal %v -> method %s -> %v\n", indent(depth), it, m.name, subtodo)
		}
		newTodo := make([]TodoItem, 0, len(subtodo)+1+len(rest))
		newTodo = append(newTodo, subtodo...)
		newTodo = append(newTodo, verifyMultigoalItem{method: m.name, mg: it})
		newTodo = append(newTodo, rest...)
		result, ok2, err2 := seekPlan(state, newTodo, plan, depth+1)
		if err2 != nil {
			return nil, false, err2
		}
		if ok2 {
			return result, true, nil
		}
	}
	return nil, false, nil
}

func indent(depth int) string {
	out := make([]byte, depth)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
