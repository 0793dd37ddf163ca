package htn

import "fmt"

// TodoItem is one entry on a planning todo list: an action call, a task
// call, a single-variable goal (unigoal), or a multigoal. Go has no runtime
// shape-sniffing equivalent to Python's tuple-length dispatch, so the todo
// list is an explicit sum type instead; seekPlan dispatches on it with a
// type switch.
type TodoItem interface {
	isTodoItem()
	fmt.Stringer
}

// ActionCall invokes a primitive action registered with DeclareActions.
type ActionCall struct {
	Name string
	Args []any
}

func Action(name string, args ...any) ActionCall { return ActionCall{Name: name, Args: args} }

func (a ActionCall) isTodoItem() {}
func (a ActionCall) String() string {
	return fmt.Sprintf("%s%v", a.Name, a.Args)
}

// TaskCall invokes a compound task registered with DeclareTaskMethods.
type TaskCall struct {
	Name string
	Args []any
}

func Task(name string, args ...any) TaskCall { return TaskCall{Name: name, Args: args} }

func (t TaskCall) isTodoItem() {}
func (t TaskCall) String() string {
	return fmt.Sprintf("%s%v", t.Name, t.Args)
}

// Unigoal is a single desired (variable, argument, value) assignment,
// resolved with a method registered via DeclareUnigoalMethods.
type Unigoal struct {
	Var   string
	Arg   string
	Value any
}

func Goal(varName, arg string, value any) Unigoal {
	return Unigoal{Var: varName, Arg: arg, Value: value}
}

func (g Unigoal) isTodoItem() {}
func (g Unigoal) String() string {
	return fmt.Sprintf("<Unigoal (%s, %s, %v)>", g.Var, g.Arg, g.Value)
}

// Plan is a totally ordered sequence of primitive action calls.
type Plan []ActionCall

func (p Plan) String() string {
	return fmt.Sprintf("%v", []ActionCall(p))
}
