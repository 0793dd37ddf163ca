package htn

// This file preserves the pre-HGN GTPyhop vocabulary (back when the
// library only did HTN planning and was named Pyhop) as thin aliases, so
// domains written against the older names still register correctly.

// DeclareOperators is an alias for DeclareActions.
//
// Deprecated: use DeclareActions.
func DeclareOperators(fns ...ActionFunc) error {
	return DeclareActions(fns...)
}

// DeclareMethods is an alias for DeclareTaskMethods.
//
// Deprecated: use DeclareTaskMethods.
func DeclareMethods(taskName string, fns ...TaskMethodFunc) error {
	return DeclareTaskMethods(taskName, fns...)
}

// Pyhop is an alias for FindPlan, named after the library FindPlan's
// algorithm originated in.
//
// Deprecated: use FindPlan.
func Pyhop(state *State, todo []TodoItem) (Plan, bool, error) {
	return FindPlan(state, todo)
}
