package htn

// goalsNotAchieved returns the subset of mg's (variable, argument, value)
// triples that do not currently hold in s.
func goalsNotAchieved(s *State, mg *Multigoal) map[string]map[string]any {
	unmet := make(map[string]map[string]any)
	for _, varName := range mg.StateVars() {
		for _, arg := range mg.argOrder[varName] {
			want := mg.Vars[varName][arg]
			have, ok := s.Get(varName, arg)
			if ok && valuesEqual(have, want) {
				continue
			}
			if unmet[varName] == nil {
				unmet[varName] = make(map[string]any)
			}
			unmet[varName][arg] = want
		}
	}
	return unmet
}

// SplitMultigoal is GTPyhop's reference multigoal method, m_split_multigoal:
// it breaks a multigoal into its not-yet-achieved unigoals, each solved
// independently, followed by the multigoal itself again so the search can
// confirm nothing got clobbered along the way (the engine prepends the
// verification item itself, the same way it does for every multigoal
// method; see seekMultigoal).
//
// It is not tried automatically. Like every multigoal method, it only runs
// for domains that register it with DeclareMultigoalMethods(SplitMultigoal)
// — GTPyhop won't use it otherwise, since a domain may prefer a
// special-purpose multigoal method (as blocksworld's mgMoveBlocks does) over
// this general but unordered strategy.
//
// It never reports inapplicable: if every goal already holds it returns an
// empty sub-todo-list, i.e. "nothing left to do".
func SplitMultigoal(s *State, mg *Multigoal) ([]TodoItem, bool) {
	todo := make([]TodoItem, 0, len(mg.varOrder)+1)
	for _, varName := range mg.StateVars() {
		for _, arg := range mg.argOrder[varName] {
			want := mg.Vars[varName][arg]
			have, ok := s.Get(varName, arg)
			if ok && valuesEqual(have, want) {
				continue
			}
			todo = append(todo, Goal(varName, arg, want))
		}
	}
	if len(todo) == 0 {
		return []TodoItem{}, true
	}
	todo = append(todo, mg)
	return todo, true
}
