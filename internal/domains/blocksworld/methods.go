package blocksworld

import (
	"sort"

	"github.com/dananau/gtpyhop-go/internal/htn"
)

// allBlocks lists every block by name in sorted order. Go map iteration
// order is randomized; sorting keeps move_blocks' search for the next
// movable block reproducible across runs, as the planner's determinism
// guarantee requires.
func allBlocks(s *htn.State) []string {
	names := make([]string, 0, len(s.Vars["clear"]))
	for b := range s.Vars["clear"] {
		names = append(names, b)
	}
	sort.Strings(names)
	return names
}

// isDone reports whether b1 (and everything under it) is already in its
// final resting place according to goal, so move_blocks never has to touch
// it again.
func isDone(b1 string, s *htn.State, goal *htn.Multigoal) bool {
	if b1 == "table" {
		return true
	}
	statePos, _ := s.Get("pos", b1)
	if goalPos, ok := goal.Vars["pos"][b1]; ok && goalPos != statePos {
		return false
	}
	if statePos == "table" {
		return true
	}
	return isDone(statePos.(string), s, goal)
}

// status classifies what, if anything, needs to happen to b1 next.
func status(b1 string, s *htn.State, goal *htn.Multigoal) string {
	if isDone(b1, s, goal) {
		return "done"
	}
	if clear, _ := s.Get("clear", b1); clear != true {
		return "inaccessible"
	}
	goalPos, hasGoal := goal.Vars["pos"][b1]
	if !hasGoal || goalPos == "table" {
		return "move-to-table"
	}
	gp := goalPos.(string)
	gpClear, _ := s.Get("clear", gp)
	if isDone(gp, s, goal) && gpClear == true {
		return "move-to-block"
	}
	return "waiting"
}

// mMoveBlocks is the move_blocks task method: at each step, move whichever
// block can go straight to its final place, or failing that, whichever
// block is in the way onto the table, until nothing is left to move.
func mMoveBlocks(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	goal := args[0].(*htn.Multigoal)

	for _, b1 := range allBlocks(s) {
		switch status(b1, s, goal) {
		case "move-to-table":
			return []htn.TodoItem{htn.Task("move_one", b1, "table"), htn.Task("move_blocks", goal)}, true, nil
		case "move-to-block":
			dest := goal.Vars["pos"][b1].(string)
			return []htn.TodoItem{htn.Task("move_one", b1, dest), htn.Task("move_blocks", goal)}, true, nil
		}
	}
	for _, b1 := range allBlocks(s) {
		pos, _ := s.Get("pos", b1)
		if status(b1, s, goal) == "waiting" && pos != "table" {
			return []htn.TodoItem{htn.Task("move_one", b1, "table"), htn.Task("move_blocks", goal)}, true, nil
		}
	}
	return []htn.TodoItem{}, true, nil
}

func mMoveOne(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	b1, dest := args[0].(string), args[1].(string)
	return []htn.TodoItem{htn.Task("get", b1), htn.Task("put", b1, dest)}, true, nil
}

func mGet(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	b1 := args[0].(string)
	clear, _ := s.Get("clear", b1)
	if clear != true {
		return nil, false, nil
	}
	pos, _ := s.Get("pos", b1)
	if pos == "table" {
		return []htn.TodoItem{htn.Action("pickup", b1)}, true, nil
	}
	return []htn.TodoItem{htn.Action("unstack", b1, pos.(string))}, true, nil
}

func mPut(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	b1, b2 := args[0].(string), args[1].(string)
	holding, _ := s.Get("holding", "hand")
	if holding != b1 {
		return nil, false, nil
	}
	if b2 == "table" {
		return []htn.TodoItem{htn.Action("putdown", b1)}, true, nil
	}
	return []htn.TodoItem{htn.Action("stack", b1, b2)}, true, nil
}

// mgMoveBlocks is a domain-specific multigoal method: rather than falling
// back to the generic (and unordered) unigoal splitter, hand the whole
// multigoal to move_blocks, which knows how to sequence the unigoals so
// that later ones don't undo earlier ones.
func mgMoveBlocks(s *htn.State, mg *htn.Multigoal) ([]htn.TodoItem, bool) {
	return []htn.TodoItem{htn.Task("move_blocks", mg)}, true
}

// The methods below implement 'pos' and 'clear' unigoals directly, without
// going through move_blocks, for domains that want m_split_multigoal's
// unordered goal-at-a-time behavior instead.

func uMoveToward(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	b1, b2 := arg, value.(string)
	holding, _ := s.Get("holding", "hand")
	if b2 == "hand" || holding != false {
		return nil, false
	}
	if b2 == "table" {
		return []htn.TodoItem{htn.Goal("clear", b1, true), htn.Goal("pos", b1, "hand"), htn.Goal("pos", b1, b2)}, true
	}
	return []htn.TodoItem{
		htn.Goal("clear", b2, true),
		htn.Goal("clear", b1, true),
		htn.Goal("pos", b1, "hand"),
		htn.Goal("pos", b1, b2),
	}, true
}

func uGetGoal(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	b1, b2 := arg, value.(string)
	if b2 != "hand" {
		return nil, false
	}
	clear, _ := s.Get("clear", b1)
	holding, _ := s.Get("holding", "hand")
	if clear != true || holding != false {
		return nil, false
	}
	pos, _ := s.Get("pos", b1)
	if pos == "table" {
		return []htn.TodoItem{htn.Action("pickup", b1)}, true
	}
	return []htn.TodoItem{htn.Action("unstack", b1, pos.(string))}, true
}

func uPutGoal(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	b1, b2 := arg, value.(string)
	if b2 == "hand" {
		return nil, false
	}
	pos, _ := s.Get("pos", b1)
	if pos != "hand" {
		return nil, false
	}
	if b2 == "table" {
		return []htn.TodoItem{htn.Action("putdown", b1)}, true
	}
	if clear2, _ := s.Get("clear", b2); clear2 == true {
		return []htn.TodoItem{htn.Action("stack", b1, b2)}, true
	}
	return nil, false
}

func uMakeClear(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	b2, truth := arg, value.(bool)
	if !truth {
		return nil, false
	}
	if clear, _ := s.Get("clear", b2); b2 == "table" || clear == true {
		return []htn.TodoItem{}, true
	}
	for _, b1 := range allBlocks(s) {
		if pos, _ := s.Get("pos", b1); pos == b2 {
			return []htn.TodoItem{htn.Goal("clear", b1, true), htn.Goal("pos", b1, "table")}, true
		}
	}
	return nil, false
}
