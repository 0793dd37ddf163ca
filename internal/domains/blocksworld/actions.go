// Package blocksworld is the classic blocks-world domain: blocks sit on the
// table, on each other, or in the robot hand, and must be rearranged to
// satisfy a goal configuration. It combines GTPyhop's task-oriented
// move_blocks algorithm with goal-oriented methods for 'pos' and 'clear'
// unigoals, so either a task or a multigoal can drive the same actions.
package blocksworld

import "github.com/dananau/gtpyhop-go/internal/htn"

// State variables:
//   - pos[b]     = "table", "hand", or another block's name
//   - clear[b]   = true unless something sits on b or the hand holds it
//   - holding    = the single variable "hand" -> block name, or false

func pickup(s *htn.State, args ...any) (*htn.State, bool) {
	b1 := args[0].(string)
	pos, _ := s.Get("pos", b1)
	clear, _ := s.Get("clear", b1)
	holding, _ := s.Get("holding", "hand")
	if pos != "table" || clear != true || holding != false {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("pos", b1, "hand")
	ns.Set("clear", b1, false)
	ns.Set("holding", "hand", b1)
	return ns, true
}

func unstack(s *htn.State, args ...any) (*htn.State, bool) {
	b1, b2 := args[0].(string), args[1].(string)
	pos, _ := s.Get("pos", b1)
	clear, _ := s.Get("clear", b1)
	holding, _ := s.Get("holding", "hand")
	if pos != b2 || b2 == "table" || clear != true || holding != false {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("pos", b1, "hand")
	ns.Set("clear", b1, false)
	ns.Set("holding", "hand", b1)
	ns.Set("clear", b2, true)
	return ns, true
}

func putdown(s *htn.State, args ...any) (*htn.State, bool) {
	b1 := args[0].(string)
	pos, _ := s.Get("pos", b1)
	if pos != "hand" {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("pos", b1, "table")
	ns.Set("clear", b1, true)
	ns.Set("holding", "hand", false)
	return ns, true
}

func stack(s *htn.State, args ...any) (*htn.State, bool) {
	b1, b2 := args[0].(string), args[1].(string)
	pos, _ := s.Get("pos", b1)
	clear2, _ := s.Get("clear", b2)
	if pos != "hand" || clear2 != true {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("pos", b1, b2)
	ns.Set("clear", b1, true)
	ns.Set("holding", "hand", false)
	ns.Set("clear", b2, false)
	return ns, true
}
