package blocksworld

import "github.com/dananau/gtpyhop-go/internal/htn"

// NewDomain builds and registers the blocksworld domain and returns it.
func NewDomain() *htn.Domain {
	d := htn.NewDomain("blocksworld")

	must(htn.DeclareActions(pickup, unstack, putdown, stack))
	must(htn.DeclareTaskMethods("move_blocks", mMoveBlocks))
	must(htn.DeclareTaskMethods("move_one", mMoveOne))
	must(htn.DeclareTaskMethods("get", mGet))
	must(htn.DeclareTaskMethods("put", mPut))
	must(htn.DeclareUnigoalMethods("pos", uMoveToward, uGetGoal, uPutGoal))
	must(htn.DeclareUnigoalMethods("clear", uMakeClear))
	must(htn.DeclareMultigoalMethods(mgMoveBlocks))

	return d
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// SussmanAnomalyState returns the classic Sussman-anomaly starting
// configuration: C on A, A and B on the table, with B and C clear.
func SussmanAnomalyState() *htn.State {
	s := htn.NewState("state0")
	s.Set("pos", "a", "table")
	s.Set("pos", "b", "table")
	s.Set("pos", "c", "a")
	s.Set("clear", "a", false)
	s.Set("clear", "b", true)
	s.Set("clear", "c", true)
	s.Set("holding", "hand", false)
	return s
}

// SussmanAnomalyGoal wants A on B and B on C.
func SussmanAnomalyGoal() *htn.Multigoal {
	g := htn.NewMultigoal("goal")
	g.Set("pos", "a", "b")
	g.Set("pos", "b", "c")
	return g
}
