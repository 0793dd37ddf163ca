package travel

import "github.com/dananau/gtpyhop-go/internal/htn"

// NewDomain builds and registers the travel domain, makes it the current
// domain, and returns it.
func NewDomain() *htn.Domain {
	d := htn.NewDomain("travel")

	must(htn.DeclareActions(walk, callTaxi, rideTaxi, payDriver))
	must(htn.DeclareCommands(
		htn.Cmd("walk", cWalk),
		htn.Cmd("callTaxi", cCallTaxi),
		htn.Cmd("rideTaxi", cRideTaxi),
		htn.Cmd("payDriver", cPayDriver),
	))
	must(htn.DeclareTaskMethods("travel", doNothing, travelByFoot, travelByTaxi))

	return d
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// InitialState returns a fresh copy of the domain's prototypical scenario:
// Alice at home_a, Bob at home_b, two taxis out on the road.
func InitialState() *htn.State {
	s := htn.NewState("state0")
	s.Set("loc", "alice", "home_a")
	s.Set("loc", "bob", "home_b")
	s.Set("loc", "taxi1", "park")
	s.Set("loc", "taxi2", "station")
	s.Set("cash", "alice", 20.0)
	s.Set("cash", "bob", 15.0)
	s.Set("owe", "alice", 0.0)
	s.Set("owe", "bob", 0.0)
	return s
}
