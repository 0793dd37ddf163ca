package travel

import (
	"math/rand"

	"github.com/dananau/gtpyhop-go/internal/htn"
)

// cWalk behaves like the walk action, except that it does not reject a walk
// whose start and destination are the same.
func cWalk(s *htn.State, args ...any) (*htn.State, bool) {
	p, x, y := args[0].(string), args[1].(string), args[2].(string)
	if !isA(p, "person") || !isA(x, "location") || !isA(y, "location") {
		return nil, false
	}
	loc, _ := s.Get("loc", p)
	if loc != x {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("loc", p, y)
	return ns, true
}

// cCallTaxi models a taxi that only shows up about half the time, so
// RunLazyLookahead's replanning has something real to react to.
func cCallTaxi(s *htn.State, args ...any) (*htn.State, bool) {
	if rand.Intn(2) == 0 {
		return nil, false
	}
	return callTaxi(s, args...)
}

// cRideTaxi behaves exactly like the ride_taxi action.
func cRideTaxi(s *htn.State, args ...any) (*htn.State, bool) {
	return rideTaxi(s, args...)
}

// cPayDriver behaves exactly like the pay_driver action.
func cPayDriver(s *htn.State, args ...any) (*htn.State, bool) {
	return payDriver(s, args...)
}
