package travel

import "github.com/dananau/gtpyhop-go/internal/htn"

func walk(s *htn.State, args ...any) (*htn.State, bool) {
	p, x, y := args[0].(string), args[1].(string), args[2].(string)
	if !isA(p, "person") || !isA(x, "location") || !isA(y, "location") || x == y {
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

func callTaxi(s *htn.State, args ...any) (*htn.State, bool) {
	p, x := args[0].(string), args[1].(string)
	if !isA(p, "person") || !isA(x, "location") {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("loc", "taxi1", x)
	ns.Set("loc", p, "taxi1")
	return ns, true
}

func rideTaxi(s *htn.State, args ...any) (*htn.State, bool) {
	p, y := args[0].(string), args[1].(string)
	locVal, _ := s.Get("loc", p)
	taxi, ok := locVal.(string)
	if !ok || !isA(p, "person") || !isA(taxi, "taxi") || !isA(y, "location") {
		return nil, false
	}
	xVal, _ := s.Get("loc", taxi)
	x, ok := xVal.(string)
	if !ok || !isA(x, "location") || x == y {
		return nil, false
	}
	d, ok := distance(x, y)
	if !ok {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("loc", taxi, y)
	ns.Set("owe", p, taxiRate(d))
	return ns, true
}

func payDriver(s *htn.State, args ...any) (*htn.State, bool) {
	p, y := args[0].(string), args[1].(string)
	if !isA(p, "person") {
		return nil, false
	}
	cashVal, _ := s.Get("cash", p)
	oweVal, _ := s.Get("owe", p)
	cash, _ := cashVal.(float64)
	owe, _ := oweVal.(float64)
	if cash < owe {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("cash", p, cash-owe)
	ns.Set("owe", p, 0.0)
	ns.Set("loc", p, y)
	return ns, true
}
