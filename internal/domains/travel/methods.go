package travel

import "github.com/dananau/gtpyhop-go/internal/htn"

func doNothing(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	p, y := args[0].(string), args[1].(string)
	if !isA(p, "person") || !isA(y, "location") {
		return nil, false, nil
	}
	loc, _ := s.Get("loc", p)
	if loc != y {
		return nil, false, nil
	}
	return []htn.TodoItem{}, true, nil
}

func travelByFoot(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	p, y := args[0].(string), args[1].(string)
	if !isA(p, "person") || !isA(y, "location") {
		return nil, false, nil
	}
	locVal, _ := s.Get("loc", p)
	x, _ := locVal.(string)
	if x == y {
		return nil, false, nil
	}
	d, ok := distance(x, y)
	if !ok || d > 2 {
		return nil, false, nil
	}
	return []htn.TodoItem{htn.Action("walk", p, x, y)}, true, nil
}

func travelByTaxi(s *htn.State, args ...any) ([]htn.TodoItem, bool, error) {
	p, y := args[0].(string), args[1].(string)
	if !isA(p, "person") || !isA(y, "location") {
		return nil, false, nil
	}
	locVal, _ := s.Get("loc", p)
	x, _ := locVal.(string)
	if x == y {
		return nil, false, nil
	}
	d, ok := distance(x, y)
	if !ok {
		return nil, false, nil
	}
	cashVal, _ := s.Get("cash", p)
	cash, _ := cashVal.(float64)
	if cash < taxiRate(d) {
		return nil, false, nil
	}
	return []htn.TodoItem{
		htn.Action("callTaxi", p, x),
		htn.Action("rideTaxi", p, y),
		htn.Action("payDriver", p, y),
	}, true, nil
}
