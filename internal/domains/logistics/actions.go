package logistics

import "github.com/dananau/gtpyhop-go/internal/htn"

func driveTruck(s *htn.State, args ...any) (*htn.State, bool) {
	t, l := args[0].(string), args[1].(string)
	ns := s.Copy()
	ns.Set("truckAt", t, l)
	return ns, true
}

func loadTruck(s *htn.State, args ...any) (*htn.State, bool) {
	o, t := args[0].(string), args[1].(string)
	ns := s.Copy()
	ns.Set("at", o, t)
	return ns, true
}

func unloadTruck(s *htn.State, args ...any) (*htn.State, bool) {
	o, l := args[0].(string), args[1].(string)
	t, ok := getStr(s, "at", o)
	if !ok {
		return nil, false
	}
	truckAt, _ := getStr(s, "truckAt", t)
	if truckAt != l {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("at", o, l)
	return ns, true
}

func flyPlane(s *htn.State, args ...any) (*htn.State, bool) {
	plane, a := args[0].(string), args[1].(string)
	ns := s.Copy()
	ns.Set("planeAt", plane, a)
	return ns, true
}

func loadPlane(s *htn.State, args ...any) (*htn.State, bool) {
	o, plane := args[0].(string), args[1].(string)
	ns := s.Copy()
	ns.Set("at", o, plane)
	return ns, true
}

func unloadPlane(s *htn.State, args ...any) (*htn.State, bool) {
	o, a := args[0].(string), args[1].(string)
	plane, ok := getStr(s, "at", o)
	if !ok {
		return nil, false
	}
	planeAt, _ := getStr(s, "planeAt", plane)
	if planeAt != a {
		return nil, false
	}
	ns := s.Copy()
	ns.Set("at", o, a)
	return ns, true
}
