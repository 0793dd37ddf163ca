package logistics

import "github.com/dananau/gtpyhop-go/internal/htn"

func mLoadTruck(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, t := arg, value.(string)
	at, _ := getStr(s, "at", o)
	truckAt, _ := getStr(s, "truckAt", t)
	if !inSet(s, "packages", o) || !inSet(s, "trucks", t) || at != truckAt {
		return nil, false
	}
	return []htn.TodoItem{htn.Action("loadTruck", o, t)}, true
}

func mUnloadTruck(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, l := arg, value.(string)
	at, _ := getStr(s, "at", o)
	if !inSet(s, "packages", o) || !inSet(s, "trucks", at) || !inSet(s, "locations", l) {
		return nil, false
	}
	return []htn.TodoItem{htn.Action("unloadTruck", o, l)}, true
}

func mLoadPlane(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, plane := arg, value.(string)
	at, _ := getStr(s, "at", o)
	planeAt, _ := getStr(s, "planeAt", plane)
	if !inSet(s, "packages", o) || !inSet(s, "airplanes", plane) || at != planeAt {
		return nil, false
	}
	return []htn.TodoItem{htn.Action("loadPlane", o, plane)}, true
}

func mUnloadPlane(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, a := arg, value.(string)
	at, _ := getStr(s, "at", o)
	if !inSet(s, "packages", o) || !inSet(s, "airplanes", at) || !inSet(s, "airports", a) {
		return nil, false
	}
	return []htn.TodoItem{htn.Action("unloadPlane", o, a)}, true
}

func mDriveTruck(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	t, l := arg, value.(string)
	truckAt, _ := getStr(s, "truckAt", t)
	if !inSet(s, "trucks", t) || !inSet(s, "locations", l) || !sameCity(s, truckAt, l) {
		return nil, false
	}
	return []htn.TodoItem{htn.Action("driveTruck", t, l)}, true
}

func mFlyPlane(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	plane, a := arg, value.(string)
	if !inSet(s, "airplanes", plane) || !inSet(s, "airports", a) {
		return nil, false
	}
	return []htn.TodoItem{htn.Action("flyPlane", plane, a)}, true
}

func moveWithinCity(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, l := arg, value.(string)
	at, _ := getStr(s, "at", o)
	if !inSet(s, "packages", o) || !inSet(s, "locations", at) || !sameCity(s, at, l) {
		return nil, false
	}
	t, ok := findTruck(s, o)
	if !ok {
		return nil, false
	}
	return []htn.TodoItem{
		htn.Goal("truckAt", t, at),
		htn.Goal("at", o, t),
		htn.Goal("truckAt", t, l),
		htn.Goal("at", o, l),
	}, true
}

func moveBetweenAirports(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, a := arg, value.(string)
	at, _ := getStr(s, "at", o)
	if !inSet(s, "packages", o) || !inSet(s, "airports", at) || !inSet(s, "airports", a) || sameCity(s, at, a) {
		return nil, false
	}
	plane, ok := findPlane(s, o)
	if !ok {
		return nil, false
	}
	return []htn.TodoItem{
		htn.Goal("planeAt", plane, at),
		htn.Goal("at", o, plane),
		htn.Goal("planeAt", plane, a),
		htn.Goal("at", o, a),
	}, true
}

func moveBetweenCity(s *htn.State, arg string, value any) ([]htn.TodoItem, bool) {
	o, l := arg, value.(string)
	at, _ := getStr(s, "at", o)
	if !inSet(s, "packages", o) || !inSet(s, "locations", at) || sameCity(s, at, l) {
		return nil, false
	}
	a1, ok1 := findAirport(s, at)
	a2, ok2 := findAirport(s, l)
	if !ok1 || !ok2 {
		return nil, false
	}
	return []htn.TodoItem{
		htn.Goal("at", o, a1),
		htn.Goal("at", o, a2),
		htn.Goal("at", o, l),
	}, true
}
