// Package logistics moves packages between locations by truck within a
// city and by airplane between cities, adapted from the HGNpyhop
// logistics-domain examples.
package logistics

import (
	"sort"

	"github.com/dananau/gtpyhop-go/internal/htn"
)

func getStr(s *htn.State, varName, arg string) (string, bool) {
	v, ok := s.Get(varName, arg)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func inSet(s *htn.State, setName, member string) bool {
	_, ok := s.Get(setName, member)
	return ok
}

// members lists every registered member of setName in sorted order. Go map
// iteration order is randomized; sorting keeps findTruck/findPlane/
// findAirport's scans reproducible across runs.
func members(s *htn.State, setName string) []string {
	names := make([]string, 0, len(s.Vars[setName]))
	for name := range s.Vars[setName] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sameCity(s *htn.State, l1, l2 string) bool {
	c1, ok1 := getStr(s, "inCity", l1)
	c2, ok2 := getStr(s, "inCity", l2)
	return ok1 && ok2 && c1 == c2
}

// findTruck finds a truck in the same city as package o, the same way
// find_truck does in the original domain: the first match found while
// iterating over the registered trucks.
func findTruck(s *htn.State, o string) (string, bool) {
	at, _ := getStr(s, "at", o)
	for _, t := range members(s, "trucks") {
		truckAt, _ := getStr(s, "truckAt", t)
		if sameCity(s, truckAt, at) {
			return t, true
		}
	}
	return "", false
}

// findPlane reproduces find_plane's documented bug: if no plane is already
// in the package's city, the loop falls through having assigned plane to
// whatever airplane it last considered (airplanes are scanned in name
// order, so this is the last one by name), and that stale value is
// returned as if it were a match. Correct domains should prefer move_within_city whenever possible
// so this branch is rarely exercised; it is reproduced here, not fixed,
// because downstream code models what find_plane actually does.
func findPlane(s *htn.State, o string) (string, bool) {
	at, _ := getStr(s, "at", o)
	var last string
	for _, plane := range members(s, "airplanes") {
		planeAt, _ := getStr(s, "planeAt", plane)
		if sameCity(s, planeAt, at) {
			return plane, true
		}
		last = plane
	}
	if last == "" {
		return "", false
	}
	return last, true
}

// findAirport finds an airport in the same city as location l.
func findAirport(s *htn.State, l string) (string, bool) {
	for _, a := range members(s, "airports") {
		if sameCity(s, a, l) {
			return a, true
		}
	}
	return "", false
}
