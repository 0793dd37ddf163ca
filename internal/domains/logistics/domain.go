package logistics

import "github.com/dananau/gtpyhop-go/internal/htn"

// NewDomain builds and registers the logistics domain and returns it.
func NewDomain() *htn.Domain {
	d := htn.NewDomain("logistics")

	must(htn.DeclareActions(driveTruck, loadTruck, unloadTruck, flyPlane, loadPlane, unloadPlane))
	must(htn.DeclareUnigoalMethods("at", mLoadTruck, mUnloadTruck, mLoadPlane, mUnloadPlane))
	must(htn.DeclareUnigoalMethods("truckAt", mDriveTruck))
	must(htn.DeclareUnigoalMethods("planeAt", mFlyPlane))
	must(htn.DeclareUnigoalMethods("at", moveWithinCity, moveBetweenAirports, moveBetweenCity))

	return d
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func set(s *htn.State, name string, members ...string) {
	for _, m := range members {
		s.Set(name, m, true)
	}
}

// InitialState returns the two-city, two-truck, one-plane scenario used by
// the original logistics examples: package1 and package2 each need to move
// across or within a city.
func InitialState() *htn.State {
	s := htn.NewState("state1")
	set(s, "packages", "package1", "package2")
	set(s, "trucks", "truck1", "truck6")
	set(s, "airplanes", "plane2")
	set(s, "locations", "location1", "location2", "location3", "airport1", "location10", "airport2")
	set(s, "airports", "airport1", "airport2")
	set(s, "cities", "city1", "city2")

	s.Set("at", "package1", "location1")
	s.Set("at", "package2", "location2")
	s.Set("truckAt", "truck1", "location3")
	s.Set("truckAt", "truck6", "location10")
	s.Set("planeAt", "plane2", "airport2")

	s.Set("inCity", "location1", "city1")
	s.Set("inCity", "location2", "city1")
	s.Set("inCity", "location3", "city1")
	s.Set("inCity", "airport1", "city1")
	s.Set("inCity", "location10", "city2")
	s.Set("inCity", "airport2", "city2")

	return s
}
