// Package travel is the "get from home to the park" example domain: a
// person can walk short distances or take a taxi, and taking a taxi costs
// money that must be paid before the traveler is considered to have
// arrived.
package travel

// Rigid relations never change during planning, so they live in ordinary
// package-level maps rather than in a *htn.State.

var types = map[string][]string{
	"person":   {"alice", "bob"},
	"location": {"home_a", "home_b", "park", "station"},
	"taxi":     {"taxi1", "taxi2"},
}

var dist = map[[2]string]float64{
	{"home_a", "park"}:    8,
	{"home_b", "park"}:    2,
	{"station", "home_a"}: 1,
	{"station", "home_b"}: 7,
	{"home_a", "home_b"}:  7,
	{"station", "park"}:   9,
}

// isA reports whether variable belongs to the named rigid type.
func isA(variable, typ string) bool {
	for _, v := range types[typ] {
		if v == variable {
			return true
		}
	}
	return false
}

// distance looks up the symmetric distance between x and y.
func distance(x, y string) (float64, bool) {
	if d, ok := dist[[2]string{x, y}]; ok {
		return d, true
	}
	if d, ok := dist[[2]string{y, x}]; ok {
		return d, true
	}
	return 0, false
}

// taxiRate is this domain's (low) taxi fare function.
func taxiRate(d float64) float64 {
	return 1.5 + 0.5*d
}
