package traffic

import "github.com/golangdaddy/screamracer/pkg/vehicle"

// Check returns the first opponent whose box overlaps the player's.
// It is a pure query and never changes the field.
func Check(player vehicle.Vehicle, opponents []vehicle.Vehicle) (vehicle.Vehicle, bool) {
	box := player.Bounds()
	for _, o := range opponents {
		if box.Overlaps(o.Bounds()) {
			return o, true
		}
	}
	return vehicle.Vehicle{}, false
}
