package analysis

// groupName creates a descriptive name from a cluster centroid.
// Uses a 2x2 brightness/tempo quadrant system with a minor-mode
// modifier.
//
// Quadrants:
//   - Bright + Fast = "Bright & Driving"
//   - Bright + Slow = "Bright & Still"
//   - Dark + Fast   = "Dark & Driving"
//   - Dark + Slow   = "Dark & Still"
//
// Minor modifier: if the centroid leans minor (> 0.5), appends
// "(Minor)" to the name.
func groupName(centroid Features) string {
	bright := centroid.Brightness > 0.12
	fast := centroid.Tempo > 0.45

	var base string
	switch {
	case bright && fast:
		base = "Bright & Driving"
	case bright && !fast:
		base = "Bright & Still"
	case !bright && fast:
		base = "Dark & Driving"
	default:
		base = "Dark & Still"
	}

	if centroid.Minor > 0.5 {
		return base + " (Minor)"
	}
	return base
}
