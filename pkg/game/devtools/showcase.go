package devtools

import "roomforge/pkg/game/descriptor"

// Showcase returns a hard-coded 5x5 developer level that uses every room
// letter and wall code at least once. The exit sits behind a switch wall.
func Showcase() descriptor.Raw {
	return descriptor.Raw{
		Dialogue: []string{
			"SHOWCASE_INTRO",
			"Collect the parts, fill the pedestal, press the switch.",
		},
		Rooms: []string{
			"S m m m|B",
			" +-+-+-+-",
			"d      DE",
			" + +-+-+-",
			"M p|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
		},
	}
}
