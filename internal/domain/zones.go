package domain

// Zone labels recognized by the scheduling engine.
const (
	// ZoneForestCircuit is the fixed one-way circuit: its internal order is
	// precomputed and never re-optimized during a build.
	ZoneForestCircuit = "Forest Circuit"

	ZoneTownCenter = "Town Center"
	ZoneVattakanal = "Vattakanal"
	ZonePoombarai  = "Poombarai"

	// ZoneOutskirts marks unclassified places that get absorbed into their
	// nearest-zone hint during assignment.
	ZoneOutskirts = "Outskirts"
)

// ZoneOrder fixes the canonical iteration order for zone assignment,
// merging and day layout. Unrecognized zone labels fall back to the first
// entry.
var ZoneOrder = []string{ZoneTownCenter, ZoneForestCircuit, ZoneVattakanal, ZonePoombarai}
