package world

import "math"

// Band thresholds for the base terrain layer. Tile ids are preferences:
// the generator resolves each list against the external tile set.
var terrainBands = []struct {
	limit float64
	ids   []TileID
}{
	{-0.3, []TileID{0, 1}},
	{0.0, []TileID{2, 3}},
	{0.3, []TileID{4, 5}},
	{math.Inf(1), []TileID{6, 7}},
}

// decorIDs are the preferred decoration tiles for the second layer.
var decorIDs = []TileID{8, 9, 10}

// decorChance is the per-cell probability of placing a decoration.
const decorChance = 0.1

// noiseScale maps world tile coordinates into noise space.
const noiseScale = 0.05

// terrainNoise is the continuous pseudo-noise field driving the base
// terrain bands. Sampled at world tile coordinates (scaled by
// noiseScale) so adjacent chunks join without seams.
func terrainNoise(x, y float64) float64 {
	return math.Sin(x*1.5)*math.Cos(y*1.2) +
		0.5*math.Sin(x*2.1+y*1.8) +
		0.3*math.Sin(x*0.8+y*2.3)
}

// bandFor returns the preferred tile ids for a noise value.
func bandFor(n float64) []TileID {
	for _, b := range terrainBands {
		if n < b.limit {
			return b.ids
		}
	}
	return terrainBands[len(terrainBands)-1].ids
}
