package world

import (
	"errors"
	"fmt"
)

// Spatial-hash constants for the per-chunk seed. The same chunk
// coordinate always produces the same seed, so tile data is independent
// of generation order and prior cache state.
const (
	seedPrimeX = 73856093
	seedPrimeY = 19349663
)

// ErrEmptyTileSet is the configuration error returned when procedural
// generation has no tiles to resolve against. Retrying cannot succeed;
// callers should treat it as fatal world setup failure.
var ErrEmptyTileSet = errors.New("tile set is empty")

// Generator deterministically fills chunk layers, either by sampling the
// legacy level (for chunks overlapping it) or by seeded procedural
// generation. The choice is all-or-nothing per chunk, never per cell.
type Generator struct {
	size  int
	level *LegacyLevel
	tiles TileSet

	// Lowest id in tiles, NoTile when the set is empty. Resolution falls
	// back to it when none of a band's preferred ids exist; picking the
	// lowest key keeps the choice deterministic regardless of map
	// iteration order. Callers must treat the fallback as "any available
	// id", nothing more.
	fallback TileID
}

func NewGenerator(size int, level *LegacyLevel, tiles TileSet) *Generator {
	fallback := NoTile
	for id := range tiles {
		if fallback == NoTile || id < fallback {
			fallback = id
		}
	}
	return &Generator{size: size, level: level, tiles: tiles, fallback: fallback}
}

// chunkSeed derives the deterministic per-chunk RNG seed.
func chunkSeed(cx, cy int) uint64 {
	return uint64(int64(cx)*seedPrimeX ^ int64(cy)*seedPrimeY)
}

// Generate fills the chunk's layers. Generation is idempotent: a chunk
// already generated is returned unchanged at no cost.
func (g *Generator) Generate(c *Chunk) error {
	if c.generated {
		return nil
	}
	if g.level.Overlaps(c.key.X, c.key.Y, g.size) {
		g.fillFromLevel(c)
	} else if err := g.fillProcedural(c); err != nil {
		return fmt.Errorf("generate chunk (%d,%d): %w", c.key.X, c.key.Y, err)
	}
	c.generated = true
	return nil
}

// fillFromLevel samples every legacy layer into the chunk. Cells outside
// the level bounds stay empty; they are never procedurally substituted.
func (g *Generator) fillFromLevel(c *Chunk) {
	baseX, baseY := c.Origin()
	c.layers = make([][]TileID, len(g.level.Layers))
	for n := range g.level.Layers {
		layer := c.newLayer()
		for y := 0; y < g.size; y++ {
			wy := baseY + y
			for x := 0; x < g.size; x++ {
				layer[c.idx(x, y)] = g.level.Sample(n, baseX+x, wy)
			}
		}
		c.layers[n] = layer
	}
}

// fillProcedural generates the two-layer terrain from the chunk's
// spatial-hash seed: a base layer banded by the noise field and a sparse
// decoration layer drawn from the chunk's own RNG.
func (g *Generator) fillProcedural(c *Chunk) error {
	baseX, baseY := c.Origin()
	r := NewRand(chunkSeed(c.key.X, c.key.Y))

	ground := c.newLayer()
	for y := 0; y < g.size; y++ {
		wy := float64(baseY+y) * noiseScale
		for x := 0; x < g.size; x++ {
			wx := float64(baseX+x) * noiseScale
			id, err := g.resolve(bandFor(terrainNoise(wx, wy)))
			if err != nil {
				return err
			}
			ground[c.idx(x, y)] = id
		}
	}

	decor := c.newLayer()
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if r.Float64() >= decorChance {
				continue
			}
			id, err := g.resolve(decorIDs)
			if err != nil {
				return err
			}
			decor[c.idx(x, y)] = id
		}
	}

	c.layers = [][]TileID{ground, decor}
	return nil
}

// resolve returns the first preferred id present in the tile set, or the
// deterministic fallback id when none are. An empty tile set is a
// configuration error.
func (g *Generator) resolve(preferred []TileID) (TileID, error) {
	for _, id := range preferred {
		if _, ok := g.tiles[id]; ok {
			return id, nil
		}
	}
	if g.fallback == NoTile {
		return NoTile, ErrEmptyTileSet
	}
	return g.fallback, nil
}
