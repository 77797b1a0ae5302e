package viewer

import (
	"math"

	"github.com/aquilax/go-perlin"

	"tilestream/internal/world"
)

// Tile ids shared by the generator's bands, the island map, and the art
// builder. The streaming core only ever sees them as TileSet keys.
const (
	TileDeepWater world.TileID = iota
	TileWater
	TileSand
	TileDirt
	TileGrass
	TileMeadow
	TileRock
	TileSnow
	TileBush
	TileStone
	TileFlower
	tileCount
)

// TileArt holds the generated RGBA pixels per tile, indexed by the
// handle registered in the TileSet.
type TileArt struct {
	pix [][]uint8
}

func (a *TileArt) Pixels(handle uint64) []uint8 {
	if a == nil || int(handle) >= len(a.pix) {
		return nil
	}
	return a.pix[handle]
}

// BuildTileSet generates 16x16 art for every tile id and the TileSet the
// streaming core resolves ids against. The seed flavours brush detail
// only; terrain content never depends on it.
func BuildTileSet(seed uint64) (world.TileSet, *TileArt) {
	p := perlin.NewPerlin(2, 2, 3, int64(seed))
	r := world.NewRand(seed)
	art := &TileArt{pix: make([][]uint8, tileCount)}
	tiles := make(world.TileSet, tileCount)
	for id := world.TileID(0); id < tileCount; id++ {
		art.pix[id] = makeTileArt(id, p, r)
		tiles[id] = world.TileInfo{W: TileArtSize, H: TileArtSize, Handle: uint64(id)}
	}
	return tiles, art
}

func makeTileArt(id world.TileID, p *perlin.Perlin, r *world.Rand) []uint8 {
	const s = TileArtSize
	pix := make([]uint8, s*s*4)
	set := func(x, y int, col RGB) {
		i := (y*s + x) * 4
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
	}
	// Each tile samples its own patch of the noise field so no two ids
	// share detail.
	off := float64(id) * 3.7
	field := func(x, y int, freq float64) float64 {
		return p.Noise2D(off+float64(x)*freq, float64(y)*freq)
	}

	switch id {
	case TileDeepWater, TileWater:
		base := Palette.DeepWater
		if id == TileWater {
			base = Palette.Water
		}
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				col := base
				n := field(x, y, 0.16)
				if n > 0.18 {
					col = base.Add(14, 20, 28) // ripple crest
				} else if n < -0.22 {
					col = base.Mul(215)
				}
				set(x, y, col)
			}
		}

	case TileSand, TileDirt:
		base := Palette.Sand
		if id == TileDirt {
			base = Palette.Dirt
		}
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				shade := int(field(x, y, 0.24) * 14)
				col := base.Add(shade, shade, shade)
				if r.Intn(13) == 0 {
					col = col.Mul(205) // grain
				}
				set(x, y, col)
			}
		}

	case TileGrass, TileMeadow:
		base := Palette.Grass
		if id == TileMeadow {
			base = Palette.Meadow
		}
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				shade := int(field(x, y, 0.22) * 16)
				col := base.Add(shade/2, shade, shade/2)
				if r.Intn(19) == 0 {
					col = col.Add(18, 26, 10) // stray bright blade
				}
				set(x, y, col)
			}
		}

	case TileRock:
		base := Palette.Rock
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				n := field(x, y, 0.18)
				col := base.Add(int(n*22), int(n*22), int(n*22))
				if n < -0.30 {
					col = col.Mul(160) // crack
				}
				set(x, y, col)
			}
		}

	case TileSnow:
		base := Palette.Snow
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				n := field(x, y, 0.20)
				col := base.Add(int(n*10), int(n*10), int(n*14))
				if r.Intn(31) == 0 {
					col = RGB{R: 255, G: 255, B: 255} // sparkle
				}
				set(x, y, col)
			}
		}

	case TileBush:
		jx := float64(r.Range(-1, 1))
		jy := float64(r.Range(-1, 1))
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				dx := float64(x) - 7.5 - jx
				dy := float64(y) - 7.5 - jy
				dist := math.Hypot(dx, dy)
				rr := 5.0 + field(x, y, 0.30)*2.0
				if dist > rr {
					continue
				}
				col := Palette.Bush
				if dy < -1.5 {
					col = col.Add(16, 24, 12) // lit crown
				}
				if dist > rr-1.3 {
					col = col.Mul(165)
				}
				set(x, y, col)
			}
		}

	case TileStone:
		pebbles := [3][3]float64{
			{5 + float64(r.Range(-1, 1)), 10, 3.2},
			{10, 6 + float64(r.Range(-1, 1)), 2.6},
			{11, 11, 2.1},
		}
		for pi, pb := range pebbles {
			col := Palette.Stone.Mul(uint8(255 - pi*22))
			for y := 0; y < s; y++ {
				for x := 0; x < s; x++ {
					dx := float64(x) - pb[0]
					dy := float64(y) - pb[1]
					dist := math.Hypot(dx, dy)
					if dist > pb[2] {
						continue
					}
					c := col
					if dx < 0 && dy < 0 {
						c = c.Add(20, 20, 22) // top-left light
					} else if dist > pb[2]-1.0 {
						c = c.Mul(170)
					}
					set(x, y, c)
				}
			}
		}

	case TileFlower:
		petal, core := Palette.FlowerA, Palette.FlowerB
		if r.Intn(2) == 0 {
			petal, core = core, petal
		}
		stem := Palette.Bush.Add(10, 20, 8)
		for _, q := range [2][2]int{{7, 11}, {7, 12}} {
			set(q[0], q[1], stem)
		}
		for _, q := range [4][2]int{{7, 5}, {7, 9}, {5, 7}, {9, 7}} {
			set(q[0], q[1], petal)
			set(q[0]+1, q[1], petal)
			set(q[0], q[1]+1, petal)
			set(q[0]+1, q[1]+1, petal)
		}
		set(7, 7, core)
		set(8, 7, core)
		set(7, 8, core)
		set(8, 8, core)
	}

	return pix
}
