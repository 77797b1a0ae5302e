package viewer

import "tilestream/internal/world"

// The spawn island is authored as string art, one rune per tile. It sits
// at the world origin and is filled through the legacy sampling path;
// the procedural ocean takes over beyond its bounds.
//
// Ground legend: ~ deep water, w water, . sand, , dirt, " grass,
// m meadow, ^ rock, * snow. Decor legend: b bush, o stone, f flower.
// Space is empty.

const islandTilePx = 16

var islandGround = []string{
	`~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`,
	`~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`,
	`~~~~~~~~~~~~~~wwwwwwwwwwww~~~~~~~~~~~~~~`,
	`~~~~~~~~~~wwwwwwwwwwwwwwwwwwww~~~~~~~~~~`,
	`~~~~~~~~wwwwww............wwwwww~~~~~~~~`,
	`~~~~~~wwwww......""""""......wwwww~~~~~~`,
	`~~~~~wwww....""""""""""""""....wwww~~~~~`,
	`~~~~wwww..."""""""mmmm"""""""...wwww~~~~`,
	`~~~~www...""""""mmmmmmmm""""""...www~~~~`,
	`~~~www...""""""mmmm,,mmmm""""""...www~~~`,
	`~~~www..""""""mmm^^^^^^mmm""""""..www~~~`,
	`~~~ww..""""""mmm^^^^^^^^mmm""""""..ww~~~`,
	`~~~ww.."""""mmm^^^****^^^mmm"""""..ww~~~`,
	`~~~ww.."""""mmm^^^****^^^mmm"""""..ww~~~`,
	`~~~ww.."""""mmm^^^****^^^mmm"""""..ww~~~`,
	`~~~ww.."""""mmm^^^^^^^^^^mmm"""""..ww~~~`,
	`~~~ww.."""""""mmm^^^^^^mmm"""""""..ww~~~`,
	`~~~ww..."""""""mmm,,,,mmm"""""""...ww~~~`,
	`~~~www..."""""""mmmmmmmm"""""""...www~~~`,
	`~~~~www..."""""""mmmmmm"""""""...www~~~~`,
	`~~~~wwww...""""""""""""""""""...wwww~~~~`,
	`~~~~~wwww....""""""""""""""....wwww~~~~~`,
	`~~~~~~wwwww..................wwwww~~~~~~`,
	`~~~~~~~~wwwwww............wwwwww~~~~~~~~`,
	`~~~~~~~~~~wwwwwwwwwwwwwwwwwwww~~~~~~~~~~`,
	`~~~~~~~~~~~~~~wwwwwwwwwwww~~~~~~~~~~~~~~`,
	`~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`,
	`~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`,
}

var islandDecor = []string{
	``,
	``,
	``,
	``,
	``,
	``,
	``,
	`          b         f        b          `,
	``,
	`                 f    f                 `,
	`              o          o              `,
	``,
	`             o            o             `,
	``,
	``,
	`               o                        `,
	`                        f               `,
	`         b             f      b         `,
	``,
	`                f       b               `,
	`            b       f      o            `,
	`              b        b                `,
	``,
	``,
	``,
	``,
	``,
	``,
}

var islandRunes = map[byte]world.TileID{
	'~': TileDeepWater,
	'w': TileWater,
	'.': TileSand,
	',': TileDirt,
	'"': TileGrass,
	'm': TileMeadow,
	'^': TileRock,
	'*': TileSnow,
	'b': TileBush,
	'o': TileStone,
	'f': TileFlower,
}

// IslandLevel parses the string art into the legacy level handed to the
// streaming manager at construction.
func IslandLevel() *world.LegacyLevel {
	w := len(islandGround[0])
	h := len(islandGround)
	return &world.LegacyLevel{
		Width:  w,
		Height: h,
		TileW:  islandTilePx,
		TileH:  islandTilePx,
		Layers: [][]int{
			parseLayer(islandGround, w, h),
			parseLayer(islandDecor, w, h),
		},
	}
}

// parseLayer converts rune rows to 1-based raw references, 0 for empty.
// Short rows read as empty to the right, same as the sampler's leniency.
func parseLayer(rows []string, w, h int) []int {
	raw := make([]int, w*h)
	for y := 0; y < h && y < len(rows); y++ {
		row := rows[y]
		for x := 0; x < w && x < len(row); x++ {
			if id, ok := islandRunes[row[x]]; ok {
				raw[y*w+x] = int(id) + 1
			}
		}
	}
	return raw
}

// IslandSpawn returns the world-pixel centre of the island.
func IslandSpawn() (float64, float64) {
	w := len(islandGround[0])
	h := len(islandGround)
	return float64(w*islandTilePx) / 2, float64(h*islandTilePx) / 2
}
