package world

// TilePlacement is one drawable cell: which tile and where, in world
// tile coordinates. Renderers multiply by the effective tile size to get
// pixels.
type TilePlacement struct {
	ID   TileID
	X, Y int
}

// AppendPlacements appends one placement per non-empty cell to out and
// returns it. Layers are emitted in order, so later layers paint over
// earlier ones when drawn sequentially.
func (c *Chunk) AppendPlacements(out []TilePlacement) []TilePlacement {
	baseX, baseY := c.Origin()
	for _, layer := range c.layers {
		for y := 0; y < c.size; y++ {
			wy := baseY + y
			row := layer[y*c.size : (y+1)*c.size]
			for x, id := range row {
				if id == NoTile {
					continue
				}
				out = append(out, TilePlacement{ID: id, X: baseX + x, Y: wy})
			}
		}
	}
	return out
}

// Placements appends placements for every loaded chunk to out and
// returns it, reusing out's backing array. Chunk order is unspecified;
// within a chunk layers keep their paint order.
func (m *Manager) Placements(out []TilePlacement) []TilePlacement {
	out = out[:0]
	for _, c := range m.chunks {
		out = c.AppendPlacements(out)
	}
	return out
}
