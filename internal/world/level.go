package world

// LegacyLevel is a bounded, pre-authored tile map. Chunks that overlap it
// are filled by sampling it instead of by procedural generation.
//
// Width/Height are in tiles, TileW/TileH in pixels. A zero dimension is
// undefined; if any of the four is undefined, no chunk ever overlaps the
// level and the whole world is procedural. Layer data is row-major with
// 1-based tile references where 0 means empty.
//
// The level is supplied pre-parsed by the provider at setup and is
// read-only afterward; the core never touches files.
type LegacyLevel struct {
	Width, Height int
	TileW, TileH  int
	Layers        [][]int
}

// Defined reports whether all four dimensions are set.
func (l *LegacyLevel) Defined() bool {
	return l != nil && l.Width > 0 && l.Height > 0 && l.TileW > 0 && l.TileH > 0
}

// Overlaps reports whether the chunk's tile rectangle
// [cx*size,(cx+1)*size) x [cy*size,(cy+1)*size) intersects the level
// bounds [0,Width) x [0,Height). With any dimension undefined the answer
// is always false.
func (l *LegacyLevel) Overlaps(cx, cy, size int) bool {
	if !l.Defined() {
		return false
	}
	x0 := cx * size
	y0 := cy * size
	return x0 < l.Width && x0+size > 0 && y0 < l.Height && y0+size > 0
}

// Sample reads the 1-based reference for world tile (wx,wy) from layer n
// and converts it to a TileID. Out-of-bounds positions, short layer data,
// and non-positive references all yield NoTile: the level is sampled
// leniently so partially malformed content degrades to empty cells rather
// than failing or falling back to procedural data.
func (l *LegacyLevel) Sample(n, wx, wy int) TileID {
	if wx < 0 || wy < 0 || wx >= l.Width || wy >= l.Height {
		return NoTile
	}
	layer := l.Layers[n]
	idx := wy*l.Width + wx
	if idx >= len(layer) {
		return NoTile
	}
	raw := layer[idx]
	if raw <= 0 {
		return NoTile
	}
	return TileID(raw - 1)
}
