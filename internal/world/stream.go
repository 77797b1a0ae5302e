package world

import "math"

// Config fixes the streaming parameters at construction time. Changing
// chunk size or render distance mid-run would invalidate every cached
// chunk, so there is deliberately no way to do it.
type Config struct {
	// ChunkSize is the chunk edge length in tiles.
	ChunkSize int
	// TileSize is the tile edge length in world pixels, used on any axis
	// where the legacy level does not define its own.
	TileSize int
	// RenderDistance is the window radius in chunks around the observer.
	RenderDistance int
}

// window is the closed square of chunk coordinates kept loaded around
// the observer.
type window struct {
	cx, cy, r int
}

func (w window) contains(k ChunkKey) bool {
	return k.X >= w.cx-w.r && k.X <= w.cx+w.r &&
		k.Y >= w.cy-w.r && k.Y <= w.cy+w.r
}

func (w window) count() int {
	n := 2*w.r + 1
	return n * n
}

// windowDiff computes the key sets to evict and to create so that the
// loaded set becomes exactly the window. It only inspects, never
// mutates; the caller applies the result.
func windowDiff(have map[ChunkKey]*Chunk, w window) (add, remove []ChunkKey) {
	for k := range have {
		if !w.contains(k) {
			remove = append(remove, k)
		}
	}
	for y := w.cy - w.r; y <= w.cy+w.r; y++ {
		for x := w.cx - w.r; x <= w.cx+w.r; x++ {
			k := ChunkKey{X: x, Y: y}
			if _, ok := have[k]; !ok {
				add = append(add, k)
			}
		}
	}
	return add, remove
}

// Manager owns the chunk cache and keeps it equal to the window around
// the last observed position. It is single-threaded: all calls happen
// from the owner's loop, and chunk pointers must not be retained across
// Update calls since eviction frees them.
type Manager struct {
	cfg    Config
	gen    *Generator
	chunks map[ChunkKey]*Chunk

	// Effective tile size in world pixels per axis. The legacy level's
	// dimensions win when defined, the configured size otherwise.
	tileW, tileH int
}

func NewManager(cfg Config, level *LegacyLevel, tiles TileSet) *Manager {
	tw, th := cfg.TileSize, cfg.TileSize
	if level.Defined() {
		tw, th = level.TileW, level.TileH
	}
	return &Manager{
		cfg:    cfg,
		gen:    NewGenerator(cfg.ChunkSize, level, tiles),
		chunks: make(map[ChunkKey]*Chunk),
		tileW:  tw,
		tileH:  th,
	}
}

// Update recenters the window on the observer's world pixel position,
// evicting chunks that fell outside and generating the ones that came
// into range. An error aborts the fill and leaves the cache short of
// the window; the next Update retries nothing by itself, it simply
// computes the same diff again.
func (m *Manager) Update(x, y float64) error {
	px := int(math.Floor(x))
	py := int(math.Floor(y))
	w := window{
		cx: WorldToChunk(px, m.cfg.ChunkSize, m.tileW),
		cy: WorldToChunk(py, m.cfg.ChunkSize, m.tileH),
		r:  m.cfg.RenderDistance,
	}

	add, remove := windowDiff(m.chunks, w)
	for _, k := range remove {
		delete(m.chunks, k)
	}
	for _, k := range add {
		c := NewChunk(k, m.cfg.ChunkSize)
		if err := m.gen.Generate(c); err != nil {
			return err
		}
		m.chunks[k] = c
	}
	return nil
}

// Chunks appends every loaded chunk to out and returns it, reusing out's
// backing array. Order is unspecified.
func (m *Manager) Chunks(out []*Chunk) []*Chunk {
	out = out[:0]
	for _, c := range m.chunks {
		out = append(out, c)
	}
	return out
}

// ChunkCount reports the number of loaded chunks. After a successful
// Update it equals (2*RenderDistance+1) squared.
func (m *Manager) ChunkCount() int {
	return len(m.chunks)
}

// TileWidth reports the effective tile width in world pixels.
func (m *Manager) TileWidth() int { return m.tileW }

// TileHeight reports the effective tile height in world pixels.
func (m *Manager) TileHeight() int { return m.tileH }

// ChunkSize reports the chunk edge length in tiles.
func (m *Manager) ChunkSize() int { return m.cfg.ChunkSize }
