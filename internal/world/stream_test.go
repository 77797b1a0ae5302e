package world

import (
	"errors"
	"testing"
)

func keySet(chunks []*Chunk) map[ChunkKey]bool {
	s := make(map[ChunkKey]bool, len(chunks))
	for _, c := range chunks {
		s[c.Key()] = true
	}
	return s
}

func TestUpdateFillsTheFullWindow(t *testing.T) {
	m := NewManager(Config{ChunkSize: 32, TileSize: 32, RenderDistance: 3}, nil, fullTiles())
	if err := m.Update(0, 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := m.ChunkCount(); got != 49 {
		t.Fatalf("loaded %d chunks at render distance 3, want 49", got)
	}

	loaded := keySet(m.Chunks(nil))
	for y := -3; y <= 3; y++ {
		for x := -3; x <= 3; x++ {
			if !loaded[ChunkKey{X: x, Y: y}] {
				t.Fatalf("window chunk (%d,%d) not loaded", x, y)
			}
		}
	}
	for _, c := range m.Chunks(nil) {
		if !c.Generated() {
			t.Fatalf("chunk %v loaded but not generated", c.Key())
		}
		if c.Layers() != 2 {
			t.Fatalf("chunk %v has %d layers, want 2", c.Key(), c.Layers())
		}
	}
}

func TestCrossingOneBoundaryShiftsOneColumn(t *testing.T) {
	m := NewManager(Config{ChunkSize: 32, TileSize: 32, RenderDistance: 3}, nil, fullTiles())
	if err := m.Update(0, 0); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	before := keySet(m.Chunks(nil))

	// One chunk spans 32*32 = 1024 world pixels, so x=1024 is the first
	// pixel of chunk column 1.
	if err := m.Update(1024, 0); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	after := keySet(m.Chunks(nil))
	if got := m.ChunkCount(); got != 49 {
		t.Fatalf("loaded %d chunks after crossing, want 49", got)
	}

	var added, removed []ChunkKey
	for k := range after {
		if !before[k] {
			added = append(added, k)
		}
	}
	for k := range before {
		if !after[k] {
			removed = append(removed, k)
		}
	}
	if len(added) != 7 || len(removed) != 7 {
		t.Fatalf("crossing one boundary added %d and removed %d chunks, want 7 and 7",
			len(added), len(removed))
	}
	for _, k := range added {
		if k.X != 4 {
			t.Fatalf("added chunk %v is not on the leading column x=4", k)
		}
	}
	for _, k := range removed {
		if k.X != -3 {
			t.Fatalf("removed chunk %v is not on the trailing column x=-3", k)
		}
	}
}

func TestRetainedChunksAreNotRegenerated(t *testing.T) {
	m := NewManager(Config{ChunkSize: 32, TileSize: 32, RenderDistance: 2}, nil, fullTiles())
	if err := m.Update(0, 0); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	var origin *Chunk
	for _, c := range m.Chunks(nil) {
		if c.Key() == (ChunkKey{X: 0, Y: 0}) {
			origin = c
		}
	}
	if origin == nil {
		t.Fatalf("origin chunk not loaded")
	}

	// Move within the window and then across one boundary; (0,0) stays
	// inside both times and must keep its identity.
	if err := m.Update(500, 500); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if err := m.Update(1024, 0); err != nil {
		t.Fatalf("third Update: %v", err)
	}
	for _, c := range m.Chunks(nil) {
		if c.Key() == (ChunkKey{X: 0, Y: 0}) {
			if c != origin {
				t.Fatalf("origin chunk was regenerated while still inside the window")
			}
			return
		}
	}
	t.Fatalf("origin chunk evicted while still inside the window")
}

func TestEvictedChunksComeBackFresh(t *testing.T) {
	m := NewManager(Config{ChunkSize: 16, TileSize: 16, RenderDistance: 1}, nil, fullTiles())
	if err := m.Update(0, 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	var first *Chunk
	for _, c := range m.Chunks(nil) {
		if c.Key() == (ChunkKey{X: 0, Y: 0}) {
			first = c
		}
	}

	// 16*16 = 256 pixels per chunk; x=1024 is chunk column 4, far enough
	// that (0,0) leaves the window.
	if err := m.Update(1024, 0); err != nil {
		t.Fatalf("far Update: %v", err)
	}
	for _, c := range m.Chunks(nil) {
		if c.Key() == (ChunkKey{X: 0, Y: 0}) {
			t.Fatalf("chunk (0,0) still loaded after moving far away")
		}
	}

	if err := m.Update(0, 0); err != nil {
		t.Fatalf("return Update: %v", err)
	}
	for _, c := range m.Chunks(nil) {
		if c.Key() == (ChunkKey{X: 0, Y: 0}) {
			if c == first {
				t.Fatalf("evicted chunk came back as the same instance")
			}
			if c.At(0, 3, 3) != first.At(0, 3, 3) {
				t.Fatalf("regenerated chunk differs from its first generation")
			}
			return
		}
	}
	t.Fatalf("chunk (0,0) not reloaded after returning")
}

func TestNegativePositionsLandInNegativeChunks(t *testing.T) {
	m := NewManager(Config{ChunkSize: 32, TileSize: 32, RenderDistance: 0}, nil, fullTiles())
	cases := []struct {
		x, y float64
		want ChunkKey
	}{
		{0, 0, ChunkKey{0, 0}},
		{-1, -1, ChunkKey{-1, -1}},
		{-0.5, -0.5, ChunkKey{-1, -1}},
		{1023.9, 0, ChunkKey{0, 0}},
		{-1024, -1025, ChunkKey{-1, -2}},
	}
	for _, c := range cases {
		if err := m.Update(c.x, c.y); err != nil {
			t.Fatalf("Update(%f, %f): %v", c.x, c.y, err)
		}
		chunks := m.Chunks(nil)
		if len(chunks) != 1 {
			t.Fatalf("render distance 0 loaded %d chunks, want 1", len(chunks))
		}
		if got := chunks[0].Key(); got != c.want {
			t.Fatalf("Update(%f, %f) centered on %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestLegacyTileScaleDrivesChunkCrossing(t *testing.T) {
	level := &LegacyLevel{
		Width: 4, Height: 4, TileW: 16, TileH: 8,
		Layers: [][]int{{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}
	m := NewManager(Config{ChunkSize: 32, TileSize: 32, RenderDistance: 0}, level, fullTiles())
	if got, want := m.TileWidth(), 16; got != want {
		t.Fatalf("TileWidth() = %d, want the level's %d", got, want)
	}
	if got, want := m.TileHeight(), 8; got != want {
		t.Fatalf("TileHeight() = %d, want the level's %d", got, want)
	}

	// One chunk spans 32*16 = 512 pixels horizontally but only 32*8 = 256
	// vertically; the configured 32 must not be used on either axis.
	if err := m.Update(511, 255); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := m.Chunks(nil)[0].Key(); got != (ChunkKey{0, 0}) {
		t.Fatalf("position (511,255) centered on %v, want (0,0)", got)
	}
	if err := m.Update(512, 256); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := m.Chunks(nil)[0].Key(); got != (ChunkKey{1, 1}) {
		t.Fatalf("position (512,256) centered on %v, want (1,1)", got)
	}
}

func TestConfiguredTileSizeUsedWithoutLevel(t *testing.T) {
	m := NewManager(Config{ChunkSize: 8, TileSize: 4, RenderDistance: 0}, nil, fullTiles())
	if got := m.TileWidth(); got != 4 {
		t.Fatalf("TileWidth() = %d without a level, want the configured 4", got)
	}
	if err := m.Update(32, 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := m.Chunks(nil)[0].Key(); got != (ChunkKey{1, 0}) {
		t.Fatalf("position (32,0) centered on %v with 8*4 pixel chunks, want (1,0)", got)
	}
}

func TestEmptyTileSetErrorSurfacesFromUpdate(t *testing.T) {
	m := NewManager(Config{ChunkSize: 8, TileSize: 8, RenderDistance: 1}, nil, TileSet{})
	err := m.Update(0, 0)
	if !errors.Is(err, ErrEmptyTileSet) {
		t.Fatalf("Update with empty tile set: got %v, want ErrEmptyTileSet", err)
	}
}
