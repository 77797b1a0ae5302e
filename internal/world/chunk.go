package world

// Chunk is a size x size block of tiles, the unit of generation and
// caching. Layers hold row-major TileIDs (NoTile for empty cells); once
// generated the tile data never mutates. Chunks are owned by the cache:
// a reference must not be held past the Update call that produced it,
// since any later Update may evict the chunk.
type Chunk struct {
	key  ChunkKey
	size int

	layers    [][]TileID
	generated bool
}

func NewChunk(key ChunkKey, size int) *Chunk {
	return &Chunk{key: key, size: size}
}

func (c *Chunk) Key() ChunkKey { return c.key }

// Size returns the chunk side length in tiles.
func (c *Chunk) Size() int { return c.size }

// Origin returns the world tile coordinate of the chunk's top-left cell.
func (c *Chunk) Origin() (int, int) {
	return c.key.X * c.size, c.key.Y * c.size
}

// Layers returns the number of tile layers. Zero until generated.
func (c *Chunk) Layers() int { return len(c.layers) }

// At returns the tile at local (x,y) on the given layer, or NoTile for
// out-of-range arguments.
func (c *Chunk) At(layer, x, y int) TileID {
	if layer < 0 || layer >= len(c.layers) {
		return NoTile
	}
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return NoTile
	}
	return c.layers[layer][y*c.size+x]
}

// Generated reports whether the chunk's tile data has been filled.
func (c *Chunk) Generated() bool { return c.generated }

func (c *Chunk) idx(x, y int) int {
	return y*c.size + x
}

// newLayer allocates one layer with every cell empty.
func (c *Chunk) newLayer() []TileID {
	l := make([]TileID, c.size*c.size)
	for i := range l {
		l[i] = NoTile
	}
	return l
}
