package world

// ChunkKey identifies a chunk's position on the unbounded chunk grid.
type ChunkKey struct {
	X, Y int
}

// WorldToChunk maps a world pixel coordinate to a chunk coordinate.
// A chunk spans chunkSize*tileSize world pixels per axis. Division is
// floored, not truncated toward zero, so negative coordinates land in
// correctly-ordered negative chunks: WorldToChunk(-1, 32, 32) == -1.
func WorldToChunk(world, chunkSize, tileSize int) int {
	return floorDiv(world, chunkSize*tileSize)
}
