package world

// TileID is an integer key into an externally-owned tile metadata map.
// The core never creates or mutates that map; it only reads it.
type TileID int

// NoTile marks an empty cell. "Not present" is an explicit value here,
// never an error.
const NoTile TileID = -1

// TileInfo is the externally-owned metadata for one tile: its image size
// in pixels and an opaque renderer handle the core never interprets.
type TileInfo struct {
	W, H   int
	Handle uint64
}

// TileSet maps tile ids to their metadata. It is supplied once at setup
// and treated as immutable for the lifetime of the streaming manager.
type TileSet map[TileID]TileInfo
