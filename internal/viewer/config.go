package viewer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	DefaultZoom  = 2.0
	MinZoom      = 0.5
	MaxZoom      = 8.0
)

// Streaming defaults. Chunk and tile size are in tiles and pixels; the
// render distance is the chunk radius kept loaded around the observer.
const (
	DefaultChunkSize      = 16
	DefaultTileSize       = 16
	DefaultRenderDistance = 3
)

// Observer movement (world pixels per second).
const (
	MoveSpeed    = 220.0
	SprintFactor = 4.0
	TeleportJump = 100000.0
)

// TileArtSize is the edge length of generated tile art in pixels.
const TileArtSize = 16

// Config is fixed at startup; nothing rereads the environment afterward.
type Config struct {
	ChunkSize      int
	TileSize       int
	RenderDistance int
	WindowW        int
	WindowH        int

	// ArtSeed varies the generated tile art and nothing else; terrain
	// content is derived purely from chunk coordinates.
	ArtSeed uint64

	Mute     bool
	NoIsland bool
}

// LoadConfig reads settings from the environment, with an optional .env
// file loaded first. Bad values fall back to defaults with a warning.
func LoadConfig() Config {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintf(os.Stderr, "loaded settings from .env\n")
	}

	cfg := Config{
		ChunkSize:      getIntEnv("TILESTREAM_CHUNK_SIZE", DefaultChunkSize),
		TileSize:       getIntEnv("TILESTREAM_TILE_SIZE", DefaultTileSize),
		RenderDistance: getIntEnv("TILESTREAM_RENDER_DISTANCE", DefaultRenderDistance),
		WindowW:        getIntEnv("TILESTREAM_WINDOW_WIDTH", WindowWidth),
		WindowH:        getIntEnv("TILESTREAM_WINDOW_HEIGHT", WindowHeight),
		ArtSeed:        getSeedEnv("TILESTREAM_SEED"),
		Mute:           getBoolEnv("TILESTREAM_MUTE", false),
		NoIsland:       getBoolEnv("TILESTREAM_NO_ISLAND", false),
	}

	if cfg.ChunkSize < 1 {
		fmt.Fprintf(os.Stderr, "chunk size %d is invalid, using %d\n", cfg.ChunkSize, DefaultChunkSize)
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.TileSize < 1 {
		fmt.Fprintf(os.Stderr, "tile size %d is invalid, using %d\n", cfg.TileSize, DefaultTileSize)
		cfg.TileSize = DefaultTileSize
	}
	if cfg.RenderDistance < 0 {
		fmt.Fprintf(os.Stderr, "render distance %d is invalid, using %d\n", cfg.RenderDistance, DefaultRenderDistance)
		cfg.RenderDistance = DefaultRenderDistance
	}
	return cfg
}

func getIntEnv(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s=%q is not a number, using %d\n", key, s, def)
		return def
	}
	return v
}

func getBoolEnv(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s=%q is not a boolean, using %v\n", key, s, def)
		return def
	}
	return v
}

// getSeedEnv reads a uint64 seed, falling back to the clock. The seed
// only flavours tile art, so a per-run default is fine.
func getSeedEnv(key string) uint64 {
	s := os.Getenv(key)
	if s == "" {
		return uint64(time.Now().UnixNano())
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s=%q is not a seed, using the clock\n", key, s)
		return uint64(time.Now().UnixNano())
	}
	return v
}
