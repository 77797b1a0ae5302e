package viewer

import "testing"

// clearStreamEnv blanks every setting so ambient shell state can't leak
// into assertions. Empty values read as unset.
func clearStreamEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TILESTREAM_CHUNK_SIZE",
		"TILESTREAM_TILE_SIZE",
		"TILESTREAM_RENDER_DISTANCE",
		"TILESTREAM_WINDOW_WIDTH",
		"TILESTREAM_WINDOW_HEIGHT",
		"TILESTREAM_SEED",
		"TILESTREAM_MUTE",
		"TILESTREAM_NO_ISLAND",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearStreamEnv(t)
	cfg := LoadConfig()
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("chunk size = %d, want %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.TileSize != DefaultTileSize {
		t.Errorf("tile size = %d, want %d", cfg.TileSize, DefaultTileSize)
	}
	if cfg.RenderDistance != DefaultRenderDistance {
		t.Errorf("render distance = %d, want %d", cfg.RenderDistance, DefaultRenderDistance)
	}
	if cfg.WindowW != WindowWidth || cfg.WindowH != WindowHeight {
		t.Errorf("window = %dx%d, want %dx%d", cfg.WindowW, cfg.WindowH, WindowWidth, WindowHeight)
	}
	if cfg.Mute || cfg.NoIsland {
		t.Errorf("flags mute=%v noIsland=%v, want both off", cfg.Mute, cfg.NoIsland)
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	clearStreamEnv(t)
	t.Setenv("TILESTREAM_CHUNK_SIZE", "8")
	t.Setenv("TILESTREAM_TILE_SIZE", "24")
	t.Setenv("TILESTREAM_RENDER_DISTANCE", "5")
	t.Setenv("TILESTREAM_WINDOW_WIDTH", "640")
	t.Setenv("TILESTREAM_WINDOW_HEIGHT", "480")
	t.Setenv("TILESTREAM_SEED", "12345")
	t.Setenv("TILESTREAM_MUTE", "true")
	t.Setenv("TILESTREAM_NO_ISLAND", "1")

	cfg := LoadConfig()
	if cfg.ChunkSize != 8 || cfg.TileSize != 24 || cfg.RenderDistance != 5 {
		t.Errorf("streaming settings = %d/%d/%d, want 8/24/5",
			cfg.ChunkSize, cfg.TileSize, cfg.RenderDistance)
	}
	if cfg.WindowW != 640 || cfg.WindowH != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.WindowW, cfg.WindowH)
	}
	if cfg.ArtSeed != 12345 {
		t.Errorf("seed = %d, want 12345", cfg.ArtSeed)
	}
	if !cfg.Mute || !cfg.NoIsland {
		t.Errorf("flags mute=%v noIsland=%v, want both on", cfg.Mute, cfg.NoIsland)
	}
}

func TestLoadConfigRejectsInvalidSizes(t *testing.T) {
	clearStreamEnv(t)
	t.Setenv("TILESTREAM_CHUNK_SIZE", "0")
	t.Setenv("TILESTREAM_TILE_SIZE", "-4")
	t.Setenv("TILESTREAM_RENDER_DISTANCE", "-1")

	cfg := LoadConfig()
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("chunk size = %d, want default %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.TileSize != DefaultTileSize {
		t.Errorf("tile size = %d, want default %d", cfg.TileSize, DefaultTileSize)
	}
	if cfg.RenderDistance != DefaultRenderDistance {
		t.Errorf("render distance = %d, want default %d", cfg.RenderDistance, DefaultRenderDistance)
	}
}

func TestZeroRenderDistanceIsValid(t *testing.T) {
	clearStreamEnv(t)
	t.Setenv("TILESTREAM_RENDER_DISTANCE", "0")
	if cfg := LoadConfig(); cfg.RenderDistance != 0 {
		t.Fatalf("render distance = %d, want 0", cfg.RenderDistance)
	}
}

func TestMalformedValuesFallBack(t *testing.T) {
	clearStreamEnv(t)
	t.Setenv("TILESTREAM_CHUNK_SIZE", "sixteen")
	t.Setenv("TILESTREAM_MUTE", "sure")
	t.Setenv("TILESTREAM_SEED", "not-a-seed")

	cfg := LoadConfig()
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("chunk size = %d, want default %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.Mute {
		t.Error("malformed mute flag should read as false")
	}
}
