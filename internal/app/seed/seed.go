// Package seed holds the demo data set for the mod catalog and the loader
// that installs it. Loading is destructive: the mods collection is cleared
// before the sample records are inserted. It exists for demos and local
// development, never as part of the runtime request path.
package seed

import (
	"context"
	"time"

	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
	"github.com/modshelf/modshelf/internal/domain/models"
)

// Mods returns the fixed sample set: eight representative Geode mods with
// human-readable slugs for ids. Timestamps are stamped at call time so the
// stored documents are self-consistent.
func Mods() []models.Mod {
	now := time.Now().UTC()

	mods := []models.Mod{
		{
			ID:             "geome3dash",
			Name:           "Geome3Dash",
			Description:    "Experience Geometry Dash in stunning 3D! This popular mod transforms the classic 2D gameplay into an immersive 3D experience with enhanced visuals and depth.",
			Author:         "TheSillyDoggo",
			Version:        "1.2.0",
			Category:       "Visual Enhancement",
			Tags:           []string{"3d", "visual", "graphics", "enhancement"},
			DownloadURL:    "https://github.com/TheSillyDoggo/Geome3Dash/releases/download/v1.2.0/geome3dash.geode",
			FileSize:       "2.1 MB",
			Screenshots:    []string{"https://camo.githubusercontent.com/8f3d9bb8c4b8f8e8f8e8f8e8f8e8f8e8f8e8f8e8/68747470733a2f2f692e696d6775722e636f6d2f4b6a4e7436416e2e706e67"},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.8,
			DownloadsCount: 15420,
		},
		{
			ID:             "betterinfo",
			Name:           "BetterInfo",
			Description:    "Enhanced information display for Geometry Dash. Shows detailed statistics, level information, and player data with improved UI elements.",
			Author:         "cvolton",
			Version:        "4.5.1",
			Category:       "Interface",
			Tags:           []string{"ui", "stats", "info", "enhancement"},
			DownloadURL:    "https://github.com/cvolton/betterinfo-geode/releases/download/v4.5.1/cvolton.betterinfo.geode",
			FileSize:       "1.8 MB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.6,
			DownloadsCount: 12850,
		},
		{
			ID:             "gddp-integration",
			Name:           "GDDP Integration",
			Description:    "Integrates Geometry Dash Demon Progression (GDDP) ratings directly into the game, showing demon difficulty ratings for levels.",
			Author:         "Minemaker0430",
			Version:        "1.4.2",
			Category:       "Gameplay",
			Tags:           []string{"demons", "difficulty", "rating", "integration"},
			DownloadURL:    "https://github.com/Minemaker0430/GDDP-Integration/releases/download/v1.4.2/minemaker0430.gddp_integration.geode",
			FileSize:       "850 KB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.4,
			DownloadsCount: 8750,
		},
		{
			ID:             "globed2",
			Name:           "Globed",
			Description:    "Multiplayer mod for Geometry Dash! Play with friends in real-time, see other players' attempts, and compete together.",
			Author:         "dankmeme01",
			Version:        "1.7.3",
			Category:       "Multiplayer",
			Tags:           []string{"multiplayer", "online", "friends", "real-time"},
			DownloadURL:    "https://github.com/dankmeme01/globed2/releases/download/v1.7.3/dankmeme01.globed2.geode",
			FileSize:       "3.2 MB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.7,
			DownloadsCount: 22100,
		},
		{
			ID:             "noclip",
			Name:           "Noclip",
			Description:    "Practice mode enhancement that allows you to pass through obstacles. Perfect for learning difficult sections of levels.",
			Author:         "spaghettdev",
			Version:        "2.1.0",
			Category:       "Practice",
			Tags:           []string{"practice", "noclip", "training", "bypass"},
			DownloadURL:    "https://github.com/spaghettdev/noclip-geode/releases/download/v2.1.0/spaghettdev.noclip.geode",
			FileSize:       "450 KB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.3,
			DownloadsCount: 18900,
		},
		{
			ID:             "click-between-frames",
			Name:           "Click Between Frames",
			Description:    "Improves input precision by allowing clicks to register between frames, making the game more responsive and fair.",
			Author:         "spaghettdev",
			Version:        "1.3.1",
			Category:       "Performance",
			Tags:           []string{"input", "precision", "performance", "responsiveness"},
			DownloadURL:    "https://github.com/spaghettdev/click-between-frames/releases/download/v1.3.1/spaghettdev.click_between_frames.geode",
			FileSize:       "320 KB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.9,
			DownloadsCount: 31200,
		},
		{
			ID:             "replay-engine",
			Name:           "Replay Engine",
			Description:    "Record and replay your Geometry Dash gameplay. Save your best runs, share them with friends, or analyze your performance.",
			Author:         "matcool",
			Version:        "2.0.4",
			Category:       "Recording",
			Tags:           []string{"replay", "recording", "analysis", "sharing"},
			DownloadURL:    "https://github.com/matcool/replay-engine/releases/download/v2.0.4/matcool.replay_engine.geode",
			FileSize:       "1.1 MB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.5,
			DownloadsCount: 9650,
		},
		{
			ID:             "texture-ldr",
			Name:           "Texture Loader",
			Description:    "Load custom textures and texture packs for Geometry Dash. Customize the appearance of blocks, backgrounds, and UI elements.",
			Author:         "geode-sdk",
			Version:        "1.6.0",
			Category:       "Customization",
			Tags:           []string{"textures", "customization", "themes", "visual"},
			DownloadURL:    "https://github.com/geode-sdk/texture-loader/releases/download/v1.6.0/geode-sdk.texture_loader.geode",
			FileSize:       "750 KB",
			Screenshots:    []string{},
			Compatibility:  []string{"2.2", "2.206"},
			Rating:         4.2,
			DownloadsCount: 16800,
		},
	}

	for i := range mods {
		mods[i].CreatedAt = now
		mods[i].UpdatedAt = now
	}
	return mods
}

// Load clears the mods collection and inserts the sample set.
func Load(ctx context.Context, store *modstore.Store) (int, error) {
	mods := Mods()
	if err := store.DeleteAll(ctx); err != nil {
		return 0, err
	}
	if err := store.InsertMany(ctx, mods); err != nil {
		return 0, err
	}
	return len(mods), nil
}
