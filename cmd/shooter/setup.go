package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/logging"
)

// loadConfig reads the config and applies the --difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger builds the program logger. fallback receives logs when no
// --log-file is given; nil means the default log file.
// The returned closer must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	if flagLogFile == "" && fallback != nil {
		return logging.New(fallback, prefix, level), func() {}, nil
	}

	path := flagLogFile
	if path == "" {
		path = logging.DefaultFile
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, prefix, level), func() { f.Close() }, nil
}

// newAudio opens the speaker and loads the configured sounds. Any failure
// leaves the game silent rather than stopping it.
func newAudio(cfg config.Config, loader *assets.Loader, logger *log.Logger, mute bool) (audio.Player, func()) {
	if mute || cfg.Sounds.Volume <= 0 {
		return audio.Nop{}, func() {}
	}

	player, err := audio.NewBeep(cfg.Sounds.Volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}

	for _, name := range []string{cfg.Sounds.Fire, cfg.Sounds.Explosion} {
		if name == "" {
			continue
		}
		r, err := loader.Open(name)
		if err != nil {
			logger.Warn("missing sound", "sound", name, "error", err)
			continue
		}
		if err := player.Load(name, r); err != nil {
			logger.Warn("bad sound", "sound", name, "error", err)
		}
		r.Close()
	}
	return player, player.Close
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
