package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/joel-heath/JSCanvasGame/audio"
	"github.com/joel-heath/JSCanvasGame/config"
	"github.com/joel-heath/JSCanvasGame/constants"
	"github.com/joel-heath/JSCanvasGame/core"
	"github.com/joel-heath/JSCanvasGame/game"
)

var (
	configFlag = flag.String("config", "", "Path to a settings YAML file")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	audioCfg := audio.DefaultConfig()
	audioCfg.SampleRate = constants.SampleRate
	audioCfg.BufferLen = constants.SpeakerBufferLen
	audioCfg.Cooldown = constants.DefaultSoundCooldown
	audioCfg.MasterVolume = cfg.MasterVolume
	audioCfg.MusicVolume = cfg.MusicVolume
	audioCfg.SFXVolume = cfg.SFXVolume
	audioCfg.Enabled = cfg.AudioEnabled

	sound := audio.NewManager(audioCfg, core.SystemTimeProvider{})
	if cfg.AudioEnabled {
		if err := sound.Initialize(); err != nil {
			// The game runs fine without a speaker
			logrus.WithError(err).Warn("Audio unavailable, continuing silent")
		}
	}
	defer sound.Close()

	ebiten.SetWindowSize(constants.ViewportWidth*cfg.Scale, constants.ViewportHeight*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(60)

	logrus.WithFields(logrus.Fields{
		"assets": cfg.AssetRoot,
		"map":    cfg.StartMap,
	}).Info("Starting")

	start := time.Now()
	g := game.New(cfg, sound, core.SystemTimeProvider{})
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Game exited with error: %v\n", err)
		os.Exit(1)
	}
	logrus.WithField("uptime", time.Since(start)).Info("Exited")
}
