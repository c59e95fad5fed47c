package main

import (
	"flag"
	"os"

	"triangle-viewer/internal/config"
	"triangle-viewer/internal/env"
	"triangle-viewer/internal/graphics"
	"triangle-viewer/internal/hud"
	"triangle-viewer/internal/logger"
	"triangle-viewer/internal/viewer"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "viewer config file (.json, .yaml or .yml)")
	coordsFile := flag.String("coords", "", "coordinates file; overrides the config and "+config.EnvCoordsFile)
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("error reading .env: %v", err)
	}
	prefs, err := config.Load(*configPath)
	if err != nil {
		log.Logf("using default config: %v", err)
	}
	if err := config.ApplyEnv(&prefs, os.LookupEnv); err != nil {
		log.Logf("ignoring invalid environment overrides: %v", err)
	}
	if *coordsFile != "" {
		prefs.CoordsFile = *coordsFile
	}

	if *writeConfig {
		if err := config.Save(*configPath, prefs); err != nil {
			log.Logf("error writing config: %v", err)
			os.Exit(1)
		}
		log.Logf("wrote %s", *configPath)
		return
	}

	pts, err := loadTriangle(prefs.CoordsFile, log)
	if err != nil {
		os.Exit(1)
	}

	state := viewer.NewState(pts)
	state.Step = prefs.ColorStep
	state.Sensitivity = prefs.Sensitivity
	viewer.ShowHelp(log)

	r, g, b := prefs.BackgroundRGB()
	win := graphics.Open(graphics.Options{
		Width:      prefs.Width,
		Height:     prefs.Height,
		Background: [3]uint8{r, g, b},
		ShowAxes:   prefs.ShowAxes,
	})
	defer win.Close()

	overlay := hud.New()
	overlay.SetShowState(prefs.ShowHUD)
	overlay.SetShowFPS(prefs.ShowFPS)
	viewer.Run(win, state, log, overlay.Draw)
}
