package main

import (
	"os"

	"github.com/osuushi/segments/draw"
	"github.com/osuushi/segments/internal/config"
	"github.com/osuushi/segments/internal/logger"
	"github.com/osuushi/segments/internal/session"
	"github.com/osuushi/segments/internal/svgimport"
	"github.com/osuushi/segments/segments"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Interactive line segment calculator. Input on stdin is the number of
// segments, followed by commands:
//
//	A x1 y1 x2 y2   add a segment
//	R x1 y1 x2 y2   remove a segment
//	D               display all segments and their pairwise relations
//	C x y           find the segment nearest a point
//	I, P            not implemented
//
// The report goes to stdout and diagnostics to stderr.
func main() {
	app := kingpin.New("segments", "Computes slopes, intercepts and intersections of 2D line segments read from stdin.")
	configFile := app.Flag("config", "INI configuration file.").Short('c').ExistingFile()
	capacity := app.Flag("capacity", "Number of segments the collection holds. Read from stdin when omitted.").Default("-1").Int()
	load := app.Flag("load", "SVG file whose line, polyline and polygon elements are added before reading commands.").ExistingFile()
	drawPath := app.Flag("draw", "Render the collection to this PNG file on every D command.").String()
	useImgcat := app.Flag("imgcat", "Also print the rendering in the terminal (iTerm only).").Bool()
	logLevel := app.Flag("log-level", "One of debug, info, warn or error.").String()
	plain := app.Flag("plain", "Disable colored output.").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Read(*configFile)
		if err != nil {
			logger.Fatal("%v", err)
		}
	}

	// Flags win over the config file
	if *capacity >= 0 {
		cfg.Session.Capacity = *capacity
	}
	if *drawPath != "" {
		cfg.Draw.Path = *drawPath
	}
	if *useImgcat {
		cfg.Draw.Imgcat = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *plain {
		cfg.Session.Color = false
	}
	if err := cfg.CheckInit(); err != nil {
		logger.Fatal("%v", err)
	}

	log := logger.Default()
	log.SetLevel(cfg.LogLevel())
	log.SetColors(cfg.Session.Color)
	log.SetShowDateTime(cfg.Log.DateTime)

	var preload []segments.LineSegment
	if *load != "" {
		var err error
		preload, err = svgimport.LoadFile(*load)
		if err != nil {
			logger.Fatal("%v", err)
		}
		logger.Info("Loaded %d segments from %s", len(preload), *load)
	}

	opts := session.Options{
		Capacity: cfg.Session.Capacity,
		Color:    cfg.Session.Color,
		Preload:  preload,
	}
	if cfg.Draw.Path != "" {
		opts.Drawer = &draw.Renderer{
			Path:   cfg.Draw.Path,
			Scale:  cfg.Draw.Scale,
			Imgcat: cfg.Draw.Imgcat,
			Out:    os.Stdout,
		}
	}

	if err := session.New(os.Stdin, os.Stdout, opts).Run(); err != nil {
		logger.Fatal("%v", err)
	}
}
