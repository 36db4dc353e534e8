// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command csgc builds the collision hulls of a map described as a YAML
// entity/brush stream.
//
// Usage:
//
//	csgc [options] <map.yaml>
//
// Examples:
//
//	csgc map.yaml                     # compile with default settings
//	csgc -cliptype simple map.yaml    # select the clip offset policy
//	csgc -ents map.yaml               # skip texinfo resolution
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/xlab/closer"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/hull"
	"github.com/g3n/csg/logger"
)

var (
	configPath  = flag.String("config", "", "settings YAML file")
	clipType    = flag.String("cliptype", "", "clip offset policy: smallest|normalized|simple|precise|legacy")
	noClip      = flag.Bool("noclip", false, "skip clip hull generation")
	entsOnly    = flag.Bool("ents", false, "entities only: skip texinfo resolution")
	workers     = flag.Int("workers", 0, "brush workers (default: number of CPUs)")
	logPath     = flag.String("log", "", "also write the log to a file")
	verbose     = flag.Bool("v", false, "developer log output")
	versionFlag = flag.Bool("version", false, "print version")
)

// version returns the module version from build info.
func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: csgc [options] <map.yaml>\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("csgc version %s\n", version())
		return
	}
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no map file specified")
		usage()
		os.Exit(1)
	}

	log := logger.Default
	if *verbose {
		log.SetLevel(logger.Developer)
	}
	var logFile *os.File
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logFile = f
		log.AddWriter(logger.NewStream(f))
	}
	closer.Bind(func() {
		log.Sync()
		if logFile != nil {
			logFile.Close()
		}
	})
	defer closer.Close()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	settings, entities, brushes, err := loadMap(args[0], settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *clipType != "" {
		ct, err := config.ParseClipType(*clipType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.ClipType = ct
	}
	if *noClip {
		settings.NoClip = true
	}
	if *entsOnly {
		settings.EntsOnly = true
	}
	if *workers > 0 {
		settings.Workers = *workers
	}

	log.Info("csgc: %d entities, %d brushes, cliptype %s",
		len(entities), len(brushes), settings.ClipType)

	c := hull.NewCompiler(settings, entities, brushes)
	if err := c.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}

	var faces [config.NumHulls]int
	for _, b := range brushes {
		for h := 0; h < config.NumHulls; h++ {
			faces[h] += len(b.Hulls[h].Faces)
		}
	}
	log.Info("planes: %d", c.Planes.Len())
	for h := 0; h < config.NumHulls; h++ {
		log.Info("hull %d: %d faces", h, faces[h])
	}
	log.Info("%d warnings", log.Warnings())
}
