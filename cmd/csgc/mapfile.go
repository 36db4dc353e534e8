// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v2"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/hull"
)

// mapFile is the YAML description of a compile job: optional settings
// overrides plus the entity and brush stream normally supplied by the .map
// parser.
type mapFile struct {
	Settings *config.Settings `yaml:"settings"`
	Entities []mapEntity      `yaml:"entities"`
}

type mapEntity struct {
	Keys    map[string]string `yaml:"keys"`
	Brushes []mapBrush        `yaml:"brushes"`
}

type mapBrush struct {
	Sides      []mapSide      `yaml:"sides"`
	ClipHull   int            `yaml:"cliphull"`
	NoClip     bool           `yaml:"noclip"`
	Bevel      bool           `yaml:"bevel"`
	HullShapes map[int]string `yaml:"hullshapes"`
}

type mapSide struct {
	Points  [3][3]float64 `yaml:"points"`
	Texture string        `yaml:"texture"`
	Bevel   bool          `yaml:"bevel"`
}

// loadMap reads a compile job, returning its settings (the given defaults
// overlaid with the file's settings section) and the entity/brush stream.
func loadMap(path string, defaults *config.Settings) (*config.Settings, []hull.Entity, []*hull.Brush, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	mf := mapFile{Settings: defaults}
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, nil, nil, fmt.Errorf("map file: %v", err)
	}

	var entities []hull.Entity
	var brushes []*hull.Brush
	for ei, me := range mf.Entities {
		keys := me.Keys
		if keys == nil {
			keys = map[string]string{}
		}
		entities = append(entities, hull.Entity{Keys: keys})
		for bi, mb := range me.Brushes {
			b := &hull.Brush{
				Entity:         ei,
				OriginalEntity: ei,
				OriginalBrush:  bi,
				ClipHull:       mb.ClipHull,
				NoClip:         mb.NoClip,
				Bevel:          mb.Bevel,
			}
			for h, name := range mb.HullShapes {
				if h >= 0 && h < config.NumHulls {
					b.HullShapes[h] = name
				}
			}
			for _, ms := range mb.Sides {
				side := hull.Side{
					Texture: hull.TextureDef{Name: ms.Texture},
					Bevel:   ms.Bevel,
				}
				for i, pt := range ms.Points {
					side.Planepts[i] = mgl64.Vec3{pt[0], pt[1], pt[2]}
				}
				b.Sides = append(b.Sides, side)
			}
			brushes = append(brushes, b)
		}
	}
	return mf.Settings, entities, brushes, nil
}
