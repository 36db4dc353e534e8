// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the compile settings of the hull compiler: the clip
// type, the hull size table, the floor threshold and the run switches.
// Settings are plain values loadable from a YAML description.
package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v2"
)

// NumHulls is the number of hulls per brush: hull 0 is the raw brush shape,
// hulls 1..NumHulls-1 are Minkowski expansions.
const NumHulls = 4

// ClipType selects the offset policy used when expanding brushes.
type ClipType int

const (
	ClipSmallest ClipType = iota
	ClipNormalized
	ClipSimple
	ClipPrecise
	ClipLegacy
)

var clipTypeNames = [...]string{"smallest", "normalized", "simple", "precise", "legacy"}

// String returns the option name of the clip type.
func (c ClipType) String() string {

	if c < 0 || int(c) >= len(clipTypeNames) {
		return "unknown"
	}
	return clipTypeNames[c]
}

// ParseClipType returns the clip type with the specified option name.
func ParseClipType(name string) (ClipType, error) {

	for i, n := range clipTypeNames {
		if n == name {
			return ClipType(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown cliptype %q", name)
}

// UnmarshalYAML decodes a clip type from its option name.
func (c *ClipType) UnmarshalYAML(unmarshal func(interface{}) error) error {

	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	ct, err := ParseClipType(name)
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

// MarshalYAML encodes a clip type as its option name.
func (c ClipType) MarshalYAML() (interface{}, error) {

	return c.String(), nil
}

// HullSize is the [mins, maxs] pair of one collision box.
type HullSize [2][3]float64

// Mins returns the minimum corner of the box.
func (h HullSize) Mins() mgl64.Vec3 {

	return mgl64.Vec3{h[0][0], h[0][1], h[0][2]}
}

// Maxs returns the maximum corner of the box.
func (h HullSize) Maxs() mgl64.Vec3 {

	return mgl64.Vec3{h[1][0], h[1][1], h[1][2]}
}

// Settings holds the global configuration of a compile.
type Settings struct {
	ClipType    ClipType               `yaml:"cliptype"`
	FloorZ      float64                `yaml:"floor_z"`
	WorldExtent float64                `yaml:"world_extent"`
	NoClip      bool                   `yaml:"noclip"`
	EntsOnly    bool                   `yaml:"ents_only"`
	Workers     int                    `yaml:"workers"`
	HullSizes   [NumHulls - 1]HullSize `yaml:"hull_sizes"`
}

// Default returns the settings of a standard compile: precise clipping and
// the stock player hull sizes. Hull 0 has no size entry, so HullSizes[h-1]
// is the box of hull h.
func Default() *Settings {

	return &Settings{
		ClipType:    ClipPrecise,
		FloorZ:      0.7,
		WorldExtent: 32768,
		HullSizes: [NumHulls - 1]HullSize{
			{{-16, -16, -36}, {16, 16, 36}},
			{{-32, -32, -32}, {32, 32, 32}},
			{{-16, -16, -18}, {16, 16, 18}},
		},
	}
}

// HullSize returns the collision box of the specified expanded hull.
func (s *Settings) HullSize(hull int) HullSize {

	return s.HullSizes[hull-1]
}

// Load reads settings from the YAML file at path, applied over Default.
func Load(path string) (*Settings, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}
	return s, nil
}
