// Package config loads carousel.yaml, the optional file that configures the
// carousel CLI: carousel options and the cards to show.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

// FileName is the config file looked up in a directory.
const FileName = "carousel.yaml"

// SupportedMajor is the config schema major version this build reads.
const SupportedMajor = "v1"

// File represents carousel.yaml.
type File struct {
	Version  string  `yaml:"version,omitempty"`
	Carousel Options `yaml:"carousel"`
	Items    []Card  `yaml:"items,omitempty"`
}

// Options mirror carousel.Config. Durations are in milliseconds; zero
// values take the carousel defaults.
type Options struct {
	BaseWidth         float64 `yaml:"baseWidth,omitempty"`
	Autoplay          bool    `yaml:"autoplay,omitempty"`
	AutoplayDelay     int     `yaml:"autoplayDelay,omitempty"`
	PauseOnHover      bool    `yaml:"pauseOnHover,omitempty"`
	Loop              bool    `yaml:"loop,omitempty"`
	Round             bool    `yaml:"round,omitempty"`
	DragBuffer        float64 `yaml:"dragBuffer,omitempty"`
	VelocityThreshold float64 `yaml:"velocityThreshold,omitempty"`
	DragElastic       float64 `yaml:"dragElastic,omitempty"`
	Spring            Spring  `yaml:"spring,omitempty"`
	Integrator        string  `yaml:"integrator,omitempty"`
}

// Spring configures the settle animation.
type Spring struct {
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`
}

// Card is one carousel item.
type Card struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Alt         string `yaml:"alt,omitempty"`
}

// Label returns the text shown on the card: the title, else the image alt
// text, else the icon.
func (c Card) Label() string {
	switch {
	case c.Title != "":
		return c.Title
	case c.Alt != "":
		return c.Alt
	default:
		return c.Icon
	}
}

// DefaultCards is shown when the file lists no items.
func DefaultCards() []Card {
	return []Card{
		{Title: "Text Animations", Description: "Cool text animations for your projects.", Icon: "T"},
		{Title: "Animations", Description: "Smooth animations for your projects.", Icon: "A"},
		{Title: "Components", Description: "Reusable components for your projects.", Icon: "C"},
		{Title: "Backgrounds", Description: "Beautiful backgrounds and patterns for your projects.", Icon: "B"},
		{Title: "Common UI", Description: "Common UI components are coming soon!", Icon: "U"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads carousel.yaml from dir if present. A missing file
// yields an empty File.
func LoadOptional(dir string) (*File, error) {
	f, err := Load(filepath.Join(dir, FileName))
	if stderrors.Is(err, os.ErrNotExist) {
		return &File{}, nil
	}
	return f, err
}

// Parse decodes carousel.yaml contents and checks the schema version.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	return &f, nil
}

// checkVersion accepts an empty version or any semver with major v1. The
// leading "v" is optional.
func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return errors.Config("config.Parse", "version", "%q is not a semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return errors.Config("config.Parse", "version", "schema %s is not supported (want %s.x)", major, SupportedMajor)
	}
	return nil
}

// Resolve converts the file into a validated carousel.Config. Cards become
// the items; DefaultCards are used when none are listed.
func (f *File) Resolve() (carousel.Config, error) {
	cards := f.Items
	if len(cards) == 0 {
		cards = DefaultCards()
	}
	items := make([]carousel.Item, len(cards))
	for i, c := range cards {
		items[i] = c
	}

	o := f.Carousel
	cfg := carousel.Config{
		Items:             items,
		BaseWidth:         o.BaseWidth,
		Autoplay:          o.Autoplay,
		AutoplayDelay:     time.Duration(o.AutoplayDelay) * time.Millisecond,
		PauseOnHover:      o.PauseOnHover,
		Loop:              o.Loop,
		Round:             o.Round,
		DragBuffer:        o.DragBuffer,
		VelocityThreshold: o.VelocityThreshold,
		DragElastic:       o.DragElastic,
		Spring: animation.SpringDescription{
			Mass:      o.Spring.Mass,
			Stiffness: o.Spring.Stiffness,
			Damping:   o.Spring.Damping,
		},
		Integrator: animation.Integrator(o.Integrator),
	}
	if cfg.Spring.Mass == 0 && !cfg.Spring.IsZero() {
		cfg.Spring.Mass = 1
	}
	if err := cfg.Validate(); err != nil {
		return carousel.Config{}, err
	}
	return cfg, nil
}
