// Package render draws preview images of coordinate sets.
package render

import (
	"fmt"
	"image/color"

	"github.com/woozymasta/checkcoord/internal/config"
)

// Options controls preview geometry and colors.
type Options struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	Background  color.NRGBA
	Size        int
	Padding     int
	StrokeWidth float32
	Quality     float32
	Lossless    bool
}

// OptionsFromConfig resolves the render section of the configuration.
func OptionsFromConfig(cfg config.Render) (Options, error) {
	opts := Options{
		Size:        cfg.Size,
		Padding:     cfg.Padding,
		StrokeWidth: cfg.StrokeWidth,
		Quality:     cfg.Quality,
		Lossless:    cfg.Lossless,
	}

	var err error
	if opts.Fill, err = ParseColor(cfg.Fill); err != nil {
		return Options{}, fmt.Errorf("render.fill: %w", err)
	}
	if opts.Stroke, err = ParseColor(cfg.Stroke); err != nil {
		return Options{}, fmt.Errorf("render.stroke: %w", err)
	}
	if opts.Background, err = ParseColor(cfg.Background); err != nil {
		return Options{}, fmt.Errorf("render.background: %w", err)
	}

	if opts.Size <= 0 {
		return Options{}, fmt.Errorf("render.size must be positive, got %d", opts.Size)
	}
	if opts.Padding < 0 || 2*opts.Padding >= opts.Size {
		return Options{}, fmt.Errorf("render.padding must be between 0 and half the size %d, got %d", opts.Size, opts.Padding)
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}

	return opts, nil
}
