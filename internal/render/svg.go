package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/woozymasta/checkcoord/internal/geo"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

var svgTemplate = template.Must(template.New("preview").Parse(
	`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}">
  <rect x="0" y="0" width="{{.Size}}" height="{{.Size}}" fill="{{.Background}}" fill-opacity="{{.BackgroundOpacity}}"/>
{{- if eq .Kind "region"}}
  <polygon points="{{.Points}}" fill="{{.Fill}}" fill-opacity="{{.FillOpacity}}" stroke="{{.Stroke}}" stroke-opacity="{{.StrokeOpacity}}" stroke-width="{{.StrokeWidth}}" stroke-linejoin="round"/>
{{- else if eq .Kind "line"}}
  <polyline points="{{.Points}}" fill="none" stroke="{{.Stroke}}" stroke-opacity="{{.StrokeOpacity}}" stroke-width="{{.StrokeWidth}}" stroke-linecap="round"/>
{{- end}}
{{- range .Vertices}}
  <circle cx="{{.X}}" cy="{{.Y}}" r="{{$.Radius}}" fill="{{$.Stroke}}" fill-opacity="{{$.StrokeOpacity}}"/>
{{- end}}
</svg>
`))

type svgData struct {
	Kind              string
	Points            string
	Fill              string
	FillOpacity       string
	Stroke            string
	StrokeOpacity     string
	Background        string
	BackgroundOpacity string
	Vertices          []svgVertex
	Size              int
	StrokeWidth       float32
	Radius            float32
}

type svgVertex struct {
	X, Y string
}

func coord(v float32) string {
	return fmt.Sprintf("%.2f", v)
}

// svgSource renders the unminified SVG document.
func svgSource(set *geo.CoordinateSet, opts Options) ([]byte, error) {
	pts := project(set, opts.Size, opts.Padding)

	data := svgData{
		Kind:        set.Kind().String(),
		Size:        opts.Size,
		StrokeWidth: opts.StrokeWidth,
		Radius:      max(opts.StrokeWidth, 2),
		Vertices:    make([]svgVertex, 0, len(pts)),
	}
	data.Fill, data.FillOpacity = svgColor(opts.Fill)
	data.Stroke, data.StrokeOpacity = svgColor(opts.Stroke)
	data.Background, data.BackgroundOpacity = svgColor(opts.Background)

	pairs := make([]string, 0, len(pts))
	for _, p := range pts {
		pairs = append(pairs, coord(p.X)+","+coord(p.Y))
		data.Vertices = append(data.Vertices, svgVertex{X: coord(p.X), Y: coord(p.Y)})
	}
	data.Points = strings.Join(pairs, " ")

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute svg template: %w", err)
	}

	return buf.Bytes(), nil
}

// SVG renders the set as a minified SVG document.
func SVG(set *geo.CoordinateSet, opts Options) ([]byte, error) {
	src, err := svgSource(set, opts)
	if err != nil {
		return nil, err
	}

	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)

	out, err := m.Bytes(svgMediaType, src)
	if err != nil {
		return nil, fmt.Errorf("minify svg: %w", err)
	}

	log.Debug().
		Str("type", set.Kind().String()).
		Int("source_bytes", len(src)).
		Int("minified_bytes", len(out)).
		Msg("SVG preview rendered")

	return out, nil
}
