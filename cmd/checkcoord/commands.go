package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/woozymasta/checkcoord/internal/analysis"
	"github.com/woozymasta/checkcoord/internal/geo"
	"github.com/woozymasta/checkcoord/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

func addCommands(parser *flags.Parser) {
	commands := []struct {
		data             any
		name, short, long string
	}{
		{&validateCommand{}, "validate", "Validate coordinate strings",
			"Validate one or more \"lon,lat;lon,lat\" strings and report their kind and points"},
		{&analyzeCommand{}, "analyze", "Validate and measure coordinate strings",
			"Add DMS notation, line distance, region area and perimeter to the validation report"},
		{&batchCommand{}, "batch", "Validate a list of inputs",
			"Validate every element independently; a JSON or YAML array may be passed with --payload"},
		{&containsCommand{}, "contains", "Test whether a point lies inside a region",
			"Ray casting test of a single point against a region of at least three points"},
		{&dmsCommand{}, "dms", "Convert decimal degrees to DMS",
			"Convert decimal degrees to D°M'S.SS\"X; use -- before negative values"},
		{&decimalCommand{}, "decimal", "Convert DMS to decimal degrees",
			"Convert D°M'S\"X notation to signed decimal degrees"},
		{&geojsonCommand{}, "geojson", "Export coordinate strings as GeoJSON",
			"Export every coordinate string as a Point, LineString or Polygon feature"},
		{&renderCommand{}, "render", "Render a preview image",
			"Render a coordinate string as a WebP or SVG preview image"},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			log.Fatal().Err(err).Str("command", c.name).Msg("Failed to register command")
		}
	}
}

type coordsArgs struct {
	Coords []string `positional-arg-name:"COORDS" required:"1"`
}

// reportAll emits one result, or a list when several inputs were given,
// and fails with errInvalidInput when any input was rejected.
func reportAll(inputs []string, fn func(string) analysis.Result) error {
	results := make([]analysis.Result, 0, len(inputs))
	invalid := 0
	for _, in := range inputs {
		res := fn(in)
		if !res.Valid {
			invalid++
			log.Warn().Str("input", in).Msg(res.Message())
		}
		results = append(results, res)
	}

	var err error
	if len(results) == 1 {
		err = emit(results[0])
	} else {
		err = emit(results)
	}
	if err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d inputs rejected", errInvalidInput, invalid, len(inputs))
	}
	return nil
}

type validateCommand struct {
	Args coordsArgs `positional-args:"yes" required:"yes"`
}

func (c *validateCommand) Execute(_ []string) error {
	return reportAll(c.Args.Coords, analysis.Validate)
}

type analyzeCommand struct {
	Args coordsArgs `positional-args:"yes" required:"yes"`
}

func (c *analyzeCommand) Execute(_ []string) error {
	return reportAll(c.Args.Coords, analysis.Analyze)
}

type batchCommand struct {
	Payload string `short:"p" long:"payload" description:"JSON or YAML array of inputs"`
	Args    struct {
		Coords []string `positional-arg-name:"COORDS"`
	} `positional-args:"yes"`
}

func (c *batchCommand) Execute(_ []string) error {
	var entries []analysis.BatchEntry

	if c.Payload != "" {
		items, err := analysis.DecodeBatch([]byte(c.Payload))
		if err != nil {
			return err
		}
		entries = analysis.ValidateBatch(items)
	} else {
		entries = analysis.ValidateStrings(c.Args.Coords)
	}

	invalid := 0
	for _, e := range entries {
		if !e.Result.Valid {
			invalid++
		}
	}

	log.Info().Int("inputs", len(entries)).Int("invalid", invalid).Msg("Batch processed")

	if err := emit(entries); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d inputs rejected", errInvalidInput, invalid, len(entries))
	}
	return nil
}

type containsCommand struct {
	Args struct {
		Point  string `positional-arg-name:"POINT"`
		Region string `positional-arg-name:"REGION"`
	} `positional-args:"yes" required:"yes"`
}

func (c *containsCommand) Execute(_ []string) error {
	check := analysis.IsPointInRegion(c.Args.Point, c.Args.Region)
	if err := emit(check); err != nil {
		return err
	}
	if !check.Valid {
		return fmt.Errorf("%w: %s", errInvalidInput, check.Error)
	}
	return nil
}

type dmsCommand struct {
	Latitude bool `short:"l" long:"latitude" description:"Treat the value as latitude (N/S)"`
	Args     struct {
		Decimal []float64 `positional-arg-name:"DECIMAL" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *dmsCommand) Execute(_ []string) error {
	for _, d := range c.Args.Decimal {
		if _, err := fmt.Fprintln(stdout, geo.DecimalToDMS(d, !c.Latitude)); err != nil {
			return err
		}
	}
	return nil
}

type decimalCommand struct {
	Args struct {
		DMS []string `positional-arg-name:"DMS" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decimalCommand) Execute(_ []string) error {
	for _, text := range c.Args.DMS {
		v, err := geo.DMSToDecimal(text)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidInput, err)
		}
		if _, err := fmt.Fprintln(stdout, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

type geojsonCommand struct {
	Args coordsArgs `positional-args:"yes" required:"yes"`
}

func (c *geojsonCommand) Execute(_ []string) error {
	features := make([]geo.GeoJSONFeature, 0, len(c.Args.Coords))
	for _, raw := range c.Args.Coords {
		out := geo.Validate(raw)
		if !out.OK() {
			return fmt.Errorf("%w: %w", errInvalidInput, out.Err)
		}
		features = append(features, geo.FeatureFromSet(out.Set))
	}

	return emit(geo.NewFeatureCollection(features...))
}

type renderCommand struct {
	Output string `short:"o" long:"out"    description:"Output file path" required:"true"`
	Format string `short:"t" long:"type"   description:"Image type, overrides config" choice:"webp" choice:"svg"`
	Size   int    `short:"s" long:"size"   description:"Image size in pixels, overrides config"`
	Args   struct {
		Coords string `positional-arg-name:"COORDS"`
	} `positional-args:"yes" required:"yes"`
}

func (c *renderCommand) Execute(_ []string) error {
	out := geo.Validate(c.Args.Coords)
	if !out.OK() {
		return fmt.Errorf("%w: %w", errInvalidInput, out.Err)
	}

	rc := cfg.Render
	if c.Format != "" {
		rc.Format = c.Format
	}
	if c.Size > 0 {
		rc.Size = c.Size
	}

	ropts, err := render.OptionsFromConfig(rc)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", c.Output).Msg("Failed to close file")
		}
	}()

	if rc.Format == "svg" {
		data, err := render.SVG(out.Set, ropts)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
	} else if err := render.WriteWebP(f, out.Set, ropts); err != nil {
		return err
	}

	log.Info().
		Str("path", c.Output).
		Str("type", rc.Format).
		Str("kind", out.Set.Kind().String()).
		Msg("Preview written")

	return nil
}
