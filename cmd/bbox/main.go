package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fernwell/geofield/geo"
	"github.com/fernwell/geofield/internal/config"
	"github.com/fernwell/geofield/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `short:"i" long:"in" description:"Input points file path (YAML or JSON). Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Minify bool   `short:"m" long:"minify" description:"Minify JSON output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	in, err := config.Load(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load points input")
	}

	boundary, err := geo.PolygonToBoundary(in.Points)
	if err != nil {
		log.Fatal().Err(err).Int("points", len(in.Points)).Msg("Failed to compute boundary")
	}

	topLeft := boundary.TopLeft()
	bottomRight := boundary.BottomRight()
	ring := [][]float64{
		topLeft,
		{topLeft[0], bottomRight[1]},
		bottomRight,
		{bottomRight[0], topLeft[1]},
		topLeft,
	}

	polygon, err := geo.NewPolygon(ring)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build boundary polygon")
	}

	properties := map[string]interface{}{
		"points": len(in.Points),
	}
	for k, v := range in.Properties {
		properties[k] = v
	}

	feature := geo.NewFeature(polygon, properties)

	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(feature)
	} else {
		outputData, err = json.MarshalIndent(feature, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal feature")
	}

	if opts.Minify && opts.Format == "json" {
		m := minify.New()
		m.AddFunc("application/json", minjson.Minify)

		outputData, err = m.Bytes("application/json", outputData)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to minify output")
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
		}
		log.Info().
			Int("points", len(in.Points)).
			Str("path", opts.Output).
			Str("format", opts.Format).
			Msg("Boundary written")
	} else {
		fmt.Println(string(outputData))
	}
}
