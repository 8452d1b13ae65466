// Command astrocrop crops images to the bounding rectangle of a boundary
// described in a YAML or JSON file.
//
//	astrocrop -boundary table.yaml [options] image_files...
//
// Settings not given as flags are read from ASTROCROP_* environment
// variables (or a .env file).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"github.com/Asteroidea-tn/asterobox/pkg/astrobox"
	"github.com/Asteroidea-tn/asterobox/pkg/astroenv"
	"github.com/Asteroidea-tn/asterobox/pkg/astrolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type config struct {
	Log       astrolog.Config
	Policy    string `env:"POLICY,reject" validate:"oneof=reject clamp"`
	OutputDir string `env:"OUTPUT_DIR,"`
}

type result struct {
	Image    string             `json:"image"`
	Output   string             `json:"output,omitempty"`
	Corners  [4]astrobox.Point  `json:"corners"`
	Bounding astrobox.Rectangle `json:"bounding"`
	Extent   astrobox.Rectangle `json:"extent"`
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	Error    string             `json:"error,omitempty"`
}

func main() {
	var cfg config
	if err := (astroenv.Loader{Prefix: "ASTROCROP_", Files: []string{".env"}}).Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	var (
		boundaryPath string
		verbose      bool
		dryRun       bool
		overwrite    bool
	)
	flag.StringVar(&boundaryPath, "boundary", "", "YAML/JSON file with boundary segments or corners")
	flag.StringVar(&cfg.Policy, "policy", cfg.Policy, "Out-of-frame crops: reject or clamp")
	flag.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Output directory for cropped images")
	flag.BoolVar(&overwrite, "overwrite", false, "Overwrite original images")
	flag.BoolVar(&dryRun, "dry-run", false, "Do not write cropped output images")
	flag.BoolVar(&verbose, "verbose", false, "Print debug information")
	flag.Parse()

	astrolog.Init(cfg.Log)
	if verbose {
		astrolog.SetLevel("debug")
	}

	files := flag.Args()
	if boundaryPath == "" || len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -boundary file [options] image_files...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	policy, err := astrobox.ParseCropPolicy(cfg.Policy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad policy")
	}

	quad, err := loadBoundary(boundaryPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", boundaryPath).Msg("cannot use boundary")
	}
	log.Debug().Stringer("quad", quad).Msg("boundary loaded")

	failed := 0
	results := make([]result, 0, len(files))
	for idx, file := range files {
		corners := quad.Corners()
		res := result{
			Image:    file,
			Corners:  corners,
			Bounding: quad.BoundingBox(),
			Extent:   astrobox.ExtractBoundingBox(corners[:]...),
		}
		res.Width, res.Height = quad.Size()

		out := ""
		if !dryRun {
			out = outputPath(file, cfg.OutputDir, overwrite)
		}
		if err := cropFile(quad, policy, file, out); err != nil {
			failed++
			res.Error = err.Error()
			log.Warn().Err(err).Msgf("[%d/%d] skipping %s", idx+1, len(files), file)
		} else {
			res.Output = out
			log.Info().Msgf("[%d/%d] cropped %s -> %s", idx+1, len(files), filepath.Base(file), out)
		}
		results = append(results, res)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Error().Err(err).Msg("write report")
	}
	if failed > 0 {
		os.Exit(3)
	}
}

// loadBoundary reads the boundary file. A degenerate boundary is only
// warned about.
func loadBoundary(path string) (astrobox.Quad, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return astrobox.Quad{}, err
	}
	quad, err := astrobox.ParseBoundary(data)
	if errors.Is(err, astrobox.ErrDegenerateBoundary) {
		log.Warn().Err(err).Msg("boundary has no area")
		return quad, nil
	}
	return quad, err
}

// cropFile crops one image. An empty out path means dry run.
func cropFile(quad astrobox.Quad, policy astrobox.CropPolicy, file, out string) error {
	img := gocv.IMRead(file, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return fmt.Errorf("failed to read image %s", file)
	}
	log.Debug().Msgf("image %s is %dx%d", file, img.Cols(), img.Rows())

	sub, err := astrobox.CropToWith(quad, matFrame{mat: &img}, policy)
	if err != nil {
		return err
	}
	defer sub.mat.Close()

	if out == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if !gocv.IMWrite(out, *sub.mat) {
		return fmt.Errorf("failed to write %s", out)
	}
	return nil
}

func outputPath(file, outputDir string, overwrite bool) string {
	switch {
	case overwrite:
		return file
	case outputDir != "":
		return filepath.Join(outputDir, filepath.Base(file))
	}
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + "_cropped" + ext
}
