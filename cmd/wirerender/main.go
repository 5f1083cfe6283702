// Command wirerender renders a wireframe scene file (YAML, TOML, or glTF) to an image file.
//
//	wirerender scene.yaml -o out.ppm --width 800 --height 800 --aa
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/solarlune/wireframe"
	"github.com/solarlune/wireframe/colors"
	"github.com/solarlune/wireframe/framebuffer"
	"github.com/solarlune/wireframe/pipeline"
	"github.com/solarlune/wireframe/scenefile"
	"github.com/spf13/cobra"
)

type config struct {
	output       string
	width        int
	height       int
	antiAliasing bool
	gamma        bool
	gammaValue   float64
	nearClipping bool
	background   string
	debug        bool
	logLevel     string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {

	cfg := &config{}

	cmd := &cobra.Command{
		Use:          "wirerender <scene-file>",
		Short:        "Render a wireframe scene file to an image",
		Long:         "wirerender loads a scene description (.yaml, .yml, .toml, .gltf, or .glb) and renders it\nto an image file. The output format is picked from the output file's extension\n(.ppm, .png, .bmp, .tif, or .tiff).",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.output, "output", "o", "out.ppm", "output image file")
	flags.IntVar(&cfg.width, "width", 800, "image width in pixels")
	flags.IntVar(&cfg.height, "height", 800, "image height in pixels")
	flags.BoolVar(&cfg.antiAliasing, "aa", false, "anti-alias lines")
	flags.BoolVar(&cfg.gamma, "gamma", true, "gamma-correct pixels")
	flags.Float64Var(&cfg.gammaValue, "gamma-value", pipeline.DefaultGammaValue, "display gamma")
	flags.BoolVar(&cfg.nearClipping, "near-clip", true, "clip against the camera's near plane")
	flags.StringVar(&cfg.background, "background", "black", "background color, as a color name or r,g,b in [0, 1]")
	flags.BoolVar(&cfg.debug, "debug", false, "log every pipeline stage for every position (implies --log-level debug)")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, or error")

	return cmd

}

func run(cfg *config, scenePath string) error {

	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if cfg.debug {
		level = slog.LevelDebug
	}

	wireframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("image size %d x %d must be positive", cfg.width, cfg.height)
	}

	background, err := parseColor(cfg.background)
	if err != nil {
		return fmt.Errorf("--background: %w", err)
	}

	scene, err := scenefile.Load(scenePath)
	if err != nil {
		return err
	}

	if cfg.debug {
		scene.Debug = true
	}

	fb := framebuffer.NewFrameBuffer(cfg.width, cfg.height, background)

	// Find the image writer first, so a bad extension doesn't waste a render.
	if _, err := fb.Format(cfg.output); err != nil {
		return err
	}

	options := pipeline.NewRenderOptions(
		pipeline.WithAntiAliasing(cfg.antiAliasing),
		pipeline.WithGammaValue(cfg.gammaValue),
		pipeline.WithGamma(cfg.gamma),
		pipeline.WithNearClipping(cfg.nearClipping),
	)

	if err := pipeline.Render(scene, fb.Viewport(), options); err != nil {
		// Skipped geometry is reported, but the rest of the image is still worth saving.
		wireframe.Logger().Error("render problems", "scene", scene.Name, "error", err)
	}

	if err := fb.Save(cfg.output); err != nil {
		return err
	}

	wireframe.Logger().Info("saved image", "path", cfg.output, "width", cfg.width, "height", cfg.height)

	return nil

}

// parseColor parses a color name (see colors.Named) or an "r,g,b" triple of values in [0, 1].
func parseColor(s string) (wireframe.Color, error) {

	if c, ok := colors.Named(s); ok {
		return c, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return wireframe.Color{}, fmt.Errorf("%q is neither a color name nor r,g,b", s)
	}

	values := [3]float64{}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return wireframe.Color{}, fmt.Errorf("%q: %w", s, err)
		}
		values[i] = v
	}

	return wireframe.NewColorRGB(values[0], values[1], values[2]), nil

}
