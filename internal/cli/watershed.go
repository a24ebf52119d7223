package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazyfill/internal/imageio"
	lfprogress "github.com/katalvlaran/lazyfill/progress"
	"github.com/katalvlaran/lazyfill/watershed"
)

// ErrNoStrokes is returned when a command is given no --stroke.
var ErrNoStrokes = errors.New("cli: at least one --stroke is required")

type watershedOpts struct {
	height     string
	strokes    []string
	rect       string
	cleanup    float64
	cleanupSet bool
	base       string
	output     string
	stats      bool
}

func newWatershedCmd() *cobra.Command {
	var opts watershedOpts

	cmd := &cobra.Command{
		Use:   "watershed",
		Short: "Flood strokes over a heightmap",
		Long: `Grow every stroke over the heightmap in order of height, then optionally
remove small conflicting regions and write the coloured result.

Example:
  lazyfill watershed --height lines.png --stroke sky.png=#87ceeb --stroke grass.png=#228b22 -o out.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.cleanupSet = cmd.Flags().Changed("cleanup")
			return runWatershed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.height, "height", "", "heightmap image (luminance)")
	cmd.Flags().StringArrayVarP(&opts.strokes, "stroke", "s", nil, "stroke as path=#rrggbb or path=transparent (repeatable)")
	cmd.Flags().StringVar(&opts.rect, "rect", "", "work rectangle x,y,w,h (default: whole image)")
	cmd.Flags().Float64Var(&opts.cleanup, "cleanup", 0, "cleanup amount in [0, 1] (default: from config)")
	cmd.Flags().StringVar(&opts.base, "base", "", "image to paint onto (default: transparent canvas)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image (.png, .tiff, .bmp)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print per-region statistics")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runWatershed(cmd *cobra.Command, opts watershedOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	out := cmd.OutOrStdout()
	prog := newProgress(logger)

	if len(opts.strokes) == 0 {
		return ErrNoStrokes
	}
	cleanup := cfg.Watershed.Cleanup
	if opts.cleanupSet {
		cleanup = opts.cleanup
	}

	img, err := imageio.Load(opts.height)
	if err != nil {
		return err
	}
	height := imageio.Luminance(img)
	rect, err := parseRect(opts.rect, height.Bounds())
	if err != nil {
		return err
	}
	strokes, err := loadStrokes(opts.strokes)
	if err != nil {
		return err
	}
	logger.Debug("watershed: inputs", "height", opts.height, "rect", rect, "strokes", len(strokes), "cleanup", cleanup)

	dst, err := newCanvas(opts.base, height.Bounds())
	if err != nil {
		return err
	}
	report := lfprogress.Func(func(p int) { logger.Debug("watershed: progress", "percent", p) })
	w := watershed.NewWorker(height, dst, rect, cfg.WatershedOptions(logger, report)...)
	for _, s := range strokes {
		w.AddKeyStroke(s.Seed, s.Color, s.Transparent)
	}
	if err = w.Run(cleanup); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = imageio.Save(opts.output, dst); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Flooded %d strokes", len(strokes)))

	printSuccess(out, "Watershed complete")
	printKeyValue(out, "regions", fmt.Sprint(w.Inspector().NumGroups()))
	printKeyValue(out, "planes", fmt.Sprint(len(w.Inspector().Planes())))
	printFile(out, opts.output)
	if opts.stats {
		fmt.Fprintln(out, StyleTitle.Render("Planes"))
		return w.Inspector().Dump(out)
	}
	return nil
}
