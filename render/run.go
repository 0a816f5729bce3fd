// Package render draws decal sheet and produces bounding boxes for it.
package render

import (
	"context"
	"fmt"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"repmark/config"
	"repmark/export"
	"repmark/layout"
	"repmark/raster"
	"repmark/state"
)

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")
	cfg := env.Cfg

	if dst := cmd.Args().Get(0); len(dst) > 0 {
		cfg.Output.Path = dst
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	// command line may only turn things on
	if cmd.Bool("draw-bboxes") {
		cfg.BBoxes.Draw = true
	}
	if cmd.Bool("log-bboxes") {
		cfg.BBoxes.Log = true
	}
	if cmd.Bool("inline") {
		cfg.End.Inline = true
	}
	if p := cmd.String("side-csv"); len(p) > 0 {
		cfg.Side.CSV = p
	}
	if p := cmd.String("end-csv"); len(p) > 0 {
		cfg.End.CSV = p
	}

	log.Info("Rendering starting", zap.String("output", cfg.Output.Path))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, cfg, env.Rpt, log)
}

// process handles whole pipeline independently of CLI framework: layout,
// bounding boxes export, optional outlines and image encoding.
func process(ctx context.Context, cfg *config.Config, rpt *config.Report, log *zap.Logger) error {
	side, err := sideLines(&cfg.Side)
	if err != nil {
		return err
	}
	end, err := endEntries(&cfg.End)
	if err != nil {
		return err
	}
	log.Debug("Lines prepared", zap.Int("side", len(side)), zap.Int("end", len(end)))

	canvas := raster.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background.Color())
	flog := log.Named("raster")
	sidePen := raster.NewPen(canvas, raster.LoadFace(cfg.Font.Path, cfg.Side.Size, flog))
	endPen := raster.NewPen(canvas, raster.LoadFace(cfg.Font.Path, cfg.End.Size, flog))
	clr := cfg.Font.Color.Color()
	flog.Debug("Faces ready",
		zap.String("side", sidePen.Face().Source), zap.Int("side size", sidePen.Face().Size),
		zap.String("end", endPen.Face().Source), zap.Int("end size", endPen.Face().Size))

	sideRes := layout.Inline(sidePen, side, layout.InlineOptions{
		Origin:  layout.Cursor{X: float64(cfg.Side.X), Y: float64(cfg.Side.Y)},
		Spacing: cfg.Side.Spacing,
		Color:   clr,
	})
	endOpts := layout.StackOptions{
		Origin:     layout.Cursor{X: float64(cfg.End.X), Y: float64(cfg.End.Y)},
		Spacing:    cfg.End.Spacing,
		InnerGap:   cfg.End.InnerGap,
		Color:      clr,
		ForceStack: !bool(cfg.End.Inline),
		GapFactor:  cfg.End.InlineGapFactor,
	}
	endRes := layout.Stack(endPen, end, endOpts)

	if err := ctx.Err(); err != nil {
		return err
	}

	elog := log.Named("export")
	rec := export.NewRecord(sideRes, endRes)
	base := exportBase(cfg.Output.Path)
	if err := rec.Save(base); err != nil {
		return fmt.Errorf("unable to export bounding boxes: %w", err)
	}
	txt, js := export.Paths(base)
	elog.Info("Bounding boxes exported", zap.String("text", txt), zap.String("json", js))

	if cfg.BBoxes.Log {
		for _, l := range rec.SideLines() {
			elog.Info(l)
		}
		for _, l := range rec.EndLines() {
			elog.Info(l)
		}
	}

	if cfg.BBoxes.Draw {
		sidePad := export.Padding(cfg.BBoxes.Padding, sidePen.Face().Size)
		endPad := export.Padding(cfg.BBoxes.Padding, endPen.Face().Size)
		export.DrawOutlines(canvas, sideRes, endRes, sidePad, endPad)
		elog.Debug("Outlines drawn", zap.Int("side padding", sidePad), zap.Int("end padding", endPad))
	}

	if err := saveImage(canvas.Image(), &cfg.Output, log); err != nil {
		return err
	}
	log.Info("Decal sheet saved", zap.String("path", cfg.Output.Path), zap.Int("side", len(sideRes)), zap.Int("end", len(endRes)))

	if rpt != nil {
		rpt.StoreData("layout.txt", []byte(dumpLayout(sideRes, endRes, &endOpts)))
		for name, path := range map[string]string{"output/image": cfg.Output.Path, "output/bboxes.txt": txt, "output/bboxes.json": js} {
			if err := rpt.StoreCopy(name, path); err != nil {
				log.Warn("Unable to store file in debug report", zap.String("path", path), zap.Error(err))
			}
		}
	}
	return nil
}
