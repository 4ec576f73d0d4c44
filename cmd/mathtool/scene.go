package main

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/internal/culling"
	"github.com/Faultbox/midgard-math/internal/debugview"
	"github.com/Faultbox/midgard-math/internal/logger"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/geom"
)

func loadScene(cfg *config.Config, path string) (*scene.Scene, error) {
	s, err := scene.Load(path, cfg.EulerOrder())
	if err != nil {
		return nil, err
	}
	s.Camera.GeneralInverse = cfg.Math.GeneralInverse
	return s, nil
}

func cmdCull(cfg *config.Config, args []string, out io.Writer) error {
	const usage = "cull [-o out.png] <scene.yaml>"
	fs := newFlagSet("cull")
	output := fs.String("o", "", "Write a top-down debug image (png or webp)")
	if err := fs.Parse(args); err != nil {
		return errUsage(usage)
	}
	if fs.NArg() != 1 {
		return errUsage(usage)
	}

	s, err := loadScene(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	light := s.Light
	if light.Length() == 0 {
		light = cfg.LightDirection()
	}
	c, err := culling.New(s.Camera, cfg.AspectRatio(), culling.Options{
		Disabled:       !cfg.Culling.Enabled,
		ShadowCasters:  cfg.Culling.ShadowCasters,
		LightDirection: light,
	})
	if err != nil {
		return err
	}
	res, err := c.Cull(s)
	if err != nil {
		return err
	}

	for _, o := range res.Objects {
		plane := ""
		if o.Plane >= 0 {
			plane = geom.PlaneName(o.Plane)
		}
		fmt.Fprintf(out, "%-20s %-8s %s\n", o.Name, o.Status, plane)
	}
	fmt.Fprintf(out, "\nVisible: %d  Culled: %d  Shadow: %d\n", res.Visible, res.Culled, res.ShadowOnly)

	if *output == "" {
		return nil
	}
	img, err := debugview.Render(s, res, debugview.Options{
		Size:        cfg.Output.ImageSize,
		Supersample: cfg.Output.Supersample,
		Aspect:      cfg.AspectRatio(),
		Labels:      cfg.Output.Labels,
	})
	if err != nil {
		return err
	}
	format := debugview.FormatFromPath(*output, cfg.Output.Format)
	if err := debugview.WriteFile(*output, img, format); err != nil {
		return err
	}
	logger.Info("debug view written", zap.String("path", *output), zap.String("format", format))
	return nil
}

func cmdPick(cfg *config.Config, args []string, out io.Writer) error {
	const usage = "pick <scene.yaml> <px> <py>"
	if len(args) != 3 {
		return errUsage(usage)
	}
	px, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("px: %w", err)
	}
	py, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("py: %w", err)
	}

	s, err := loadScene(cfg, args[0])
	if err != nil {
		return err
	}
	hit, ok, err := culling.Pick(s, s.Camera, px, py, cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Nothing under the cursor")
		return nil
	}
	p := hit.Ray.At(hit.Distance)
	fmt.Fprintf(out, "%s at distance %.4f (%.4f, %.4f, %.4f)\n", hit.Name, hit.Distance, p.X, p.Y, p.Z)
	return nil
}
