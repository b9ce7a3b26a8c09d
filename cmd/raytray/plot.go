package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"raytray/canvas"
	"raytray/internal/preview"
	"raytray/internal/scenario"
	"raytray/internal/sim"
	"raytray/ppm"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog"
	"tinygo.org/x/tinyfont"
)

type plotOptions struct {
	scenarioPath string
	outPath      string
	width        int
	height       int
	label        string
	window       bool
}

func newPlotCommand() *cobra.Command {
	o := plotOptions{outPath: "fodder_plot.ppm"}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot a projectile's path onto a canvas and write it as a PPM file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := o.scenario(cmd.Flags())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runPlot(ctx, s, o)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&o.scenarioPath, "file", "f", "", "Scenario YAML file. Defaults apply when empty.")
	flags.StringVarP(&o.outPath, "output", "o", o.outPath, "PPM file to write.")
	flags.IntVar(&o.width, "width", 0, "Canvas width, overrides the scenario.")
	flags.IntVar(&o.height, "height", 0, "Canvas height, overrides the scenario.")
	flags.StringVar(&o.label, "label", "", "Text drawn in the top-left corner, overrides the scenario.")
	flags.BoolVar(&o.window, "window", false, "Show the plot being drawn in a window.")
	return cmd
}

// scenario loads the scenario file, if any, and applies the flags the user
// set explicitly.
func (o plotOptions) scenario(flags *pflag.FlagSet) (scenario.Scenario, error) {
	s := scenario.Default()
	if o.scenarioPath != "" {
		var err error
		if s, err = scenario.Load(o.scenarioPath); err != nil {
			return scenario.Scenario{}, err
		}
		klog.V(1).Infof("loaded scenario %s", o.scenarioPath)
	}
	if flags.Changed("width") {
		s.Canvas.Width = o.width
	}
	if flags.Changed("height") {
		s.Canvas.Height = o.height
	}
	if flags.Changed("label") {
		s.Label = o.label
	}
	return s, s.Validate()
}

func runPlot(ctx context.Context, s scenario.Scenario, o plotOptions) error {
	pl, err := newPlotter(s)
	if err != nil {
		return err
	}
	if o.window {
		err := preview.Run(ctx, pl.canvas, pl.step, preview.Options{})
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	if err := pl.finish(); err != nil {
		return err
	}
	klog.Infof("plotted %d ticks on a %dx%d canvas", pl.ticks, s.Canvas.Width, s.Canvas.Height)
	return writePPM(o.outPath, pl.canvas)
}

// plotter marks one pixel per tick until the projectile leaves the canvas.
type plotter struct {
	canvas  *canvas.Canvas
	stepper *sim.Stepper
	color   canvas.Color
	ticks   int
	done    bool
}

func newPlotter(s scenario.Scenario) (*plotter, error) {
	c, err := canvas.New(s.Canvas.Width, s.Canvas.Height)
	if err != nil {
		return nil, err
	}
	if s.Label != "" {
		if err := drawLabel(c, s.Label); err != nil {
			return nil, err
		}
	}
	p, err := s.Projectile()
	if err != nil {
		return nil, err
	}
	return &plotter{
		canvas:  c,
		stepper: sim.NewStepper(p, s.Environment(), s.MaxTicks),
		color:   s.PlotColor(),
	}, nil
}

func (pl *plotter) step() (bool, error) {
	if pl.done {
		return true, nil
	}
	tick, p, ok := pl.stepper.Step()
	if !ok {
		return true, fmt.Errorf("projectile still on the canvas after %d ticks at %v", tick, p.Position)
	}
	pl.ticks = tick
	if !pl.canvas.InBounds(p.Position) {
		klog.V(2).Infof("tick %d: left the canvas at %v", tick, p.Position)
		pl.done = true
		return true, nil
	}
	klog.V(2).Infof("tick %d: %v", tick, p.Position)
	return false, pl.canvas.SetPixel(canvas.PixelAt(p.Position), pl.color)
}

// finish runs the remaining ticks, for when the preview window was closed
// early or never opened.
func (pl *plotter) finish() error {
	for {
		done, err := pl.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

var errLabelTooLarge = errors.New("label does not fit on the canvas")

// drawLabel writes text in white near the top-left corner.
func drawLabel(c *canvas.Canvas, text string) error {
	const x, baseline = 2, 8
	font := &tinyfont.TomThumb
	if _, w := tinyfont.LineWidth(font, text); int(w)+x > c.Width() || baseline >= c.Height() {
		return fmt.Errorf("%w: %q is %d pixels wide", errLabelTooLarge, text, w)
	}
	d := canvas.NewDisplay(c)
	tinyfont.WriteLine(d, font, x, baseline, text, canvas.White.ToRGBA())
	if err := d.Display(); err != nil {
		return fmt.Errorf("%w: %q: %v", errLabelTooLarge, text, err)
	}
	return nil
}

func writePPM(path string, c *canvas.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := ppm.Encode(bw, c); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
