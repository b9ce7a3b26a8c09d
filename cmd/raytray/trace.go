package main

import (
	"fmt"
	"io"

	"raytray/geom"
	"raytray/internal/scenario"
	"raytray/internal/sim"

	"github.com/spf13/cobra"
	"k8s.io/klog"
)

type traceOptions struct {
	speed    geom.Scalar
	maxTicks int
}

func newTraceCommand() *cobra.Command {
	o := traceOptions{speed: 1, maxTicks: 10000}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print a projectile's position every tick until it lands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().Float32Var(&o.speed, "speed", o.speed, "Launch speed along (1, 1, 0).")
	cmd.Flags().IntVar(&o.maxTicks, "max-ticks", o.maxTicks, "Give up after this many ticks.")
	return cmd
}

// runTrace launches a projectile at 45 degrees and prints its position each
// tick until y drops to zero or below.
func runTrace(w io.Writer, o traceOptions) error {
	if o.speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", o.speed)
	}
	if o.maxTicks <= 0 {
		return fmt.Errorf("max-ticks must be positive, got %d", o.maxTicks)
	}
	dir, err := geom.V(1, 1, 0).Normalize()
	if err != nil {
		return err
	}
	p := sim.Projectile{Position: geom.P(0, 1, 0), Velocity: dir.Scale(o.speed)}
	env := scenario.Default().Environment()

	if _, err := fmt.Fprintln(w, "BANG!"); err != nil {
		return err
	}
	var werr error
	landed := false
	ticks, last := sim.Run(p, env, o.maxTicks, func(tick int, p sim.Projectile) bool {
		if p.Position.Y <= 0 {
			landed = true
			return false
		}
		klog.V(2).Infof("tick %d: %v %v", tick, p.Position, p.Velocity)
		_, werr = fmt.Fprintln(w, p.Position)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	if !landed {
		return fmt.Errorf("projectile still airborne after %d ticks at %v", ticks, last.Position)
	}
	klog.Infof("landed after %d ticks at %v", ticks, last.Position)
	_, err = fmt.Fprintln(w, "BOOM!")
	return err
}
