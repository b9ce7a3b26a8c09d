// Command raytray runs the projectile demos built on the geometry kernel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog"
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "raytray",
		Short:         "Trace and plot projectiles with the raytray geometry kernel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	goflags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goflags)
	cmd.PersistentFlags().AddGoFlagSet(goflags)

	cmd.AddCommand(newTraceCommand(), newPlotCommand(), newVersionCommand())
	return cmd
}
