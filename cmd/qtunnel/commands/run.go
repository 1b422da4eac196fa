package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/alawein/qtunnel"
)

// run: simulate once and show diagnostics plus terminal plots.
func runCmd() *cobra.Command {
	var plotHeight int
	var noPlot bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and print diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParameters(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := qtunnel.Simulate(p)
			if err != nil {
				return err
			}
			slog.Debug("simulation finished",
				"elapsed", time.Since(start),
				"grid", p.GridPoints,
				"method", p.Method.String())

			printDiagnostics(res)
			if !noPlot {
				fmt.Println()
				fmt.Println(asciigraph.Plot(res.Density,
					asciigraph.Height(plotHeight),
					asciigraph.Width(72),
					asciigraph.Caption("probability density |psi(x)|^2")))
				fmt.Println()
				fmt.Println(asciigraph.Plot(res.Potential,
					asciigraph.Height(plotHeight),
					asciigraph.Width(72),
					asciigraph.Caption("potential V(x)")))
			}
			return nil
		},
	}

	addParamFlags(cmd)
	cmd.Flags().IntVar(&plotHeight, "plot-height", 10, "terminal plot height in rows")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "suppress terminal plots")
	return cmd
}

func printDiagnostics(res *qtunnel.Result) {
	p := res.Parameters
	d := res.Diagnostics

	fmt.Printf("barrier: %s V0=%.3g width=%.3g | packet: E=%.3g k=%.3g | %s, t=%.3g\n",
		p.Shape, p.BarrierHeight, p.BarrierWidth, p.Energy, p.Momentum, p.Method, p.Time)
	fmt.Printf("transmission       %8.5f\n", d.Transmission)
	fmt.Printf("reflection         %8.5f\n", d.Reflection)
	fmt.Printf("barrier occupancy  %8.5f\n", d.BarrierOccupancy)
	fmt.Printf("WKB transmission   %8.5f (action %.4f)\n", d.WKBTransmission, d.ActionIntegral)
	fmt.Printf("total probability  %8.5f\n", d.TotalProbability)
	fmt.Printf("<x> %.4f  <p> %.4f  <E> %.4f  spectral peak k %.4f\n",
		d.PositionExpectation, d.MomentumExpectation, d.AverageEnergy, res.Spectrum.PeakK())
	fmt.Printf("group velocity %.4f  de Broglie %.4f  resonance %.4f  forbidden %v\n",
		d.GroupVelocity, d.DeBroglieWavelength, d.ResonanceStrength, d.ClassicalForbidden)

	if d.TotalProbability < 0.9 || d.TotalProbability > 1.1 {
		slog.Warn("probability conservation violated; scheme unstable for these parameters",
			"total_probability", d.TotalProbability)
	}
}
