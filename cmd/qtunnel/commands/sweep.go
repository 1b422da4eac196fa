package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alawein/qtunnel"
)

// sweep: scan barrier width and tabulate numeric vs WKB transmission.
func sweepCmd() *cobra.Command {
	var from, to float64
	var steps int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Scan barrier width and compare numeric vs WKB transmission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 2 {
				return fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
			}
			if to <= from {
				return fmt.Errorf("sweep range must ascend: from=%g to=%g", from, to)
			}
			p, err := resolveParameters(cmd)
			if err != nil {
				return err
			}

			fmt.Printf("%10s %14s %14s %14s\n", "width", "transmission", "wkb", "total prob")
			dw := (to - from) / float64(steps-1)
			for i := 0; i < steps; i++ {
				p.BarrierWidth = from + float64(i)*dw
				res, err := qtunnel.Simulate(p)
				if err != nil {
					return err
				}
				d := res.Diagnostics
				fmt.Printf("%10.4f %14.6g %14.6g %14.4f\n",
					p.BarrierWidth, d.Transmission, d.WKBTransmission, d.TotalProbability)
			}
			return nil
		},
	}

	addParamFlags(cmd)
	cmd.Flags().Float64Var(&from, "from", 0.5, "first barrier width")
	cmd.Flags().Float64Var(&to, "to", 4.0, "last barrier width")
	cmd.Flags().IntVar(&steps, "steps", 8, "number of widths to sample")
	return cmd
}
