package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alawein/qtunnel"
	"github.com/alawein/qtunnel/internal/config"
)

var (
	configPath string
	verbose    bool

	flagHeight   float64
	flagWidth    float64
	flagCenter   float64
	flagEnergy   float64
	flagMass     float64
	flagSigma    float64
	flagX0       float64
	flagMomentum float64
	flagTime     float64
	flagShape    string
	flagMethod   string
	flagAbsorb   bool
	flagGrid     int
)

func Execute() error {
	root := &cobra.Command{
		Use:   "qtunnel",
		Short: "1-D quantum wave-packet tunneling simulator",
		Long: "qtunnel evolves a Gaussian wave packet through a potential barrier\n" +
			"and reports transmission, reflection, and WKB tunneling estimates.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML run file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(runCmd(), exportCmd(), sweepCmd())
	return root.Execute()
}

// addParamFlags registers the per-parameter overrides shared by the
// subcommands. Flag defaults mirror qtunnel.DefaultParameters; only
// flags the user actually set override the run file.
func addParamFlags(cmd *cobra.Command) {
	def := qtunnel.DefaultParameters()
	f := cmd.Flags()
	f.Float64Var(&flagHeight, "height", def.BarrierHeight, "barrier height V0")
	f.Float64Var(&flagWidth, "width", def.BarrierWidth, "barrier width")
	f.Float64Var(&flagCenter, "center", def.BarrierCenter, "barrier center")
	f.Float64Var(&flagEnergy, "energy", def.Energy, "particle energy E")
	f.Float64Var(&flagMass, "mass", def.Mass, "particle mass")
	f.Float64Var(&flagSigma, "sigma", def.PacketWidth, "packet width")
	f.Float64Var(&flagX0, "x0", def.PacketCenter, "initial packet center")
	f.Float64Var(&flagMomentum, "momentum", def.Momentum, "initial momentum k")
	f.Float64Var(&flagTime, "time", def.Time, "evolution time")
	f.StringVar(&flagShape, "shape", def.Shape.String(),
		"barrier shape (rectangular, gaussian, triangular, double-well, coulomb)")
	f.StringVar(&flagMethod, "method", def.Method.String(),
		"integration method (split-operator, crank-nicolson, euler)")
	f.BoolVar(&flagAbsorb, "absorb", def.AbsorbingEdge, "absorbing boundary ramp")
	f.IntVar(&flagGrid, "grid", def.GridPoints, "grid point count N")
}

// resolveParameters layers the run file over the defaults, then any
// explicitly set flags over the run file.
func resolveParameters(cmd *cobra.Command) (qtunnel.Parameters, error) {
	p := qtunnel.DefaultParameters()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return qtunnel.Parameters{}, err
		}
		p = loaded
		slog.Debug("loaded run file", "path", configPath)
	}

	f := cmd.Flags()
	if f.Changed("height") {
		p.BarrierHeight = flagHeight
	}
	if f.Changed("width") {
		p.BarrierWidth = flagWidth
	}
	if f.Changed("center") {
		p.BarrierCenter = flagCenter
	}
	if f.Changed("energy") {
		p.Energy = flagEnergy
	}
	if f.Changed("mass") {
		p.Mass = flagMass
	}
	if f.Changed("sigma") {
		p.PacketWidth = flagSigma
	}
	if f.Changed("x0") {
		p.PacketCenter = flagX0
	}
	if f.Changed("momentum") {
		p.Momentum = flagMomentum
	}
	if f.Changed("time") {
		p.Time = flagTime
	}
	if f.Changed("absorb") {
		p.AbsorbingEdge = flagAbsorb
	}
	if f.Changed("grid") {
		p.GridPoints = flagGrid
	}
	if f.Changed("shape") {
		if err := p.Shape.UnmarshalText([]byte(flagShape)); err != nil {
			return qtunnel.Parameters{}, err
		}
	}
	if f.Changed("method") {
		if err := p.Method.UnmarshalText([]byte(flagMethod)); err != nil {
			return qtunnel.Parameters{}, err
		}
	}
	return p, nil
}
