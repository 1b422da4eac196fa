package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alawein/qtunnel"
)

// export: simulate once and write parameters plus full result as JSON.
func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run one simulation and write the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParameters(cmd)
			if err != nil {
				return err
			}
			res, err := qtunnel.Simulate(p)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			slog.Debug("result exported", "path", outPath, "bytes", len(data))
			fmt.Printf("wrote %s\n", outPath)
			return nil
		},
	}

	addParamFlags(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "result.json", "output file")
	return cmd
}
