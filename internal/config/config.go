// Package config loads simulation run files for the qtunnel CLI.
//
// A run file is a YAML document naming any subset of the simulation
// parameters; absent fields keep the library defaults. Barrier shape and
// integration method are given by name ("rectangular", "split-operator").
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alawein/qtunnel"
)

// RunFile is the YAML DTO for one simulation run. Pointer fields
// distinguish "absent" from an explicit zero.
type RunFile struct {
	BarrierHeight *float64 `yaml:"barrier_height"`
	BarrierWidth  *float64 `yaml:"barrier_width"`
	BarrierCenter *float64 `yaml:"barrier_center"`
	Energy        *float64 `yaml:"energy"`
	Mass          *float64 `yaml:"mass"`
	PacketWidth   *float64 `yaml:"packet_width"`
	PacketCenter  *float64 `yaml:"packet_center"`
	Momentum      *float64 `yaml:"momentum"`
	Time          *float64 `yaml:"time"`
	Shape         string   `yaml:"shape"`
	Method        string   `yaml:"method"`
	AbsorbingEdge *bool    `yaml:"absorbing_edge"`
	GridPoints    *int     `yaml:"grid_points"`
}

// Load reads and maps a run file onto simulation parameters.
func Load(path string) (qtunnel.Parameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return qtunnel.Parameters{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var dto RunFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return qtunnel.Parameters{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return Map(dto)
}

// Map applies the run file over the library defaults.
func Map(dto RunFile) (qtunnel.Parameters, error) {
	p := qtunnel.DefaultParameters()

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&p.BarrierHeight, dto.BarrierHeight)
	setF(&p.BarrierWidth, dto.BarrierWidth)
	setF(&p.BarrierCenter, dto.BarrierCenter)
	setF(&p.Energy, dto.Energy)
	setF(&p.Mass, dto.Mass)
	setF(&p.PacketWidth, dto.PacketWidth)
	setF(&p.PacketCenter, dto.PacketCenter)
	setF(&p.Momentum, dto.Momentum)
	setF(&p.Time, dto.Time)

	if dto.Shape != "" {
		if err := p.Shape.UnmarshalText([]byte(dto.Shape)); err != nil {
			return qtunnel.Parameters{}, err
		}
	}
	if dto.Method != "" {
		if err := p.Method.UnmarshalText([]byte(dto.Method)); err != nil {
			return qtunnel.Parameters{}, err
		}
	}
	if dto.AbsorbingEdge != nil {
		p.AbsorbingEdge = *dto.AbsorbingEdge
	}
	if dto.GridPoints != nil {
		p.GridPoints = *dto.GridPoints
	}
	return p, nil
}
