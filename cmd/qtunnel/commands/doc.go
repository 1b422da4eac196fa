// Package commands implements the qtunnel CLI: run a wave-packet
// simulation and inspect it in the terminal, export parameters and
// results as JSON, or sweep the barrier width to compare numeric and
// WKB transmission.
package commands
