// Package tech describes the process technology, the run-time electrical
// environment, and the memory cell that the estimators are evaluated against.
package tech

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnsupportedNode is returned when no preset exists for a process node.
var ErrUnsupportedNode = errors.New("unsupported technology node")

// ReferenceTemperature is the temperature, in Kelvin, at which the device
// currents of a Technology are characterized.
const ReferenceTemperature = 300.0

// Technology holds the process parameters of a CMOS technology node. All
// lengths are in meters, capacitances per unit width in F/m, capacitances per
// unit area in F/m^2, and currents per unit width in A/m.
type Technology struct {
	FeatureSize   float64
	PNSizeRatio   float64
	Vdd           float64
	Vth           float64
	PhyGateLength float64

	CapIdealGate      float64
	CapOverlap        float64
	CapFringe         float64
	CapPolywire       float64
	CapJunction       float64
	CapSidewall       float64
	CapDrainToChannel float64

	CurrentOnNmos  float64
	CurrentOnPmos  float64
	CurrentOffNmos float64
	CurrentOffPmos float64

	EffectiveResistanceMultiplier float64

	// OnCurrentTempCoeff is the fractional drop of the on current per Kelvin
	// above the reference temperature.
	OnCurrentTempCoeff float64

	// OffCurrentDoublingTemp is the temperature rise, in Kelvin, that doubles
	// the off current.
	OffCurrentDoublingTemp float64
}

type preset struct {
	vdd, vth                   float64
	capIdealGate, capFringe    float64
	capJunction, capSidewall   float64
	currentOnN, currentOnP     float64
	currentOffN, currentOffP   float64
	onTempCoeff, offDoublingDT float64
}

var presets = map[int]preset{
	130: {1.3, 0.40, 1.07e-9, 0.9e-10, 1.20e-3, 2.5e-10, 750, 350, 0.02, 0.01, 1.4e-3, 14},
	90:  {1.2, 0.35, 9.50e-10, 0.9e-10, 1.10e-3, 2.4e-10, 900, 450, 0.05, 0.03, 1.4e-3, 13},
	65:  {1.1, 0.32, 8.60e-10, 1.0e-10, 1.00e-3, 2.3e-10, 1050, 550, 0.08, 0.05, 1.5e-3, 12},
	45:  {1.0, 0.30, 7.80e-10, 1.0e-10, 0.95e-3, 2.2e-10, 1150, 650, 0.10, 0.07, 1.5e-3, 12},
	32:  {0.9, 0.28, 7.20e-10, 1.0e-10, 0.90e-3, 2.1e-10, 1250, 750, 0.12, 0.09, 1.6e-3, 11},
	22:  {0.8, 0.26, 6.80e-10, 1.1e-10, 0.85e-3, 2.0e-10, 1350, 850, 0.15, 0.12, 1.6e-3, 11},
	14:  {0.7, 0.24, 6.30e-10, 1.1e-10, 0.80e-3, 1.9e-10, 1450, 950, 0.18, 0.15, 1.7e-3, 10},
}

// Nodes lists the process nodes, in nm, that New knows about.
func Nodes() []int {
	nodes := make([]int, 0, len(presets))
	for n := range presets {
		nodes = append(nodes, n)
	}

	sort.Ints(nodes)

	return nodes
}

// New returns the technology description of the given process node in nm.
func New(nodeNM int) (*Technology, error) {
	p, ok := presets[nodeNM]
	if !ok {
		return nil, fmt.Errorf("%w: %d nm", ErrUnsupportedNode, nodeNM)
	}

	f := float64(nodeNM) * 1e-9

	t := &Technology{
		FeatureSize:   f,
		PNSizeRatio:   2.0,
		Vdd:           p.vdd,
		Vth:           p.vth,
		PhyGateLength: 0.9 * f,

		CapIdealGate:      p.capIdealGate,
		CapOverlap:        0.2 * p.capIdealGate,
		CapFringe:         p.capFringe,
		CapPolywire:       0,
		CapJunction:       p.capJunction,
		CapSidewall:       p.capSidewall,
		CapDrainToChannel: p.capFringe,

		CurrentOnNmos:  p.currentOnN,
		CurrentOnPmos:  p.currentOnP,
		CurrentOffNmos: p.currentOffN,
		CurrentOffPmos: p.currentOffP,

		EffectiveResistanceMultiplier: 1.54,
		OnCurrentTempCoeff:            p.onTempCoeff,
		OffCurrentDoublingTemp:        p.offDoublingDT,
	}

	return t, nil
}

// OnCurrent returns the NMOS and PMOS on currents per unit width at the given
// temperature.
func (t *Technology) OnCurrent(temperature float64) (nmos, pmos float64) {
	scale := 1 - t.OnCurrentTempCoeff*(temperature-ReferenceTemperature)

	return t.CurrentOnNmos * scale, t.CurrentOnPmos * scale
}

// OffCurrent returns the NMOS and PMOS off currents per unit width at the
// given temperature.
func (t *Technology) OffCurrent(temperature float64) (nmos, pmos float64) {
	if t.OffCurrentDoublingTemp == 0 {
		return t.CurrentOffNmos, t.CurrentOffPmos
	}

	scale := math.Exp2((temperature - ReferenceTemperature) /
		t.OffCurrentDoublingTemp)

	return t.CurrentOffNmos * scale, t.CurrentOffPmos * scale
}
