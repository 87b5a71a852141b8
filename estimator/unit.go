// Package estimator provides the state and the reporting shared by the
// circuit-level cost estimators.
package estimator

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/tsvcost/hooking"
)

// Reportable is an estimator that can describe its results.
type Reportable interface {
	// Name returns the name of the estimator.
	Name() string

	// Properties returns the results as name/value pairs, in SI units.
	Properties() []Property

	// PrintProperty writes a human readable report under the given label.
	PrintProperty(label string)
}

// Property is one named result of an estimator.
type Property struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Unit holds the physical and performance results of one circuit block.
// Areas are in m^2, lengths in m, latencies in s (or cycles when
// LatencyInCycles is set), energies in J and powers in W.
type Unit struct {
	hooking.HookableBase

	name string
	out  io.Writer

	Area   float64
	Height float64
	Width  float64

	// NewHeight and NewWidth are the target dimensions used by the layout
	// policies. Zero means no target.
	NewHeight float64
	NewWidth  float64

	ReadLatency        float64
	WriteLatency       float64
	ReadDynamicEnergy  float64
	WriteDynamicEnergy float64
	Leakage            float64

	LatencyInCycles bool
}

// NewUnit creates a Unit that reports to the standard output.
func NewUnit(name string) *Unit {
	return &Unit{
		name: name,
		out:  os.Stdout,
	}
}

// Name returns the name of the unit.
func (u *Unit) Name() string {
	return u.name
}

// SetOutput sets where PrintProperty writes.
func (u *Unit) SetOutput(w io.Writer) {
	u.out = w
}

// ApplyLayout adjusts the dimensions of the unit with the policy of the
// given mode.
func (u *Unit) ApplyLayout(mode LayoutMode) error {
	return PolicyFor(mode).Adjust(u)
}

func (u *Unit) latencyUnit() string {
	if u.LatencyInCycles {
		return "cycle"
	}

	return "s"
}

// Properties returns the results of the unit.
func (u *Unit) Properties() []Property {
	return []Property{
		{"Area", u.Area, "m^2"},
		{"Height", u.Height, "m"},
		{"Width", u.Width, "m"},
		{"ReadLatency", u.ReadLatency, u.latencyUnit()},
		{"WriteLatency", u.WriteLatency, u.latencyUnit()},
		{"ReadDynamicEnergy", u.ReadDynamicEnergy, "J"},
		{"WriteDynamicEnergy", u.WriteDynamicEnergy, "J"},
		{"Leakage", u.Leakage, "W"},
	}
}

// PrintProperty writes the area, timing, and power of the unit.
func (u *Unit) PrintProperty(label string) {
	w := u.out

	fmt.Fprintf(w, "\n\n%s:\n", label)
	fmt.Fprintf(w, "Area = %gum x %gum = %gum^2\n",
		u.Height*1e6, u.Width*1e6, u.Area*1e12)

	fmt.Fprintln(w, "Timing:")

	if u.LatencyInCycles {
		fmt.Fprintf(w, " - Read Latency = %g cycles\n", u.ReadLatency)
		fmt.Fprintf(w, " - Write Latency = %g cycles\n", u.WriteLatency)
	} else {
		fmt.Fprintf(w, " - Read Latency = %gns\n", u.ReadLatency*1e9)
		fmt.Fprintf(w, " - Write Latency = %gns\n", u.WriteLatency*1e9)
	}

	fmt.Fprintln(w, "Power:")
	fmt.Fprintf(w, " - Read Dynamic Energy = %gpJ\n", u.ReadDynamicEnergy*1e12)
	fmt.Fprintf(w, " - Write Dynamic Energy = %gpJ\n", u.WriteDynamicEnergy*1e12)
	fmt.Fprintf(w, " - Leakage Power = %guW\n", u.Leakage*1e6)
}
