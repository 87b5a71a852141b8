// Package param holds the simulation-wide configuration shared by the
// estimators of one evaluation run.
package param

import "github.com/sarchlab/tsvcost/timing"

// Param is an immutable set of simulation-wide parameters. Lengths are in
// meters, resistances in ohms and capacitances in farads.
type Param struct {
	tsvPitch       float64
	tsvRes         float64
	tsvCap         float64
	numRowSubArray int
	numColSubArray int
	clkFreq        timing.Freq
	synchronous    bool
	validated      bool
	delta          float64
}

// TSVPitch returns the center-to-center distance between two TSVs.
func (p Param) TSVPitch() float64 { return p.tsvPitch }

// TSVRes returns the parasitic resistance of one TSV.
func (p Param) TSVRes() float64 { return p.tsvRes }

// TSVCap returns the parasitic capacitance of one TSV.
func (p Param) TSVCap() float64 { return p.tsvCap }

// NumRowSubArray returns the number of subarray rows in an array.
func (p Param) NumRowSubArray() int { return p.numRowSubArray }

// NumColSubArray returns the number of subarray columns in an array.
func (p Param) NumColSubArray() int { return p.numColSubArray }

// NumSubArrayEdges returns the number of subarray rows plus columns.
func (p Param) NumSubArrayEdges() float64 {
	return float64(p.numRowSubArray + p.numColSubArray)
}

// ClkFreq returns the clock frequency used to quantize latencies.
func (p Param) ClkFreq() timing.Freq { return p.clkFreq }

// Synchronous tells if latencies are reported in clock cycles.
func (p Param) Synchronous() bool { return p.synchronous }

// Validated tells if dynamic energies are scaled by Delta.
func (p Param) Validated() bool { return p.validated }

// Delta returns the switching activity applied to validated energies.
func (p Param) Delta() float64 { return p.delta }

// Builder builds Param values.
type Builder struct {
	p Param
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		p: Param{
			tsvPitch:       5e-6,
			tsvRes:         0.05,
			tsvCap:         40e-15,
			numRowSubArray: 1,
			numColSubArray: 1,
			clkFreq:        1 * timing.GHz,
			synchronous:    true,
			validated:      true,
			delta:          0.15,
		},
	}
}

// WithTSVPitch sets the TSV pitch in meters.
func (b Builder) WithTSVPitch(pitch float64) Builder {
	b.p.tsvPitch = pitch
	return b
}

// WithTSVRes sets the parasitic resistance of one TSV in ohms.
func (b Builder) WithTSVRes(res float64) Builder {
	b.p.tsvRes = res
	return b
}

// WithTSVCap sets the parasitic capacitance of one TSV in farads.
func (b Builder) WithTSVCap(c float64) Builder {
	b.p.tsvCap = c
	return b
}

// WithNumRowSubArray sets the number of subarray rows in an array.
func (b Builder) WithNumRowSubArray(n int) Builder {
	b.p.numRowSubArray = n
	return b
}

// WithNumColSubArray sets the number of subarray columns in an array.
func (b Builder) WithNumColSubArray(n int) Builder {
	b.p.numColSubArray = n
	return b
}

// WithClkFreq sets the clock frequency.
func (b Builder) WithClkFreq(freq timing.Freq) Builder {
	b.p.clkFreq = freq
	return b
}

// WithSynchronous sets whether latencies are quantized to clock cycles.
func (b Builder) WithSynchronous(synchronous bool) Builder {
	b.p.synchronous = synchronous
	return b
}

// WithValidated sets whether dynamic energies are scaled by delta.
func (b Builder) WithValidated(validated bool) Builder {
	b.p.validated = validated
	return b
}

// WithDelta sets the switching activity applied to validated energies.
func (b Builder) WithDelta(delta float64) Builder {
	b.p.delta = delta
	return b
}

// Build returns the configured parameters.
func (b Builder) Build() Param {
	return b.p
}
