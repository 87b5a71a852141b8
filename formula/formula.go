// Package formula provides the transistor and gate level electrical models
// that the circuit estimators build on.
package formula

import "github.com/sarchlab/tsvcost/tech"

// GateType is the logic function of a static CMOS gate.
type GateType int

// Gate types.
const (
	INV GateType = iota
	NOR
	NAND
)

func (g GateType) String() string {
	switch g {
	case INV:
		return "INV"
	case NOR:
		return "NOR"
	case NAND:
		return "NAND"
	default:
		return "Unknown"
	}
}

// MOSType is the polarity of a transistor.
type MOSType int

// Transistor polarities.
const (
	NMOS MOSType = iota
	PMOS
)

func (m MOSType) String() string {
	if m == PMOS {
		return "PMOS"
	}

	return "NMOS"
}

// Layout rules, in feature sizes.
const (
	MinNMOSSize            = 2.0
	MaxTransistorHeight    = 28.0
	MinGapBetPAndNDiffs    = 3.5
	MinGapBetSameTypeDiffs = 1.6
	MinGapBetGatePoly      = 2.8
	MinGapBetContactPoly   = 0.7
	ContactSize            = 1.3
	MinPolyExtDiff         = 1.0
	MinGapBetFieldPoly     = 1.6
	PolyWidth              = 1.0
)

// Average leakage of multi-input gates relative to an inverter of the same
// sizing, over all input combinations.
const (
	AvgRatioLeak2InputNAND = 0.48
	AvgRatioLeak3InputNAND = 0.31
	AvgRatioLeak2InputNOR  = 0.95
	AvgRatioLeak3InputNOR  = 0.62
)

// Library is the set of device-physics formulas the estimators consume.
type Library interface {
	// EnlargeSize grows the NMOS and PMOS widths so that they fill whole
	// folds under the height limit, keeping their ratio.
	EnlargeSize(
		widthNMOS, widthPMOS, heightTransistorRegion float64,
		t *tech.Technology,
	) (newWidthNMOS, newWidthPMOS float64)

	// CalculateGateArea returns the area, height and width of a gate.
	CalculateGateArea(
		gate GateType, numInput int,
		widthNMOS, widthPMOS, heightTransistorRegion float64,
		t *tech.Technology,
	) (area, height, width float64)

	// CalculateGateCapacitance returns the input and output capacitance of a
	// gate of the given height.
	CalculateGateCapacitance(
		gate GateType, numInput int,
		widthNMOS, widthPMOS, heightTransistorRegion float64,
		t *tech.Technology,
	) (capInput, capOutput float64)

	// CalculateGateLeakage returns the leakage current of a gate.
	CalculateGateLeakage(
		gate GateType, numInput int,
		widthNMOS, widthPMOS, temperature float64,
		t *tech.Technology,
	) float64

	// CalculateOnResistance returns the effective on resistance of a
	// transistor.
	CalculateOnResistance(
		width float64, mos MOSType, temperature float64,
		t *tech.Technology,
	) float64

	// CalculateTransconductance returns the saturation transconductance of a
	// transistor.
	CalculateTransconductance(
		width float64, mos MOSType,
		t *tech.Technology,
	) float64

	// Horowitz returns the delay of a gate driving an RC load with time
	// constant tr, together with the slope of the output ramp.
	Horowitz(tr, beta, rampInput float64) (delay, rampOutput float64)
}
