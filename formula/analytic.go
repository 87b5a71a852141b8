package formula

import (
	"math"

	"github.com/sarchlab/tsvcost/tech"
)

// switchingVoltage is the normalized voltage at which a gate output is
// considered to have switched.
const switchingVoltage = 0.5

// Analytic implements Library with planar CMOS layout rules. Transistors that
// are wider than the height budget are folded into parallel fingers.
type Analytic struct{}

// NewAnalytic creates the analytic formula library.
func NewAnalytic() *Analytic {
	return &Analytic{}
}

// maxWidths returns the widest unfolded NMOS and PMOS that fit in a transistor
// region of the given height, splitting the height by the P/N width ratio.
func maxWidths(
	widthNMOS, widthPMOS, heightTransistorRegion float64,
	t *tech.Technology,
) (maxWidthNMOS, maxWidthPMOS float64) {
	f := t.FeatureSize
	ratio := widthPMOS / (widthPMOS + widthNMOS)
	edge := (MinPolyExtDiff + MinGapBetFieldPoly/2) * 2 * f

	switch ratio {
	case 0:
		return heightTransistorRegion - edge, 0
	case 1:
		return 0, heightTransistorRegion - edge
	}

	maxWidthPMOS = ratio *
		(heightTransistorRegion - MinGapBetPAndNDiffs*f - edge)
	maxWidthNMOS = maxWidthPMOS / ratio * (1 - ratio)

	return maxWidthNMOS, maxWidthPMOS
}

// fold returns the number of fingers a transistor needs and the height of each
// finger.
func fold(width, maxWidth float64) (numFold int, fingerHeight float64) {
	if width <= 0 {
		return 0, 0
	}

	if width <= maxWidth || maxWidth <= 0 {
		return 1, width
	}

	return int(math.Ceil(width / maxWidth)), maxWidth
}

// EnlargeSize fills every fold of both transistors to the height budget. The
// transistor that needs more folds decides the fold count of both, so the P/N
// ratio is preserved.
func (a *Analytic) EnlargeSize(
	widthNMOS, widthPMOS, heightTransistorRegion float64,
	t *tech.Technology,
) (float64, float64) {
	if widthNMOS+widthPMOS <= 0 {
		return widthNMOS, widthPMOS
	}

	maxN, maxP := maxWidths(widthNMOS, widthPMOS, heightTransistorRegion, t)
	if maxN < 0 || maxP < 0 || maxN+maxP == 0 {
		return widthNMOS, widthPMOS
	}

	numFoldN, _ := fold(widthNMOS, maxN)
	numFoldP, _ := fold(widthPMOS, maxP)
	numFold := max(numFoldN, numFoldP)

	return float64(numFold) * maxN, float64(numFold) * maxP
}

// CalculateGateArea returns the area, height and width of a gate.
func (a *Analytic) CalculateGateArea(
	gate GateType, numInput int,
	widthNMOS, widthPMOS, heightTransistorRegion float64,
	t *tech.Technology,
) (area, height, width float64) {
	if widthNMOS+widthPMOS <= 0 {
		return 0, 0, 0
	}

	f := t.FeatureSize
	maxN, maxP := maxWidths(widthNMOS, widthPMOS, heightTransistorRegion, t)

	numFoldN, heightN := fold(widthNMOS, maxN)
	numFoldP, heightP := fold(widthPMOS, maxP)

	widthN := regionWidth(gate, numInput, numFoldN, f)
	widthP := regionWidth(gate, numInput, numFoldP, f)
	width = max(widthN, widthP)

	if widthNMOS > 0 && widthPMOS > 0 {
		height = heightTransistorRegion
	} else {
		height = heightN + heightP +
			(MinPolyExtDiff+MinGapBetFieldPoly/2)*2*f
	}

	return height * width, height, width
}

func regionWidth(gate GateType, numInput, numFold int, f float64) float64 {
	if numFold == 0 {
		return 0
	}

	pitch := (PolyWidth + MinGapBetGatePoly) * f
	if gate == INV || numInput < 1 {
		return float64(numFold+1) * pitch
	}

	return float64(numFold*numInput+1) * pitch
}

// CalculateGateCapacitance returns the input capacitance seen by one gate
// input and the junction capacitance loading the gate output.
func (a *Analytic) CalculateGateCapacitance(
	gate GateType, numInput int,
	widthNMOS, widthPMOS, heightTransistorRegion float64,
	t *tech.Technology,
) (capInput, capOutput float64) {
	capInput = (t.CapIdealGate+t.CapOverlap+3*t.CapFringe)*
		(widthNMOS+widthPMOS) + t.PhyGateLength*t.CapPolywire

	if widthNMOS+widthPMOS <= 0 {
		return capInput, 0
	}

	maxN, maxP := maxWidths(widthNMOS, widthPMOS, heightTransistorRegion, t)
	numFoldN, heightN := fold(widthNMOS, maxN)
	numFoldP, heightP := fold(widthPMOS, maxP)

	drainWidth := (ContactSize + 2*MinGapBetContactPoly) * t.FeatureSize

	numDrainN := (numFoldN + 1) / 2
	numDrainP := (numFoldP + 1) / 2

	switch gate {
	case NAND:
		numDrainP *= max(numInput, 1)
	case NOR:
		numDrainN *= max(numInput, 1)
	}

	capOutput = drainCap(numDrainN, drainWidth, heightN, t) +
		drainCap(numDrainP, drainWidth, heightP, t)

	return capInput, capOutput
}

func drainCap(numDrain int, drainWidth, drainHeight float64, t *tech.Technology) float64 {
	n := float64(numDrain)
	bottom := drainWidth * drainHeight * t.CapJunction
	sidewall := (2*drainWidth + drainHeight) * t.CapSidewall
	channel := drainHeight * t.CapDrainToChannel

	return n * (bottom + sidewall + channel)
}

// CalculateGateLeakage returns the average leakage current of a gate over
// its input states.
func (a *Analytic) CalculateGateLeakage(
	gate GateType, numInput int,
	widthNMOS, widthPMOS, temperature float64,
	t *tech.Technology,
) float64 {
	offN, offP := t.OffCurrent(temperature)
	inv := (widthNMOS*offN + widthPMOS*offP) / 2

	if gate == INV || numInput <= 1 {
		return inv
	}

	ratio := 1.0

	switch {
	case gate == NAND && numInput == 2:
		ratio = AvgRatioLeak2InputNAND
	case gate == NAND && numInput == 3:
		ratio = AvgRatioLeak3InputNAND
	case gate == NOR && numInput == 2:
		ratio = AvgRatioLeak2InputNOR
	case gate == NOR && numInput == 3:
		ratio = AvgRatioLeak3InputNOR
	}

	return inv * float64(numInput) * ratio
}

// CalculateOnResistance returns the effective resistance of a switching
// transistor.
func (a *Analytic) CalculateOnResistance(
	width float64, mos MOSType, temperature float64,
	t *tech.Technology,
) float64 {
	onN, onP := t.OnCurrent(temperature)

	current := onN
	if mos == PMOS {
		current = onP
	}

	return t.EffectiveResistanceMultiplier * t.Vdd / (current * width)
}

// CalculateTransconductance returns the saturation transconductance of a
// transistor at the reference temperature.
func (a *Analytic) CalculateTransconductance(
	width float64, mos MOSType,
	t *tech.Technology,
) float64 {
	current := t.CurrentOnNmos
	if mos == PMOS {
		current = t.CurrentOnPmos
	}

	return 2 * current * width / (t.Vdd - t.Vth)
}

// Horowitz returns the delay of a gate driving a load with time constant tr.
// An input ramp approaching infinity models an ideal step input. A zero time
// constant yields zero delay.
func (a *Analytic) Horowitz(tr, beta, rampInput float64) (delay, rampOutput float64) {
	if tr == 0 {
		return 0, math.Inf(1)
	}

	alpha := 1 / rampInput / tr
	vs := switchingVoltage
	logVs := math.Log(vs)

	delay = tr * math.Sqrt(logVs*logVs+2*alpha*beta*(1-vs))
	rampOutput = (1 - vs) / delay

	return delay, rampOutput
}
