// Package tsvpath estimates the area, latency, and energy of the signal path
// that carries a read result between stacked dies. The path is made of two
// inverting buffers driving a through-silicon via.
package tsvpath

import (
	"log"

	"github.com/sarchlab/tsvcost/estimator"
	"github.com/sarchlab/tsvcost/formula"
	"github.com/sarchlab/tsvcost/param"
	"github.com/sarchlab/tsvcost/tech"
	"github.com/sarchlab/tsvcost/timing"
)

// rampInput is the slope of an input edge that has fully settled.
const rampInput = 1e20

// Comp is a TSV path. A Comp must be initialized before any calculation.
// Calls on one Comp must not run concurrently.
type Comp struct {
	*estimator.Unit

	inputParameter *tech.InputParameter
	tech           *tech.Technology
	cell           *tech.MemCell
	param          param.Param
	formula        formula.Library

	initialized   bool
	characterized bool

	widthInvN    float64
	widthInvP    float64
	capInvInput  float64
	capInvOutput float64
}

// Initialized tells if the buffers have been sized.
func (c *Comp) Initialized() bool {
	return c.initialized
}

// Characterized tells if the buffer capacitances have been computed by
// CalculateArea. Latency and power use whatever capacitance is stored, so
// they read zero capacitance before that.
func (c *Comp) Characterized() bool {
	return c.characterized
}

// BufferWidths returns the NMOS and PMOS widths of the buffers.
func (c *Comp) BufferWidths() (widthNMOS, widthPMOS float64) {
	return c.widthInvN, c.widthInvP
}

// BufferCapacitances returns the input and output capacitance of a buffer.
func (c *Comp) BufferCapacitances() (capInput, capOutput float64) {
	return c.capInvInput, c.capInvOutput
}

// Param returns the simulation-wide parameters of the path.
func (c *Comp) Param() param.Param {
	return c.param
}

// MemCell returns the memory cell of the arrays that the path serves.
func (c *Comp) MemCell() *tech.MemCell {
	return c.cell
}

func (c *Comp) minWidths() (widthNMOS, widthPMOS float64) {
	f := c.tech.FeatureSize

	return formula.MinNMOSSize * f, c.tech.PNSizeRatio * formula.MinNMOSSize * f
}

func (c *Comp) maxTransistorHeight() float64 {
	return c.tech.FeatureSize * formula.MaxTransistorHeight
}

// Initialize sizes the buffers. Initializing again recomputes the sizes.
func (c *Comp) Initialize() {
	if c.initialized {
		log.Printf("[%s] Warning: Already initialized!", c.Name())
	}

	widthN, widthP := c.minWidths()
	c.widthInvN, c.widthInvP = c.formula.EnlargeSize(
		widthN, widthP, c.maxTransistorHeight(), c.tech)

	c.initialized = true

	c.NotifyStage(c, estimator.HookPosStageDone, estimator.StageInitialize)
}

func (c *Comp) notInitialized(stage estimator.Stage) error {
	log.Printf("[%s] Error: Require initialization first!", c.Name())

	c.NotifyStage(c, estimator.HookPosStageSkipped, stage)

	return &estimator.StageError{
		Component: c.Name(),
		Stage:     stage,
		Err:       estimator.ErrNotInitialized,
	}
}

// CalculateArea computes the area of the path for one subarray, replicated
// over the subarray rows and columns, and adjusts it toward the target
// dimensions with the policy of mode. It also computes the buffer
// capacitances used by CalculateLatency and CalculatePower. A layout error
// is returned after the capacitances are computed.
func (c *Comp) CalculateArea(
	newHeight, newWidth float64,
	mode estimator.LayoutMode,
) error {
	if !c.initialized {
		return c.notInitialized(estimator.StageArea)
	}

	widthN, widthP := c.minWidths()
	_, hInv, wInv := c.formula.CalculateGateArea(
		formula.INV, 1, widthN, widthP, c.maxTransistorHeight(), c.tech)

	pitch := c.param.TSVPitch()
	c.Area = (2*hInv*wInv + pitch*pitch) * c.param.NumSubArrayEdges()

	c.NewHeight = newHeight
	c.NewWidth = newWidth

	layoutErr := c.ApplyLayout(mode)
	if layoutErr != nil {
		log.Printf("[%s] Error: %v", c.Name(), layoutErr)
	}

	c.capInvInput, c.capInvOutput = c.formula.CalculateGateCapacitance(
		formula.INV, 1, c.widthInvN, c.widthInvP, hInv, c.tech)
	c.characterized = true

	c.NotifyStage(c, estimator.HookPosStageDone, estimator.StageArea)

	if layoutErr != nil {
		return &estimator.StageError{
			Component: c.Name(),
			Stage:     estimator.StageArea,
			Err:       layoutErr,
		}
	}

	return nil
}

func (c *Comp) warnIfNotCharacterized() {
	if !c.characterized {
		log.Printf("[%s] Warning: Buffer capacitance is not calculated, "+
			"run CalculateArea first!", c.Name())
	}
}

// CalculateLatency computes the read latency of numRead reads through a path
// that crosses numTSV TSVs. The latency is in clock cycles when the
// simulation is synchronous.
func (c *Comp) CalculateLatency(numTSV, numRead float64) error {
	if !c.initialized {
		return c.notInitialized(estimator.StageLatency)
	}

	c.warnIfNotCharacterized()

	latency := 0.0

	resPullUp := c.formula.CalculateOnResistance(
		c.widthInvP, formula.PMOS, c.inputParameter.Temperature, c.tech)
	tr := resPullUp * (c.capInvOutput + c.param.TSVCap()*numTSV)
	gm := c.formula.CalculateTransconductance(c.widthInvP, formula.PMOS, c.tech)
	beta := 1 / (resPullUp * gm)
	delay, _ := c.formula.Horowitz(tr, beta, rampInput)
	latency += delay

	// The TSV discharges into the next buffer. The beta of the driver is
	// reused for this stage.
	resPullDown := c.param.TSVRes() * numTSV
	tr = resPullDown * c.capInvInput
	delay, _ = c.formula.Horowitz(tr, beta, rampInput)
	latency += delay

	if c.param.Synchronous() {
		latency = c.param.ClkFreq().CeilCycles(timing.VTimeInSec(latency))
	}

	c.ReadLatency = latency * numRead
	c.LatencyInCycles = c.param.Synchronous()

	c.NotifyStage(c, estimator.HookPosStageDone, estimator.StageLatency)

	return nil
}

// CalculatePower computes the leakage of the buffers of all the subarrays and
// the dynamic energy of numRead reads. The TSV load is charged once per read
// regardless of numTSV.
func (c *Comp) CalculatePower(numTSV, numRead float64) error {
	if !c.initialized {
		return c.notInitialized(estimator.StagePower)
	}

	c.warnIfNotCharacterized()

	vdd := c.tech.Vdd

	c.Leakage = c.formula.CalculateGateLeakage(
		formula.INV, 1, c.widthInvN, c.widthInvP,
		c.inputParameter.Temperature, c.tech) *
		vdd * c.param.NumSubArrayEdges()

	energy := 0.0
	energy += c.capInvInput * vdd * vdd
	energy += (c.capInvOutput + c.param.TSVCap()) * vdd * vdd
	energy += c.capInvInput * vdd * vdd
	energy *= numRead

	if c.param.Validated() {
		// Switching activity of the adder that the path feeds.
		energy *= c.param.Delta()
	}

	c.ReadDynamicEnergy = energy

	c.NotifyStage(c, estimator.HookPosStageDone, estimator.StagePower)

	return nil
}

// PrintProperty writes the results of the path.
func (c *Comp) PrintProperty(label string) {
	c.Unit.PrintProperty(label)
}
