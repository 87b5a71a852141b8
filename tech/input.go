package tech

// DeviceRoadmap selects the flavor of transistors of a process node.
type DeviceRoadmap int

// Device roadmaps.
const (
	HP DeviceRoadmap = iota
	LSTP
)

func (r DeviceRoadmap) String() string {
	switch r {
	case HP:
		return "HP"
	case LSTP:
		return "LSTP"
	default:
		return "Unknown"
	}
}

// InputParameter is the run-time environment of a simulation.
type InputParameter struct {
	// Temperature in Kelvin.
	Temperature   float64
	ProcessNode   int
	DeviceRoadmap DeviceRoadmap
}

// DefaultInputParameter returns a 22 nm HP environment at 300 K.
func DefaultInputParameter() *InputParameter {
	return &InputParameter{
		Temperature:   ReferenceTemperature,
		ProcessNode:   22,
		DeviceRoadmap: HP,
	}
}

// MemCellType is the kind of storage device of a memory cell.
type MemCellType int

// Memory cell types.
const (
	SRAM MemCellType = iota
	RRAM
	FeFET
)

func (c MemCellType) String() string {
	switch c {
	case SRAM:
		return "SRAM"
	case RRAM:
		return "RRAM"
	case FeFET:
		return "FeFET"
	default:
		return "Unknown"
	}
}

// MemCell describes the storage cell of the arrays that a peripheral circuit
// serves. Dimensions are expressed in feature sizes.
type MemCell struct {
	MemCellType         MemCellType
	WidthInFeatureSize  float64
	HeightInFeatureSize float64
	ReadVoltage         float64
}

// DefaultMemCell returns a 6T SRAM cell.
func DefaultMemCell() *MemCell {
	return &MemCell{
		MemCellType:         SRAM,
		WidthInFeatureSize:  2.3 * 10,
		HeightInFeatureSize: 1.3 * 10,
		ReadVoltage:         0,
	}
}
