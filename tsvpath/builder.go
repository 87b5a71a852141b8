package tsvpath

import (
	"log"

	"github.com/sarchlab/tsvcost/estimator"
	"github.com/sarchlab/tsvcost/formula"
	"github.com/sarchlab/tsvcost/param"
	"github.com/sarchlab/tsvcost/tech"
)

// Builder can build TSV paths.
type Builder struct {
	inputParameter *tech.InputParameter
	technology     *tech.Technology
	cell           *tech.MemCell
	param          param.Param
	library        formula.Library
}

// MakeBuilder creates a builder with default configuration.
func MakeBuilder() Builder {
	return Builder{
		param:   param.MakeBuilder().Build(),
		library: formula.NewAnalytic(),
	}
}

// WithInputParameter sets the run-time environment. The TSV path keeps a
// reference, so the parameter must outlive the path.
func (b Builder) WithInputParameter(p *tech.InputParameter) Builder {
	b.inputParameter = p
	return b
}

// WithTechnology sets the process technology. The TSV path keeps a
// reference, so the technology must outlive the path.
func (b Builder) WithTechnology(t *tech.Technology) Builder {
	b.technology = t
	return b
}

// WithMemCell sets the memory cell of the arrays that the path serves.
func (b Builder) WithMemCell(c *tech.MemCell) Builder {
	b.cell = c
	return b
}

// WithParam sets the simulation-wide parameters.
func (b Builder) WithParam(p param.Param) Builder {
	b.param = p
	return b
}

// WithFormulaLibrary sets the device-physics formulas.
func (b Builder) WithFormulaLibrary(l formula.Library) Builder {
	b.library = l
	return b
}

// Build builds a new TSV path. Missing input parameters and memory cells
// take their defaults. Without a technology, the technology of the process
// node of the input parameters is used.
func (b Builder) Build(name string) *Comp {
	if b.inputParameter == nil {
		b.inputParameter = tech.DefaultInputParameter()
	}

	if b.cell == nil {
		b.cell = tech.DefaultMemCell()
	}

	if b.technology == nil {
		t, err := tech.New(b.inputParameter.ProcessNode)
		if err != nil {
			log.Panic(err)
		}

		b.technology = t
	}

	if b.library == nil {
		log.Panic("formula library is required")
	}

	c := &Comp{
		Unit:           estimator.NewUnit(name),
		inputParameter: b.inputParameter,
		tech:           b.technology,
		cell:           b.cell,
		param:          b.param,
		formula:        b.library,
	}

	return c
}
