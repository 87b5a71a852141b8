package tsvpath

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tsvcost/estimator"
	"github.com/sarchlab/tsvcost/param"
	"github.com/sarchlab/tsvcost/tech"
	"github.com/sarchlab/tsvcost/timing"
)

var _ = Describe("TSVPath at 22nm", func() {
	var (
		params param.Builder
		path   *Comp
	)

	run := func() {
		path = MakeBuilder().
			WithInputParameter(tech.DefaultInputParameter()).
			WithParam(params.Build()).
			Build("TSVPath")

		path.Initialize()
		Expect(path.CalculateArea(0, 0, estimator.LayoutNone)).To(Succeed())
		Expect(path.CalculateLatency(4, 1)).To(Succeed())
		Expect(path.CalculatePower(4, 1)).To(Succeed())
	}

	BeforeEach(func() {
		params = param.MakeBuilder().
			WithTSVPitch(5e-6).
			WithTSVRes(0.05).
			WithTSVCap(40e-15).
			WithNumRowSubArray(1).
			WithNumColSubArray(1).
			WithClkFreq(1 * timing.GHz).
			WithSynchronous(false).
			WithValidated(false)
	})

	It("should be dominated by the TSV pitch in area", func() {
		run()

		pitchArea := 2 * 5e-6 * 5e-6
		Expect(path.Area).To(BeNumerically(">", pitchArea))
		Expect(path.Area).To(BeNumerically("~", 5.0412e-11, 0.001e-11))
	})

	It("should take about half a nanosecond", func() {
		run()

		Expect(path.ReadLatency).To(BeNumerically("~", 5.251e-10, 0.01e-10))
		Expect(path.LatencyInCycles).To(BeFalse())
	})

	It("should fit in one cycle at 1GHz", func() {
		params = params.WithSynchronous(true)
		run()

		Expect(path.ReadLatency).To(Equal(1.0))
		Expect(path.LatencyInCycles).To(BeTrue())
	})

	It("should charge the TSV on every read", func() {
		run()

		Expect(path.ReadDynamicEnergy).
			To(BeNumerically("~", 2.641e-14, 0.005e-14))
		Expect(path.ReadDynamicEnergy).
			To(BeNumerically(">", 40e-15*0.8*0.8))
		Expect(path.Leakage).To(BeNumerically("~", 4.782e-8, 0.005e-8))
	})

	It("should scale validated energy by the switching activity", func() {
		run()
		unvalidated := path.ReadDynamicEnergy

		params = params.WithValidated(true)
		run()

		Expect(path.ReadDynamicEnergy).
			To(BeNumerically("~", unvalidated*0.15, 1e-24))
	})

	It("should add the leakage of every subarray edge", func() {
		run()
		single := path.Leakage

		params = params.WithNumRowSubArray(2).WithNumColSubArray(2)
		run()

		Expect(path.Leakage).To(BeNumerically("~", 2*single, 1e-18))
	})
})
