package sweep

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tsvcost/param"
	"github.com/sarchlab/tsvcost/tech"
	"github.com/sarchlab/tsvcost/tsvpath"
)

var _ = Describe("Sweep", func() {
	newPath := func(synchronous bool) Factory {
		return func() (*tsvpath.Comp, error) {
			p := param.MakeBuilder().WithSynchronous(synchronous).Build()

			return tsvpath.MakeBuilder().
				WithInputParameter(tech.DefaultInputParameter()).
				WithParam(p).
				Build("TSVPath"), nil
		}
	}

	It("should list the TSV counts", func() {
		Expect(Range(3)).To(Equal([]float64{1, 2, 3}))
		Expect(Range(0)).To(BeEmpty())
	})

	It("should slow down with more TSVs", func() {
		points, err := Run(newPath(false), Range(8), 1)

		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(8))
		for i := 1; i < len(points); i++ {
			Expect(points[i].ReadLatency).
				To(BeNumerically(">", points[i-1].ReadLatency))
			Expect(points[i].ReadDynamicEnergy).
				To(Equal(points[0].ReadDynamicEnergy))
		}
	})

	It("should report cycles when synchronous", func() {
		points, err := Run(newPath(true), Range(2), 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(points[0].LatencyInCycles).To(BeTrue())
		Expect(points[0].ReadLatency).To(Equal(3.0))
	})

	It("should stop at the first failing path", func() {
		failure := errors.New("no technology")

		_, err := Run(func() (*tsvpath.Comp, error) {
			return nil, failure
		}, Range(2), 1)

		Expect(err).To(MatchError(failure))
	})

	It("should plot a metric", func() {
		points, err := Run(newPath(false), Range(4), 1)
		Expect(err).NotTo(HaveOccurred())

		file := filepath.Join(GinkgoT().TempDir(), "latency.svg")
		Expect(Plot(points, MetricLatency, file)).To(Succeed())

		info, err := os.Stat(file)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})

	It("should label the axes with the unit", func() {
		sync := []Point{{LatencyInCycles: true}}

		Expect(MetricLatency.label(sync)).To(Equal("Read latency (cycles)"))
		Expect(MetricLatency.label(nil)).To(Equal("Read latency (s)"))
		Expect(MetricEnergy.label(nil)).To(Equal("Read dynamic energy (J)"))
	})
})
