package estimator

import (
	"bytes"
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/tsvcost/hooking"
)

var _ = Describe("Unit", func() {
	var (
		u   *Unit
		out *bytes.Buffer
	)

	BeforeEach(func() {
		out = new(bytes.Buffer)
		u = NewUnit("TSVPath")
		u.SetOutput(out)
		u.Area = 2e-12
		u.Height = 1e-6
		u.Width = 2e-6
		u.ReadLatency = 3e-9
		u.ReadDynamicEnergy = 4e-12
		u.Leakage = 5e-6
	})

	It("should be reportable", func() {
		var r Reportable = u

		Expect(r.Name()).To(Equal("TSVPath"))
	})

	It("should list properties in SI units", func() {
		props := u.Properties()

		Expect(props).To(ContainElement(Property{"Area", 2e-12, "m^2"}))
		Expect(props).To(ContainElement(Property{"ReadLatency", 3e-9, "s"}))
		Expect(props).To(ContainElement(Property{"Leakage", 5e-6, "W"}))
	})

	It("should report latency in cycles", func() {
		u.LatencyInCycles = true
		u.ReadLatency = 2

		Expect(u.Properties()).To(ContainElement(Property{"ReadLatency", 2, "cycle"}))

		u.PrintProperty("TSV")
		Expect(out.String()).To(ContainSubstring("Read Latency = 2 cycles"))
	})

	It("should print the report", func() {
		u.PrintProperty("TSV")

		s := out.String()
		Expect(s).To(ContainSubstring("TSV:"))
		Expect(s).To(ContainSubstring("Area = 1um x 2um = 2um^2"))
		Expect(s).To(ContainSubstring("Read Latency = 3ns"))
		Expect(s).To(ContainSubstring("Read Dynamic Energy = 4pJ"))
		Expect(s).To(ContainSubstring("Leakage Power = 5uW"))
	})

	It("should wrap stage errors", func() {
		err := error(&StageError{
			Component: "TSVPath",
			Stage:     StageArea,
			Err:       ErrNotInitialized,
		})

		Expect(errors.Is(err, ErrNotInitialized)).To(BeTrue())
		Expect(err.Error()).To(Equal(
			"TSVPath: CalculateArea: require initialization first"))
	})
})

var _ = Describe("Stage hooks", func() {
	var (
		mockCtrl *gomock.Controller
		recorder *MockDataRecorder
		u        *Unit
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		recorder = NewMockDataRecorder(mockCtrl)
		u = NewUnit("TSVPath")
		u.Area = 1
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should not build snapshots without hooks", func() {
		u.NotifyStage(u, HookPosStageDone, StageArea)
	})

	It("should record completed stages", func() {
		recorder.EXPECT().CreateTable(StageTable, StageRecord{})
		recorder.EXPECT().InsertData(StageTable, StageRecord{
			RunID:     "run",
			Component: "TSVPath",
			Stage:     "CalculateArea",
			Area:      1,
		})

		u.AcceptHook(NewRecordingHook(recorder, "run"))
		u.NotifyStage(u, HookPosStageDone, StageArea)
	})

	It("should not record skipped stages", func() {
		recorder.EXPECT().CreateTable(StageTable, StageRecord{})

		u.AcceptHook(NewRecordingHook(recorder, "run"))
		u.NotifyStage(u, HookPosStageSkipped, StagePower)
	})

	It("should log stages", func() {
		buf := new(bytes.Buffer)
		u.AcceptHook(NewStageLogger(log.New(buf, "", 0)))

		u.NotifyStage(u, HookPosStageDone, StageArea)
		u.NotifyStage(u, HookPosStageSkipped, StagePower)

		Expect(buf.String()).To(ContainSubstring("[TSVPath] CalculateArea done: area=1"))
		Expect(buf.String()).To(ContainSubstring("[TSVPath] CalculatePower skipped"))
	})

	It("should pass the domain and the stage to hooks", func() {
		var got hooking.HookCtx
		u.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) { got = ctx }))

		u.NotifyStage(u, HookPosStageDone, StageLatency)

		Expect(got.Domain).To(BeIdenticalTo(u))
		Expect(got.Item).To(Equal(StageLatency))
		Expect(got.Detail.(Snapshot).Area).To(Equal(1.0))
	})
})
