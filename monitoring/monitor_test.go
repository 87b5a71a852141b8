package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tsvcost/estimator"
)

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		router http.Handler
		unit   *estimator.Unit
	)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		return rec
	}

	BeforeEach(func() {
		unit = estimator.NewUnit("TSVPath")
		unit.Area = 2e-12
		unit.Leakage = 3e-6

		m = NewMonitor().WithProfileDuration(10 * time.Millisecond)
		m.RegisterEstimator(unit)
		m.RegisterEstimator(estimator.NewUnit("Adder"))
		router = m.Router()
	})

	It("should ignore privileged ports", func() {
		m.WithPortNumber(80)
		Expect(m.portNumber).To(Equal(0))

		m.WithPortNumber(8080)
		Expect(m.portNumber).To(Equal(8080))
	})

	It("should reject duplicated names", func() {
		Expect(func() {
			m.RegisterEstimator(estimator.NewUnit("TSVPath"))
		}).To(Panic())
	})

	It("should list the estimators by name", func() {
		rec := get("/api/list_components")

		var names []string
		Expect(json.Unmarshal(rec.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Adder", "TSVPath"}))
	})

	It("should report the properties of an estimator", func() {
		rec := get("/api/properties/TSVPath")

		Expect(rec.Code).To(Equal(http.StatusOK))
		var props []estimator.Property
		Expect(json.Unmarshal(rec.Body.Bytes(), &props)).To(Succeed())
		Expect(props).To(ContainElement(
			estimator.Property{Name: "Area", Value: 2e-12, Unit: "m^2"}))
		Expect(props).To(ContainElement(
			estimator.Property{Name: "Leakage", Value: 3e-6, Unit: "W"}))
	})

	It("should return 404 for unknown estimators", func() {
		Expect(get("/api/properties/Decoder").Code).
			To(Equal(http.StatusNotFound))
		Expect(get("/api/component/Decoder").Code).
			To(Equal(http.StatusNotFound))
	})

	It("should serialize an estimator", func() {
		rec := get("/api/component/TSVPath")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should reject malformed field requests", func() {
		rec := get("/api/field/" + url.PathEscape("{not json"))

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should report the resource usage", func() {
		rec := get("/api/resource")

		Expect(rec.Code).To(Equal(http.StatusOK))
		rsp := resourceRsp{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.MemorySize).To(BeNumerically(">", 0))
	})

	It("should collect a CPU profile", func() {
		rec := get("/api/profile")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("SampleType"))
	})

	It("should export the properties as metrics", func() {
		get("/api/list_components")
		get("/api/properties/TSVPath")
		get("/api/properties/Adder")

		rec := get("/metrics")

		Expect(rec.Code).To(Equal(http.StatusOK))
		body := rec.Body.String()
		Expect(body).To(ContainSubstring(
			`tsvcost_estimator_property{component="TSVPath",property="Area",unit="m^2"} 2e-12`))
		Expect(body).To(ContainSubstring(
			`tsvcost_monitor_requests_total{endpoint="list_components"} 1`))
		Expect(body).To(ContainSubstring(
			`tsvcost_monitor_requests_total{endpoint="properties"} 2`))
	})

	It("should name endpoints without their variables", func() {
		Expect(endpoint("/api/component/TSVPath")).To(Equal("component"))
		Expect(endpoint("/api/resource")).To(Equal("resource"))
	})

	It("should serve on a random port", func() {
		addr, err := m.StartServer()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			Expect(m.StopServer(context.Background())).To(Succeed())
		})

		rsp, err := http.Get(addr + "/api/list_components")
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})
})
