package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/counterreg/countercomp"
	"github.com/sarchlab/counterreg/stimulus"
)

var _ = Describe("Monitor", func() {
	var (
		sim     *countercomp.Simulation
		monitor *Monitor
		handler http.Handler
	)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		handler.ServeHTTP(rec, req)

		return rec
	}

	BeforeEach(func() {
		sim = countercomp.MakeSimulationBuilder().
			WithCycles(5).
			WithSource(stimulus.Constant{Enable: true}).
			Build()

		monitor = NewMonitor()
		monitor.RegisterEngine(sim.Engine())
		monitor.RegisterComponent(sim.Counter())
		handler = monitor.Router()
	})

	It("should list components", func() {
		rec := get("/api/list_components")

		Expect(rec.Code).To(Equal(http.StatusOK))

		var names []string
		Expect(json.Unmarshal(rec.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Counter"}))
	})

	It("should report the count after a run", func() {
		Expect(sim.Run()).To(Succeed())

		rec := get("/api/count/Counter")

		Expect(rec.Code).To(Equal(http.StatusOK))

		var rsp countRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Name).To(Equal("Counter"))
		Expect(rsp.Count).To(Equal(uint8(5)))
	})

	It("should report the current cycle", func() {
		Expect(sim.Run()).To(Succeed())

		rec := get("/api/now")

		Expect(rec.Body.String()).To(Equal(`{"now":4}`))
	})

	It("should return 404 for unknown components", func() {
		rec := get("/api/count/Nope")

		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should pause and continue the engine", func() {
		get("/api/pause")
		Expect(sim.Engine().IsPaused()).To(BeTrue())

		get("/api/continue")
		Expect(sim.Engine().IsPaused()).To(BeFalse())
	})

	It("should serve the web page", func() {
		rec := get("/")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(HavePrefix("<!DOCTYPE html>"))
	})

	It("should track progress with edges", func() {
		bar := monitor.CreateProgressBar("cycles", 5)
		sim.AcceptHook(EdgeProgress{Bar: bar})

		Expect(sim.Run()).To(Succeed())

		rec := get("/api/progress")

		var bars []progressRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0].Name).To(Equal("cycles"))
		Expect(bars[0].Total).To(Equal(uint64(5)))
		Expect(bars[0].Finished).To(Equal(uint64(5)))
	})

	It("should remove completed progress bars", func() {
		bar := monitor.CreateProgressBar("cycles", 5)
		monitor.CompleteProgressBar(bar)

		rec := get("/api/progress")

		Expect(rec.Body.String()).To(Equal("[]"))
	})
})

var _ = Describe("ProgressBar", func() {
	It("should move in-progress items to finished", func() {
		bar := &ProgressBar{Total: 10}

		bar.IncrementInProgress(3)
		bar.MoveInProgressToFinished(2)
		bar.IncrementFinished(1)

		Expect(bar.InProgress).To(Equal(uint64(1)))
		Expect(bar.Finished).To(Equal(uint64(3)))
	})
})
