package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspanneal/internal/config"
	"github.com/katalvlaran/tspanneal/internal/httpapi"
	"github.com/katalvlaran/tspanneal/internal/metrics"
	"github.com/katalvlaran/tspanneal/tsp"
)

type solveData struct {
	Tour             []int   `json:"tour"`
	Cost             float64 `json:"cost"`
	Iterations       int     `json:"iterations"`
	FinalTemperature float64 `json:"final_temperature"`
	Canceled         bool    `json:"canceled"`
	Seed             int64   `json:"seed"`
}

type errorData struct {
	Code    string `json:"code"`
	Message any    `json:"message"`
}

const squareBody = `{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1},{"x":0,"y":1}],"max_iterations":5000,"seed":3}`

func defaultConfig() config.Config {
	cfg, err := config.Load(config.New(), "")
	Expect(err).NotTo(HaveOccurred())
	cfg.Server.RateLimit = 0

	return cfg
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func decodeData(rec *httptest.ResponseRecorder) solveData {
	var env struct {
		Data solveData `json:"data"`
	}
	Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())

	return env.Data
}

func decodeError(rec *httptest.ResponseRecorder) errorData {
	var env struct {
		Error errorData `json:"error"`
	}
	Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())

	return env.Error
}

var _ = Describe("POST /api/solve", func() {
	var (
		cfg     config.Config
		m       *metrics.Metrics
		handler http.Handler
	)

	BeforeEach(func() {
		cfg = defaultConfig()
		m = metrics.New()
		handler = httpapi.NewAPI(zap.NewNop(), cfg, m, nil).Handler()
	})

	Context("with a valid request", func() {
		It("should return the optimal square tour", func() {
			rec := post(handler, squareBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

			data := decodeData(rec)
			Expect(data.Tour).To(HaveLen(4))
			Expect(tsp.ValidatePermutation(data.Tour, 4)).To(Succeed())
			Expect(data.Cost).To(BeNumerically("~", 4.0, 1e-9))
			Expect(data.Iterations).To(Equal(5000))
			Expect(data.Seed).To(Equal(int64(3)))
			Expect(data.Canceled).To(BeFalse())
		})

		It("should be deterministic for a fixed seed", func() {
			a := decodeData(post(handler, squareBody))
			b := decodeData(post(handler, squareBody))
			Expect(a).To(Equal(b))
		})

		It("should record metrics", func() {
			Expect(post(handler, squareBody).Code).To(Equal(http.StatusOK))

			rec := get(handler, "/metrics")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`tspanneal_solves_total{metric="euclidean",outcome="ok"} 1`))
			Expect(rec.Body.String()).To(ContainSubstring("tspanneal_iterations_total 5000"))
		})

		It("should stop at the configured timeout and return the best so far", func() {
			cfg.Server.Timeout = 20 * time.Millisecond
			slow := httpapi.SolverFunc(func(ctx context.Context, pts []tsp.Point, opts tsp.Options) (tsp.Result, error) {
				<-ctx.Done()
				return tsp.Solve(ctx, pts, opts)
			})
			h := httpapi.NewAPI(zap.NewNop(), cfg, m, slow).Handler()

			rec := post(h, squareBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			data := decodeData(rec)
			Expect(data.Canceled).To(BeTrue())
			Expect(data.Iterations).To(Equal(0))
			Expect(data.Tour).To(HaveLen(4))
		})
	})

	Context("with an unusual schedule", func() {
		It("should run a zero-temperature, growing-rate search", func() {
			rec := post(handler, `{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1},{"x":0,"y":1}],"initial_temp":0,"cooling_rate":1.5,"max_iterations":50}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			data := decodeData(rec)
			Expect(data.Iterations).To(Equal(50))
			Expect(data.Tour).To(HaveLen(4))
		})

		It("should answer when the temperature overflows", func() {
			rec := post(handler, `{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}],"initial_temp":1000,"cooling_rate":1.5,"max_iterations":2000}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).NotTo(ContainSubstring("final_temperature"))
			Expect(decodeData(rec).Iterations).To(Equal(2000))
		})

		It("should treat negative iterations as none", func() {
			rec := post(handler, `{"points":[{"x":0,"y":0},{"x":1,"y":0}],"max_iterations":-3}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeData(rec).Iterations).To(Equal(0))
		})
	})

	Context("with an invalid request", func() {
		It("should reject unknown names with translated messages", func() {
			rec := post(handler, `{"points":[{"x":0,"y":0}],"evaluation":"sparse","metric":"manhattan"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			e := decodeError(rec)
			Expect(e.Code).To(Equal("Bad Request"))
			Expect(fmt.Sprint(e.Message)).To(ContainSubstring("evaluation"))
			Expect(fmt.Sprint(e.Message)).To(ContainSubstring("metric"))
		})

		It("should reject an empty point set", func() {
			rec := post(handler, `{"points":[]}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(fmt.Sprint(decodeError(rec).Message)).To(ContainSubstring("points"))
		})

		It("should reject unknown fields", func() {
			rec := post(handler, `{"points":[{"x":0,"y":0}],"temperature":5}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(ContainSubstring("unknown key"))
		})

		It("should reject malformed JSON", func() {
			rec := post(handler, `{"points":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should enforce the point limit", func() {
			cfg.Server.MaxPoints = 2
			h := httpapi.NewAPI(zap.NewNop(), cfg, m, nil).Handler()
			rec := post(h, squareBody)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(ContainSubstring("at most 2"))
		})

		It("should require a JSON content type", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(squareBody))
			req.Header.Set("Content-Type", "text/plain")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnsupportedMediaType))
		})

		It("should map solver input errors to 400 and others to 500", func() {
			bad := httpapi.SolverFunc(func(context.Context, []tsp.Point, tsp.Options) (tsp.Result, error) {
				return tsp.Result{}, fmt.Errorf("wrapped: %w", tsp.ErrInvalidInput)
			})
			rec := post(httpapi.NewAPI(zap.NewNop(), cfg, m, bad).Handler(), squareBody)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			boom := httpapi.SolverFunc(func(context.Context, []tsp.Point, tsp.Options) (tsp.Result, error) {
				return tsp.Result{}, errors.New("boom")
			})
			rec = post(httpapi.NewAPI(zap.NewNop(), cfg, m, boom).Handler(), squareBody)
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeError(rec).Message).NotTo(ContainSubstring("boom"))
		})

		It("should recover from a panicking solver", func() {
			panicky := httpapi.SolverFunc(func(context.Context, []tsp.Point, tsp.Options) (tsp.Result, error) {
				panic("unexpected")
			})
			rec := post(httpapi.NewAPI(zap.NewNop(), cfg, m, panicky).Handler(), squareBody)
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Header().Get("Connection")).To(Equal("close"))
		})
	})
})

var _ = Describe("middleware", func() {
	It("should answer the heartbeat", func() {
		h := httpapi.NewAPI(zap.NewNop(), defaultConfig(), nil, nil).Handler()
		rec := get(h, "/healthz")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("."))
	})

	It("should answer unknown routes with a JSON 404", func() {
		h := httpapi.NewAPI(zap.NewNop(), defaultConfig(), nil, nil).Handler()
		rec := get(h, "/nope")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(decodeError(rec).Code).To(Equal("Not Found"))
	})

	It("should rate limit once the burst is spent", func() {
		cfg := defaultConfig()
		cfg.Server.RateLimit = 0.001
		cfg.Server.Burst = 1
		h := httpapi.NewAPI(zap.NewNop(), cfg, nil, nil).Handler()

		Expect(get(h, "/metrics").Code).To(Equal(http.StatusOK))
		rec := get(h, "/metrics")
		Expect(rec.Code).To(Equal(http.StatusTooManyRequests))
		Expect(decodeError(rec).Code).To(Equal("Too Many Requests"))
	})
})

var _ = Describe("Serve", func() {
	It("should serve until the context is canceled", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		api := httpapi.NewAPI(zap.NewNop(), defaultConfig(), nil, nil)
		done := make(chan error, 1)
		go func() { done <- api.Serve(ctx, ln) }()

		url := "http://" + ln.Addr().String()
		Eventually(func() (int, error) {
			resp, err := http.Get(url + "/healthz")
			if err != nil {
				return 0, err
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusOK))

		resp, err := http.Post(url+"/api/solve", "application/json", bytes.NewBufferString(squareBody))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		_ = resp.Body.Close()

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
