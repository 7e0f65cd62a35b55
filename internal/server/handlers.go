package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/primkit/primkit/internal/errors"
	"github.com/primkit/primkit/internal/fibonacci"
	"github.com/primkit/primkit/internal/logging"
	"github.com/primkit/primkit/internal/matrix"
	runtimemetrics "github.com/primkit/primkit/internal/metrics"
	"github.com/primkit/primkit/internal/quicksort"
	"github.com/primkit/primkit/internal/sysmon"
)

// Error codes returned in the JSON error envelope.
const (
	codeInvalidInput      = "invalid_input"
	codeInvalidDimensions = "invalid_dimensions"
	codeResourceExhausted = "resource_exhausted"
	codeTimeout           = "timeout"
	codeInternal          = "internal"
)

// errorBody is the payload of the JSON error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the JSON error envelope returned on every failure.
type errorResponse struct {
	Error errorBody `json:"error"`
}

// fibonacciResponse is the payload of GET /api/v1/fibonacci.
type fibonacciResponse struct {
	N          int64   `json:"n"`
	Algorithm  string  `json:"algo"`
	Result     int64   `json:"result"`
	DurationMs float64 `json:"duration_ms"`
}

// matrixRequest is the payload of POST /api/v1/matrix/multiply.
type matrixRequest struct {
	A matrix.Matrix `json:"a"`
	B matrix.Matrix `json:"b"`
}

// matrixResponse is the reply of POST /api/v1/matrix/multiply.
type matrixResponse struct {
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Result     matrix.Matrix `json:"result"`
	DurationMs float64       `json:"duration_ms"`
}

// sortRequest is the payload of POST /api/v1/sort.
type sortRequest struct {
	Values []float64 `json:"values"`
}

// sortResponse is the reply of POST /api/v1/sort.
type sortResponse struct {
	Count      int       `json:"count"`
	Values     []float64 `json:"values"`
	DurationMs float64   `json:"duration_ms"`
}

// healthResponse is the reply of GET /healthz.
type healthResponse struct {
	Status         string  `json:"status"`
	CPUPercent     float64 `json:"cpu_percent"`
	MemPercent     float64 `json:"mem_percent"`
	Load1          float64 `json:"load1"`
	HeapAllocBytes uint64  `json:"heap_alloc_bytes"`
	GCCycles       uint32  `json:"gc_cycles"`
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

// writeError writes the JSON error envelope.
func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeCalcError maps a computation error to an HTTP status and envelope.
func (s *Server) writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsInvalidInput(err):
		s.writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
	case apperrors.IsInvalidDimensions(err):
		s.writeError(w, http.StatusBadRequest, codeInvalidDimensions, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusServiceUnavailable, codeTimeout, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
	}
}

// methodNotAllowed rejects a request with 405 and advertises the allowed verb.
func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	s.logger.Info("method not allowed",
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path))
	w.Header().Set("Allow", allowed)
	s.writeError(w, http.StatusMethodNotAllowed, codeInvalidInput,
		"method "+r.Method+" not allowed")
}

// handleFibonacci serves GET /api/v1/fibonacci?n=<index>&algo=<strategy>.
func (s *Server) handleFibonacci(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "fibonacci.calculate")
	defer span.End()

	n, err := strconv.ParseInt(r.URL.Query().Get("n"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, codeInvalidInput, "query parameter n must be an integer")
		return
	}
	if n < 0 {
		s.writeError(w, http.StatusBadRequest, codeInvalidInput, "query parameter n must be non-negative")
		return
	}
	if n > s.security.MaxFibIndex {
		s.writeError(w, http.StatusBadRequest, codeResourceExhausted, apperrors.LimitError{
			Operation: "fibonacci", Requested: n, Limit: s.security.MaxFibIndex,
		}.Error())
		return
	}

	algo := r.URL.Query().Get("algo")
	if algo == "" {
		algo = fibonacci.AlgoIterative
	}
	calc, err := s.factory.Get(algo)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}
	if algo == fibonacci.AlgoRecursive && n > s.security.MaxRecursiveIndex {
		s.writeError(w, http.StatusBadRequest, codeResourceExhausted, apperrors.LimitError{
			Operation: "fibonacci/recursive", Requested: n, Limit: s.security.MaxRecursiveIndex,
		}.Error())
		return
	}

	span.SetAttributes(
		attribute.Int64("fibonacci.n", n),
		attribute.String("fibonacci.algorithm", algo),
	)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	result, err := calc.Calculate(ctx, nil, 0, n)
	duration := time.Since(start)
	if err != nil {
		s.logger.Error("fibonacci calculation failed", err, logging.Int64("n", n))
		s.writeCalcError(w, err)
		return
	}

	s.logger.Debug("fibonacci served",
		logging.Int64("n", n),
		logging.String("algo", algo),
		logging.Dur("duration", duration))
	s.writeJSON(w, http.StatusOK, fibonacciResponse{
		N:          n,
		Algorithm:  algo,
		Result:     result,
		DurationMs: float64(duration.Microseconds()) / 1000.0,
	})
}

// handleMatrixMultiply serves POST /api/v1/matrix/multiply.
func (s *Server) handleMatrixMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r, http.MethodPost)
		return
	}

	_, span := s.tracer.Start(r.Context(), "matrix.multiply")
	defer span.End()

	var req matrixRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.security.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid JSON body: "+err.Error())
		return
	}

	if exceedsDim(req.A, s.security.MaxMatrixDim) || exceedsDim(req.B, s.security.MaxMatrixDim) {
		s.writeError(w, http.StatusRequestEntityTooLarge, codeResourceExhausted, apperrors.LimitError{
			Operation: "matrix/multiply", Requested: int64(maxDim(req.A, req.B)), Limit: int64(s.security.MaxMatrixDim),
		}.Error())
		return
	}

	start := time.Now()
	result, err := matrix.Multiply(req.A, req.B)
	duration := time.Since(start)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}

	rows, cols := result.Dims()
	span.SetAttributes(attribute.Int("matrix.rows", rows), attribute.Int("matrix.cols", cols))
	s.writeJSON(w, http.StatusOK, matrixResponse{
		Rows:       rows,
		Cols:       cols,
		Result:     result,
		DurationMs: float64(duration.Microseconds()) / 1000.0,
	})
}

// exceedsDim reports whether either dimension of m exceeds limit.
func exceedsDim(m matrix.Matrix, limit int) bool {
	rows, cols := m.Dims()
	return rows > limit || cols > limit
}

// maxDim returns the largest dimension across both operands, for diagnostics.
func maxDim(a, b matrix.Matrix) int {
	best := 0
	for _, m := range []matrix.Matrix{a, b} {
		rows, cols := m.Dims()
		if rows > best {
			best = rows
		}
		if cols > best {
			best = cols
		}
	}
	return best
}

// handleSort serves POST /api/v1/sort.
func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r, http.MethodPost)
		return
	}

	_, span := s.tracer.Start(r.Context(), "quicksort.sort")
	defer span.End()

	var req sortRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.security.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid JSON body: "+err.Error())
		return
	}

	if len(req.Values) > s.security.MaxSortCount {
		s.writeError(w, http.StatusRequestEntityTooLarge, codeResourceExhausted, apperrors.LimitError{
			Operation: "sort", Requested: int64(len(req.Values)), Limit: int64(s.security.MaxSortCount),
		}.Error())
		return
	}

	span.SetAttributes(attribute.Int("sort.count", len(req.Values)))

	start := time.Now()
	quicksort.Sort(req.Values)
	duration := time.Since(start)

	s.writeJSON(w, http.StatusOK, sortResponse{
		Count:      len(req.Values),
		Values:     req.Values,
		DurationMs: float64(duration.Microseconds()) / 1000.0,
	})
}

// handleHealthz serves GET /healthz with process and system vitals.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	sys := sysmon.Sample()
	snap := runtimemetrics.NewMemoryCollector().Snapshot()

	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:         "ok",
		CPUPercent:     sys.CPUPercent,
		MemPercent:     sys.MemPercent,
		Load1:          sys.Load1,
		HeapAllocBytes: snap.HeapAlloc,
		GCCycles:       snap.NumGC,
	})
}

// handleMetrics serves GET /metrics in Prometheus exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	s.metrics.WritePrometheus(w, r)
}
