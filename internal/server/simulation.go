package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pborges/qmc/internal/minimizer"
)

// maxRequestBytes bounds the /runSimulation body.
const maxRequestBytes = 64 << 10

type simulationRequest struct {
	SOP string `json:"sop"`
}

type simulationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"errorKind,omitempty"`

	BinaryInput     string   `json:"binaryInput,omitempty"`
	Result          string   `json:"result,omitempty"`
	Variables       string   `json:"variables,omitempty"`
	PrimeImplicants []string `json:"primeImplicants,omitempty"`
	Simplified      *string  `json:"simplified,omitempty"`
}

func (s *Server) runSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req simulationRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.logger.Error("decoding request", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, simulationResponse{
			Error: fmt.Sprintf("Server error: %v", err),
		})
		return
	}

	expr := strings.TrimSpace(req.SOP)
	if expr == "" {
		s.writeJSON(w, http.StatusBadRequest, simulationResponse{Error: "No SOP expression provided"})
		return
	}

	start := time.Now()
	res, err := s.simplify(expr)
	elapsed := time.Since(start)
	if err != nil {
		kind := minimizer.KindOf(err)
		s.recorder.Failed(kind.String(), elapsed)
		s.logger.Warn("simplification failed",
			zap.String("expression", expr),
			zap.Stringer("kind", kind),
			zap.Error(err))
		s.writeJSON(w, http.StatusOK, simulationResponse{Error: err.Error(), Kind: kind.String()})
		return
	}

	s.recorder.Succeeded(len(res.PrimeImplicants), elapsed)
	s.logger.Info("simplified",
		zap.String("expression", expr),
		zap.String("simplified", res.SimplifiedExpression),
		zap.Int("primeImplicants", len(res.PrimeImplicants)),
		zap.Duration("elapsed", elapsed))

	primes := make([]string, len(res.PrimeImplicants))
	for i, p := range res.PrimeImplicants {
		primes[i] = string(p)
	}
	s.writeJSON(w, http.StatusOK, simulationResponse{
		Success:         true,
		BinaryInput:     strings.Join(res.InputMinterms, ", "),
		Result:          res.Summary(),
		Variables:       res.Variables.String(),
		PrimeImplicants: primes,
		Simplified:      &res.SimplifiedExpression,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}
