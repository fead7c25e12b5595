package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/midori-advisory/finplan-cli/internal/debtcap"
	"github.com/midori-advisory/finplan-cli/internal/indicator"
	"github.com/midori-advisory/finplan-cli/internal/simulate"
	"github.com/midori-advisory/finplan-cli/internal/statement"
	"github.com/midori-advisory/finplan-cli/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndicators reports the four indicator families plus the simple
// graded ratios for one company year. When the prior year is stored (or
// named with ?prev_year=) the report carries YoY grades as well.
func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := chi.URLParam(r, "id")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	snap, err := s.store.GetSnapshot(ctx, companyID, year)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no snapshot for %s/%d", companyID, year))
			return
		}
		writeError(w, http.StatusInternalServerError, "snapshot lookup failed")
		zap.L().Error("get snapshot", zap.Error(err))
		return
	}

	prevYear := year - 1
	prevRequired := false
	if q := r.URL.Query().Get("prev_year"); q != "" {
		prevYear, err = strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "prev_year must be a year")
			return
		}
		prevRequired = true
	}

	var prev *indicator.Figures
	prevSnap, err := s.store.GetSnapshot(ctx, companyID, prevYear)
	switch {
	case err == nil:
		f := figures(*prevSnap)
		prev = &f
	case errors.Is(err, store.ErrSnapshotNotFound) && !prevRequired:
		// No prior year stored; report without comparisons.
	case errors.Is(err, store.ErrSnapshotNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("no snapshot for %s/%d", companyID, prevYear))
		return
	default:
		writeError(w, http.StatusInternalServerError, "snapshot lookup failed")
		zap.L().Error("get snapshot", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, indicatorsResponse{
		CompanyID:  companyID,
		FiscalYear: year,
		Families:   indicator.Calculate(figures(*snap), prev),
		Ratios:     indicator.SimpleRatios(*snap),
	})
}

// handleProjection returns the projection a prior simulate run saved for
// the company's base year.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := chi.URLParam(r, "id")

	baseYear, err := strconv.Atoi(r.URL.Query().Get("base_year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "base_year query parameter is required")
		return
	}

	result, err := s.store.GetProjection(ctx, companyID, baseYear)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "projection lookup failed")
		zap.L().Error("get projection", zap.Error(err))
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no projection for %s/%d", companyID, baseYear))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type indicatorsResponse struct {
	CompanyID  string             `json:"company_id"`
	FiscalYear int                `json:"fiscal_year"`
	Families   indicator.Families `json:"families"`
	Ratios     indicator.RatioSet `json:"ratios"`
}

func figures(s statement.Snapshot) indicator.Figures {
	pl := statement.RestructurePL(s, statement.Detail{})
	bs := statement.RestructureBS(s, statement.Detail{})
	return indicator.FiguresFrom(s, pl, bs)
}

type restructureRequest struct {
	Snapshot statement.Snapshot `json:"snapshot"`
	Detail   statement.Detail   `json:"detail"`
}

type restructureResponse struct {
	PL         statement.RestructuredPL       `json:"pl"`
	BS         statement.RestructuredBS       `json:"bs"`
	AddedValue statement.AddedValueComponents `json:"added_value"`
}

func (s *Server) handleRestructure(w http.ResponseWriter, r *http.Request) {
	var req restructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap := req.Snapshot.Normalized()
	pl := statement.RestructurePL(snap, req.Detail)
	writeJSON(w, http.StatusOK, restructureResponse{
		PL:         pl,
		BS:         statement.RestructureBS(snap, req.Detail),
		AddedValue: statement.AddedValue(pl),
	})
}

// simulateRequest runs the projection for a stored company: the base-year
// snapshot and the integrated plan must both have been saved beforehand.
type simulateRequest struct {
	CompanyID    string               `json:"company_id"`
	BaseYear     int                  `json:"base_year"`
	ExistingDebt float64              `json:"existing_debt"`
	Assumptions  simulate.Assumptions `json:"assumptions"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CompanyID == "" || req.BaseYear == 0 {
		writeError(w, http.StatusBadRequest, "company_id and base_year are required")
		return
	}

	snap, err := s.store.GetSnapshot(ctx, req.CompanyID, req.BaseYear)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no snapshot for %s/%d", req.CompanyID, req.BaseYear))
			return
		}
		writeError(w, http.StatusInternalServerError, "snapshot lookup failed")
		zap.L().Error("get snapshot", zap.Error(err))
		return
	}

	p, err := s.store.GetPlan(ctx, req.CompanyID, req.BaseYear)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "plan lookup failed")
		zap.L().Error("get plan", zap.Error(err))
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no plan for %s/%d", req.CompanyID, req.BaseYear))
		return
	}

	base := simulate.BaseFromSnapshot(*snap, req.ExistingDebt)
	result := simulate.Run(base, *p, s.withDefaults(req.Assumptions))
	writeJSON(w, http.StatusOK, result)
}

// withDefaults fills unset assumption rates from the configured defaults.
func (s *Server) withDefaults(a simulate.Assumptions) simulate.Assumptions {
	if len(a.SalesGrowthRates) == 0 {
		a.SalesGrowthRates = []float64{s.defaults.SalesGrowthRatePct}
	}
	if len(a.CostOfSalesRatios) == 0 && s.defaults.CostOfSalesRatioPct > 0 {
		a.CostOfSalesRatios = []float64{s.defaults.CostOfSalesRatioPct}
	}
	if len(a.SGARatios) == 0 && s.defaults.SGARatioPct > 0 {
		a.SGARatios = []float64{s.defaults.SGARatioPct}
	}
	if a.TaxRate == 0 {
		a.TaxRate = s.defaults.TaxRate
	}
	return a
}

type debtCapacityRequest struct {
	CompanyID  string `json:"company_id,omitempty"`
	FiscalYear int    `json:"fiscal_year,omitempty"`

	Snapshot       *statement.Snapshot `json:"snapshot,omitempty"`
	AnnualCashFlow float64             `json:"annual_cash_flow"`

	TargetEquityRatio      float64 `json:"target_equity_ratio,omitempty"`
	CollateralRatio        float64 `json:"collateral_ratio,omitempty"`
	InterestBurdenRatio    float64 `json:"interest_burden_ratio,omitempty"`
	AverageInterestRatePct float64 `json:"average_interest_rate_pct,omitempty"`
}

// handleDebtCapacity runs the four lending-capacity analyses for either an
// inline snapshot or a stored company year.
func (s *Server) handleDebtCapacity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req debtCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap := req.Snapshot
	if snap == nil {
		if req.CompanyID == "" || req.FiscalYear == 0 {
			writeError(w, http.StatusBadRequest, "either snapshot or company_id and fiscal_year are required")
			return
		}
		var err error
		snap, err = s.store.GetSnapshot(ctx, req.CompanyID, req.FiscalYear)
		if err != nil {
			if errors.Is(err, store.ErrSnapshotNotFound) {
				writeError(w, http.StatusNotFound, fmt.Sprintf("no snapshot for %s/%d", req.CompanyID, req.FiscalYear))
				return
			}
			writeError(w, http.StatusInternalServerError, "snapshot lookup failed")
			zap.L().Error("get snapshot", zap.Error(err))
			return
		}
	}

	target := req.TargetEquityRatio
	if target == 0 {
		target = s.defaults.TargetEquityRatio
	}
	collateral := req.CollateralRatio
	if collateral == 0 {
		collateral = s.defaults.CollateralRatio
	}

	report := debtcap.Analyze(debtcap.Inputs{
		Snapshot:               *snap,
		AnnualCashFlow:         req.AnnualCashFlow,
		TargetEquityRatio:      target,
		CollateralRatio:        collateral,
		InterestBurdenRatio:    req.InterestBurdenRatio,
		AverageInterestRatePct: req.AverageInterestRatePct,
	})
	writeJSON(w, http.StatusOK, report)
}
