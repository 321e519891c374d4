package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/difficulty"
	"github.com/boostpow/boostpub/internal/pricing"
	"github.com/boostpow/boostpub/internal/props"
	"github.com/boostpow/boostpub/internal/search"
)

// RankResponse is returned by /api/rank.
type RankResponse struct {
	Difficulty  float64 `json:"difficulty"`
	Rank        int     `json:"rank"`
	HasRankData bool    `json:"hasRankData"`
}

// ClampResponse is returned by /api/clamp.
type ClampResponse struct {
	Value float64 `json:"value"`
}

func propsHandler(a *props.Assembler, base props.Props, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := propsFromQuery(base, r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		ctx := search.WithPurpose(r.Context(), "api.props")
		out, err := a.Prepare(ctx, p)
		if err != nil {
			writeSearchError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func rankHandler(a *props.Assembler, base props.Props, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		d, err := requiredFloat(q, "difficulty")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := propsFromQuery(base, q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		ctx := search.WithPurpose(r.Context(), "api.rank")
		list, err := a.Signals(ctx, p.BoostRank)
		if err != nil {
			writeSearchError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, RankResponse{
			Difficulty:  d,
			Rank:        boost.RankOf(list, d),
			HasRankData: boost.HasRankData(list),
		})
	}
}

func marksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lo, hi, err := bounds(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		step, err := optionalInt(q, "step", 1)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		margin, err := optionalFloat(q, "margin", difficulty.DefaultMarginRate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := difficulty.CheckRange(lo, hi, step); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, difficulty.SliderMarks(lo, hi, step, margin))
	}
}

func optionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lo, hi, err := bounds(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		step, err := optionalInt(q, "step", 1)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := difficulty.CheckRange(lo, hi, step); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, difficulty.Options(lo, hi, step))
	}
}

func quoteHandler(cfg pricing.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := requiredFloat(r.URL.Query(), "difficulty")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		q, err := cfg.Quote(d)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

func clampHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		v, err := requiredFloat(q, "value")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		lo, hi, err := bounds(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, ClampResponse{Value: difficulty.Clamp(v, lo, hi)})
	}
}

// propsFromQuery overlays request parameters on a clone of base.
func propsFromQuery(base props.Props, q url.Values) (props.Props, error) {
	p := base.Clone()

	var err error
	if p.BoostRank.Hours, err = optionalFloat(q, "hours", p.BoostRank.Hours); err != nil {
		return p, err
	}
	if p.Diff.MaxDiffInc, err = optionalFloat(q, "maxDiffInc", p.Diff.MaxDiffInc); err != nil {
		return p, err
	}
	if p.BoostRank.Limit, err = optionalInt(q, "limit", p.BoostRank.Limit); err != nil {
		return p, err
	}
	if q.Has("tag") {
		p.BoostRank.Tag = q.Get("tag")
	}
	if q.Has("category") {
		p.BoostRank.Category = q.Get("category")
	}
	if q.Has("content") {
		p.BoostRank.Content = q.Get("content")
	}
	if q.Has("rankMarkers") {
		req, err := props.ParseRankMarkers(q.Get("rankMarkers"))
		if err != nil {
			return p, err
		}
		p.Slider.RankMarkers = req
	}
	return p, nil
}

func bounds(q url.Values) (float64, float64, error) {
	lo, err := requiredFloat(q, "min")
	if err != nil {
		return 0, 0, err
	}
	hi, err := requiredFloat(q, "max")
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func requiredFloat(q url.Values, name string) (float64, error) {
	if !q.Has(name) {
		return 0, fmt.Errorf("%s is required", name)
	}
	return optionalFloat(q, name, 0)
}

func optionalFloat(q url.Values, name string, def float64) (float64, error) {
	s := strings.TrimSpace(q.Get(name))
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !difficulty.IsFinite(v) {
		return 0, fmt.Errorf("%s: %q is not a finite number", name, s)
	}
	return v, nil
}

func optionalInt(q url.Values, name string, def int) (int, error) {
	s := strings.TrimSpace(q.Get(name))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v, nil
}

type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v before committing the status, so an encoding failure
// becomes a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorBody{Error: fmt.Sprintf("encode response: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// writeSearchError maps upstream search failures onto HTTP statuses.
func writeSearchError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var (
		rl       *search.ErrRateLimit
		rejected *search.ErrRequestRejected
	)
	status := http.StatusBadGateway
	switch {
	case errors.As(err, &rl):
		status = http.StatusServiceUnavailable
		if rl.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
		}
	case errors.As(err, &rejected):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	logger.Warn("search request failed", zap.Int("status", status), zap.Error(err))
	writeError(w, status, err)
}
