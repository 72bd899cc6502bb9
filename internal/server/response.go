package server

import (
	"errors"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/lifebridge/lifebridge/internal/compare"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/recommend"
	"github.com/lifebridge/lifebridge/internal/store"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status   int      `json:"status"`
	Message  string   `json:"message"`
	Problems []string `json:"problems,omitempty"`
}

// SimulateResponse is returned by /simulate and /profiles/{id}/simulation
type SimulateResponse struct {
	ProfileID       string                     `json:"profileId,omitempty"`
	Name            string                     `json:"name,omitempty"`
	Result          *domain.SimulationResult   `json:"result"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// CompareRequest is the body accepted by /compare
type CompareRequest struct {
	Scenario1 *domain.UserProfile `json:"scenario1"`
	Scenario2 *domain.UserProfile `json:"scenario2"`
}

// CompareResponse is returned by /compare
type CompareResponse struct {
	Scenario1  domain.SimulationResult `json:"scenario1"`
	Scenario2  domain.SimulationResult `json:"scenario2"`
	Difference decimal.Decimal         `json:"difference"`
	Deltas     []compare.BenefitDelta  `json:"deltas"`
}

// SaveProfileRequest is the body accepted by POST /profiles
type SaveProfileRequest struct {
	ID      string              `json:"id,omitempty"`
	Name    string              `json:"name"`
	Profile *domain.UserProfile `json:"profile"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeErrorResponse(ctx, ErrorResponse{Status: status, Message: message})
}

func writeErrorResponse(ctx *fasthttp.RequestCtx, resp ErrorResponse) {
	body, _ := json.Marshal(resp)
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(resp.Status)
	ctx.SetBody(body)
}

// writeDomainError maps engine and store errors to HTTP statuses
func writeDomainError(ctx *fasthttp.RequestCtx, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeErrorResponse(ctx, ErrorResponse{
			Status:   fasthttp.StatusBadRequest,
			Message:  err.Error(),
			Problems: verr.Problems,
		})
	case errors.Is(err, domain.ErrInvalidProfile):
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
	default:
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
	}
}

func sortedMethods(methods []string) []string {
	sort.Strings(methods)
	return methods
}
