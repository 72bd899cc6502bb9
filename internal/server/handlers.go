package server

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/lifebridge/lifebridge/internal/compare"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/recommend"
	"github.com/lifebridge/lifebridge/internal/store"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBenefits(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, domain.Catalogue)
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	var profile domain.UserProfile
	if !decodeBody(ctx, &profile) {
		return
	}

	result, err := s.engine.SimulateChecked(profile)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, SimulateResponse{
		Result:          result,
		Recommendations: recommend.Build(result),
	})
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var req CompareRequest
	if !decodeBody(ctx, &req) {
		return
	}
	if req.Scenario1 == nil || req.Scenario2 == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "both scenario1 and scenario2 are required")
		return
	}

	cmp, err := s.engine.CompareChecked(*req.Scenario1, *req.Scenario2)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, CompareResponse{
		Scenario1:  cmp.Scenario1,
		Scenario2:  cmp.Scenario2,
		Difference: cmp.Difference,
		Deltas:     compare.CalculateDeltas(&cmp.Scenario1, &cmp.Scenario2),
	})
}

func (s *Server) handleListProfiles(ctx *fasthttp.RequestCtx) {
	if !s.requireStore(ctx) {
		return
	}
	profiles, err := s.store.List(ctx)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, profiles)
}

func (s *Server) handleSaveProfile(ctx *fasthttp.RequestCtx) {
	if !s.requireStore(ctx) {
		return
	}
	var req SaveProfileRequest
	if !decodeBody(ctx, &req) {
		return
	}
	if req.Profile == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "profile is required")
		return
	}

	saved, err := s.store.Save(ctx, store.StoredProfile{ID: req.ID, Name: req.Name, Profile: *req.Profile})
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	s.logger.Debug("profile saved", zap.String("id", saved.ID))

	status := fasthttp.StatusCreated
	if req.ID != "" {
		status = fasthttp.StatusOK
	}
	writeJSON(ctx, status, saved)
}

func (s *Server) handleGetProfile(ctx *fasthttp.RequestCtx) {
	if !s.requireStore(ctx) {
		return
	}
	p, err := s.store.Get(ctx, profileID(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, p)
}

func (s *Server) handleDeleteProfile(ctx *fasthttp.RequestCtx) {
	if !s.requireStore(ctx) {
		return
	}
	if err := s.store.Delete(ctx, profileID(ctx)); err != nil {
		writeDomainError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *Server) handleProfileSimulation(ctx *fasthttp.RequestCtx) {
	if !s.requireStore(ctx) {
		return
	}
	p, err := s.store.Get(ctx, profileID(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	result, err := s.engine.SimulateChecked(p.Profile)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, SimulateResponse{
		ProfileID:       p.ID,
		Name:            p.Name,
		Result:          result,
		Recommendations: recommend.Build(result),
	})
}

func (s *Server) requireStore(ctx *fasthttp.RequestCtx) bool {
	if s.store == nil {
		writeError(ctx, fasthttp.StatusNotFound, "profile storage is not configured")
		return false
	}
	return true
}

func profileID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

func decodeBody(ctx *fasthttp.RequestCtx, v any) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "request body is required")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}
