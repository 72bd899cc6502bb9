package server

import (
	"bufio"
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreCurrent(),
		// fasthttp's package-level date ticker never stops
		goleak.IgnoreTopFunction("github.com/valyala/fasthttp.updateServerDate.func1"),
		// the worker pool cleaner finishes its sleep after Shutdown returns
		goleak.IgnoreTopFunction("github.com/valyala/fasthttp.(*workerPool).Start.func2"),
	)
}

const familyJSON = `{
	"annualIncome": "4800000",
	"employmentStatus": ["employed"],
	"hasSpouse": true,
	"numberOfChildren": 2,
	"childrenAges": [1, 4],
	"isTakingMaternityLeave": true
}`

func newTestServer() *Server {
	return New(calculation.NewCalculationEngine(), store.NewMemoryStore(), nil)
}

func do(s *Server, method, path, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.SetBodyString(body)
	}
	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.Handler()(&ctx)
	return &ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), v), string(ctx.Response.Body()))
}

func TestHealthAndBenefits(t *testing.T) {
	s := newTestServer()

	ctx := do(s, fasthttp.MethodGet, "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))

	ctx = do(s, fasthttp.MethodGet, "/benefits", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var entries []domain.CatalogueEntry
	decode(t, ctx, &entries)
	assert.Equal(t, domain.Catalogue, entries)
}

func TestSimulate(t *testing.T) {
	s := newTestServer()

	ctx := do(s, fasthttp.MethodPost, "/simulate", familyJSON)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var resp SimulateResponse
	decode(t, ctx, &resp)
	require.NotNil(t, resp.Result)
	assert.Len(t, resp.Result.Benefits, 5)
	// 500000 once + (25000 + 234000) monthly * 12 + 60000 yearly
	assert.Equal(t, "3668000", resp.Result.TotalBenefits.String())
	assert.NotEmpty(t, resp.Recommendations)
	assert.Contains(t, string(ctx.Response.Body()), `"totalBenefits":3668000`, "money is sent as JSON numbers")
}

func TestSimulate_BadRequests(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantProblem bool
	}{
		{"empty body", "", "request body is required", false},
		{"malformed json", "{not json", "invalid request body", false},
		{"invalid profile", `{"annualIncome":"-1","employmentStatus":[]}`, "invalid profile", true},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, fasthttp.MethodPost, "/simulate", tt.body)
			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

			var resp ErrorResponse
			decode(t, ctx, &resp)
			assert.Equal(t, fasthttp.StatusBadRequest, resp.Status)
			assert.Contains(t, resp.Message, tt.wantMessage)
			if tt.wantProblem {
				assert.NotEmpty(t, resp.Problems)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	s := newTestServer()

	body := `{
		"scenario1": {"annualIncome":"3600000","employmentStatus":["employed"],"numberOfChildren":0,"childrenAges":[]},
		"scenario2": {"annualIncome":"3600000","employmentStatus":["unemployed"],"numberOfChildren":0,"childrenAges":[]}
	}`
	ctx := do(s, fasthttp.MethodPost, "/compare", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var resp CompareResponse
	decode(t, ctx, &resp)
	// 300000/30*0.6*30 = 180000 a month, counted twelve times
	assert.Equal(t, "2160000", resp.Difference.String())
	require.Len(t, resp.Deltas, 5)
	assert.Equal(t, domain.BenefitUnemployment, resp.Deltas[3].ID)
	assert.True(t, resp.Deltas[3].EligibleAfter)

	ctx = do(s, fasthttp.MethodPost, "/compare", `{"scenario1":{}}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestProfilesLifecycle(t *testing.T) {
	s := newTestServer()

	ctx := do(s, fasthttp.MethodPost, "/profiles", `{"name":"tanaka","profile":`+familyJSON+`}`)
	require.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	var saved store.StoredProfile
	decode(t, ctx, &saved)
	require.NotEmpty(t, saved.ID)

	ctx = do(s, fasthttp.MethodGet, "/profiles", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var list []store.StoredProfile
	decode(t, ctx, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "tanaka", list[0].Name)

	ctx = do(s, fasthttp.MethodGet, "/profiles/"+saved.ID, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = do(s, fasthttp.MethodGet, "/profiles/"+saved.ID+"/simulation", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var sim SimulateResponse
	decode(t, ctx, &sim)
	assert.Equal(t, saved.ID, sim.ProfileID)
	assert.Equal(t, "3668000", sim.Result.TotalBenefits.String())

	ctx = do(s, fasthttp.MethodDelete, "/profiles/"+saved.ID, "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(s, fasthttp.MethodGet, "/profiles/"+saved.ID, "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(s, fasthttp.MethodPost, "/profiles", `{"name":"bad","profile":{"annualIncome":"-5","employmentStatus":["employed"]}}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestRouting(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		method, path string
		want         int
		allow        string
	}{
		{fasthttp.MethodGet, "/nope", fasthttp.StatusNotFound, ""},
		{fasthttp.MethodGet, "/simulate", fasthttp.StatusMethodNotAllowed, "POST"},
		{fasthttp.MethodPut, "/profiles", fasthttp.StatusMethodNotAllowed, "GET, POST"},
		{fasthttp.MethodPost, "/profiles/abc", fasthttp.StatusMethodNotAllowed, "DELETE, GET"},
		{fasthttp.MethodGet, "/profiles/a/b", fasthttp.StatusNotFound, ""},
		{fasthttp.MethodGet, "/profiles/missing/simulation", fasthttp.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ctx := do(s, tt.method, tt.path, "")
			assert.Equal(t, tt.want, ctx.Response.StatusCode())
			if tt.allow != "" {
				assert.Equal(t, tt.allow, string(ctx.Response.Header.Peek("Allow")))
			}
		})
	}
}

func TestNoStoreConfigured(t *testing.T) {
	s := New(nil, nil, nil)
	ctx := do(s, fasthttp.MethodGet, "/profiles", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := New(nil, store.NewMemoryStore(), zap.New(core))

	do(s, fasthttp.MethodGet, "/healthz", "")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, fasthttp.StatusOK, fields["status"])
}

func TestServe_EndToEnd(t *testing.T) {
	sqlite, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	defer sqlite.Close()

	s := New(nil, sqlite, nil)
	ln := fasthttputil.NewInmemoryListener()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	conn, err := ln.Dial()
	require.NoError(t, err)

	_, err = conn.Write([]byte("POST /profiles HTTP/1.1\r\nHost: test\r\nContent-Type: application/json\r\nConnection: close\r\n" +
		"Content-Length: " + strconv.Itoa(len(`{"name":"e2e","profile":`+familyJSON+`}`)) + "\r\n\r\n" +
		`{"name":"e2e","profile":` + familyJSON + `}`))
	require.NoError(t, err)

	var resp fasthttp.Response
	require.NoError(t, resp.Read(bufio.NewReader(conn)))
	assert.Equal(t, fasthttp.StatusCreated, resp.StatusCode(), string(resp.Body()))
	conn.Close()

	list, err := sqlite.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1, "Should persist through the SQLite store")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
