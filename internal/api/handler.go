package api

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/valyala/fasthttp"
)

const (
	pathAnalysis   = "/v1/analysis"
	pathParameters = "/v1/parameters"
	pathHealth     = "/healthz"
)

// Handler serves the pension API over fasthttp
type Handler struct {
	Engine    *calculation.PensionEngine
	Validator *config.InputParser
	Logger    calculation.Logger
}

// NewHandler creates a handler around engine; a nil logger discards output
func NewHandler(engine *calculation.PensionEngine, logger calculation.Logger) *Handler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Handler{
		Engine:    engine,
		Validator: config.NewInputParser(),
		Logger:    logger,
	}
}

// Handle routes one request. Its signature matches fasthttp.RequestHandler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case pathAnalysis:
		if !ctx.IsPost() {
			h.methodNotAllowed(ctx, fasthttp.MethodPost)
			break
		}
		h.handleAnalysis(ctx)
	case pathParameters:
		if !ctx.IsGet() {
			h.methodNotAllowed(ctx, fasthttp.MethodGet)
			break
		}
		writeJSON(ctx, fasthttp.StatusOK, h.Engine.Params)
	case pathHealth:
		writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+string(ctx.Path()))
	}

	h.Logger.Infof("%s %s %d %s", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), time.Since(start))
}

func (h *Handler) handleAnalysis(ctx *fasthttp.RequestCtx) {
	var req AnalysisRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, now, err := req.Profile()
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	if err := h.Validator.ValidateProfile(&profile, &h.Engine.Params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	if now.IsZero() {
		now = h.Engine.Now()
	}
	writeJSON(ctx, fasthttp.StatusOK, h.Engine.AnalyzeAt(profile, now))
}

func (h *Handler) methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	ctx.Response.Header.Set(fasthttp.HeaderAllow, allow)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
