// Package httpapi serves the snapshot to dashboard consumers over HTTP.
// Every request recomputes the snapshot from the store's current contents;
// staleness between trigger and read is acceptable by contract.
package httpapi

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/usecase/snapshot"
)

// Server routes the dashboard API.
type Server struct {
	Snapshots *snapshot.Service
}

// NewServer creates a new HTTP adapter over the snapshot service.
func NewServer(snapshots *snapshot.Service) *Server {
	return &Server{Snapshots: snapshots}
}

// Handler is the fasthttp entry point.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		s.handleHealth(ctx)
	case "/v1/snapshot":
		s.handleSnapshot(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSnapshot(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := s.Snapshots.Compute(ctx)
	zap.L().Info("httpapi: snapshot served",
		zap.String("snapshot_id", snap.ID),
		zap.Int("stage", snap.Stage.Seq),
		zap.String("overall_grade", string(snap.Grades.Overall.Code)),
	)
	writeJSON(ctx, fasthttp.StatusOK, snap)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("httpapi: marshal response", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, map[string]any{"status": status, "message": message})
}
