package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"advice-engine/internal/model"
)

func writeJSON(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Error:     fasthttp.StatusMessage(status),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Success:   false,
	})
}
