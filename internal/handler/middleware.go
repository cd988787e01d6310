package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"advice-engine/internal/metrics"
)

// Router assembles the middleware chain around the route dispatcher.
func (h *Handler) Router() fasthttp.RequestHandler {
	return h.recoverPanic(h.cors(h.rateLimit(h.instrument(h.route))))
}

func (h *Handler) recoverPanic(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if r := recover(); r != nil {
				h.log.Error("panic while handling request",
					zap.Any("panic", r),
					zap.ByteString("path", ctx.Path()),
				)
				ctx.ResetBody()
				writeError(ctx, fasthttp.StatusInternalServerError, "internal server error")
			}
		}()
		next(ctx)
	}
}

func (h *Handler) cors(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		origin := string(ctx.Request.Header.Peek("Origin"))
		if allowed := h.allowOrigin(origin); allowed != "" {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", allowed)
			ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}
		next(ctx)
	}
}

func (h *Handler) allowOrigin(origin string) string {
	for _, o := range h.cfg.Server.CORSOrigins {
		if o == "*" {
			return "*"
		}
		if o == origin {
			return origin
		}
	}
	return ""
}

func (h *Handler) rateLimit(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !h.limiter.Allow(ctx, ctx.RemoteIP().String()) {
			metrics.RateLimitedTotal.Inc()
			writeError(ctx, fasthttp.StatusTooManyRequests, "rate limit exceeded, retry later")
			return
		}
		next(ctx)
	}
}

func (h *Handler) instrument(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		elapsed := time.Since(start)

		status := ctx.Response.StatusCode()
		route := routePattern(string(ctx.Path()))
		if status == fasthttp.StatusNotFound {
			// Unknown paths share one label to bound metric cardinality.
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(route, string(ctx.Method()), strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		h.log.Info("request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)
	}
}

var paramRoutes = []string{
	"/daily-tips/",
	"/recommendations/",
	"/wellness-plan/",
	"/financial-advice/",
}

func routePattern(path string) string {
	for _, prefix := range paramRoutes {
		if strings.HasPrefix(path, prefix) {
			return prefix + ":param"
		}
	}
	return path
}
