package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event as a debug line. It implements all hook
// interfaces so one value can be registered for each.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load start", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("load complete", "source", source, "records", records, "duration", d)
}

func (h *LogHooks) OnPaintStart(_ context.Context, shape string, records int) {
	h.logger.Debug("paint start", "shape", shape, "records", records)
}

func (h *LogHooks) OnPaintComplete(_ context.Context, shape string, shapes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("paint failed", "shape", shape, "error", err)
		return
	}
	h.logger.Debug("paint complete", "shape", shape, "shapes", shapes, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Error("request failed", "method", method, "path", path, "error", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
