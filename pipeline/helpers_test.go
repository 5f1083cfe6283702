package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/solarlune/wireframe"
)

// testViewport records every pixel written to it.
type testViewport struct {
	w, h   int
	bg     wireframe.Color
	pixels map[[2]int]wireframe.Color
	writes int
}

func newTestViewport(w, h int) *testViewport {
	return &testViewport{
		w:      w,
		h:      h,
		bg:     wireframe.NewColorRGB(0, 0, 0),
		pixels: map[[2]int]wireframe.Color{},
	}
}

func (vp *testViewport) Width() int                       { return vp.w }
func (vp *testViewport) Height() int                      { return vp.h }
func (vp *testViewport) BackgroundColor() wireframe.Color { return vp.bg }

func (vp *testViewport) SetPixel(x, y int, color wireframe.Color) {
	vp.pixels[[2]int{x, y}] = color
	vp.writes++
}

func (vp *testViewport) pixel(x, y int) (wireframe.Color, bool) {
	c, ok := vp.pixels[[2]int{x, y}]
	return c, ok
}

// recordHandler keeps every log record at or above its level.
type recordHandler struct {
	level   slog.Level
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(_ context.Context, level slog.Level) bool { return level >= h.level }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) messages(level slog.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := []string{}
	for _, r := range h.records {
		if r.Level == level {
			msgs = append(msgs, r.Message)
		}
	}
	return msgs
}

// captureLogs routes the package logger into a recordHandler until the returned function is called.
func captureLogs(level slog.Level) (*recordHandler, func()) {
	h := &recordHandler{level: level}
	wireframe.SetLogger(slog.New(h))
	return h, func() { wireframe.SetLogger(nil) }
}

var (
	red  = wireframe.NewColorRGB(1, 0, 0)
	blue = wireframe.NewColorRGB(0, 0, 1)
)

// newSegment returns a Model holding a single red-to-blue LineSegment between the two vertices.
func newSegment(v0, v1 wireframe.Vertex) *wireframe.Model {
	model := wireframe.NewModel("segment")
	model.AddVertex(v0, v1)
	model.AddColor(red, blue)
	model.AddPrimitive(wireframe.NewLineSegment(0, 1))
	return model
}
