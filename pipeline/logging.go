package pipeline

import (
	"context"
	"log/slog"

	"github.com/solarlune/wireframe"
)

// stageLog writes the pipeline's diagnostics. Debug output (stage dumps, clipping decisions, pixel writes)
// is only produced when debug is set; warnings are always passed on to the package logger.
type stageLog struct {
	logger *slog.Logger
	debug  bool
}

func newStageLog(debug bool) stageLog {
	logger := wireframe.Logger()
	return stageLog{
		logger: logger,
		debug:  debug && logger.Enabled(context.Background(), slog.LevelDebug),
	}
}

// defaultStageLog is used by the exported stage functions when they're called outside of Render; it logs
// stage diagnostics whenever the package logger accepts debug records.
func defaultStageLog() stageLog {
	return newStageLog(true)
}

func (l stageLog) message(msg string, args ...any) {
	if l.debug {
		l.logger.Debug(msg, args...)
	}
}

func (l stageLog) warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l stageLog) vertices(stage string, model *wireframe.Model) {
	if !l.debug {
		return
	}
	for i, v := range model.Vertices {
		l.logger.Debug(stage, "model", model.Name, "vIndex", i, "vertex", v.String())
	}
}

func (l stageLog) colors(stage string, model *wireframe.Model) {
	if !l.debug {
		return
	}
	for i, c := range model.Colors {
		l.logger.Debug(stage, "model", model.Name, "cIndex", i, "color", c.String())
	}
}

func (l stageLog) primitives(stage string, model *wireframe.Model) {
	if !l.debug {
		return
	}
	if len(model.Primitives) == 0 {
		l.logger.Debug(stage, "model", model.Name, "primitives", "[]")
		return
	}
	for _, p := range model.Primitives {
		l.logger.Debug(stage, "model", model.Name, "primitive", p.String())
	}
}

// model dumps all three of a Model's lists.
func (l stageLog) model(stage string, model *wireframe.Model) {
	l.vertices(stage, model)
	l.colors(stage, model)
	l.primitives(stage, model)
}

func (l stageLog) pixel(xpp, ypp float64, xvp, yvp int, color wireframe.Color, clipped bool) {
	if !l.debug {
		return
	}
	l.logger.Debug("pixel",
		"x_pp", xpp, "y_pp", ypp,
		"x_vp", xvp, "y_vp", yvp,
		"r", color.R, "g", color.G, "b", color.B,
		"clipped", clipped,
	)
}
