// Package pipeline renders a wireframe.Scene into a Viewport.
//
// Rendering walks the Scene's Positions from each root down, accumulating each Position's matrix into a
// current transformation matrix, and passes every visible Model it meets through six stages in order:
//
//	ModelToView -> ViewToCamera -> NearClip -> Project -> Clip -> Rasterize
//
// Each stage is a function of its input alone and returns a new Model (or, for Rasterize, writes pixels);
// nothing a caller passes in is modified.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/solarlune/wireframe"
)

// Errors returned by Render when it has nothing to draw with.
var (
	ErrNilScene    = errors.New("pipeline: nil scene")
	ErrNilCamera   = errors.New("pipeline: scene has no camera")
	ErrNilViewport = errors.New("pipeline: nil viewport")
)

// Render draws the Scene into the Viewport using the given options. Only visible Positions are drawn; an
// invisible Position hides its own Model and everything nested beneath it, no matter what those nested
// Positions' own visibility is.
//
// A Model with vertices but no colors is drawn as though every vertex were wireframe.DefaultColor; a
// warning is logged once per Model per call. The Model itself is not changed.
//
// Render always draws everything it can. Problems that cause geometry to be skipped (each primitive with an
// out-of-range index, as a *wireframe.StructuralError, and each Position found nested within itself,
// wrapping wireframe.ErrCycle) are joined together into the returned error.
func Render(scene *wireframe.Scene, vp Viewport, options RenderOptions) error {

	if scene == nil {
		return ErrNilScene
	}

	if scene.Camera == nil {
		return ErrNilCamera
	}

	if vp == nil {
		return ErrNilViewport
	}

	r := &renderer{
		scene:         scene,
		vp:            vp,
		options:       options,
		onPath:        map[*wireframe.Position]bool{},
		defaultColors: map[*wireframe.Model]*wireframe.Model{},
	}

	log := newStageLog(scene.Debug)
	log.message("begin rendering scene", "scene", scene.Name)

	for _, position := range scene.Positions {
		if position == nil {
			continue
		}
		if position.Visible {
			r.renderPosition(position, wireframe.NewMatrix4())
		} else {
			log.message("hidden position", "position", position.Name)
		}
	}

	log.message("end rendering scene", "scene", scene.Name)

	return errors.Join(r.errs...)

}

// RenderPosition draws a single Position (and the Positions nested beneath it) as though it were a root of
// the Scene, starting from the given transformation matrix. The Position's own visibility is not checked.
func RenderPosition(scene *wireframe.Scene, position *wireframe.Position, ctm wireframe.Matrix4, vp Viewport, options RenderOptions) error {

	if scene == nil {
		return ErrNilScene
	}

	if scene.Camera == nil {
		return ErrNilCamera
	}

	if vp == nil {
		return ErrNilViewport
	}

	r := &renderer{
		scene:         scene,
		vp:            vp,
		options:       options,
		onPath:        map[*wireframe.Position]bool{},
		defaultColors: map[*wireframe.Model]*wireframe.Model{},
	}

	if position != nil {
		r.renderPosition(position, ctm)
	}

	return errors.Join(r.errs...)

}

type renderer struct {
	scene   *wireframe.Scene
	vp      Viewport
	options RenderOptions
	errs    []error

	// The Positions on the path from the current root down to the Position being drawn. AddChildren and
	// SetChild already refuse cycles, so this only catches graphs built some other way.
	onPath map[*wireframe.Position]bool

	// Working copies of Models that needed default colors, so each is only repaired (and warned about) once.
	defaultColors map[*wireframe.Model]*wireframe.Model
}

func (r *renderer) renderPosition(position *wireframe.Position, ctm wireframe.Matrix4) {

	if r.onPath[position] {
		r.errs = append(r.errs, fmt.Errorf("position %q is nested within itself: %w", position.Name, wireframe.ErrCycle))
		return
	}

	r.onPath[position] = true
	defer delete(r.onPath, position)

	log := newStageLog(r.scene.Debug || position.Debug)

	log.message("render position", "position", position.Name, "hasModel", position.Model != nil)
	log.message("transformation matrix", "position", position.Name, "matrix", position.Matrix.String())

	ctm = ctm.Mult(position.Matrix)

	if model := position.Model; model != nil {
		if model.Visible {
			r.renderModel(position, model, ctm, log)
		} else {
			log.message("hidden model", "position", position.Name, "model", model.Name)
		}
	}

	for _, child := range position.Children() {
		if child == nil {
			continue
		}
		if child.Visible {
			r.renderPosition(child, ctm)
		} else {
			log.message("hidden position", "position", child.Name, "parent", position.Name)
		}
	}

}

func (r *renderer) renderModel(position *wireframe.Position, model *wireframe.Model, ctm wireframe.Matrix4, log stageLog) {

	camera := r.scene.Camera

	log.message("render model", "model", model.Name)

	for _, problem := range model.Check() {
		log.message("model check", "model", model.Name, "problem", problem)
	}

	model = r.withColors(model, log)

	log.vertices("0. model", model)

	m1 := ModelToView(model, ctm, position.Name)
	log.vertices("1. view", m1)

	m2 := ViewToCamera(m1, camera)
	log.model("2. camera", m2)

	m3 := m2
	if r.options.NearClipping {
		var err error
		m3, err = nearClip(m2, camera, log)
		r.addErr(err)
		log.model("3. near clipped", m3)
	}

	m4 := Project(m3, camera)
	log.vertices("4. projected", m4)

	m5, err := clip(m4, log)
	r.addErr(err)
	log.model("5. clipped", m5)

	r.addErr(rasterize(m5, r.vp, r.options, log))

	log.message("end model", "model", model.Name)

}

// withColors returns the Model to draw in place of the one given: the Model itself, or, if it has vertices
// but no colors, a copy with one DefaultColor per vertex.
func (r *renderer) withColors(model *wireframe.Model, log stageLog) *wireframe.Model {

	if len(model.Vertices) == 0 || len(model.Colors) != 0 {
		return model
	}

	if repaired, ok := r.defaultColors[model]; ok {
		return repaired
	}

	repaired := model.Clone()
	for range repaired.Vertices {
		repaired.AddColor(wireframe.DefaultColor)
	}

	r.defaultColors[model] = repaired

	log.warn("model has no colors; added default color", "model", model.Name, "color", wireframe.DefaultColor.String())

	return repaired

}

func (r *renderer) addErr(err error) {
	if err != nil {
		r.errs = append(r.errs, err)
	}
}
