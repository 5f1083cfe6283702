// Package scenefile loads wireframe Scenes from scene description files written in YAML or TOML, and from
// glTF files.
//
// A description names a camera and a tree of positions, each with an optional transform, an optional
// procedural (or glTF) model, and nested children:
//
//	name: nested
//	camera: {projection: perspective, left: -1, right: 1, bottom: -1, top: 1, near: 1}
//	positions:
//	  - name: arm
//	    id: arm
//	    translate: [0, 0, -5]
//	    rotate: {angle: 30, axis: [0, 1, 0]}
//	    model: {kind: box, size: [1, 1, 1], color: [1, 0, 0]}
//	  - name: mirror
//	    scale: [-1, 1, 1]
//	    children:
//	      - use: arm
//
// A position with "use" set shares the earlier position with that id instead of declaring a new one.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/solarlune/wireframe"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned when a file's extension doesn't name a supported scene format.
	ErrUnknownFormat = errors.New("scenefile: unknown scene format")
	// ErrUnknownModel is returned for a model kind that isn't recognized.
	ErrUnknownModel = errors.New("scenefile: unknown model kind")
	// ErrUnknownID is returned when a position uses an id that hasn't been declared before it.
	ErrUnknownID = errors.New("scenefile: unknown position id")
	// ErrInvalidValue is returned for a malformed value, like a vector with the wrong number of components.
	ErrInvalidValue = errors.New("scenefile: invalid value")
)

// Format is a scene description file format.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatGLTF
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatGLTF:
		return "gltf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the Format matching a file's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".gltf", ".glb":
		return FormatGLTF, nil
	}
	return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
}

// File is a decoded scene description.
type File struct {
	Name      string     `yaml:"name" toml:"name"`
	Debug     bool       `yaml:"debug" toml:"debug"`
	Camera    Camera     `yaml:"camera" toml:"camera"`
	Positions []Position `yaml:"positions" toml:"positions"`
}

// Camera describes the Scene's camera, either by its view rectangle (left, right, bottom, top) or by a
// vertical field of view in degrees and an aspect ratio. A zero Camera is the default camera.
type Camera struct {
	Projection string   `yaml:"projection" toml:"projection"` // "perspective" (the default) or "orthographic"
	Left       *float64 `yaml:"left" toml:"left"`
	Right      *float64 `yaml:"right" toml:"right"`
	Bottom     *float64 `yaml:"bottom" toml:"bottom"`
	Top        *float64 `yaml:"top" toml:"top"`
	Near       float64  `yaml:"near" toml:"near"` // Defaults to 1
	FOVY       float64  `yaml:"fovy" toml:"fovy"`
	Aspect     float64  `yaml:"aspect" toml:"aspect"` // Defaults to 1
}

// Rotate describes a rotation by Angle degrees around Axis.
type Rotate struct {
	Angle float64   `yaml:"angle" toml:"angle"`
	Axis  []float64 `yaml:"axis" toml:"axis"`
}

// Position describes a wireframe.Position. Its matrix is Translate * Rotate * Scale.
type Position struct {
	Name      string     `yaml:"name" toml:"name"`
	ID        string     `yaml:"id" toml:"id"`
	Use       string     `yaml:"use" toml:"use"`
	Translate []float64  `yaml:"translate" toml:"translate"` // 3 components
	Rotate    *Rotate    `yaml:"rotate" toml:"rotate"`
	Scale     []float64  `yaml:"scale" toml:"scale"` // 1 (uniform) or 3 components
	Visible   *bool      `yaml:"visible" toml:"visible"`
	Debug     bool       `yaml:"debug" toml:"debug"`
	Model     *Model     `yaml:"model" toml:"model"`
	Children  []Position `yaml:"children" toml:"children"`
}

// Model describes a Model to build. Which fields are used depends on Kind; see Build.
type Model struct {
	Kind    string    `yaml:"kind" toml:"kind"`
	Name    string    `yaml:"name" toml:"name"`
	Size    []float64 `yaml:"size" toml:"size"`
	Range   []float64 `yaml:"range" toml:"range"`
	Radius  float64   `yaml:"radius" toml:"radius"`
	Radius2 float64   `yaml:"radius2" toml:"radius2"`
	Height  float64   `yaml:"height" toml:"height"`
	N       int       `yaml:"n" toml:"n"`
	K       int       `yaml:"k" toml:"k"`
	Path    string    `yaml:"path" toml:"path"`

	Vertices [][]float64 `yaml:"vertices" toml:"vertices"`
	Colors   [][]float64 `yaml:"colors" toml:"colors"`
	Lines    [][]int     `yaml:"lines" toml:"lines"`
	Points   []int       `yaml:"points" toml:"points"`

	Color       []float64 `yaml:"color" toml:"color"`
	Shading     string    `yaml:"shading" toml:"shading"` // "random", "random-vertex", "random-primitive", or "rainbow"
	Seed        int64     `yaml:"seed" toml:"seed"`
	PointCloud  bool      `yaml:"point_cloud" toml:"point_cloud"`
	PointRadius int       `yaml:"point_radius" toml:"point_radius"`
	Hidden      bool      `yaml:"hidden" toml:"hidden"`
}

// Decode reads a scene description in the given format (YAML or TOML). Unknown fields are errors.
func Decode(r io.Reader, format Format) (*File, error) {

	file := &File{}

	switch format {

	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}

	case FormatTOML:
		decoder := toml.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(file); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}

	default:
		return nil, fmt.Errorf("cannot decode %v: %w", format, ErrUnknownFormat)

	}

	return file, nil

}

// Load reads the scene file at path and builds its Scene, picking the format from the file's extension.
// Relative glTF paths inside a description are resolved against the description's directory.
func Load(path string) (*wireframe.Scene, error) {

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	if format == FormatGLTF {
		return wireframe.LoadGLTFFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	scene, err := file.Build(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	wireframe.Logger().Info("loaded scene", "path", path, "scene", scene.Name, "roots", len(scene.Positions))

	return scene, nil

}
