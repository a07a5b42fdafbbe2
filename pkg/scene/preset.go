package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/geometry"
	"github.com/mhollis/tracepath/pkg/loaders"
	"github.com/mhollis/tracepath/pkg/material"
	"github.com/mhollis/tracepath/pkg/renderer"
)

// SceneDescription is the YAML document shape for a data-driven scene: a
// camera block and a flat list of primitive declarations, each embedding
// its own material. It supplements the compiled-in presets with
// structured configuration, without requiring a rebuild to change a
// scene.
type SceneDescription struct {
	Width      int                 `yaml:"width"`
	Height     int                 `yaml:"height"`
	Background [3]float64          `yaml:"background"`
	Camera     CameraDescription   `yaml:"camera"`
	Objects    []ObjectDescription `yaml:"objects"`
}

// CameraDescription mirrors renderer.CameraConfig in YAML-friendly form.
type CameraDescription struct {
	LookFrom  [3]float64 `yaml:"look_from"`
	LookAt    [3]float64 `yaml:"look_at"`
	Up        [3]float64 `yaml:"up"`
	VFov      float64    `yaml:"vfov"`
	Aperture  float64    `yaml:"aperture"`
	FocusDist float64    `yaml:"focus_dist"`
	TimeStart float64    `yaml:"time_start"`
	TimeEnd   float64    `yaml:"time_end"`
}

// MaterialDescription declares one of the five material variants; only
// the fields relevant to Kind are read.
type MaterialDescription struct {
	Kind      string     `yaml:"kind"` // lambertian | metal | dielectric | light | isotropic
	Color     [3]float64 `yaml:"color"`
	Fuzz      float64    `yaml:"fuzz"`
	RefIndex  float64    `yaml:"ref_index"`
	Strength  float64    `yaml:"strength"`
	ImagePath string     `yaml:"image_path"` // lambertian only; overrides Color with a raster texture
}

// ObjectDescription declares one primitive: its Kind, geometric
// parameters, and embedded material.
type ObjectDescription struct {
	Kind     string              `yaml:"kind"` // sphere | rect_xy | rect_xz | rect_yz | box
	Center   [3]float64          `yaml:"center"`
	Min      [3]float64          `yaml:"min"`
	Max      [3]float64          `yaml:"max"`
	Radius   float64             `yaml:"radius"`
	A0       float64             `yaml:"a0"`
	A1       float64             `yaml:"a1"`
	B0       float64             `yaml:"b0"`
	B1       float64             `yaml:"b1"`
	K        float64             `yaml:"k"`
	Material MaterialDescription `yaml:"material"`
}

// LoadPreset reads a YAML scene description from path and builds the
// corresponding Scene.
func LoadPreset(path string, logger core.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %q: %w", path, err)
	}

	var desc SceneDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parsing scene file %q: %w", path, err)
	}

	return BuildScene(desc, logger)
}

// BuildScene constructs a Scene from an already-parsed description.
func BuildScene(desc SceneDescription, logger core.Logger) (*Scene, error) {
	var shapes []core.Hittable
	for i, obj := range desc.Objects {
		shape, err := buildObject(obj, logger)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}

	world := core.NewBVH(shapes, desc.Camera.TimeStart, desc.Camera.TimeEnd, logger)

	cam := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    vec3From(desc.Camera.LookFrom),
		LookAt:      vec3From(desc.Camera.LookAt),
		Up:          vec3From(desc.Camera.Up),
		VFov:        desc.Camera.VFov,
		AspectRatio: float64(desc.Width) / float64(desc.Height),
		Aperture:    desc.Camera.Aperture,
		FocusDist:   desc.Camera.FocusDist,
		TimeStart:   desc.Camera.TimeStart,
		TimeEnd:     desc.Camera.TimeEnd,
	})

	return &Scene{
		Hittable:        world,
		Cam:             cam,
		Width:           desc.Width,
		Height:          desc.Height,
		BackgroundColor: vec3From(desc.Background),
	}, nil
}

func buildObject(obj ObjectDescription, logger core.Logger) (core.Hittable, error) {
	mat := buildMaterial(obj.Material, logger)

	switch obj.Kind {
	case "sphere":
		return geometry.NewSphere(vec3From(obj.Center), obj.Radius, mat), nil
	case "rect_xy":
		return geometry.NewRectXY(obj.A0, obj.A1, obj.B0, obj.B1, obj.K, mat), nil
	case "rect_xz":
		return geometry.NewRectXZ(obj.A0, obj.A1, obj.B0, obj.B1, obj.K, mat), nil
	case "rect_yz":
		return geometry.NewRectYZ(obj.A0, obj.A1, obj.B0, obj.B1, obj.K, mat), nil
	case "box":
		return geometry.NewBox(vec3From(obj.Min), vec3From(obj.Max), mat), nil
	default:
		return nil, fmt.Errorf("unknown object kind %q", obj.Kind)
	}
}

func buildMaterial(desc MaterialDescription, logger core.Logger) core.Material {
	color := vec3From(desc.Color)
	switch desc.Kind {
	case "metal":
		return material.NewMetal(color, desc.Fuzz)
	case "dielectric":
		return material.NewDielectric(desc.RefIndex)
	case "light":
		return material.NewDiffuseLight(color, desc.Strength)
	case "isotropic":
		return material.NewIsotropic(color)
	default:
		if desc.ImagePath != "" {
			tex := loaders.LoadImageTextureOrPlaceholder(desc.ImagePath, logger)
			return material.NewLambertianTexture(tex)
		}
		return material.NewLambertian(color)
	}
}

func vec3From(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
