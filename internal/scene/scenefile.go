package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"kinetic/internal/log"
	"kinetic/internal/vmath"
)

// Scene is the loaded form of a scene file.
type Scene struct {
	Objects []*Object
}

// --- file types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects" yaml:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name" yaml:"name"`
	Is3D       *bool            `json:"is_3d,omitempty" yaml:"is_3d,omitempty"`
	Position   [3]float32       `json:"position" yaml:"position"`
	Rotation   [3]float32       `json:"rotation" yaml:"rotation"`
	Scale      [3]float32       `json:"scale" yaml:"scale"`
	Components []map[string]any `json:"components" yaml:"components"`
}

// LoadScene reads a .json or .yaml/.yml scene file and instantiates the
// registered components from their records. Unknown component types are
// skipped with a warning so one unported component doesn't block a scene.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var file SceneFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse scene %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse scene %s: %w", path, err)
		}
	}

	scene := &Scene{}
	for _, def := range file.Objects {
		obj := NewObject(def.Name)
		if def.Is3D != nil {
			obj.Is3D = *def.Is3D
		}
		obj.Position = vmath.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
		obj.Rotation = vmath.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}
		obj.Scale = vmath.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
		if obj.Scale == (vmath.Vector3{}) {
			obj.Scale = vmath.Vector3One()
		}

		for _, record := range def.Components {
			typeName, _ := record["type"].(string)
			comp, err := NewComponent(typeName)
			if err != nil {
				log.Provide().Warn("skipping component",
					zap.String("object", def.Name),
					zap.String("type", typeName),
					zap.Error(err))
				continue
			}
			comp.Deserialize(record)
			obj.AddComponent(comp)
		}
		scene.Objects = append(scene.Objects, obj)
	}
	return scene, nil
}

// SaveScene writes the scene back out in the format named by the path
// extension.
func SaveScene(path string, s *Scene) error {
	file := SceneFile{}
	for _, obj := range s.Objects {
		def := ObjectDef{
			Name:     obj.Name,
			Position: [3]float32{obj.Position.X, obj.Position.Y, obj.Position.Z},
			Rotation: [3]float32{obj.Rotation.X, obj.Rotation.Y, obj.Rotation.Z},
			Scale:    [3]float32{obj.Scale.X, obj.Scale.Y, obj.Scale.Z},
		}
		is3D := obj.Is3D
		def.Is3D = &is3D
		for _, comp := range obj.Components() {
			def.Components = append(def.Components, comp.Serialize())
		}
		file.Objects = append(file.Objects, def)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(&file)
	default:
		data, err = json.MarshalIndent(&file, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
