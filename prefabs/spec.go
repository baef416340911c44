package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning is the runtime configuration loaded from tuning.yaml. Every knob the
// core exposes lives here so operators can retune without touching code.
type Tuning struct {
	Pool      PoolTuning            `yaml:"pool"`
	Bullets   map[string]BulletSpec `yaml:"bullets"`
	Collision CollisionTuning       `yaml:"collision"`
	Camera    CameraTuning          `yaml:"camera"`
	Shake     ShakeTuning           `yaml:"shake"`
	Player    PlayerTuning          `yaml:"player"`
	Arena     ArenaTuning           `yaml:"arena"`
}

type PoolTuning struct {
	InitialSize int `yaml:"initial_size"`
}

type BulletSpec struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Vertices int     `yaml:"vertices"`
	Color    string  `yaml:"color"`
	Layer    int     `yaml:"layer"`
}

type CollisionTuning struct {
	HostileRadius float64 `yaml:"hostile_radius"`
	DamagePerHit  float64 `yaml:"damage_per_hit"`
	DeathEpsilon  float64 `yaml:"death_epsilon"`
}

type CameraTuning struct {
	SnapThreshold float64 `yaml:"snap_threshold"`
	MaxDistance   float64 `yaml:"max_distance"`
	MinSmooth     float64 `yaml:"min_smooth"`
	MaxSmooth     float64 `yaml:"max_smooth"`
}

type ShakeTuning struct {
	CircleRadius float64 `yaml:"circle_radius"`
	OffsetRange  float64 `yaml:"offset_range"`
	Intensity    float64 `yaml:"intensity"`
	Duration     float64 `yaml:"duration"`
}

type PlayerTuning struct {
	Speed    float64 `yaml:"speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Friction float64 `yaml:"friction"`
	Recoil   float64 `yaml:"recoil"`
}

type ArenaTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoadTuning reads and parses tuning.yaml.
func LoadTuning() (Tuning, error) {
	return LoadSpec[Tuning]("tuning.yaml")
}

// EntityBuildSpec is a prefab: a named bag of component specs keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

// LoadEntityBuildSpec reads and parses an entity prefab.
func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// LoadSpec reads filename and unmarshals it into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// DecodeComponentSpec converts a raw prefab component value (the any-typed
// YAML node) into a concrete spec struct.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("prefabs: re-marshal component spec: %w", err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: decode component spec: %w", err)
	}
	return spec, nil
}

// Component spec shapes shared by the entity builder.

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Radius   float64 `yaml:"radius"`
	Vertices int     `yaml:"vertices"`
	Color    string  `yaml:"color"`
	Layer    int     `yaml:"layer"`
}

type HealthComponentSpec struct {
	Max float64 `yaml:"max"`
}

type FrictionComponentSpec struct {
	Amount float64 `yaml:"amount"`
}
