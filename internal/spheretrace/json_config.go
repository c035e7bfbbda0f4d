package spheretrace

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

type SphereCfg struct {
	ID     uint32  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Center Vector3 `json:"center"`
	Radius Real    `json:"radius"`
	Color  Color   `json:"color"`
}

type Config struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	MaxBounces int         `json:"maxBounces,omitempty"`
	Workers    int         `json:"workers,omitempty"`
	Background *Color      `json:"background,omitempty"`
	Camera     Camera      `json:"camera"`
	Policy     PolicyCfg   `json:"policy,omitempty"`
	Spheres    []SphereCfg `json:"spheres"`
	PNGOut     string      `json:"pngOut,omitempty"`
	GIFOut     string      `json:"gifOut,omitempty"`
	RAWOut     string      `json:"rawOut,omitempty"`
	GIFDelay   int         `json:"gifDelay,omitempty"`
	Frames     int         `json:"frames,omitempty"`
	FrameStep  Vector3     `json:"frameStep,omitempty"` // camera translation per GIF frame
}

// Build validates and constructs the runtime sphere (no defaults).
func (sc SphereCfg) Build() (*Sphere, error) {
	return NewSphere(sc.ID, sc.Name, sc.Center, sc.Radius, sc.Color)
}

// BuildScene constructs the scene, keeping spheres in config order.
func (cfg *Config) BuildScene() (*Scene, error) {
	cam, err := NewCamera(cfg.Camera.Origin, cfg.Camera.Direction)
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy.Build()
	if err != nil {
		return nil, err
	}
	bg := Background
	if cfg.Background != nil {
		bg = *cfg.Background
	}
	scene, err := NewScene(cam, bg, cfg.MaxBounces, policy)
	if err != nil {
		return nil, err
	}
	for i, spc := range cfg.Spheres {
		sp, err := spc.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "spheres[%d]", i)
		}
		if err := scene.AddSphere(sp); err != nil {
			return nil, errors.Wrapf(err, "spheres[%d]", i)
		}
	}
	return scene, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = Width
	}
	if cfg.Height <= 0 {
		cfg.Height = Height
	}
	if cfg.MaxBounces <= 0 {
		cfg.MaxBounces = MaxBounces
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Camera.Direction.IsZero() {
		cfg.Camera.Direction = Vector3{0, 0, 1}
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.RAWOut == "" {
		cfg.RAWOut = RAWOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Frames <= 0 {
		cfg.Frames = GIFFrames
	}
	if len(cfg.Spheres) == 0 {
		return nil, fmt.Errorf("config has no spheres")
	}
	return &cfg, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), bounces=%d, spheres=%d, workers=%d", path, cfg.Width, cfg.Height, cfg.MaxBounces, len(cfg.Spheres), cfg.Workers)
	return cfg, nil
}
