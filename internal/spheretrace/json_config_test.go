package spheretrace

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(`{"spheres":[{"id":1,"center":{"x":0,"y":0,"z":10},"radius":1,"color":"#ffffff"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != Width || cfg.Height != Height || cfg.MaxBounces != MaxBounces {
		t.Fatalf("size/bounce defaults: %+v", cfg)
	}
	if cfg.Workers != runtime.NumCPU() || cfg.Frames != GIFFrames || cfg.GIFDelay != GIFDelay {
		t.Fatalf("worker/gif defaults: %+v", cfg)
	}
	if cfg.PNGOut != PNGOut || cfg.GIFOut != GIFOut || cfg.RAWOut != RAWOut {
		t.Fatalf("output defaults: %+v", cfg)
	}
	if cfg.Camera.Direction != (Vector3{0, 0, 1}) {
		t.Fatalf("camera default: %+v", cfg.Camera)
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		t.Fatal(err)
	}
	if scene.Background != Background || len(scene.Shapes) != 1 {
		t.Fatalf("scene: %+v", scene)
	}
}

func TestParseConfigNoSpheres(t *testing.T) {
	if _, err := parseConfig([]byte(`{"width": 10}`)); err == nil {
		t.Fatal("expected error for config without spheres")
	}
	if _, err := parseConfig([]byte(`{`)); err == nil {
		t.Fatal("expected error for broken json")
	}
}

func TestBuildSceneErrors(t *testing.T) {
	cases := map[string]string{
		"spheres[1]": `{"spheres":[
			{"id":1,"center":{"x":0,"y":0,"z":10},"radius":1,"color":"#ffffff"},
			{"id":2,"center":{"x":0,"y":0,"z":10},"radius":0,"color":"#ffffff"}]}`,
		"duplicate": `{"spheres":[
			{"id":1,"center":{"x":0,"y":0,"z":10},"radius":1,"color":"#ffffff"},
			{"id":1,"center":{"x":5,"y":0,"z":10},"radius":1,"color":"#000000"}]}`,
		"policy": `{"policy":{"hit":"closest"},"spheres":[
			{"id":1,"center":{"x":0,"y":0,"z":10},"radius":1,"color":"#ffffff"}]}`,
	}
	for want, js := range cases {
		cfg, err := parseConfig([]byte(js))
		if err != nil {
			t.Fatalf("%s: parse: %v", want, err)
		}
		_, err = cfg.BuildScene()
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: unexpected error %v", want, err)
		}
	}
}

func TestLoadDemoConfig(t *testing.T) {
	job, err := Load(filepath.Join("..", "..", "scenes", "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, scene := job.Cfg, job.Scene
	if cfg.Width != 1920 || cfg.Height != 1080 || scene.MaxBounces != 5 {
		t.Fatalf("demo config: %+v", cfg)
	}
	if scene.Background != (Color{0x88, 0xb9, 0x39, 0xff}) {
		t.Fatalf("background: %s", scene.Background)
	}
	wantIDs := []uint32{1, 2, 3}
	for i, sh := range scene.Shapes {
		if sh.ShapeID() != wantIDs[i] {
			t.Fatalf("shape order: %d at %d", sh.ShapeID(), i)
		}
	}
	if scene.Shapes[2].Paint() != (Color{3, 252, 31, 255}) {
		t.Fatalf("green sphere color: %s", scene.Shapes[2].Paint())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
