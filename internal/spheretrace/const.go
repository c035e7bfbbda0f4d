package spheretrace

const (
	ChR        = 0
	ChG        = 1
	ChB        = 2
	ChA        = 3
	BytesPerPx = 4
	Width      = 1920
	Height     = 1080
	MaxBounces = 5
	ConfigPath = "scenes/config.json"
	PNGOut     = "frame.png"
	GIFOut     = "sweep.gif"
	RAWOut     = "frame.raw"
	GIFDelay   = 4 // 100ths of a second per frame
	GIFFrames  = 1
	ProbeRays  = 10_000

	// events kept per ray log category; the rest are only counted
	RayLogSamples = 64

	// rows handed to one worker at a time in RenderParallel
	rowsPerTask = 8
)

// Olive background of the demo scene.
var Background = Color{R: 0x88, G: 0xb9, B: 0x39, A: 0xff}
