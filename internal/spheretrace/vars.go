package spheretrace

var (
	Debug    = false // set to true to record per-ray events and print their stats
	Progress = false // set to true to print [PROGRESS] lines while rendering
	PNG      = false // set to true to save the rendered frame as PNG
	GIF      = false // set to true to save an animated GIF sweeping the camera
	RAW      = false // set to true to save the raw RGBA frame
	Workers  = 0     // overrides config workers when > 0
	// Compile time check that every primitive satisfies Shape
	_ Shape = (*Sphere)(nil)
)
