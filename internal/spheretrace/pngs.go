package spheretrace

import (
	"image/png"
	"os"

	"github.com/pkg/errors"
)

// SavePNG writes the frame as an 8-bit RGBA PNG (lossless).
func SavePNG(f *Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(out, f.Image()); err != nil {
		out.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return out.Close()
}
