package spheretrace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SaveRaw writes the frame for an external presenter:
// header Width, Height as int32 (little-endian), then Pix as-is (RGBA rows).
func SaveRaw(f *Frame, path string) error {
	if int64(len(f.Pix)) != int64(f.Width)*int64(f.Height)*BytesPerPx {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (W*H*4)", len(f.Pix), f.Width*f.Height*BytesPerPx)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := binary.Write(w, binary.LittleEndian, [2]int32{int32(f.Width), int32(f.Height)}); err != nil {
		return err
	}
	if _, err := w.Write(f.Pix); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

// LoadRaw reads a frame written by SaveRaw.
func LoadRaw(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := bufio.NewReader(file)
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, errors.Wrap(err, "raw header")
	}
	f, err := NewFrame(int(hdr[0]), int(hdr[1]))
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, f.Pix); err != nil {
		return nil, errors.Wrapf(err, "raw body %dx%d", f.Width, f.Height)
	}
	return f, nil
}
