package capture

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
)

// DoodleImporter loads a hand-drawn PNG from disk into the transient doodle
// buffer. Only well-formed PNG files are accepted.
type DoodleImporter struct {
	data []byte
}

func (d *DoodleImporter) ImportFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read doodle: %w", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("%w: not a png image", ErrUnavailable)
	}
	d.data = raw
	return nil
}

func (d *DoodleImporter) Bytes() []byte { return d.data }

func (d *DoodleImporter) Empty() bool { return len(d.data) == 0 }

func (d *DoodleImporter) Reset() { d.data = nil }
