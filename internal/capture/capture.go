// Package capture writes framebuffer snapshots to disk.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format supported by Writer.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrFormat is returned for an unknown image format name.
var ErrFormat = errors.New("unsupported image format")

// ParseFormat maps a config value to a Format. The empty string selects PNG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, name)
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == JPEG {
		return "jpg"
	}
	return string(f)
}

// Encode writes img to w in format f.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrFormat, string(f))
}

const timestampLayout = "20060102-150405"

// Writer saves images as <dir>/activity<N>-<timestamp>.<ext>.
type Writer struct {
	Dir    string
	Format Format

	// Now is used for timestamps. It defaults to time.Now.
	Now func() time.Time
}

// NewWriter returns a Writer that saves into dir using format.
func NewWriter(dir string, format Format) *Writer {
	return &Writer{Dir: dir, Format: format, Now: time.Now}
}

// Save encodes img and returns the path it was written to. The directory is
// created when missing.
func (w *Writer) Save(activity int, img image.Image) (string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	name := fmt.Sprintf("activity%d-%s.%s", activity, now().Format(timestampLayout), w.Format.Ext())
	path := filepath.Join(w.Dir, name)
	return path, w.write(path, img)
}

// SaveAs encodes img to an explicit file name inside the writer's directory.
func (w *Writer) SaveAs(name string, img image.Image) (string, error) {
	path := filepath.Join(w.Dir, name+"."+w.Format.Ext())
	return path, w.write(path, img)
}

func (w *Writer) write(path string, img image.Image) error {
	if w.Dir != "" {
		if err := os.MkdirAll(w.Dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := w.Format.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
