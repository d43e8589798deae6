// Package imageio reads and writes Rasters in common image file formats.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding supports all
// of these except WebP. Alpha is dropped on decode and written as opaque.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// ErrUnsupportedFormat is returned for unknown formats and for encoding WebP.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format identifies an image file format.
type Format string

// Supported formats. The values match the names registered with package image.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

// Options tunes encoders that take parameters.
type Options struct {
	// JPEGQuality is 1..100. Zero selects jpeg.DefaultQuality.
	JPEGQuality int
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads an image in any supported format and returns it as a Raster
// together with the detected format.
func Decode(r io.Reader) (*raster.Raster, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return raster.FromImage(img), Format(name), nil
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *raster.Raster, format Format, opts Options) error {
	if err := r.Validate(); err != nil {
		return err
	}
	img := r.ToImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		q := opts.JPEGQuality
		if q <= 0 {
			q = jpeg.DefaultQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: min(q, 100)})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// ReadFile decodes the image stored at path.
func ReadFile(path string) (*raster.Raster, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes r to path, choosing the format from the extension.
func WriteFile(path string, r *raster.Raster, opts Options) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, r, format, opts)
}
