package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage converts any image.Image to a Raster. The image origin is moved
// to (0, 0) and the alpha channel is dropped: colours are read
// non-premultiplied, so translucent pixels keep their stored R, G and B.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
		b = nrgba.Rect
	}

	r := New(b.Dy(), b.Dx())
	for i := 0; i < r.Height; i++ {
		o := nrgba.PixOffset(b.Min.X, b.Min.Y+i)
		src := nrgba.Pix[o : o+r.Width*4]
		dst := r.Pix[i*r.Width*Channels : (i+1)*r.Width*Channels]
		for j := 0; j < r.Width; j++ {
			dst[j*Channels] = src[j*4]
			dst[j*Channels+1] = src[j*4+1]
			dst[j*Channels+2] = src[j*4+2]
		}
	}
	return r
}

// ToImage returns an opaque *image.RGBA copy of r.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	for i := 0; i < r.Height; i++ {
		for j := 0; j < r.Width; j++ {
			px := r.At(i, j)
			img.SetRGBA(j, i, color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xff})
		}
	}
	return img
}
