package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"AccidentSketch/internal/geometry"
)

// CoverCrop returns the centred region of a srcW x srcH image that, scaled to
// dstW x dstH, covers the destination without distortion.
func CoverCrop(srcW, srcH, dstW, dstH float64) geometry.Rect {
	crop := geometry.Rect{Width: srcW, Height: srcH}
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return crop
	}
	canvasRatio := dstW / dstH
	imageRatio := srcW / srcH
	if imageRatio > canvasRatio {
		// Wider than the canvas: trim the sides.
		crop.Width = srcH * canvasRatio
		crop.X = (srcW - crop.Width) / 2
	} else {
		crop.Height = srcW / canvasRatio
		crop.Y = (srcH - crop.Height) / 2
	}
	return crop
}

// scaledBackground is a background already cropped and resampled to one
// backing size.
type scaledBackground struct {
	src  image.Image
	size image.Point
	img  *image.RGBA
}

func (r *Renderer) paintBackground(dst *image.RGBA, bg image.Image) {
	if bg == nil || bg.Bounds().Empty() {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(fallbackBackground), image.Point{}, draw.Src)
		return
	}
	size := dst.Bounds().Size()
	if r.bg.img == nil || r.bg.src != bg || r.bg.size != size {
		r.bg = scaledBackground{src: bg, size: size, img: coverScale(bg, size)}
		r.bgScales++
	}
	draw.Draw(dst, dst.Bounds(), r.bg.img, image.Point{}, draw.Src)
}

// coverScale crops bg to the aspect ratio of size and resamples it.
func coverScale(bg image.Image, size image.Point) *image.RGBA {
	b := bg.Bounds()
	crop := CoverCrop(float64(b.Dx()), float64(b.Dy()), float64(size.X), float64(size.Y))
	src := image.Rect(
		b.Min.X+int(math.Round(crop.X)),
		b.Min.Y+int(math.Round(crop.Y)),
		b.Min.X+int(math.Round(crop.X+crop.Width)),
		b.Min.Y+int(math.Round(crop.Y+crop.Height)),
	)
	out := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(out, out.Bounds(), bg, src, draw.Src, nil)
	return out
}
