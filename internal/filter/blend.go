package filter

import "image"

// blendChannel mixes a source and destination channel value with the given
// weight: out = src*alpha + dst*(1-alpha), truncated to [0, 255].
func blendChannel(src, dst uint8, alpha float64) uint8 {
	v := float64(src)*alpha + float64(dst)*(1-alpha)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// compositeOver alpha-composites src onto frame with its top-left corner at
// (x0, y0), clipped to the frame bounds. Each source pixel's own alpha
// channel drives the blend; the frame keeps its alpha untouched.
func compositeOver(frame *image.NRGBA, src *image.NRGBA, x0, y0 int) {
	fb := frame.Bounds()
	sb := src.Bounds()

	for sy := sb.Min.Y; sy < sb.Max.Y; sy++ {
		fy := y0 + sy - sb.Min.Y
		if fy < fb.Min.Y || fy >= fb.Max.Y {
			continue
		}
		for sx := sb.Min.X; sx < sb.Max.X; sx++ {
			fx := x0 + sx - sb.Min.X
			if fx < fb.Min.X || fx >= fb.Max.X {
				continue
			}
			si := src.PixOffset(sx, sy)
			sa := src.Pix[si+3]
			if sa == 0 {
				continue
			}
			alpha := float64(sa) / 255
			fi := frame.PixOffset(fx, fy)
			frame.Pix[fi+0] = blendChannel(src.Pix[si+0], frame.Pix[fi+0], alpha)
			frame.Pix[fi+1] = blendChannel(src.Pix[si+1], frame.Pix[fi+1], alpha)
			frame.Pix[fi+2] = blendChannel(src.Pix[si+2], frame.Pix[fi+2], alpha)
		}
	}
}

// tintEllipse blends a flat color into the axis-aligned ellipse centered at
// (cx, cy) with radii (rx, ry), clipped to the frame bounds.
func tintEllipse(frame *image.NRGBA, cx, cy, rx, ry float64, r, g, b uint8, alpha float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	fb := frame.Bounds()

	minX := max(fb.Min.X, int(cx-rx))
	maxX := min(fb.Max.X-1, int(cx+rx)+1)
	minY := max(fb.Min.Y, int(cy-ry))
	maxY := min(fb.Max.Y-1, int(cy+ry)+1)

	for y := minY; y <= maxY; y++ {
		dy := (float64(y) - cy) / ry
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) - cx) / rx
			if dx*dx+dy*dy > 1 {
				continue
			}
			fi := frame.PixOffset(x, y)
			frame.Pix[fi+0] = blendChannel(r, frame.Pix[fi+0], alpha)
			frame.Pix[fi+1] = blendChannel(g, frame.Pix[fi+1], alpha)
			frame.Pix[fi+2] = blendChannel(b, frame.Pix[fi+2], alpha)
		}
	}
}
