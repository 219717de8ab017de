/*
Package raster implements a drawing surface which rasterises paths into an
image, with anti-aliasing. It is the reference implementation of
strokegeom.Surface, used for thumbnails and for testing rendering output.

	c := raster.NewCanvas(64, 64)
	c.SetColor(color.Black)
	geometry.FillPath(c)
	png.Encode(w, c.Image())

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokegeom"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Canvas is a raster surface. Paths are collected with MoveTo, LineTo, QuadTo
// and ClosePath and consumed by Fill or Clip.
type Canvas struct {
	img  *image.RGBA
	src  *image.Uniform
	ras  *vector.Rasterizer
	clip *image.Alpha // nil: no clipping
	at   strokegeom.AT
}

var _ strokegeom.Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of w × h pixels, painting in black.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		src: image.NewUniform(color.Black),
		ras: vector.NewRasterizer(w, h),
	}
}

// SetColor sets the paint for subsequent fills.
func (c *Canvas) SetColor(col color.Color) {
	c.src = image.NewUniform(col)
}

// SetTransform sets a transformation from path coordinates to pixels, e.g. a
// scaling for thumbnails. It applies to subsequent path operations.
func (c *Canvas) SetTransform(m strokegeom.AT) {
	c.at = m
}

// Image returns the canvas image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) pt(p strokegeom.Pair) (float32, float32) {
	p = c.at.Transform(p)
	return float32(p.X()), float32(p.Y())
}

// MoveTo is part of interface strokegeom.Surface.
func (c *Canvas) MoveTo(p strokegeom.Pair) {
	c.ras.MoveTo(c.pt(p))
}

// LineTo is part of interface strokegeom.Surface.
func (c *Canvas) LineTo(p strokegeom.Pair) {
	c.ras.LineTo(c.pt(p))
}

// QuadTo is part of interface strokegeom.Surface.
func (c *Canvas) QuadTo(control, p strokegeom.Pair) {
	cx, cy := c.pt(control)
	x, y := c.pt(p)
	c.ras.QuadTo(cx, cy, x, y)
}

// ClosePath is part of interface strokegeom.Surface.
func (c *Canvas) ClosePath() {
	c.ras.ClosePath()
}

// mask renders the current path into a coverage mask and starts a new path.
func (c *Canvas) mask() *image.Alpha {
	b := c.img.Bounds()
	m := image.NewAlpha(b)
	c.ras.Draw(m, b, image.Opaque, image.Point{})
	c.ras.Reset(b.Dx(), b.Dy())
	if c.clip != nil {
		for i := range m.Pix {
			m.Pix[i] = uint8(uint16(m.Pix[i]) * uint16(c.clip.Pix[i]) / 0xff)
		}
	}
	return m
}

// Fill paints the current path with the current color, respecting the clip
// region.
func (c *Canvas) Fill() {
	b := c.img.Bounds()
	if c.clip == nil {
		c.ras.Draw(c.img, b, c.src, image.Point{})
		c.ras.Reset(b.Dx(), b.Dy())
		return
	}
	draw.DrawMask(c.img, b, c.src, image.Point{}, c.mask(), image.Point{}, draw.Over)
}

// Clip intersects the clip region with the current path.
func (c *Canvas) Clip() {
	c.clip = c.mask()
	tracer().Debugf("canvas clip region set")
}

// ResetClip removes the clip region.
func (c *Canvas) ResetClip() {
	c.clip = nil
}

// Coverage returns the alpha value of pixel (x, y), 0 for transparent and
// 0xff for fully painted.
func (c *Canvas) Coverage(x, y int) uint8 {
	return c.img.RGBAAt(x, y).A
}
