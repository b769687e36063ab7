// seehuhn.de/go/pdf-fixture - generate sample PDF files for testing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas provides a simple page-by-page drawing surface for
// writing PDF documents.
//
// A Canvas keeps track of the current page and the current font, and
// forwards all drawing operations to the content stream of the page.
// The first error encountered is remembered; after an error all drawing
// operations are ignored and the error is returned by [Canvas.Err],
// [Canvas.EndPage] and [Canvas.Finish].
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"slices"

	"golang.org/x/text/language"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
	"seehuhn.de/go/pdf/outline"
)

// PaintMode selects how a path is painted.
type PaintMode int

// These are the supported paint modes.
const (
	Fill PaintMode = iota + 1
	Stroke
	FillAndStroke
)

func (m PaintMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	case FillAndStroke:
		return "fill+stroke"
	default:
		return fmt.Sprintf("PaintMode(%d)", int(m))
	}
}

var (
	// ErrUnknownFont is returned by [Canvas.SetFont] for names which
	// are not one of the 14 standard PDF fonts.
	ErrUnknownFont = errors.New("unknown font")

	errNoPage     = errors.New("no page open")
	errPageOpen   = errors.New("previous page not closed")
	errFinished   = errors.New("document already finished")
	errStackEmpty = errors.New("restore without matching save")
	errBadPolygon = errors.New("polygon needs at least two points")
	errBadMode    = errors.New("invalid paint mode")
	errNilImage   = errors.New("missing image")
	errUnbalanced = errors.New("unbalanced graphics state at end of page")
)

// Options control how the PDF file is written.
// The zero value writes a PDF 1.7 file without ICC-tagged images.
type Options struct {
	// Version is the PDF version of the output file.
	Version pdf.Version

	// HumanReadable requests that the file be written in a form which
	// can be inspected in a text editor.
	HumanReadable bool

	// ICC, if set, tags all images with an ICC-based sRGB color space.
	// Otherwise images use DeviceRGB.
	ICC bool

	// XMP, if not nil, is stored uncompressed as the document metadata
	// stream.  This requires PDF 1.4 or newer.  The packet is written
	// when the canvas is created and must not be modified afterwards.
	XMP *xmp.Packet
}

// Metadata describes the document-level information written by
// [Canvas.Finish].  All fields are optional.
type Metadata struct {
	Info     *pdf.Info
	Lang     language.Tag
	PageMode pdf.Name
}

// Canvas is a drawing surface for a multi-page PDF document.
type Canvas struct {
	doc  *document.MultiPage
	page *document.Page

	pageNo  int
	pageRef pdf.Reference

	fonts    map[standard.Font]font.Layouter
	font     standard.Font
	fontSize float64
	stack    []fontState

	imageSpace pdfcolor.Space
	numImages  int

	err      error
	finished bool
}

type fontState struct {
	font standard.Font
	size float64
}

// New starts a new PDF document, written to w.
// The paper size is used for all pages.
func New(w io.Writer, paper *pdf.Rectangle, opt *Options) (*Canvas, error) {
	if opt == nil {
		opt = &Options{}
	}
	v := opt.Version
	if v == 0 {
		v = pdf.V1_7
	}

	var imageSpace pdfcolor.Space
	if opt.ICC {
		profile := icc.SRGBv4Profile
		if v < pdf.V1_7 {
			profile = icc.SRGBv2Profile
		}
		cs, err := pdfcolor.ICCBased(profile, nil)
		if err != nil {
			return nil, err
		}
		imageSpace = cs
	}

	wOpt := &pdf.WriterOptions{
		HumanReadable: opt.HumanReadable,
	}
	if opt.XMP != nil {
		if v < pdf.V1_4 {
			return nil, &pdf.VersionError{Operation: "XMP metadata", Earliest: pdf.V1_4}
		}
		wOpt.DocumentMetadata = &pdf.MetadataStream{
			Data:      opt.XMP,
			Plaintext: true,
		}
	}
	doc, err := document.WriteMultiPage(w, paper, v, wOpt)
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		doc:        doc,
		fonts:      make(map[standard.Font]font.Layouter),
		imageSpace: imageSpace,
	}
	return c, nil
}

// Err returns the first error encountered, or nil.
func (c *Canvas) Err() error {
	if c.err != nil {
		return c.err
	}
	if c.page != nil && c.page.Builder != nil && c.page.Builder.Err != nil {
		c.err = c.page.Builder.Err
	}
	return c.err
}

func (c *Canvas) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// ready checks that drawing is possible.
func (c *Canvas) ready() bool {
	if c.Err() != nil {
		return false
	}
	if c.page == nil {
		c.setErr(errNoPage)
		return false
	}
	return true
}

// PageNumber returns the number of the current page, starting at 1.
// Between pages, this is the number of the last page.
func (c *Canvas) PageNumber() int {
	return c.pageNo
}

// PageRef returns the reference of the current (or last) page object.
// The reference is allocated by [Canvas.BeginPage], so it can be used
// as a link target before the page has been written.
func (c *Canvas) PageRef() pdf.Reference {
	return c.pageRef
}

// NumImages returns the number of images drawn so far.
func (c *Canvas) NumImages() int {
	return c.numImages
}

// BeginPage starts a new page.
//
// At the start of every page, the font is set to 12pt Helvetica, and
// the colors are black.
func (c *Canvas) BeginPage() error {
	if c.finished {
		return errFinished
	}
	if err := c.Err(); err != nil {
		return err
	}
	if c.page != nil {
		c.setErr(errPageOpen)
		return c.err
	}

	ref := c.doc.Out.Alloc()
	page := c.doc.AddPage()
	page.Ref = ref

	c.page = page
	c.pageRef = ref
	c.pageNo++
	c.font = standard.Helvetica
	c.fontSize = 12
	c.stack = c.stack[:0]

	return nil
}

// EndPage writes the current page to the file.
func (c *Canvas) EndPage() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.page == nil {
		c.setErr(errNoPage)
		return c.err
	}
	if len(c.stack) != 0 {
		c.setErr(errUnbalanced)
		return c.err
	}

	err := c.page.Close()
	c.page = nil
	if err != nil {
		c.setErr(fmt.Errorf("page %d: %w", c.pageNo, err))
		return c.err
	}
	return nil
}

// SetFont selects one of the 14 standard PDF fonts for the following
// text operations.  Unknown font names leave the current font unchanged.
func (c *Canvas) SetFont(f standard.Font, size float64) error {
	err := CheckFont(f, size)
	if err != nil {
		return err
	}
	c.font = f
	c.fontSize = size
	return nil
}

// CheckFont reports whether f and size can be used with [Canvas.SetFont].
func CheckFont(f standard.Font, size float64) error {
	if !slices.Contains(standard.All, f) {
		return fmt.Errorf("%w %q", ErrUnknownFont, string(f))
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("invalid font size %g", size)
	}
	return nil
}

// Font returns the current font and font size.
func (c *Canvas) Font() (standard.Font, float64) {
	return c.font, c.fontSize
}

// layouter returns the font instance for the current font, or nil
// if the font cannot be loaded.
func (c *Canvas) layouter() font.Layouter {
	F, ok := c.fonts[c.font]
	if !ok {
		inst, err := c.font.New()
		if err != nil {
			c.setErr(fmt.Errorf("font %q: %w", string(c.font), err))
			return nil
		}
		F = inst
		c.fonts[c.font] = F
	}
	return F
}

// DrawString draws s with the left end of the baseline at (x, y).
func (c *Canvas) DrawString(x, y float64, s string) {
	if s == "" || !c.ready() {
		return
	}
	F := c.layouter()
	if F == nil {
		return
	}
	page := c.page
	page.TextSetFont(F, c.fontSize)
	page.TextBegin()
	page.TextFirstLine(x, y)
	page.TextShow(s)
	page.TextEnd()
}

// DrawCentredString draws s horizontally centred at x, with the baseline
// at height y.
func (c *Canvas) DrawCentredString(x, y float64, s string) {
	if s == "" || !c.ready() {
		return
	}
	F := c.layouter()
	if F == nil {
		return
	}
	page := c.page
	page.TextSetFont(F, c.fontSize)
	page.TextBegin()
	gg := page.TextLayout(nil, s)
	page.TextFirstLine(x-gg.TotalWidth()/2, y)
	page.TextShowGlyphs(gg)
	page.TextEnd()
}

// SetFillColor sets the color used for filling shapes and for text.
func (c *Canvas) SetFillColor(col color.Color) {
	if !c.ready() {
		return
	}
	c.page.SetFillColor(convertColor(col))
}

// SetStrokeColor sets the color used for outlines and lines.
func (c *Canvas) SetStrokeColor(col color.Color) {
	if !c.ready() {
		return
	}
	c.page.SetStrokeColor(convertColor(col))
}

func convertColor(col color.Color) pdfcolor.Color {
	r, g, b, _ := col.RGBA()
	return pdfcolor.DeviceRGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}

// SetLineWidth sets the line width for stroking.
func (c *Canvas) SetLineWidth(width float64) {
	if !c.ready() {
		return
	}
	c.page.SetLineWidth(width)
}

// SaveState saves the graphics state, including the current font,
// on a stack.
func (c *Canvas) SaveState() {
	if !c.ready() {
		return
	}
	c.page.PushGraphicsState()
	c.stack = append(c.stack, fontState{font: c.font, size: c.fontSize})
}

// RestoreState restores the graphics state saved by the matching
// call to [Canvas.SaveState].
func (c *Canvas) RestoreState() {
	if !c.ready() {
		return
	}
	if len(c.stack) == 0 {
		c.setErr(errStackEmpty)
		return
	}
	c.page.PopGraphicsState()
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.font = top.font
	c.fontSize = top.size
}

// Rect draws an axis-parallel rectangle with lower left corner (x, y).
func (c *Canvas) Rect(x, y, width, height float64, mode PaintMode) {
	if !c.ready() {
		return
	}
	c.page.Rectangle(x, y, width, height)
	c.paint(mode)
}

// Circle draws a circle with center (x, y).
func (c *Canvas) Circle(x, y, radius float64, mode PaintMode) {
	if !c.ready() {
		return
	}
	c.page.Circle(x, y, radius)
	c.paint(mode)
}

// Polygon draws the closed polygon with the given corners.
func (c *Canvas) Polygon(points []vec.Vec2, mode PaintMode) {
	if !c.ready() {
		return
	}
	if len(points) < 2 {
		c.setErr(errBadPolygon)
		return
	}
	c.page.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.page.LineTo(p.X, p.Y)
	}
	c.page.ClosePath()
	c.paint(mode)
}

// Line strokes a straight line from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	if !c.ready() {
		return
	}
	c.page.MoveTo(x1, y1)
	c.page.LineTo(x2, y2)
	c.page.Stroke()
}

func (c *Canvas) paint(mode PaintMode) {
	switch mode {
	case Fill:
		c.page.Fill()
	case Stroke:
		c.page.Stroke()
	case FillAndStroke:
		c.page.FillAndStroke()
	default:
		c.page.EndPath()
		c.setErr(fmt.Errorf("%w %d", errBadMode, int(mode)))
	}
}

// DrawImage embeds img into the file and draws it, scaled to fill the
// rectangle r.  The pixel data is stored losslessly.
func (c *Canvas) DrawImage(img image.Image, r rect.Rect) error {
	if img == nil {
		c.setErr(errNilImage)
	}
	if !c.ready() {
		return c.err
	}

	xObj, err := pdfimage.PNG(img, c.imageSpace)
	if err != nil {
		c.setErr(err)
		return err
	}

	page := c.page
	page.PushGraphicsState()
	page.Transform(matrix.Scale(r.Dx(), r.Dy()).Mul(matrix.Translate(r.LLx, r.LLy)))
	page.DrawXObject(xObj)
	page.PopGraphicsState()

	if err := c.Err(); err != nil {
		return err
	}
	c.numImages++
	return nil
}

// Finish writes the document outline and metadata, and closes the
// document.  The canvas cannot be used after Finish has been called.
func (c *Canvas) Finish(tree *outline.Outline, meta *Metadata) error {
	if c.finished {
		return errFinished
	}
	c.finished = true

	if c.page != nil && c.Err() == nil {
		c.setErr(errPageOpen)
	}
	if err := c.Err(); err != nil {
		return err
	}

	info := c.doc.Out.GetMeta()
	if tree != nil {
		ref, err := c.doc.RM.Store(tree)
		if err != nil {
			return fmt.Errorf("outline: %w", err)
		}
		info.Catalog.Outlines = ref
	}

	if meta != nil {
		if meta.Info != nil {
			info.Info = meta.Info
		}
		if meta.PageMode != "" {
			info.Catalog.PageMode = meta.PageMode
		}
		if meta.Lang != language.Und {
			err := pdf.CheckVersion(c.doc.Out, "document language", pdf.V1_4)
			if err != nil {
				return err
			}
			info.Catalog.Lang = meta.Lang
		}
	}

	return c.doc.Close()
}
