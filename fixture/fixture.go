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

// Package fixture writes a sample PDF document for testing PDF
// processing software.
//
// The document has six A4 pages with text, vector graphics and four raster
// images, and a two-level outline.  It is released under CC0 1.0
// Universal.  Output is deterministic: the same options always give the
// same file.
package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/pdf-fixture/bookmark"
	"seehuhn.de/go/pdf-fixture/canvas"
	"seehuhn.de/go/pdf-fixture/pattern"
)

// DefaultName is the conventional file name of the fixture.
const DefaultName = "test-with-outline-and-images.pdf"

// ErrVersion is returned for PDF versions which cannot hold the fixture.
var ErrVersion = errors.New("unsupported PDF version")

// Options control the generated file.
// A nil *Options is equivalent to the zero value, which writes PDF 1.7
// with English as the document language.
type Options struct {
	// Version is the PDF version of the output, between 1.4 and 2.0.
	Version pdf.Version

	// HumanReadable writes the file in a form suitable for inspection
	// in a text editor.
	HumanReadable bool

	// Language is the natural language of the document.
	Language language.Tag

	// ICC tags the raster images with an sRGB ICC profile.
	ICC bool

	// CreationDate, if set, is stored in the XMP metadata.
	CreationDate time.Time
}

func (opt *Options) withDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.Version == 0 {
		res.Version = pdf.V1_7
	}
	if res.Language == language.Und {
		res.Language = language.English
	}
	return res
}

// Report summarizes a generated fixture.
type Report struct {
	Path       string         `yaml:"path,omitempty"`
	Version    string         `yaml:"pdf_version"`
	Pages      int            `yaml:"pages"`
	DocumentID string         `yaml:"document_id"`
	Outline    []OutlineEntry `yaml:"outline"`
	Images     []ImageInfo    `yaml:"images"`
}

// OutlineEntry describes one bookmark of the fixture.
type OutlineEntry struct {
	Title string `yaml:"title"`
	Key   string `yaml:"key"`
	Level int    `yaml:"level"`
	Page  int    `yaml:"page"`
}

// ImageInfo describes one raster image of the fixture.
// SHA256 is the [pattern.Fingerprint] of the pixel data.
type ImageInfo struct {
	Kind   string `yaml:"kind"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Page   int    `yaml:"page"`
	SHA256 string `yaml:"sha256"`
}

// Generate writes the fixture to the named file.
//
// The data is first written to a temporary file in the same directory,
// which is renamed to path once the document is complete.  If an error
// occurs, the temporary file is removed and path is left unchanged.
func Generate(path string, opt *Options) (*Report, error) {
	doc, err := prepare(opt)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".pdf-fixture-*.tmp")
	if err != nil {
		return nil, err
	}
	tmpName := f.Name()
	done := false
	defer func() {
		if !done {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	// The buffer keeps the PDF writer from closing f.
	w := bufio.NewWriter(f)
	report, err := doc.write(w)
	if err != nil {
		return nil, err
	}
	err = w.Flush()
	if err != nil {
		return nil, err
	}
	err = f.Chmod(0o644)
	if err != nil {
		return nil, err
	}
	err = f.Sync()
	if err != nil {
		return nil, err
	}
	err = f.Close()
	if err != nil {
		return nil, err
	}
	err = os.Rename(tmpName, path)
	if err != nil {
		return nil, err
	}
	done = true

	report.Path = path
	return report, nil
}

// Write writes the fixture to w.
// Nothing is written if the document cannot be prepared.
func Write(w io.Writer, opt *Options) (*Report, error) {
	doc, err := prepare(opt)
	if err != nil {
		return nil, err
	}
	return doc.write(w)
}

// fixture is a fully validated document, ready to be written.
type fixture struct {
	opt   *Options
	paper *pdf.Rectangle
	pages []*pagePlan
}

// prepare validates the page plan and generates all raster images.
func prepare(opt *Options) (*fixture, error) {
	opt = opt.withDefaults()
	if opt.Version < pdf.V1_4 || opt.Version > pdf.V2_0 {
		return nil, fmt.Errorf("%w %s (need 1.4 to 2.0)", ErrVersion, opt.Version)
	}

	paper := document.A4
	pages := documentPages(paper.URx, paper.URy)

	check := &bookmark.Registry{}
	for i, pg := range pages {
		err := check.Add(pg.title, pg.key, pg.level, 0, paper.URy)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		for _, el := range pg.elements {
			err := el.prepare()
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
		}
	}

	return &fixture{opt: opt, paper: paper, pages: pages}, nil
}

func (doc *fixture) write(w io.Writer) (*Report, error) {
	opt := doc.opt
	packet, err := xmpPacket(opt)
	if err != nil {
		return nil, fmt.Errorf("XMP metadata: %w", err)
	}
	c, err := canvas.New(w, doc.paper, &canvas.Options{
		Version:       opt.Version,
		HumanReadable: opt.HumanReadable,
		ICC:           opt.ICC,
		XMP:           packet,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Version:    opt.Version.String(),
		DocumentID: DocumentID(),
	}

	reg := &bookmark.Registry{}
	for i, pg := range doc.pages {
		pageNo := i + 1

		err := c.BeginPage()
		if err != nil {
			return nil, err
		}
		err = reg.Add(pg.title, pg.key, pg.level, c.PageRef(), doc.paper.URy)
		if err != nil {
			return nil, err
		}
		report.Outline = append(report.Outline, OutlineEntry{
			Title: pg.title,
			Key:   pg.key,
			Level: pg.level,
			Page:  pageNo,
		})

		for _, el := range pg.elements {
			err := el.draw(c)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", pageNo, err)
			}
			if im, ok := el.(*raster); ok {
				report.Images = append(report.Images, ImageInfo{
					Kind:   im.kind.String(),
					Width:  im.width,
					Height: im.height,
					Page:   pageNo,
					SHA256: pattern.Fingerprint(im.img),
				})
			}
		}

		err = c.EndPage()
		if err != nil {
			return nil, err
		}
	}

	err = c.Finish(reg.Outline(), metadata(opt))
	if err != nil {
		return nil, err
	}

	report.Pages = c.PageNumber()
	return report, nil
}
