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

// Package bookmark collects named anchors while a document is written,
// and turns them into a document outline.
//
// Anchors are registered in document order.  An anchor at level n > 0
// becomes a child of the most recently registered anchor at level n-1.
package bookmark

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/destination"
	"seehuhn.de/go/pdf/outline"
)

// Anchor is a named position in the document.
type Anchor struct {
	Title string
	Key   string
	Level int

	// Parent is the key of the enclosing anchor, or "" for
	// top-level anchors.
	Parent string

	// Page is the page the anchor points to.
	Page pdf.Reference

	// Top is the vertical position on the page, in PDF user space units.
	Top float64
}

// Errors returned by [Registry.Add].
var (
	ErrEmptyKey     = errors.New("empty bookmark key")
	ErrDuplicateKey = errors.New("duplicate bookmark key")
	ErrLevel        = errors.New("invalid bookmark level")
)

// Registry records anchors and builds the outline.
// The zero value is an empty registry, ready to use.
type Registry struct {
	anchors []Anchor
	keys    map[string]bool

	// open[l] is the index of the most recent anchor at level l
	open []int
}

// Add registers a new anchor.
//
// The level must be between 0 and one more than the level of the previous
// anchor.
func (r *Registry) Add(title, key string, level int, page pdf.Reference, top float64) error {
	if key == "" {
		return fmt.Errorf("%w for %q", ErrEmptyKey, title)
	}
	if r.keys[key] {
		return fmt.Errorf("%w %q", ErrDuplicateKey, key)
	}
	if level < 0 || level > len(r.open) {
		return fmt.Errorf("%w %d for %q (must be between 0 and %d)",
			ErrLevel, level, key, len(r.open))
	}

	if r.keys == nil {
		r.keys = make(map[string]bool)
	}
	r.keys[key] = true

	r.open = r.open[:level]
	var parent string
	if level > 0 {
		parent = r.anchors[r.open[level-1]].Key
	}

	r.anchors = append(r.anchors, Anchor{
		Title:  title,
		Key:    key,
		Level:  level,
		Parent: parent,
		Page:   page,
		Top:    top,
	})
	r.open = append(r.open, len(r.anchors)-1)

	return nil
}

// Len returns the number of registered anchors.
func (r *Registry) Len() int {
	return len(r.anchors)
}

// Anchors returns the registered anchors, in registration order.
func (r *Registry) Anchors() []Anchor {
	return slices.Clone(r.anchors)
}

// Outline builds the document outline.
// Each entry links to the top of its anchor with an /XYZ destination which
// keeps the viewer's zoom, rather than a /Fit view of the whole page.
// Entries with children are shown expanded.
func (r *Registry) Outline() *outline.Outline {
	tree := &outline.Outline{}

	byKey := make(map[string]*outline.Item, len(r.anchors))
	for _, a := range r.anchors {
		item := &outline.Item{
			Title: a.Title,
			Destination: &destination.XYZ{
				Page: a.Page,
				Left: 0,
				Top:  a.Top,
				Zoom: 0,
			},
		}
		byKey[a.Key] = item

		if a.Level == 0 {
			tree.Items = append(tree.Items, item)
		} else {
			parent := byKey[a.Parent]
			parent.Children = append(parent.Children, item)
			parent.Open = true
		}
	}

	return tree
}
