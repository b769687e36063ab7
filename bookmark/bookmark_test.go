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

package bookmark

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/destination"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/outline"
)

// node is a simplified view of an outline item, for comparisons.
type node struct {
	Title    string
	Open     bool
	Children []node
}

func simplify(items []*outline.Item) []node {
	var res []node
	for _, item := range items {
		res = append(res, node{
			Title:    item.Title,
			Open:     item.Open,
			Children: simplify(item.Children),
		})
	}
	return res
}

func TestHierarchy(t *testing.T) {
	r := &Registry{}
	entries := []struct {
		title, key string
		level      int
	}{
		{"Title Page", "title", 0},
		{"Chapter 1", "ch1", 0},
		{"Section 1.1", "s11", 1},
		{"Section 1.1.1", "s111", 2},
		{"Section 1.2", "s12", 1},
		{"Chapter 2", "ch2", 0},
		{"Appendix", "app", 0},
	}
	for i, e := range entries {
		err := r.Add(e.title, e.key, e.level, pdf.Reference(i+1), 800)
		if err != nil {
			t.Fatal(err)
		}
	}

	expected := []node{
		{Title: "Title Page"},
		{Title: "Chapter 1", Open: true, Children: []node{
			{Title: "Section 1.1", Open: true, Children: []node{
				{Title: "Section 1.1.1"},
			}},
			{Title: "Section 1.2"},
		}},
		{Title: "Chapter 2"},
		{Title: "Appendix"},
	}
	got := simplify(r.Outline().Items)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("wrong outline (-want +got):\n%s", diff)
	}

	parents := map[string]string{}
	for _, a := range r.Anchors() {
		parents[a.Key] = a.Parent
	}
	expectedParents := map[string]string{
		"title": "",
		"ch1":   "",
		"s11":   "ch1",
		"s111":  "s11",
		"s12":   "ch1",
		"ch2":   "",
		"app":   "",
	}
	if diff := cmp.Diff(expectedParents, parents); diff != "" {
		t.Errorf("wrong parents (-want +got):\n%s", diff)
	}
	if r.Len() != len(entries) {
		t.Errorf("expected %d anchors, got %d", len(entries), r.Len())
	}
}

func TestDestinations(t *testing.T) {
	r := &Registry{}
	err := r.Add("A", "a", 0, 7, 841.89)
	if err != nil {
		t.Fatal(err)
	}
	err = r.Add("B", "b", 1, 9, 500)
	if err != nil {
		t.Fatal(err)
	}

	tree := r.Outline()
	a := tree.Items[0].Destination.(*destination.XYZ)
	if a.Page != pdf.Reference(7) || a.Top != 841.89 || a.Left != 0 {
		t.Errorf("wrong destination for A: %v", a)
	}
	b := tree.Items[0].Children[0].Destination.(*destination.XYZ)
	if b.Page != pdf.Reference(9) || b.Top != 500 {
		t.Errorf("wrong destination for B: %v", b)
	}
}

func TestAddErrors(t *testing.T) {
	r := &Registry{}

	err := r.Add("Orphan", "orphan", 1, 1, 0)
	if !errors.Is(err, ErrLevel) {
		t.Errorf("expected ErrLevel, got %v", err)
	}

	err = r.Add("Top", "top", 0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	err = r.Add("Skip", "skip", 2, 1, 0)
	if !errors.Is(err, ErrLevel) {
		t.Errorf("expected ErrLevel, got %v", err)
	}
	err = r.Add("Negative", "neg", -1, 1, 0)
	if !errors.Is(err, ErrLevel) {
		t.Errorf("expected ErrLevel, got %v", err)
	}
	err = r.Add("Again", "top", 0, 2, 0)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	err = r.Add("No key", "", 0, 2, 0)
	if !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey, got %v", err)
	}

	// failed calls do not change the registry
	if r.Len() != 1 {
		t.Errorf("expected 1 anchor, got %d", r.Len())
	}
	err = r.Add("Child", "child", 1, 2, 0)
	if err != nil {
		t.Errorf("valid child rejected: %v", err)
	}
}

func TestAnchorsCopy(t *testing.T) {
	r := &Registry{}
	if err := r.Add("A", "a", 0, 1, 0); err != nil {
		t.Fatal(err)
	}
	anchors := r.Anchors()
	anchors[0].Title = "changed"
	if r.Anchors()[0].Title != "A" {
		t.Error("Anchors exposes internal state")
	}
}

func TestEmpty(t *testing.T) {
	r := &Registry{}
	tree := r.Outline()
	if len(tree.Items) != 0 {
		t.Errorf("expected empty outline, got %d items", len(tree.Items))
	}
}

func TestWriteOutline(t *testing.T) {
	buf := &bytes.Buffer{}
	doc, err := document.WriteMultiPage(buf, document.A4, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	reg := &Registry{}
	levels := []int{0, 0, 1, 1, 0, 0}
	for i, level := range levels {
		ref := doc.Out.Alloc()
		page := doc.AddPage()
		page.Ref = ref
		err = page.Close()
		if err != nil {
			t.Fatal(err)
		}
		err = reg.Add(string(rune('A'+i)), string(rune('a'+i)), level, ref, document.A4.URy)
		if err != nil {
			t.Fatal(err)
		}
	}

	ref, err := doc.RM.Store(reg.Outline())
	if err != nil {
		t.Fatal(err)
	}
	doc.Out.GetMeta().Catalog.Outlines = ref
	err = doc.Close()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	tree, err := pdf.Decode(pdf.NewCursor(r), r.GetMeta().Catalog.Outlines, outline.Decode)
	if err != nil {
		t.Fatal(err)
	}
	expected := []node{
		{Title: "A"},
		{Title: "B", Open: true, Children: []node{
			{Title: "C"},
			{Title: "D"},
		}},
		{Title: "E"},
		{Title: "F"},
	}
	if diff := cmp.Diff(expected, simplify(tree.Items)); diff != "" {
		t.Errorf("wrong outline read back (-want +got):\n%s", diff)
	}
}
