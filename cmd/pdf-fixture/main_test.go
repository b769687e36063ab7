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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdf-fixture/fixture"
)

func TestOptions(t *testing.T) {
	cfg := &config{
		version: "1.5",
		lang:    "de-CH",
		icc:     true,
		date:    "2026-03-04T05:06:07Z",
	}
	opt, err := cfg.options()
	if err != nil {
		t.Fatal(err)
	}
	if opt.Version != pdf.V1_5 {
		t.Errorf("wrong version %s", opt.Version)
	}
	if opt.Language != language.MustParse("de-CH") {
		t.Errorf("wrong language %s", opt.Language)
	}
	if !opt.ICC || opt.HumanReadable {
		t.Errorf("wrong flags %v", opt)
	}
	if !opt.CreationDate.Equal(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)) {
		t.Errorf("wrong date %s", opt.CreationDate)
	}
}

func TestBadOptions(t *testing.T) {
	cases := []*config{
		{version: "1.8", lang: "en"},
		{version: "1.7", lang: "not a language"},
		{version: "1.7", lang: "en", date: "yesterday"},
	}
	for _, cfg := range cases {
		_, err := cfg.options()
		if err == nil {
			t.Errorf("%+v: expected an error", *cfg)
		}
	}
}

func TestBadVersionCause(t *testing.T) {
	cfg := &config{version: "3.1", lang: "en"}
	_, err := cfg.options()
	_, cause := pdf.ParseVersion(cfg.version)
	if cause == nil {
		t.Fatal("3.1 parsed as a valid PDF version")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap %v", err, cause)
	}
	if !strings.Contains(err.Error(), `"3.1"`) {
		t.Errorf("error %q does not name the version", err)
	}
}

func TestYAMLReport(t *testing.T) {
	report := &fixture.Report{
		Path:       "out.pdf",
		Version:    "1.7",
		Pages:      1,
		DocumentID: "uuid:x",
		Outline:    []fixture.OutlineEntry{{Title: "A", Key: "a", Page: 1}},
		Images: []fixture.ImageInfo{
			{Kind: "checker", Width: 10, Height: 20, Page: 1, SHA256: strings.Repeat("0", 64)},
		},
	}
	buf := &bytes.Buffer{}
	err := writeYAML(buf, report)
	if err != nil {
		t.Fatal(err)
	}

	got := &fixture.Report{}
	err = yaml.Unmarshal(buf.Bytes(), got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(report, got); diff != "" {
		t.Errorf("wrong report (-want +got):\n%s", diff)
	}
	if !bytes.Contains(buf.Bytes(), []byte("pdf_version:")) {
		t.Errorf("unexpected YAML keys:\n%s", buf.String())
	}
}

func TestTextReport(t *testing.T) {
	report := &fixture.Report{
		Path:    "out.pdf",
		Version: "1.7",
		Pages:   2,
		Outline: []fixture.OutlineEntry{
			{Title: "Chapter", Key: "ch", Page: 1},
			{Title: "Section", Key: "sec", Level: 1, Page: 2},
		},
		Images: []fixture.ImageInfo{
			{Kind: "circles", Width: 8, Height: 8, Page: 2, SHA256: strings.Repeat("ab", 32)},
		},
	}
	buf := &bytes.Buffer{}
	writeText(buf, report)
	out := buf.String()
	for _, s := range []string{"out.pdf", "2 pages", "    Section (page 2)", "circles 8x8"} {
		if !strings.Contains(out, s) {
			t.Errorf("report does not contain %q:\n%s", s, out)
		}
	}
}
