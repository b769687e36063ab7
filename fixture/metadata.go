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

package fixture

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdf-fixture/canvas"
)

// Document properties.
const (
	docTitle       = "MuPDF Test Document"
	docSubject     = "A CC0 Public Domain PDF for Testing"
	docKeywords    = "test, outline, bookmarks, images, CC0"
	docCreator     = "pdf-fixture"
	docProducer    = "seehuhn.de/go/pdf"
	licenseURL     = "https://creativecommons.org/publicdomain/zero/1.0/"
	documentIDName = "https://seehuhn.de/go/pdf-fixture/test-with-outline-and-images"
)

// DocumentID returns the XMP document ID of the fixture.  The ID only
// depends on the document contents, so repeated runs produce the same ID.
func DocumentID() string {
	return "uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(documentIDName)).String()
}

// instanceID identifies one rendition of the document; files written
// with different options get different IDs.
func instanceID(opt *Options) string {
	key := fmt.Sprintf("%s|%s|%t|%t|%d",
		opt.Version, opt.Language, opt.ICC, opt.HumanReadable, opt.CreationDate.Unix())
	docID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(documentIDName))
	return "uuid:" + uuid.NewSHA1(docID, []byte(key)).String()
}

// metadata returns the document information dictionary and the catalog
// entries written when the document is closed.
func metadata(opt *Options) *canvas.Metadata {
	info := &pdf.Info{
		Title:    docTitle,
		Subject:  docSubject,
		Keywords: docKeywords,
		Creator:  docCreator,
		Producer: docProducer,
	}
	return &canvas.Metadata{
		Info:     info,
		Lang:     opt.Language,
		PageMode: "UseOutlines",
	}
}

// xmpPacket returns the XMP metadata of the document.
func xmpPacket(opt *Options) (*xmp.Packet, error) {
	xDefault := language.MustParse("x-default")
	dc := &xmp.DublinCore{}
	dc.Title.Set(xDefault, docTitle)
	dc.Title.Set(opt.Language, docTitle)
	dc.Description.Set(xDefault, docSubject)
	dc.Description.Set(opt.Language, docSubject)
	dc.Creator.Append(xmp.NewProperName(docCreator))

	rights := &xmp.RightsManagement{
		Marked:       xmp.OptionalBool{V: 1}, // public domain, not rights-managed
		WebStatement: xmp.NewText(licenseURL),
	}
	mm := &xmp.MediaManagement{
		DocumentID: xmp.NewText(DocumentID()),
		InstanceID: xmp.NewText(instanceID(opt)),
	}
	pdfInfo := &xmp.PDF{
		Keywords:   xmp.NewText(docKeywords),
		PDFVersion: xmp.NewText(opt.Version.String()),
		Producer:   xmp.NewAgentName(docProducer),
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, rights, mm, pdfInfo)
	if err != nil {
		return nil, err
	}

	if !opt.CreationDate.IsZero() {
		basic := &xmp.Basic{
			CreateDate: xmp.NewDate(opt.CreationDate, xmp.PrecisionSecond),
			ModifyDate: xmp.NewDate(opt.CreationDate, xmp.PrecisionSecond),
		}
		err = packet.Set(basic)
		if err != nil {
			return nil, err
		}
	}

	return packet, nil
}
