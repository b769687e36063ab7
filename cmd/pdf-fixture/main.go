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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdf-fixture/fixture"
	"seehuhn.de/go/pdf-fixture/internal/buildinfo"
	"seehuhn.de/go/pdf-fixture/internal/profile"
)

// config holds all command-line flag values.
type config struct {
	version string
	human   bool
	lang    string
	icc     bool
	date    string
	yaml    bool
	quiet   bool
}

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	var cfg config
	flag.StringVar(&cfg.version, "pdf-version", "1.7", "PDF `version` of the output file")
	flag.BoolVar(&cfg.human, "human", false, "write a human-readable PDF file")
	flag.StringVar(&cfg.lang, "lang", "en", "document `language`")
	flag.BoolVar(&cfg.icc, "icc", false, "tag images with an sRGB ICC profile")
	flag.StringVar(&cfg.date, "date", "", "creation `date` for the XMP metadata (RFC 3339)")
	flag.BoolVar(&cfg.yaml, "yaml", false, "print the report in YAML format")
	flag.BoolVar(&cfg.quiet, "q", false, "do not print a report")
	help := flag.Bool("help", false, "show help information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-fixture - generate a sample PDF file for testing\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-fixture"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-fixture [options] [output.pdf]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  output.pdf  output file (default %s)\n\n", fixture.DefaultName)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, cpuprofile, memprofile string) (err error) {
	stop, err := profile.Start(cpuprofile, memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	opt, err := cfg.options()
	if err != nil {
		return err
	}

	outName := fixture.DefaultName
	if flag.NArg() > 0 {
		outName = flag.Arg(0)
	}

	report, err := fixture.Generate(outName, opt)
	if err != nil {
		return err
	}

	switch {
	case cfg.quiet:
		return nil
	case cfg.yaml:
		return writeYAML(os.Stdout, report)
	case term.IsTerminal(int(os.Stdout.Fd())):
		writeText(os.Stdout, report)
	}
	return nil
}

// options converts the command-line flags into generator options.
func (cfg *config) options() (*fixture.Options, error) {
	v, err := pdf.ParseVersion(cfg.version)
	if err != nil {
		return nil, fmt.Errorf("invalid PDF version %q: %w", cfg.version, err)
	}
	lang, err := language.Parse(cfg.lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", cfg.lang, err)
	}

	opt := &fixture.Options{
		Version:       v,
		HumanReadable: cfg.human,
		Language:      lang,
		ICC:           cfg.icc,
	}
	if cfg.date != "" {
		opt.CreationDate, err = time.Parse(time.RFC3339, cfg.date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", cfg.date, err)
		}
	}
	return opt, nil
}

func writeYAML(w io.Writer, report *fixture.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(report)
	if err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, report *fixture.Report) {
	fmt.Fprintf(w, "wrote %s (PDF %s, %d pages)\n", report.Path, report.Version, report.Pages)
	fmt.Fprintf(w, "document ID: %s\n", report.DocumentID)
	fmt.Fprintln(w, "outline:")
	for _, e := range report.Outline {
		indent := strings.Repeat("  ", e.Level+1)
		fmt.Fprintf(w, "%s%s (page %d)\n", indent, e.Title, e.Page)
	}
	fmt.Fprintln(w, "images:")
	for _, im := range report.Images {
		fmt.Fprintf(w, "  page %d: %s %dx%d %s\n",
			im.Page, im.Kind, im.Width, im.Height, im.SHA256[:16])
	}
}
