// Package mafparser reads long-form somatic mutation ledgers. Each
// supported delivery format is a named Layout, so callers select a layout
// by name the same way they would pick a file parser.
package mafparser

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/maddyras/cptac/mutation"
)

// Layout describes one mutation-ledger delivery format.
type Layout struct {
	Delimiter rune
	Comment   rune
	Decode    func(l *Layout, r io.Reader) ([]mutation.Record, error)
}

// Layouts registers the known formats. SOMATIC is the curated five-column
// export (Clinical_Patient_Key, Patient_Id, Gene, Mutation, Location);
// MAF is a raw MAF with standard column names and a two-character sample
// type tag on the barcode.
var Layouts = map[string]Layout{
	"SOMATIC": {
		Delimiter: '\t',
		Comment:   '#',
		Decode:    decodeSomatic,
	},
	"MAF": {
		Delimiter: '\t',
		Comment:   '#',
		Decode:    decodeMAF,
	},
}

// LayoutNames lists the registered layout names for help text.
func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for name := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		i++
	}

	return b.String()
}

// Parser reads ledgers in one layout.
type Parser struct {
	Layout Layout
}

// New returns a parser for the named layout.
func New(layout string) (*Parser, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return &Parser{Layout: l}, nil
}

// Parse decodes every record in the reader. Record sample ids are
// returned as found in the file; linking them into a cohort's sample key
// space is the caller's job.
func (p *Parser) Parse(r io.Reader) ([]mutation.Record, error) {
	return p.Layout.Decode(&p.Layout, r)
}

// ParseFile decodes a ledger file, transparently decompressing a .gz
// suffix.
func (p *Parser) ParseFile(path string) ([]mutation.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	}

	return p.Parse(r)
}

func (l *Layout) csvReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = l.Delimiter
	cr.Comment = l.Comment
	cr.LazyQuotes = true

	return cr
}

type somaticRow struct {
	PatientKey string `csv:"Clinical_Patient_Key"`
	PatientID  string `csv:"Patient_Id"`
	Gene       string `csv:"Gene"`
	Mutation   string `csv:"Mutation"`
	Location   string `csv:"Location"`
}

func decodeSomatic(l *Layout, r io.Reader) ([]mutation.Record, error) {
	rows := []*somaticRow{}
	if err := gocsv.UnmarshalCSV(l.csvReader(r), &rows); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]mutation.Record, len(rows))
	for i, row := range rows {
		out[i] = mutation.Record{
			Sample:   row.PatientID,
			Gene:     row.Gene,
			Type:     row.Mutation,
			Location: row.Location,
		}
	}

	return out, nil
}

type mafRow struct {
	Gene    string `csv:"Hugo_Symbol"`
	Class   string `csv:"Variant_Classification"`
	Protein string `csv:"HGVSp_Short"`
	Barcode string `csv:"Tumor_Sample_Barcode"`
}

func decodeMAF(l *Layout, r io.Reader) ([]mutation.Record, error) {
	rows := []*mafRow{}
	if err := gocsv.UnmarshalCSV(l.csvReader(r), &rows); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]mutation.Record, len(rows))
	for i, row := range rows {
		out[i] = mutation.Record{
			Sample:   trimTypeTag(row.Barcode),
			Gene:     row.Gene,
			Type:     row.Class,
			Location: row.Protein,
		}
	}

	return out, nil
}

// trimTypeTag strips the trailing two-character sample type tag MAF
// barcodes carry (C3L-00006_T reads as patient C3L-00006).
func trimTypeTag(barcode string) string {
	if len(barcode) > 2 && barcode[len(barcode)-2] == '_' {
		return barcode[:len(barcode)-2]
	}

	return barcode
}
