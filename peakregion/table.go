package peakregion

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/chromrange/interval"
	"github.com/klauspost/compress/gzip"
)

// regionRow is a single row of a peak-region table.
type regionRow struct {
	Chrom string  `tsv:"CHROM"` // Chromatogram
	Label string  `tsv:"LABEL"` // Analyte
	Start float64 `tsv:"START"` // Window start
	Stop  float64 `tsv:"STOP"`  // Window stop
	Color string  `tsv:"COLOR"` // "#rrggbb", or empty for the label default
}

// uncoloredRegionRow is a row of a table without a COLOR column.
type uncoloredRegionRow struct {
	Chrom string  `tsv:"CHROM"`
	Label string  `tsv:"LABEL"`
	Start float64 `tsv:"START"`
	Stop  float64 `tsv:"STOP"`
}

// hasColumn reports whether the tab-separated header line names col.
func hasColumn(header, col string) bool {
	for _, name := range strings.Split(strings.TrimRight(header, "\r\n"), "\t") {
		if name == col {
			return true
		}
	}
	return false
}

// ReadRegions reads a peak-region table.  The COLOR column may be left out
// entirely, in which case every region gets its label's default color.
// Inverted windows and malformed colors are reported as errors.Invalid.
func ReadRegions(r io.Reader) ([]Region, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.E(err, "peakregion.ReadRegions")
	}
	colored := hasColumn(header, "COLOR")
	tsvReader := tsv.NewReader(io.MultiReader(strings.NewReader(header), br))
	tsvReader.HasHeaderRow = true
	tsvReader.UseHeaderNames = true

	var regions []Region
	for lineIdx := 2; ; lineIdx++ {
		var row regionRow
		if colored {
			err = tsvReader.Read(&row)
		} else {
			var u uncoloredRegionRow
			err = tsvReader.Read(&u)
			row = regionRow{Chrom: u.Chrom, Label: u.Label, Start: u.Start, Stop: u.Stop}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, "peakregion.ReadRegions")
		}
		color := interval.LabelColor(row.Label)
		if row.Color != "" {
			if color, err = interval.ParseRGB(row.Color); err != nil {
				return nil, errors.E(err, fmt.Sprintf("peakregion.ReadRegions: line %d", lineIdx))
			}
		}
		cr, err := interval.NewColoredRange(row.Start, row.Stop, row.Label, color, nil)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("peakregion.ReadRegions: line %d", lineIdx))
		}
		regions = append(regions, Region{Chrom: row.Chrom, ColoredRange: cr})
	}
	return regions, nil
}

// ReadRegionsFromPath is a wrapper for ReadRegions that takes a path instead
// of an io.Reader.  Paths ending in .gz are decompressed.
func ReadRegionsFromPath(ctx context.Context, path string) (regions []Region, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.E(err, "couldn't open peak-region table:", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, errors.E(err, path)
		}
		defer gz.Close()
		reader = gz
	}
	if regions, err = ReadRegions(reader); err != nil {
		return nil, errors.E(err, path)
	}
	log.Printf("%s: peak regions loaded, %d region(s)", path, len(regions))
	return regions, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteClaims writes one peak-region row per claimed piece.  Claims without
// pieces produce no rows.
func WriteClaims(w io.Writer, claims []Claim) error {
	tsvw := tsv.NewWriter(w)
	for _, col := range []string{"CHROM", "LABEL", "START", "STOP", "COLOR"} {
		tsvw.WriteString(col)
	}
	if err := tsvw.EndLine(); err != nil {
		return err
	}
	for _, c := range claims {
		if len(c.Pieces) == 0 && log.At(log.Debug) {
			log.Debug.Printf("%s %s: window %v fully claimed by earlier regions", c.Chrom, c.Label, c.Range)
		}
		for _, p := range c.Pieces {
			tsvw.WriteString(c.Chrom)
			tsvw.WriteString(c.Label)
			tsvw.WriteString(formatCoord(p.Start))
			tsvw.WriteString(formatCoord(p.Stop))
			tsvw.WriteString(c.Color.String())
			if err := tsvw.EndLine(); err != nil {
				return err
			}
		}
	}
	return tsvw.Flush()
}
