package peakregion

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/chromrange/interval"
	"github.com/klauspost/compress/gzip"
)

type Opts struct {
	// Commandline options.
	Select      []string
	Window      string
	Parallelism int
}

var DefaultOpts = Opts{
	Parallelism: 0,
}

// exportTable loads one table and resolves its claims.  It also returns every
// label in the table, selected or not.
func exportTable(ctx context.Context, path string, opts *Opts, window *interval.Range) ([]Claim, []string, error) {
	regions, err := ReadRegionsFromPath(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	sel := NewSelection()
	for _, r := range regions {
		sel.Add(r.Label)
	}
	if len(opts.Select) > 0 {
		sel.DeselectAll()
		for _, label := range opts.Select {
			if !sel.Select(label) {
				log.Debug.Printf("%s: selected analyte %q not present", path, label)
			}
		}
	}
	regions = sel.Filter(regions)
	if window != nil {
		regions = ClipToWindow(regions, *window)
	}
	if log.At(log.Debug) {
		for _, c := range FindConflicts(regions) {
			log.Debug.Printf("%s: %s %v conflicts with %s %v", path,
				regions[c.I].Label, regions[c.I].Range, regions[c.J].Label, regions[c.J].Range)
		}
	}
	return ClaimRegions(regions), sel.Labels(), nil
}

// checkSelected returns an errors.Invalid error naming the selected labels
// that appear in none of the tables, each with the closest known label.
func checkSelected(selected []string, tableLabels [][]string) error {
	known := NewSelection()
	for _, labels := range tableLabels {
		for _, l := range labels {
			known.Add(l)
		}
	}
	var missing []string
	for _, label := range selected {
		if known.IsSelected(label) {
			continue
		}
		if closest, dist := known.Closest(label); dist >= 0 {
			missing = append(missing, fmt.Sprintf("%q (closest: %q)", label, closest))
		} else {
			missing = append(missing, fmt.Sprintf("%q", label))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return errors.E(errors.Invalid, "peakregion.Export: selected analyte(s) not found in any table:", strings.Join(missing, ", "))
}

// Export reads the peak-region tables in inPaths, keeps the selected analytes
// within the optional window, resolves conflicting regions per table and
// writes all claimed pieces to outPath, in input order.  outPath is gzipped if
// it ends in .gz.  A selected label found in no table is an errors.Invalid
// error, and nothing is written.
func Export(ctx context.Context, inPaths []string, outPath string, opts *Opts) (err error) {
	var window *interval.Range
	if opts.Window != "" {
		var w interval.Range
		if w, err = interval.ParseRangeString(opts.Window); err != nil {
			return err
		}
		window = &w
	}
	nTable := len(inPaths)
	if nTable == 0 {
		return errors.E(errors.Invalid, "peakregion.Export: no input tables")
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > nTable {
		parallelism = nTable
	}

	results := make([][]Claim, nTable)
	tableLabels := make([][]string, nTable)
	log.Printf("peakregion.Export: %d table(s), %d job(s)", nTable, parallelism)
	err = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * nTable) / parallelism
		endIdx := ((jobIdx + 1) * nTable) / parallelism
		for i := startIdx; i < endIdx; i++ {
			claims, labels, err := exportTable(ctx, inPaths[i], opts, window)
			if err != nil {
				return err
			}
			results[i] = claims
			tableLabels[i] = labels
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err = checkSelected(opts.Select, tableLabels); err != nil {
		return err
	}

	var all []Claim
	for _, claims := range results {
		all = append(all, claims...)
	}

	var out file.File
	if out, err = file.Create(ctx, outPath); err != nil {
		return errors.E(err, "couldn't create export file:", outPath)
	}
	defer file.CloseAndReport(ctx, out, &err)
	switch fileio.DetermineType(outPath) {
	case fileio.Gzip:
		gz := gzip.NewWriter(out.Writer(ctx))
		if err = WriteClaims(gz, all); err != nil {
			return errors.E(err, "error writing to export file:", outPath)
		}
		if err = gz.Close(); err != nil {
			return errors.E(err, "error writing to export file:", outPath)
		}
	default:
		if err = WriteClaims(out.Writer(ctx), all); err != nil {
			return errors.E(err, "error writing to export file:", outPath)
		}
	}
	log.Printf("peakregion.Export: wrote %d claim(s) to %s", len(all), outPath)
	return nil
}
