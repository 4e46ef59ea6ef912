package main

/*
bio-peakregions resolves conflicting chromatographic peak regions and writes
the retention-time spans each selected analyte gets to keep, for
chromatogram export.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/chromrange/peakregion"
)

var (
	outPath     = flag.String("out", "bio-peakregions.tsv", "Output path; gzipped if it ends in .gz")
	selectFlag  = flag.String("select", "", "Comma-separated analyte labels to export; empty selects all")
	window      = flag.String("window", peakregion.DefaultOpts.Window, "Restrict export to a retention-time window, formatted as <start>-<stop>")
	parallelism = flag.Int("parallelism", peakregion.DefaultOpts.Parallelism, "Maximum number of tables to process at once; 0 = runtime.NumCPU()")
)

func bioPeakRegionsUsage() {
	fmt.Printf("Usage: %s [OPTIONS] table...\n", os.Args[0])
	fmt.Printf("Each table is a TSV with columns CHROM, LABEL, START, STOP, COLOR.\n")
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

// splitLabels splits a comma-separated -select value, dropping empty entries.
func splitLabels(s string) []string {
	var labels []string
	for _, label := range strings.Split(s, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func main() {
	flag.Usage = bioPeakRegionsUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() == 0 {
		log.Fatalf("Missing positional arguments (at least one peak-region table required)")
	}
	opts := peakregion.DefaultOpts
	opts.Window = *window
	opts.Parallelism = *parallelism
	opts.Select = splitLabels(*selectFlag)
	ctx := vcontext.Background()
	if err := peakregion.Export(ctx, flag.Args(), *outPath, &opts); err != nil {
		log.Panicf("%v", err)
	}
	log.Debug.Printf("exiting")
}
