// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sample

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ava-labs/aliassampler/utils/sampler"
)

func writeSamples(w io.Writer, samples []string) error {
	for _, s := range samples {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// writeTable prints each column of [table] along with the probability it
// induces for its own label.
func writeTable(w io.Writer, table *sampler.AliasTable, labels []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tPROBABILITY\tALIAS\tP(DRAW)")
	for i, p := range table.Distribution() {
		fmt.Fprintf(tw, "%s\t%.6f\t%s\t%.6f\n",
			labels[i],
			table.Probability(i),
			labels[table.Alias(i)],
			p,
		)
	}
	return tw.Flush()
}

func writeHistogram(w io.Writer, table *sampler.AliasTable, labels []string, indices []int) error {
	counts := make([]int, table.Len())
	for _, index := range indices {
		counts[index]++
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tCOUNT\tFREQUENCY\tEXPECTED")
	for i, p := range table.Distribution() {
		frequency := 0.0
		if len(indices) > 0 {
			frequency = float64(counts[i]) / float64(len(indices))
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\n", labels[i], counts[i], frequency, p)
	}
	return tw.Flush()
}
