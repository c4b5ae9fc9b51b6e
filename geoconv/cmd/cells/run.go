/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cells

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"golang.org/x/sync/errgroup"

	"github.com/hypermodeinc/geoconv/geo"
	"github.com/hypermodeinc/geoconv/x"
)

// Cells is the sub-command invoked when running "geoconv cells".
var Cells x.SubCommand

func init() {
	Cells.Cmd = &cobra.Command{
		Use:   "cells",
		Short: "Print S2 index tokens for GeoJSON geometries",
		Long: `
Cells decodes a GeoJSON document and prints, for every point, polygon or
multi version of those, a line with the geometry index followed by its S2
index tokens. Other geometries are skipped with a warning.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defer x.StartProfile(Cells.Conf).Stop()
			if err := run(Cells, os.Stdout); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
		Annotations: map[string]string{"group": "tool"},
	}
	Cells.EnvPrefix = "GEOCONV_CELLS"

	flag := Cells.Cmd.Flags()
	flag.StringP("in", "i", "-", "GeoJSON file to index. Use - for stdin.")
	flag.IntP("workers", "j", runtime.NumCPU(), "Number of geometries covered concurrently.")
}

type result struct {
	toks []string
	err  error
}

// cover computes the tokens of every geometry using up to workers goroutines.
// Results keep the input order.
func cover(gs []geom.T, workers int) []result {
	out := make([]result, len(gs))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range gs {
		i := i
		g.Go(func() error {
			toks, err := geo.IndexTokens(gs[i])
			out[i] = result{toks: toks, err: err}
			if err == nil && glog.V(2) {
				_, cells, _ := geo.IndexCells(gs[i])
				var area geo.Area
				for _, c := range cells {
					area += geo.CellArea(c)
				}
				glog.Infof("Geometry %d covered by %d cells, %s within %s",
					i, len(cells), area, geo.CoverRadius(cells))
			}
			return nil
		})
	}
	x.Checkf(g.Wait(), "while covering %d geometries", len(gs))
	return out
}

func run(sc x.SubCommand, w io.Writer) error {
	data, err := x.ReadInput(sc.GetStringP("in", "i", "-"))
	if err != nil {
		return err
	}
	gs, err := geo.Converter{MaxDepth: sc.GetIntP("max_depth", "", geo.DefaultMaxDepth)}.Unmarshal(data)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var skipped, tokens int
	for i, r := range cover(gs, sc.GetIntP("workers", "j", runtime.NumCPU())) {
		if r.err != nil {
			glog.Warningf("Skipping geometry %d: %v", i, r.err)
			skipped++
			continue
		}
		tokens += len(r.toks)
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", i, strings.Join(r.toks, " ")); err != nil {
			return err
		}
	}
	glog.Infof("Wrote %s tokens for %s geometries, skipped %s",
		humanize.Comma(int64(tokens)), humanize.Comma(int64(len(gs)-skipped)),
		humanize.Comma(int64(skipped)))
	return bw.Flush()
}
