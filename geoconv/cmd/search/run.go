/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package search

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geoconv/geo"
	"github.com/hypermodeinc/geoconv/index"
	"github.com/hypermodeinc/geoconv/x"
)

// Search is the sub-command invoked when running "geoconv search".
var Search x.SubCommand

func init() {
	Search.Cmd = &cobra.Command{
		Use:   "search",
		Short: "Find GeoJSON geometries intersecting a bounding box",
		Long: `
Search decodes a GeoJSON document, indexes the bounds of every geometry and
prints the index of each geometry whose bounds intersect --bbox.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defer x.StartProfile(Search.Conf).Stop()
			if err := run(Search, os.Stdout); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
		Annotations: map[string]string{"group": "tool"},
	}
	Search.EnvPrefix = "GEOCONV_SEARCH"

	flag := Search.Cmd.Flags()
	flag.StringP("in", "i", "-", "GeoJSON file to search. Use - for stdin.")
	flag.StringSlice("bbox", nil, "Query box as minx,miny,maxx,maxy")
	x.Check(Search.Cmd.MarkFlagRequired("bbox"))
}

func run(sc x.SubCommand, w io.Writer) error {
	vals, err := sc.GetFloat64s("bbox")
	if err != nil {
		return err
	}
	box, err := index.ParseBox(vals)
	if err != nil {
		return err
	}
	gs, err := load(sc)
	if err != nil {
		return err
	}

	rt := index.NewRTree()
	for i, g := range gs {
		if _, err := rt.Insert(i, g); err != nil {
			return err
		}
	}
	glog.Infof("Indexed %s of %s geometries",
		humanize.Comma(int64(rt.Len())), humanize.Comma(int64(len(gs))))

	bw := bufio.NewWriter(w)
	for _, id := range rt.Search(box[0], box[1], box[2], box[3]) {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func load(sc x.SubCommand) ([]geom.T, error) {
	data, err := x.ReadInput(sc.GetStringP("in", "i", "-"))
	if err != nil {
		return nil, err
	}
	return geo.Converter{MaxDepth: sc.GetIntP("max_depth", "", geo.DefaultMaxDepth)}.Unmarshal(data)
}
