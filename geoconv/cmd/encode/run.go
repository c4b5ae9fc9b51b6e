/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package encode

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/geoconv/geo"
	"github.com/hypermodeinc/geoconv/types"
	"github.com/hypermodeinc/geoconv/x"
)

// Encode is the sub-command invoked when running "geoconv encode".
var Encode x.SubCommand

func init() {
	Encode.Cmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode WKT or WKB geometries as GeoJSON",
		Long: `
Encode reads one geometry per line, as WKT or as hex encoded WKB, and prints
one GeoJSON document per line. Measures are dropped.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defer x.StartProfile(Encode.Conf).Stop()
			if err := run(Encode, os.Stdout); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
		Annotations: map[string]string{"group": "tool"},
	}
	Encode.EnvPrefix = "GEOCONV_ENCODE"

	flag := Encode.Cmd.Flags()
	flag.StringP("in", "i", "-", "File with one geometry per line. Use - for stdin.")
	flag.Bool("wkb", false, "Input lines are hex encoded WKB instead of WKT.")
	flag.String("as", "geometry", "Output document, one of [geometry, feature, collection]")
	flag.Bool("bbox", false, "Attach a bbox member to every encoded geometry.")
}

func run(sc x.SubCommand, w io.Writer) error {
	as, err := geo.ParseWrap(sc.GetStringP("as", "", "geometry"))
	if err != nil {
		return err
	}
	lines, err := x.ReadLines(sc.GetStringP("in", "i", "-"))
	if err != nil {
		return err
	}
	c := geo.Converter{
		MaxDepth:    sc.GetIntP("max_depth", "", geo.DefaultMaxDepth),
		BoundingBox: sc.GetBoolP("bbox", "", false),
	}
	isWKB := sc.GetBoolP("wkb", "", false)

	bw := bufio.NewWriter(w)
	for i, line := range lines {
		g, err := parse(line, isWKB)
		if err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
		data, err := c.Marshal(g.T, as)
		if err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
		if _, err := fmt.Fprintf(bw, "%s\n", data); err != nil {
			return err
		}
	}
	glog.Infof("Encoded %s geometries as %s", humanize.Comma(int64(len(lines))), as)
	return bw.Flush()
}

func parse(line string, isWKB bool) (types.Geo, error) {
	if !isWKB {
		return types.ParseWKT(line)
	}
	b, err := hex.DecodeString(strings.TrimPrefix(line, "0x"))
	if err != nil {
		return types.Geo{}, errors.Wrap(err, "while decoding hex WKB")
	}
	var g types.Geo
	err = g.UnmarshalBinary(b)
	return g, err
}
