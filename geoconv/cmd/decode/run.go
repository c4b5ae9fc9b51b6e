/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package decode

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/geoconv/geo"
	"github.com/hypermodeinc/geoconv/types"
	"github.com/hypermodeinc/geoconv/x"
)

// Decode is the sub-command invoked when running "geoconv decode".
var Decode x.SubCommand

func init() {
	Decode.Cmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode a GeoJSON document into typed geometries",
		Long: `
Decode reads a GeoJSON geometry, feature or feature collection and prints one
line per decoded geometry, in feature order. With --format summary a YAML
description of each geometry is printed instead.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defer x.StartProfile(Decode.Conf).Stop()
			if err := run(Decode, os.Stdout); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
		Annotations: map[string]string{"group": "tool"},
	}
	Decode.EnvPrefix = "GEOCONV_DECODE"

	flag := Decode.Cmd.Flags()
	flag.StringP("in", "i", "-", "GeoJSON file to decode. Use - for stdin.")
	flag.StringP("format", "f", "wkt", "Output format, one of [wkt, wkb, geojson, summary]")
}

func run(sc x.SubCommand, w io.Writer) error {
	data, err := x.ReadInput(sc.GetStringP("in", "i", "-"))
	if err != nil {
		return err
	}
	c := geo.Converter{MaxDepth: sc.GetIntP("max_depth", "", geo.DefaultMaxDepth)}
	gs, err := c.Unmarshal(data)
	if err != nil {
		return err
	}
	glog.Infof("Decoded %s geometries from %s bytes",
		humanize.Comma(int64(len(gs))), humanize.Comma(int64(len(data))))
	return write(w, gs, sc.GetStringP("format", "f", "wkt"))
}

func write(w io.Writer, gs []geom.T, format string) error {
	if format == "summary" {
		sums := make([]types.Summary, 0, len(gs))
		for _, g := range gs {
			sums = append(sums, types.Summarize(g))
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sums); err != nil {
			return errors.Wrap(err, "while writing summary")
		}
		return enc.Close()
	}

	bw := bufio.NewWriter(w)
	for i, g := range gs {
		line, err := format1(g, format)
		if err != nil {
			return errors.Wrapf(err, "geometry %d", i)
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func format1(g geom.T, format string) (string, error) {
	v := types.Geo{T: g}
	switch format {
	case "wkt":
		return v.MarshalWKT()
	case "wkb":
		b, err := v.MarshalBinary()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	case "geojson":
		b, err := v.MarshalJSON()
		return string(b), err
	default:
		return "", errors.Errorf("unknown format %q", format)
	}
}
