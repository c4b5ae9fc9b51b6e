/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/geoconv/geo"
	"github.com/hypermodeinc/geoconv/geoconv/cmd/cells"
	"github.com/hypermodeinc/geoconv/geoconv/cmd/decode"
	"github.com/hypermodeinc/geoconv/geoconv/cmd/encode"
	"github.com/hypermodeinc/geoconv/geoconv/cmd/search"
	"github.com/hypermodeinc/geoconv/geoconv/cmd/version"
	"github.com/hypermodeinc/geoconv/x"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "geoconv",
	Short: "Geoconv: GeoJSON geometry converter",
	Long: `
Geoconv converts between GeoJSON documents and typed geometries. Geometries
can be printed as WKT, hex WKB or normalized GeoJSON, encoded back from WKT or
WKB, covered with S2 cells for indexing, or searched by bounding box.
` + x.BuildDetails(),
	PersistentPreRunE: cobra.NoArgs,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	goflag.Parse()
	defer glog.Flush()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

func init() {
	RootCmd.PersistentFlags().String("profile_mode", "",
		"Enable profiling mode, one of [cpu, mem, mutex, block]")
	RootCmd.PersistentFlags().Int("block_rate", 0,
		"Block profiling rate. Must be used along with block profile_mode")
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	RootCmd.PersistentFlags().Int("max_depth", geo.DefaultMaxDepth,
		"Deepest geometry collection nesting accepted. 0 means unbounded.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	// Always set stderrthreshold=0. Don't let users set it themselves.
	x.Check(flag.Set("stderrthreshold", "0"))
	x.Check(flag.CommandLine.MarkDeprecated("stderrthreshold",
		"Geoconv always sets this flag to 0. It can't be overwritten."))

	var subcommands = []*x.SubCommand{
		&decode.Decode, &encode.Encode, &cells.Cells, &search.Search, &version.Version,
	}
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(RootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Checkf(sc.Conf.ReadInConfig(), "while reading config %s", cfg)
		}
	})
}
