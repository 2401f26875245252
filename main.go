package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"project/ip-filter/address"
	"project/ip-filter/config"
	"project/ip-filter/formatter"
	"project/ip-filter/input"
	"project/ip-filter/version"
)

var (
	configFile  = flag.String("config", "", "Optional YAML file describing the output views")
	format      = flag.String("format", "", "Output format: dotted or ptr (overrides the config file)")
	showVersion = flag.Bool("version", false, "Print the version and exit")
)

func main() {
	// Diagnostics go to stderr unless the user asks otherwise.
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	// 1. Load Configuration
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			glog.Exitf("Failed to load configuration: %v", err)
		}
		glog.V(1).Infof("Configuration loaded from %s: %d views", *configFile, len(cfg.Views))
	}
	if *format != "" {
		cfg.Format = *format
		if err := cfg.Validate(); err != nil {
			glog.Exitf("%v", err)
		}
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		glog.Exitf("%v", err)
	}
}

// run reads the pool from in, sorts it once and writes every view to out.
func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	style, err := formatter.ParseStyle(cfg.Format)
	if err != nil {
		return err
	}

	res, err := input.Read(in)
	if err != nil {
		return err
	}
	if len(res.Skipped) > 0 {
		glog.Warningf("%d of %d records skipped", len(res.Skipped), len(res.Skipped)+len(res.Pool))
	}

	pool := res.Pool
	address.ReverseLexicographicSort(pool)

	for i, view := range cfg.Views {
		selected := view.Apply(pool)
		glog.V(1).Infof("view %d (%s %v): %d addresses", i, view.Kind, view.Values, len(selected))
		if err := formatter.Write(out, selected, style); err != nil {
			return errors.Wrapf(err, "failed to write view %d", i)
		}
	}
	return nil
}
