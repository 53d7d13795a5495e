package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ddvk/ppl/catalog"
	"github.com/ddvk/ppl/config"
	"github.com/ddvk/ppl/hcldef"
	"github.com/ddvk/ppl/metrics"
	"github.com/ddvk/ppl/store"
	"github.com/ddvk/ppl/watch"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

type options struct {
	configPath string
	init       bool
	watch      bool
	out        string
	logLevel   string
	inputs     []string
}

func parseArgs(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pplgen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `pplgen builds PPL pole documents from HCL structure definitions.

Usage:
  pplgen [options] [PATTERN...]

Patterns replace the inputs of the configuration, e.g. "poles/**/*.hcl".

Options:
`)
		fs.PrintDefaults()
	}
	fs.StringVar(&o.configPath, "config", config.FileName, "configuration file")
	fs.BoolVar(&o.init, "init", false, "write a default configuration and exit")
	fs.BoolVar(&o.watch, "watch", false, "rebuild when definitions change")
	fs.StringVar(&o.out, "out", "", "write documents to this directory")
	fs.StringVar(&o.logLevel, "log-level", "", "override the configured log level")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.inputs = fs.Args()
	return o, nil
}

func run(ctx context.Context, out io.Writer, args []string) error {
	o, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if o.init {
		if err := config.WriteDefault(o.configPath); err != nil {
			return err
		}
		log.Infof("wrote %s", o.configPath)
		return nil
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if len(o.inputs) > 0 {
		cfg.Inputs = o.inputs
	}
	if o.out != "" {
		cfg.Output.Driver = config.DriverFS
		cfg.Output.FSRoot = o.out
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	rec := metrics.NewPrometheus()
	st, err := store.Open(ctx, cfg.Output)
	if err != nil {
		return err
	}
	p := &publisher{
		cfg:   cfg,
		root:  workingDir(),
		store: store.Instrument(st, rec),
		rec:   rec,
	}
	if cfg.Catalog != "" {
		c, err := catalog.Open(cfg.Catalog)
		if err != nil {
			return err
		}
		defer c.Close()
		p.catalog = c
	}
	dumpMetrics := func() {
		if cfg.MetricsFile == "" {
			return
		}
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.WithError(err).Warn("metrics")
		}
	}

	files, err := hcldef.Expand(cfg.Inputs, cfg.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 && !o.watch {
		log.Warnf("no definitions match %v", cfg.Inputs)
		return nil
	}
	failed := p.publish(ctx, files)
	dumpMetrics()
	log.Infof("published %d of %d definitions to %s", len(files)-failed, len(files), st.Driver())

	if !o.watch {
		if failed > 0 {
			return fmt.Errorf("%d definitions failed", failed)
		}
		return nil
	}

	w, err := watch.New(watch.Config{
		Patterns: absPatterns(cfg.Inputs),
		Excludes: cfg.Exclude,
		Debounce: cfg.Watch.Debounce,
	})
	if err != nil {
		return err
	}
	log.Info("watching for changes")
	err = w.Run(ctx, func(ctx context.Context, changed []string) {
		p.publish(ctx, changed)
		dumpMetrics()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// absPatterns anchors relative patterns at the working directory so they
// match the absolute paths reported by the watcher.
func absPatterns(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(workingDir(), p)
		}
	}
	return out
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := run(ctx, os.Stdout, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
