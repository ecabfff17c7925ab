// Skuld is one of the three Norns; the name is usually read as "debt", and
// this tool puts you in resource debt in several ways.
//
// It reads a file, counts how often each byte value appears and prints a
// histogram. Each sub-command solves that same job with a different
// acquisition strategy, so the memory and I/O they need can be compared
// before the job goes to a shared cluster queue.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"skuld/acquire"
	"skuld/dispatch"
	"skuld/histogram/render"
	"skuld/histogram/report"
	"skuld/infra/config"
	"skuld/infra/log/staticLog"
	"skuld/infra/sysinfo"

	"github.com/spf13/cobra"
)

var version = "dev"

type cliFlags struct {
	configPath string
	repeat     uint32
	chunkSize  int
	width      int
	format     string
	query      string
	stats      bool
	bins       int
}

func newRootCmd() *cobra.Command {
	var (
		f      cliFlags
		cfg    *config.Config
		closer io.Closer
	)

	root := &cobra.Command{
		Use:   "skuld",
		Short: "Count byte values in a file using strategies with different resource profiles",
		Long: `Skuld reads a file and counts how often each byte value appears, then
prints a histogram scaled to the terminal width. The sub-commands solve the
same job with different memory / I/O trade-offs; -n repeats the whole
read-and-count cycle to make the difference observable.

The path must be a regular file: pipes and other unseekable inputs are rejected.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Init(f.configPath); err != nil {
				return err
			}
			if closer, err = staticLog.Init(cfg.Log); err != nil {
				return err
			}
			return applyFlags(cmd, &f, cfg)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if closer != nil {
				return closer.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "yaml config file")
	pf.Uint32VarP(&f.repeat, "repeat", "n", config.DEFAULT_REPEAT, "number of times to process the input file")
	pf.IntVar(&f.chunkSize, "chunk-size", config.DEFAULT_CHUNK_SIZE, "read buffer size for scan")
	pf.IntVar(&f.width, "width", 0, "terminal width override (0 = detect)")
	pf.StringVar(&f.format, "format", "text", "output format: text or json")
	pf.StringVar(&f.query, "query", "", "print one field of the json report (gjson path)")
	pf.BoolVar(&f.stats, "stats", false, "print summary statistics after the histogram")
	pf.IntVar(&f.bins, "bins", 0, "group byte values into this many equal ranges (divisor of 256)")

	for _, k := range acquire.Kinds() {
		root.AddCommand(strategyCmd(k, &f, &cfg))
	}
	return root
}

// applyFlags 命令行显式给出的值覆盖配置文件
func applyFlags(cmd *cobra.Command, f *cliFlags, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("repeat") {
		cfg.Repeat = f.repeat
	}
	if flags.Changed("chunk-size") {
		cfg.ChunkSize = f.chunkSize
	}
	return cfg.Validate()
}

func strategyCmd(k acquire.Kind, f *cliFlags, cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   k.String() + " <path>",
		Short: k.Description(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), k, args[0], f, *cfg)
		},
	}
}

func run(out io.Writer, k acquire.Kind, path string, f *cliFlags, cfg *config.Config) error {
	format, err := dispatch.ParseFormat(f.format)
	if err != nil {
		return err
	}

	d := &dispatch.Dispatcher{
		Width:       widthFunc(f.width, cfg.DefaultWidth),
		Out:         out,
		Format:      format,
		ChunkSize:   cfg.ChunkSize,
		Marker:      cfg.Marker,
		LabelMargin: max(cfg.LabelMargin, render.LabelMargin()),
		TopN:        cfg.TopN,
		ShowStats:   f.stats,
		Bins:        f.bins,
	}

	var doc bytes.Buffer
	if f.query != "" {
		d.Format = dispatch.FORMAT_JSON
		d.Out = &doc
	}

	req := dispatch.Request{Strategy: k, Path: path, Repeat: cfg.Repeat}
	if _, err := d.Run(req); err != nil {
		return err
	}
	if f.query != "" {
		_, err = fmt.Fprintln(out, report.Field(doc.Bytes(), f.query).String())
	}
	return err
}

func widthFunc(override, fallback int) dispatch.WidthFunc {
	return func() int {
		if override > 0 {
			return override
		}
		return sysinfo.TermWidth(fallback)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
