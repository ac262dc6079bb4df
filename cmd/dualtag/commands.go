package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-dualtag/dualtag"
	"github.com/forestrie/go-dualtag/lcrs"
)

type config struct {
	LogLevel string
	Input    string
	Output   string
	Strict   bool

	log   logger.Logger
	runID string
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "dualtag",
		Short:         "Rebuild forests from dual-tag level-order encodings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.New(cfg.LogLevel)
			cfg.log = logger.Sugar.WithServiceName("dualtag")
			cfg.runID = uuid.NewString()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.OnExit()
		},
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "INFO", "log level (NOOP, DEBUG, INFO, ...)")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print an encoding's tag arrays and the pre-order of the rebuilt forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cfg, cmd.OutOrStdout())
		},
	}
	show.Flags().StringVar(&cfg.Input, "input", "", "CBOR encoding to load (default: the built-in figure forest)")
	show.Flags().BoolVar(&cfg.Strict, "strict", false, "reject trailing tag claims and unmatched parents")

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in figure forest encoding as CBOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cfg, cmd.OutOrStdout())
		},
	}
	export.Flags().StringVar(&cfg.Output, "output", "", "file to write")
	_ = export.MarkFlagRequired("output")

	root.AddCommand(show, export)
	return root
}

// figureEntries is the encoding of
//
//	      A              G
//	   /  |  \         /   \
//	  B   C    D      H     I
//	     / \          |
//	    E   F         J
func figureEntries() []dualtag.Entry[string] {
	entries, err := dualtag.FromTags(
		[]string{"A", "G", "B", "C", "D", "H", "I", "E", "F", "J"},
		[]int{0, 0, 1, 0, 1, 0, 1, 1, 1, 1},
		[]int{0, 1, 0, 0, 1, 0, 1, 0, 1, 1},
	)
	if err != nil {
		panic(err)
	}
	return entries
}

func loadEntries(cfg *config) ([]dualtag.Entry[string], error) {
	if cfg.Input == "" {
		return figureEntries(), nil
	}
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", cfg.Input)
	}
	entries, err := dualtag.UnmarshalCBOR[string](data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", cfg.Input)
	}
	return entries, nil
}

func runShow(cfg *config, out io.Writer) error {
	entries, err := loadEntries(cfg)
	if err != nil {
		return err
	}
	cfg.log.Infof("run %s: loaded %d entries", cfg.runID, len(entries))

	opts := []dualtag.Option{dualtag.WithLogger(cfg.log)}
	if cfg.Strict {
		opts = append(opts, dualtag.WithStrictTags())
	}
	f, err := dualtag.Build(entries, opts...)
	if err != nil {
		return err
	}

	writeTagTable(out, entries)
	fmt.Fprintf(out, "preorder: %s\n", preorderLine(f))
	return nil
}

func runExport(cfg *config, out io.Writer) error {
	data, err := dualtag.MarshalCBOR(figureEntries())
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", cfg.Output)
	}
	cfg.log.Infof("run %s: wrote %d bytes to %s", cfg.runID, len(data), cfg.Output)
	fmt.Fprintf(out, "wrote %s\n", cfg.Output)
	return nil
}

// writeTagTable prints the info / ltag / rtag rows, one column per entry.
func writeTagTable(out io.Writer, entries []dualtag.Entry[string]) {
	values, ltags, rtags := dualtag.Tags(entries)

	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.Append(append([]string{"info"}, values...))
	table.Append(append([]string{"ltag"}, itoas(ltags)...))
	table.Append(append([]string{"rtag"}, itoas(rtags)...))
	table.Render()
}

func itoas(tags []int) []string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = strconv.Itoa(t)
	}
	return s
}

func preorderLine(f *lcrs.Forest[string]) string {
	var parts []string
	for v := range f.Preorder(f.Root()) {
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}
