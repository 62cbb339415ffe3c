package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-riff/riff"
)

type rootOptions struct {
	strict   bool
	human    bool
	verbose  bool
	maxDepth int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "riffinfo <file>",
		Short:         "Print the chunk tree of a RIFF file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.strict, "strict", false, "fail on truncated or malformed chunks")
	flags.BoolVar(&opts.human, "human", false, "also print sizes in human readable units")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log parser diagnostics to stderr")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "maximum LIST nesting depth (0 for no limit)")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(cmd *cobra.Command, path string, opts *rootOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer logger.Sync()

	readerOpts := []riff.Option{
		riff.WithLogger(logger),
		riff.WithMaxDepth(opts.maxDepth),
	}
	if opts.strict {
		readerOpts = append(readerOpts, riff.WithStrict())
	}

	f, err := riff.Open(path, readerOpts...)
	if err != nil {
		return errors.Wrap(err, "could not open file")
	}
	defer f.Close()
	logger.Debug("opened RIFF file",
		zap.String("path", path),
		zap.Stringer("form_type", f.FormType()),
		zap.Uint32("chunks_size", f.ChunksSize()))

	p := &printer{w: cmd.OutOrStdout(), human: opts.human}
	if err := p.header(f.Reader); err != nil {
		return err
	}
	if err := riff.Walk(f.Chunks(), p.chunk); err != nil {
		return err
	}

	if opts.strict {
		if err := f.Err(); err != nil {
			return errors.Wrap(err, "reading chunks")
		}
	}
	return nil
}
