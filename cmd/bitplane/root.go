package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	input   string
	output  string
	verbose bool
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "bitplane",
		Short:         "Lossless bit-plane codec for sensor sample batches",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&flags.input, "input", "i", "-", "input file, - for stdin")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", "-", "output file, - for stdout")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug records to stderr")

	root.AddCommand(
		newEncodeCommand(flags),
		newDecodeCommand(flags),
		newInspectCommand(flags),
	)

	return root
}

func (f *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (f *globalFlags) openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if f.input == "" || f.input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	file, err := os.Open(f.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return file, nil
}

func (f *globalFlags) openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	if f.output == "" || f.output == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}

	file, err := os.Create(f.output)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
