package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/bitplane/format"
	"github.com/arloliu/bitplane/frame"
	"github.com/arloliu/bitplane/section"
)

type encodeFlags struct {
	codec       string
	blockSize   int
	channels    string
	bigEndian   bool
	concurrency int
}

func newEncodeCommand(global *globalFlags) *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode decimal samples into a frame",
		Long: "Reads decimal samples separated by whitespace or commas and writes one binary frame.\n" +
			"With --channels, every input row holds one value per channel.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEncode(cmd, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.codec, "codec", "c", "lz4", "block codec: lz4|fast, zstd|high-ratio, s2, none")
	cmd.Flags().IntVarP(&flags.blockSize, "block-size", "b", section.DefaultBlockSize, "maximum uncompressed block size in bytes")
	cmd.Flags().StringVar(&flags.channels, "channels", "", "comma-separated channel names")
	cmd.Flags().BoolVar(&flags.bigEndian, "big-endian", false, "write a big-endian frame")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", section.PlaneCount, "planes compressed in parallel")

	return cmd
}

func runEncode(cmd *cobra.Command, global *globalFlags, flags *encodeFlags) error {
	logger := global.logger(cmd)

	codec, ok := format.ParseCompressionType(flags.codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", flags.codec)
	}

	opts := []frame.EncoderOption{
		frame.WithCodec(codec),
		frame.WithBlockSize(flags.blockSize),
		frame.WithConcurrency(flags.concurrency),
		frame.WithLogger(logger),
	}
	if flags.bigEndian {
		opts = append(opts, frame.WithBigEndian())
	}
	if names := splitNames(flags.channels); len(names) > 0 {
		opts = append(opts, frame.WithChannels(names...))
	}

	encoder, err := frame.NewEncoder(opts...)
	if err != nil {
		return err
	}

	in, err := global.openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	samples, err := readSamples(in)
	if err != nil {
		return err
	}

	f, err := encoder.Encode(samples)
	if err != nil {
		return err
	}

	out, err := global.openOutput(cmd)
	if err != nil {
		return err
	}

	n, err := f.WriteTo(out)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("write frame: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	logSummary(logger, "encoded", f.Stats(), n)

	return nil
}

func logSummary(logger *slog.Logger, msg string, stats frame.Stats, frameBytes int64) {
	logger.Info(msg,
		slog.Int("samples", stats.SampleCount),
		slog.String("codec", stats.Codec.String()),
		slog.Int64("frame_bytes", frameBytes),
		slog.Int("stored_blocks", stats.StoredBlocks()),
		slog.String("ratio", fmt.Sprintf("%.2fx", stats.Ratio())))
}
