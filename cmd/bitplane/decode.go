package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/bitplane/frame"
)

func newDecodeCommand(global *globalFlags) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a frame into decimal samples",
		Long:  "Reads one binary frame and writes its samples, one row of channel values per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := global.logger(cmd)

			data, err := readFrame(cmd, global)
			if err != nil {
				return err
			}

			decoder, err := frame.NewDecoder(
				frame.WithDecoderConcurrency(concurrency),
				frame.WithDecoderLogger(logger),
			)
			if err != nil {
				return err
			}

			batch, stats, err := decoder.Decode(data)
			if err != nil {
				return err
			}

			out, err := global.openOutput(cmd)
			if err != nil {
				return err
			}
			if err := writeSamples(out, batch.Samples, batch.ChannelCount()); err != nil {
				_ = out.Close()
				return fmt.Errorf("write samples: %w", err)
			}
			if err := out.Close(); err != nil {
				return err
			}

			logSummary(logger, "decoded", stats, int64(len(data)))

			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 16, "planes decompressed in parallel")

	return cmd
}

func readFrame(cmd *cobra.Command, global *globalFlags) ([]byte, error) {
	in, err := global.openInput(cmd)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}

	return data, nil
}
