package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/arloliu/bitplane/frame"
	"github.com/arloliu/bitplane/internal/planes"
)

func newInspectCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the header and per-plane compression of a frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readFrame(cmd, global)
			if err != nil {
				return err
			}

			f, err := frame.Parse(data)
			if err != nil {
				return err
			}

			out, err := global.openOutput(cmd)
			if err != nil {
				return err
			}
			writeInspection(out, f, len(data))

			return out.Close()
		},
	}
}

func writeInspection(w io.Writer, f *frame.Frame, frameBytes int) {
	byteOrder := "little-endian"
	if f.Header.Flag.IsBigEndian() {
		byteOrder = "big-endian"
	}

	fmt.Fprintf(w, "samples:    %d\n", f.SampleCount())
	fmt.Fprintf(w, "codec:      %s\n", f.Codec())
	fmt.Fprintf(w, "block size: %d\n", f.Header.BlockSize)
	fmt.Fprintf(w, "byte order: %s\n", byteOrder)
	fmt.Fprintf(w, "frame size: %d bytes\n", frameBytes)
	fmt.Fprintf(w, "ratio:      %.2fx of binary16 input\n", f.Stats().Ratio())
	for i, id := range f.ChannelIDs {
		fmt.Fprintf(w, "channel %d:  %016x\n", i, id)
	}

	stats := f.Stats()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.AppendHeader(table.Row{"Plane", "Role", "Blocks", "Stored", "Original", "Compressed", "Ratio"})
	for _, ps := range stats.Planes {
		t.AppendRow(table.Row{
			ps.Index, planeRole(ps.Index), ps.Blocks, ps.StoredBlocks,
			ps.OriginalSize, ps.CompressedSize, fmt.Sprintf("%.2fx", ps.Ratio()),
		})
	}

	original := 0
	blocks := 0
	for _, ps := range stats.Planes {
		original += ps.OriginalSize
		blocks += ps.Blocks
	}
	t.AppendFooter(table.Row{
		"Total", "", blocks, stats.StoredBlocks(), original, stats.CompressedSize(),
		fmt.Sprintf("%.2fx", totalRatio(original, stats.CompressedSize())),
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 7, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}

// totalRatio is packed plane bytes over compressed bytes, matching the
// footer's Original and Compressed columns.
func totalRatio(original, compressed int) float64 {
	if compressed == 0 {
		return 0
	}

	return float64(original) / float64(compressed)
}

func planeRole(index int) string {
	switch {
	case index == planes.SignPlane:
		return "sign"
	case index >= planes.ExponentPlaneLow && index <= planes.ExponentPlaneHigh:
		return "exponent"
	default:
		return "mantissa"
	}
}
