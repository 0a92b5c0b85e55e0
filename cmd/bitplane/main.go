// Command bitplane encodes sensor samples into bit-plane frames, decodes them
// back and inspects their per-plane compression.
//
//	bitplane encode -c zstd -b 4096 < samples.txt > batch.bpf
//	bitplane decode < batch.bpf
//	bitplane inspect < batch.bpf
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
