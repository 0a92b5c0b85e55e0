package compress

import (
	"bytes"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitplane/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// planeLikeBlock returns a 4 KiB block resembling a packed exponent plane:
// long runs of identical bytes with occasional flips.
func planeLikeBlock() []byte {
	data := make([]byte, 4096)
	for i := range data {
		if (i/64)%2 == 0 {
			data[i] = 0xFF
		}
	}

	return data
}

func randomBlock(size int) []byte {
	rng := rand.New(rand.NewPCG(1, 2)) //nolint: gosec
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		cType   format.CompressionType
		wantErr bool
	}{
		{cType: format.CompressionNone},
		{cType: format.CompressionZstd},
		{cType: format.CompressionS2},
		{cType: format.CompressionLZ4},
		{cType: format.CompressionType(0), wantErr: true},
		{cType: format.CompressionType(0x7F), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.cType, "plane")
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid plane compression")
				require.Nil(t, codec)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, codec)

			shared, err := GetCodec(tt.cType)
			require.NoError(t, err)
			require.IsType(t, codec, shared)
		})
	}

	_, err := GetCodec(format.CompressionType(0x42))
	require.Error(t, err)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedInverse float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250},
			expectedRatio:   0.25,
			expectedInverse: 4.0,
			expectedSavings: 75.0,
		},
		{
			name:            "no compression benefit",
			stats:           CompressionStats{Algorithm: format.CompressionNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedInverse: 1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "zero original size",
			stats:           CompressionStats{Algorithm: format.CompressionLZ4},
			expectedRatio:   0.0,
			expectedInverse: 0.0,
			expectedSavings: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedInverse, tt.stats.Ratio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}

	total := CompressionStats{Algorithm: format.CompressionLZ4}
	total.Add(CompressionStats{OriginalSize: 10, CompressedSize: 4})
	total.Add(CompressionStats{OriginalSize: 30, CompressedSize: 6})
	require.Equal(t, int64(40), total.OriginalSize)
	require.Equal(t, int64(10), total.CompressedSize)
	require.Equal(t, format.CompressionLZ4, total.Algorithm)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil, 0)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "single_byte", data: []byte{0x42}},
		{name: "two_bit_plane", data: []byte{0x80}},
		{name: "repeated_pattern", data: bytes.Repeat([]byte{0xAA, 0x55}, 2048)},
		{name: "plane_like", data: planeLikeBlock()},
		{name: "all_zero_block", data: make([]byte, 4096)},
		{name: "short_tail_block", data: bytes.Repeat([]byte{0x0F}, 17)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					decompressed, err := codec.Decompress(compressed, len(tc.data))
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_RandomBlock(t *testing.T) {
	data := randomBlock(4096)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			if err != nil {
				// Only LZ4 may refuse incompressible input; the block layer stores it raw.
				require.Equal(t, "LZ4", codecName)
				return
			}

			decompressed, err := codec.Decompress(compressed, len(data))
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
		{name: "corrupted_header", data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data, 4096)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestLZ4Compressor_ShortDeclaredSize(t *testing.T) {
	codec := NewLZ4Compressor()
	data := planeLikeBlock()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	_, err = codec.Decompress(compressed, len(data)/2)
	require.Error(t, err)

	_, err = codec.Decompress(compressed, 0)
	require.Error(t, err)
}

func TestS2Compressor_DeclaredSizeMismatch(t *testing.T) {
	codec := NewS2Compressor()
	data := planeLikeBlock()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	_, err = codec.Decompress(compressed, len(data)+1)
	require.Error(t, err)

	out, err := codec.Decompress(compressed, 0)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestAllCodecs_TruncatedInput(t *testing.T) {
	data := planeLikeBlock()

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			out, err := codec.Decompress(compressed[:len(compressed)-1], len(data))
			if err == nil {
				require.NotEqual(t, data, out, "truncated input must not decode to the original")
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := planeLikeBlock()

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines)

			for range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					out, err := codec.Decompress(compressed, len(data))
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(out, data) {
						errCh <- bytes.ErrTooLarge
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}
