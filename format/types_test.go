package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{name: "none", cType: CompressionNone, expected: "None"},
		{name: "zstd", cType: CompressionZstd, expected: "Zstd"},
		{name: "s2", cType: CompressionS2, expected: "S2"},
		{name: "lz4", cType: CompressionLZ4, expected: "LZ4"},
		{name: "unknown", cType: CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCompressionType_IsValid(t *testing.T) {
	require.True(t, CodecFast.IsValid())
	require.True(t, CodecHighRatio.IsValid())
	require.True(t, CompressionNone.IsValid())
	require.False(t, CompressionType(0).IsValid())
	require.False(t, CompressionType(0x5).IsValid())
}

func TestParseCompressionType(t *testing.T) {
	cases := map[string]CompressionType{
		"none":       CompressionNone,
		"zstd":       CompressionZstd,
		"high-ratio": CompressionZstd,
		"s2":         CompressionS2,
		"lz4":        CompressionLZ4,
		"fast":       CompressionLZ4,
	}
	for name, want := range cases {
		got, ok := ParseCompressionType(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}

	_, ok := ParseCompressionType("LZ4")
	require.False(t, ok)
	_, ok = ParseCompressionType("")
	require.False(t, ok)
}

func TestBlockFlag(t *testing.T) {
	require.False(t, BlockFlag(0).IsStored())
	require.True(t, BlockStored.IsStored())
	require.True(t, BlockFlag(0).IsValid())
	require.True(t, BlockStored.IsValid())
	require.False(t, BlockFlag(0x80).IsValid())
}
