package section

import (
	"testing"

	"github.com/arloliu/bitplane/endian"
	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
	"github.com/stretchr/testify/require"
)

func TestNewFrameFlag(t *testing.T) {
	flag := NewFrameFlag()

	require.True(t, flag.IsValidMagicNumber())
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.False(t, flag.HasChannels())
	require.Equal(t, format.CompressionLZ4, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestFrameFlag_Endianness(t *testing.T) {
	flag := NewFrameFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.False(t, endian.IsLittleEndian(flag.GetEndianEngine()))
	require.True(t, flag.IsValidMagicNumber())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.True(t, endian.IsLittleEndian(flag.GetEndianEngine()))
}

func TestFrameFlag_Channels(t *testing.T) {
	flag := NewFrameFlag()

	flag.SetHasChannels(true)
	require.True(t, flag.HasChannels())
	require.Equal(t, uint16(MagicFrameV1|ChannelsMask), flag.Options)

	flag.SetHasChannels(false)
	require.False(t, flag.HasChannels())
	require.Equal(t, uint16(MagicFrameV1), flag.Options)
}

func TestFrameFlag_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *FrameFlag)
		err    error
	}{
		{name: "default", modify: func(*FrameFlag) {}},
		{name: "zstd", modify: func(f *FrameFlag) { f.SetCompression(format.CompressionZstd) }},
		{name: "bad magic", modify: func(f *FrameFlag) { f.Options = 0xEA10 }, err: errs.ErrInvalidMagicNumber},
		{name: "reserved bit", modify: func(f *FrameFlag) { f.Options |= 0x4 }, err: errs.ErrInvalidHeaderFlags},
		{name: "zero codec", modify: func(f *FrameFlag) { f.Codec = 0 }, err: errs.ErrInvalidCompression},
		{name: "unknown codec", modify: func(f *FrameFlag) { f.Codec = 0x7F }, err: errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := NewFrameFlag()
			tt.modify(&flag)

			err := flag.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}
