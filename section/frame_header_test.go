package section

import (
	"testing"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
	"github.com/stretchr/testify/require"
)

func TestNewFrameHeader(t *testing.T) {
	header := NewFrameHeader(100)

	require.NotNil(t, header)
	require.Equal(t, uint32(100), header.SampleCount)
	require.Equal(t, uint32(DefaultBlockSize), header.BlockSize)
	require.Equal(t, uint8(PlaneCount), header.PlaneCount)
	require.Equal(t, uint16(0), header.ChannelCount)
	require.True(t, header.Flag.IsLittleEndian())
	require.NoError(t, header.Validate())
}

func TestFrameHeader_Bytes(t *testing.T) {
	header := NewFrameHeader(0x01020304)
	header.BlockSize = 8192

	data := header.Bytes()
	require.Len(t, data, FrameHeaderSize)
	require.Equal(t, []byte{
		0x10, 0xBF, // options
		byte(format.CompressionLZ4), PlaneCount,
		0x04, 0x03, 0x02, 0x01, // sample count
		0x00, 0x00, // channel count
		0x00, 0x00, // reserved
		0x00, 0x20, 0x00, 0x00, // block size
	}, data)
}

func TestFrameHeader_BytesBigEndian(t *testing.T) {
	header := NewFrameHeader(0x01020304)
	header.Flag.WithBigEndian()

	data := header.Bytes()
	require.Equal(t, []byte{0x12, 0xBF}, data[0:2], "options stay little-endian")
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data[4:8])
	require.Equal(t, []byte{0x00, 0x00, 0x10, 0x00}, data[12:16])

	parsed, err := ParseFrameHeader(data)
	require.NoError(t, err)
	require.Equal(t, *header, parsed)
}

func TestFrameHeader_Parse(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		original := NewFrameHeader(12)
		original.ChannelCount = 3
		original.BlockSize = MinBlockSize
		original.Flag.SetHasChannels(true)
		original.Flag.SetCompression(format.CompressionZstd)

		parsed := &FrameHeader{}
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, original, parsed)
		require.Equal(t, 3*ChannelIDSize, parsed.ChannelSectionSize())
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &FrameHeader{}
		require.ErrorIs(t, header.Parse([]byte{1, 2, 3}), errs.ErrInvalidHeaderSize)

		_, err := ParseFrameHeader(make([]byte, FrameHeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Invalid magic number", func(t *testing.T) {
		data := NewFrameHeader(1).Bytes()
		data[1] = 0xEA

		_, err := ParseFrameHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("Wrong plane count", func(t *testing.T) {
		data := NewFrameHeader(1).Bytes()
		data[3] = 15

		_, err := ParseFrameHeader(data)
		require.ErrorIs(t, err, errs.ErrFrameCorrupt)
	})

	t.Run("Reserved field set", func(t *testing.T) {
		data := NewFrameHeader(1).Bytes()
		data[10] = 1

		_, err := ParseFrameHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Trailing data ignored", func(t *testing.T) {
		data := append(NewFrameHeader(7).Bytes(), 0xAA, 0xBB)

		parsed, err := ParseFrameHeader(data)
		require.NoError(t, err)
		require.Equal(t, uint32(7), parsed.SampleCount)
	})
}

func TestFrameHeader_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(h *FrameHeader)
		err    error
	}{
		{name: "default", modify: func(*FrameHeader) {}},
		{name: "block size too small", modify: func(h *FrameHeader) { h.BlockSize = MinBlockSize - 1 }, err: errs.ErrInvalidBlockSize},
		{name: "block size too large", modify: func(h *FrameHeader) { h.BlockSize = MaxBlockSize + 1 }, err: errs.ErrInvalidBlockSize},
		{name: "too many blocks", modify: func(h *FrameHeader) {
			h.BlockSize = MinBlockSize
			h.SampleCount = (MaxBlockCount + 1) * MinBlockSize * 8
		}, err: errs.ErrTooManySamples},
		{name: "channel count without flag", modify: func(h *FrameHeader) { h.ChannelCount = 2 }, err: errs.ErrInvalidChannelCount},
		{name: "flag without channel count", modify: func(h *FrameHeader) { h.Flag.SetHasChannels(true) }, err: errs.ErrInvalidChannelCount},
		{name: "samples not a multiple of channels", modify: func(h *FrameHeader) {
			h.Flag.SetHasChannels(true)
			h.ChannelCount = 3
		}, err: errs.ErrInvalidChannelCount},
		{name: "channels", modify: func(h *FrameHeader) {
			h.Flag.SetHasChannels(true)
			h.ChannelCount = 4
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewFrameHeader(100)
			tt.modify(header)

			err := header.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFitsBlocks(t *testing.T) {
	require.True(t, FitsBlocks(0, DefaultBlockSize))
	require.True(t, FitsBlocks(MaxBlockCount*MinBlockSize*8, MinBlockSize))
	require.False(t, FitsBlocks(MaxBlockCount*MinBlockSize*8+1, MinBlockSize))
	require.False(t, FitsBlocks(-1, MinBlockSize))
	require.False(t, FitsBlocks(10, 0))
}
