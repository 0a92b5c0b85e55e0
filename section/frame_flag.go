package section

import (
	"github.com/arloliu/bitplane/endian"
	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
)

// FrameFlag represents the packed option and codec fields of the frame header.
type FrameFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the channels flag, 1 means channel IDs follow the header.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number, 0xBF10 for frame format v1.
	Options uint16

	// Codec is the compression applied to the blocks of every plane.
	Codec uint8
}

// NewFrameFlag creates a new FrameFlag with default settings: little-endian, LZ4, no channels.
func NewFrameFlag() FrameFlag {
	flag := FrameFlag{
		Options: MagicFrameV1,
		Codec:   uint8(format.CodecFast),
	}
	flag.WithLittleEndian()

	return flag
}

// HasChannels returns whether channel IDs follow the frame header.
func (f FrameFlag) HasChannels() bool {
	return (f.Options & ChannelsMask) != 0
}

// SetHasChannels enables or disables the channel IDs section.
func (f *FrameFlag) SetHasChannels(enabled bool) {
	if enabled {
		f.Options |= ChannelsMask
	} else {
		f.Options &^= ChannelsMask
	}
}

// IsLittleEndian returns whether the frame is little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the frame is big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1
}

// Compression returns the codec of the frame.
func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.Codec)
}

// SetCompression sets the codec of the frame.
func (f *FrameFlag) SetCompression(codec format.CompressionType) {
	f.Codec = uint8(codec)
}

// Validate checks if the flag contains valid values.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Compression().IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
