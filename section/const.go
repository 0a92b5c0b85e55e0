package section

const (
	// Bit masks of FrameFlag.Options
	ChannelsMask     = 0x0001 // Mask for channel IDs bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrameV1 is the version 1 magic number of the bit-plane frame format.
	MagicFrameV1 = 0xBF10
)

// offset and section sizes in the frame
const (
	FrameHeaderSize = 16 // fixed frame header size in bytes
	ChannelIDSize   = 8  // size of one channel ID in bytes
	PlaneHeaderSize = 8  // fixed plane header size in bytes, block entries excluded
	BlockEntrySize  = 6  // fixed block entry size in bytes

	// PlaneCount is the number of plane headers in every frame.
	PlaneCount = 16
)

// Block size limits. Block entries store sizes as uint16, so a block can never
// exceed MaxBlockSize.
const (
	DefaultBlockSize = 4096
	MinBlockSize     = 64
	MaxBlockSize     = 32768

	// MaxBlockCount is the largest block count a plane header can hold.
	MaxBlockCount = 1<<16 - 1
)
