package format

type (
	CompressionType uint8
	BlockFlag       uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.

	CodecFast      = CompressionLZ4  // CodecFast is the low-latency codec used by default.
	CodecHighRatio = CompressionZstd // CodecHighRatio trades speed for a smaller frame.
)

const (
	// BlockStored marks a block whose payload is the raw uncompressed bytes.
	// It is set when the codec failed or when compression did not shrink the block.
	BlockStored BlockFlag = 0x01

	blockFlagMask = BlockStored
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// ParseCompressionType maps a codec name to its CompressionType.
//
// Accepted names are case-sensitive: "none", "zstd", "s2", "lz4", plus the
// aliases "fast" (LZ4) and "high-ratio" (Zstd).
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "zstd", "high-ratio":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4", "fast":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// IsStored reports whether the stored bit is set.
func (f BlockFlag) IsStored() bool {
	return f&BlockStored != 0
}

// IsValid reports whether f carries only known bits.
func (f BlockFlag) IsValid() bool {
	return f&^blockFlagMask == 0
}
