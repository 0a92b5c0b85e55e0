// Package section defines the fixed-size binary sections of a bit-plane frame.
//
// # Frame Layout
//
//	┌──────────────────────────────┐
//	│ FrameHeader (16 bytes)       │
//	├──────────────────────────────┤
//	│ Channel IDs (8 bytes each)   │  only when the channels bit is set
//	├──────────────────────────────┤
//	│ PlaneHeader 0 (8 bytes)      │
//	│   BlockEntry × BlockCount    │  6 bytes each
//	│ ...                          │
//	│ PlaneHeader 15               │
//	│   BlockEntry × BlockCount    │
//	├──────────────────────────────┤
//	│ Block payloads               │  plane 0 block 0, plane 0 block 1, ...
//	└──────────────────────────────┘
//
// # Frame Header
//
//	Offset  Size  Field
//	0       2     Options (magic, endianness, channels flag), always little-endian
//	2       1     Codec (format.CompressionType)
//	3       1     PlaneCount (always 16)
//	4       4     SampleCount N
//	8       2     ChannelCount
//	10      2     Reserved (0)
//	12      4     BlockSize
//
// Every field after Options uses the byte order selected by the endianness bit.
//
// # Plane Header
//
//	Offset  Size  Field
//	0       1     PlaneIndex (0 = least significant bit)
//	1       1     Codec
//	2       2     BlockCount
//	4       4     BitCount (equals SampleCount)
//
// # Block Entry
//
//	Offset  Size  Field
//	0       2     CompressedSize (bytes in the payload)
//	2       2     UncompressedSize
//	4       1     Flags (format.BlockStored)
//	5       1     Reserved (0)
//
// The sum of UncompressedSize over a plane's blocks is ceil(BitCount/8), so a
// plane header alone is enough to locate and decompress each of its blocks.
package section
