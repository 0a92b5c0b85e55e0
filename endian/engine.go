// Package endian provides the byte order used to serialize frame headers.
//
// A frame records its byte order in the first two bytes of the frame header,
// which are always little-endian. Every other multi-byte field (sample count,
// block size, channel IDs, plane headers, block entries) is written with the
// engine selected by that flag:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, sampleCount)
//
// All functions and methods in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so section
// encoders can both Put into fixed slots and Append to growing buffers with
// the same value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. It is the frame default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0001)

	return b[0] == 0x01
}
