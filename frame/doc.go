// Package frame encodes batches of sensor samples into self-describing,
// losslessly compressed frames and reconstructs them.
//
// # Pipeline
//
// Encoding narrows each sample to IEEE 754 binary16, splits the batch into its
// 16 bit-planes, packs every plane densely (MSB-first), cuts the packed plane
// into fixed-size blocks and compresses each block independently. Blocks that
// do not shrink are stored raw and flagged, so a frame is never lossy. The
// planes are independent, so the encoder and decoder process them on up to 16
// workers and join before serialization.
//
// # Usage
//
//	enc, err := frame.NewEncoder(frame.WithCodec(format.CodecHighRatio))
//	if err != nil {
//		return err
//	}
//	f, err := enc.Encode(samples)
//	if err != nil {
//		return err
//	}
//	data := f.Bytes()
//
//	dec, _ := frame.NewDecoder()
//	batch, stats, err := dec.Decode(data)
//
// # Errors
//
// Decode failures wrap one of three sentinels in package errs:
// errs.ErrFrameCorrupt for structural header problems, errs.ErrLengthMismatch
// when declared and actual sizes disagree, and errs.ErrCorruptBlock when a
// block fails to decompress. Use errors.Is to classify them.
package frame
