// SPDX-License-Identifier: EPL-2.0

// Package dat implements the compact binary serialization of waveform data.
//
// # File Format
//
// A file is a fixed 20-byte little-endian header followed immediately by the
// packed pair values, with no padding anywhere:
//
//	offset  size  field
//	0       4     version (int32, always 1)
//	4       4     flags (uint32, bit 0 set = 8-bit samples, clear = 16-bit)
//	8       4     sample_rate (int32)
//	12      4     samples_per_pixel (int32)
//	16      4     pair_count (uint32)
//
// After the header come pair_count*2 sample values, each a signed 8-bit or
// 16-bit little-endian integer depending on the flags, in the order
// min0, max0, min1, max1, and so on. All flag bits other than bit 0 are
// reserved and ignored on decode.
//
// # Encoding
//
//	d, _ := waveform.New(44100, 512, 16)
//	d.Append(-99, 101)
//
//	file, _ := os.Create("audio.dat")
//	err := dat.Encoder{}.Encode(file, d)
//
// Values outside the configured bit width wrap to that width during
// encoding; there is no range validation in this format.
//
// # Decoding
//
//	file, _ := os.Open("audio.dat")
//	d, err := dat.Decoder{}.Decode(file)
//
// Decoding reads the whole stream. Failure modes:
//   - fewer than 20 header bytes: ErrTruncatedHeader
//   - version other than 1: ErrUnsupportedVersion
//   - non-positive sample_rate or samples_per_pixel: *waveform.ConfigError,
//     identical to constructing the model directly with those values
//
// Sample data is deliberately lenient: a stream that declares pairs but
// carries fewer sample bytes than declared (or none) decodes to a valid
// object with zero pairs. Trailing bytes past the declared pair count are
// ignored. Only the header is strict.
package dat
