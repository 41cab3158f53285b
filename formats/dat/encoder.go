// SPDX-License-Identifier: EPL-2.0

package dat

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/peaks/waveform"
)

// Encoder writes the binary waveform data format.
type Encoder struct{}

// Encode writes d as a 20-byte header followed by the packed pair values,
// min then max per pair, little-endian. Output length is exactly
// 20 + Size()*2*(Bits()/8) bytes.
//
// Values outside the configured bit width are not rejected; they wrap to
// that width through native fixed-width conversion.
func (Encoder) Encode(w io.Writer, d *waveform.Data) error {
	bits := d.Bits()

	var flags uint32
	if bits == 8 {
		flags = flag8Bit
	}

	// Pre-allocate buffer for the entire header (20 bytes)
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], uint32(Version))
	binary.LittleEndian.PutUint32(header[4:8], flags)
	binary.LittleEndian.PutUint32(header[8:12], uint32(int32(d.SampleRate())))
	binary.LittleEndian.PutUint32(header[12:16], uint32(int32(d.SamplesPerPixel())))
	binary.LittleEndian.PutUint32(header[16:20], uint32(d.Size()))

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	samples := d.Samples()
	if len(samples) == 0 {
		return nil
	}

	// Pack and write sample values in chunks to bound the buffer size for
	// large captures.
	const chunkSize = 8192
	width := bits / 8
	buf := make([]byte, min(len(samples), chunkSize)*width)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*width]

		if bits == 8 {
			for j, s := range chunk {
				buf[j] = byte(int8(s))
			}
		} else {
			for j, s := range chunk {
				binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(int16(s)))
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
