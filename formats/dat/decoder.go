package dat

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/peaks/waveform"
)

const (
	// Version is the only supported binary format version.
	Version = 1

	headerSize = 20

	// flag8Bit set means 8-bit samples; clear means 16-bit. The remaining
	// flag bits are reserved and ignored on decode.
	flag8Bit = 0x1
)

// Decoder reads the binary waveform data format.
type Decoder struct{}

// Decode reads a complete binary stream and returns the waveform data it
// describes.
//
// A stream shorter than the 20-byte header fails with ErrTruncatedHeader and
// a version other than 1 fails with ErrUnsupportedVersion. Header fields go
// through the same validation as direct construction, so a zero or negative
// sample rate or samples-per-pixel on disk fails with *waveform.ConfigError.
//
// Sample data shorter than the declared pair count (including none at all)
// is not an error: the result simply has no pairs. Bytes beyond the declared
// pair count are ignored.
func (Decoder) Decode(r io.Reader) (*waveform.Data, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrTruncatedHeader
	}

	version := int32(binary.LittleEndian.Uint32(header[0:4]))
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	flags := binary.LittleEndian.Uint32(header[4:8])
	sampleRate := int32(binary.LittleEndian.Uint32(header[8:12]))
	samplesPerPixel := int32(binary.LittleEndian.Uint32(header[12:16]))
	pairCount := binary.LittleEndian.Uint32(header[16:20])

	bits := 16
	if flags&flag8Bit != 0 {
		bits = 8
	}

	d, err := waveform.New(int(sampleRate), int(samplesPerPixel), bits)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// Short or absent sample data leaves the pair sequence empty; only a
	// short header is fatal.
	need := int(pairCount) * 2 * (bits / 8)
	if need == 0 || len(body) < need {
		return d, nil
	}

	if bits == 8 {
		for i := 0; i < int(pairCount); i++ {
			d.Append(int(int8(body[2*i])), int(int8(body[2*i+1])))
		}
		return d, nil
	}

	for i := 0; i < int(pairCount); i++ {
		off := 4 * i
		lo := int(int16(binary.LittleEndian.Uint16(body[off : off+2])))
		hi := int(int16(binary.LittleEndian.Uint16(body[off+2 : off+4])))
		d.Append(lo, hi)
	}

	return d, nil
}
