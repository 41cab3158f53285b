package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ik5/peaks/waveform"
)

// Decoder reads the JSON waveform data representation, applying the same
// field validation as the binary decoder.
type Decoder struct{}

// Decode parses one JSON object from r. The data array must hold an even
// number of values (min then max per pair); an odd count fails with
// ErrOddDataLength. sample_rate, samples_per_pixel, bits and start_time go
// through the validating model operations, so invalid values fail with
// *waveform.ConfigError. The data array is authoritative; the length key is
// informational only.
func (Decoder) Decode(r io.Reader) (*waveform.Data, error) {
	var o object
	if err := json.NewDecoder(r).Decode(&o); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if len(o.Data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddDataLength, len(o.Data))
	}

	d, err := waveform.New(o.SampleRate, o.SamplesPerPixel, o.Bits)
	if err != nil {
		return nil, err
	}

	if o.StartTime != nil {
		if err := d.SetStartTime(*o.StartTime); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(o.Data); i += 2 {
		d.Append(o.Data[i], o.Data[i+1])
	}

	return d, nil
}
