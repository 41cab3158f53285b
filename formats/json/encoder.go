// SPDX-License-Identifier: EPL-2.0

package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ik5/peaks/waveform"
)

// object mirrors the wire schema. start_time is a pointer so an unset value
// is omitted entirely instead of being encoded as null.
type object struct {
	SampleRate      int      `json:"sample_rate"`
	Bits            int      `json:"bits"`
	SamplesPerPixel int      `json:"samples_per_pixel"`
	Length          int      `json:"length"`
	StartTime       *float64 `json:"start_time,omitempty"`
	Data            []int    `json:"data"`
}

// Encoder writes the JSON waveform data representation.
type Encoder struct{}

// Encode writes d as a single JSON object with the keys sample_rate, bits,
// samples_per_pixel, length, data and, only when a start time has been set,
// start_time. data holds all pair values flat and interleaved, min then max
// per pair.
func (Encoder) Encode(w io.Writer, d *waveform.Data) error {
	o := object{
		SampleRate:      d.SampleRate(),
		Bits:            d.Bits(),
		SamplesPerPixel: d.SamplesPerPixel(),
		Length:          d.Size(),
		Data:            d.Samples(),
	}

	if st, ok := d.StartTime(); ok {
		o.StartTime = &st
	}

	if err := json.NewEncoder(w).Encode(&o); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
