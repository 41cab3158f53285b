// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

// Data holds a downsampled waveform envelope: for each block of
// SamplesPerPixel source audio samples, one (min, max) amplitude pair.
// Pairs are kept in insertion order, which is time order.
//
// The zero value is not usable; construct with New.
type Data struct {
	sampleRate      int
	samplesPerPixel int
	bits            int

	startTime    float64
	hasStartTime bool

	// samples holds the pairs interleaved: min0, max0, min1, max1, ...
	samples []int
}

// New returns an empty Data with the given configuration.
//
// sampleRate is the source audio sample rate in Hz and must be positive.
// samplesPerPixel is the number of source samples each pair summarizes and
// must be positive. bits is the stored sample resolution and must be 8 or 16.
//
// A start time is not set by a fresh instance; use SetStartTime.
// Any invalid field fails with a *ConfigError naming the field.
func New(sampleRate, samplesPerPixel, bits int) (*Data, error) {
	d := &Data{}

	if err := d.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if err := d.SetSamplesPerPixel(samplesPerPixel); err != nil {
		return nil, err
	}
	if err := d.SetBits(bits); err != nil {
		return nil, err
	}

	return d, nil
}

// SampleRate of the source audio in Hz.
func (d *Data) SampleRate() int { return d.sampleRate }

// SamplesPerPixel is the number of source samples each pair summarizes.
func (d *Data) SamplesPerPixel() int { return d.samplesPerPixel }

// Bits is the stored sample resolution, 8 or 16.
func (d *Data) Bits() int { return d.bits }

// StartTime returns the start offset in seconds. The second result is false
// when no start time has been set.
func (d *Data) StartTime() (float64, bool) { return d.startTime, d.hasStartTime }

// SetSampleRate replaces the sample rate. rate must be positive; on failure
// the previous value is kept.
func (d *Data) SetSampleRate(rate int) error {
	if rate <= 0 {
		return &ConfigError{Field: "sample_rate", Value: rate}
	}

	d.sampleRate = rate
	return nil
}

// SetSamplesPerPixel replaces the downsampling factor. n must be positive;
// on failure the previous value is kept.
func (d *Data) SetSamplesPerPixel(n int) error {
	if n <= 0 {
		return &ConfigError{Field: "samples_per_pixel", Value: n}
	}

	d.samplesPerPixel = n
	return nil
}

// SetBits replaces the sample resolution. bits must be 8 or 16; on failure
// the previous value is kept.
func (d *Data) SetBits(bits int) error {
	if bits != 8 && bits != 16 {
		return &ConfigError{Field: "bits", Value: bits}
	}

	d.bits = bits
	return nil
}

// SetStartTime sets the start offset in seconds. seconds must not be
// negative; on failure any previously set value is kept.
func (d *Data) SetStartTime(seconds float64) error {
	if seconds < 0 {
		return &ConfigError{Field: "start_time", Value: seconds}
	}

	d.startTime = seconds
	d.hasStartTime = true
	return nil
}

// Append adds one (min, max) pair at the end and returns d so appends can be
// chained. Values are not range-checked here; values outside the configured
// bit width wrap during binary encoding.
func (d *Data) Append(min, max int) *Data {
	d.samples = append(d.samples, min, max)
	return d
}

// Size returns the number of pairs.
func (d *Data) Size() int { return len(d.samples) / 2 }

// MinAt returns the minimum value of pair i.
func (d *Data) MinAt(i int) (int, error) {
	if i < 0 || i >= d.Size() {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, d.Size())
	}

	return d.samples[2*i], nil
}

// MaxAt returns the maximum value of pair i.
func (d *Data) MaxAt(i int) (int, error) {
	if i < 0 || i >= d.Size() {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, d.Size())
	}

	return d.samples[2*i+1], nil
}

// Samples returns a copy of the flat interleaved sequence min0, max0, min1,
// max1, ... The result is never nil, so it serializes as an empty array.
func (d *Data) Samples() []int {
	out := make([]int, len(d.samples))
	copy(out, d.samples)
	return out
}
