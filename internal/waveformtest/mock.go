// SPDX-License-Identifier: EPL-2.0

package waveformtest

import "math"

// Sine returns total PCM samples of a sine wave at frequency Hz, scaled to
// the signed 16-bit range.
func Sine(sampleRate, total int, frequency float64) []int {
	out := make([]int, total)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int(math.Round(math.Sin(2*math.Pi*frequency*t) * 32767))
	}
	return out
}

// Ramp returns total PCM samples rising linearly from -32768 to 32767.
func Ramp(total int) []int {
	out := make([]int, total)
	if total == 0 {
		return out
	}

	span := total - 1
	if span == 0 {
		out[0] = -32768
		return out
	}

	for i := range out {
		out[i] = -32768 + int(int64(i)*65535/int64(span))
	}
	return out
}

// Constant returns total PCM samples all holding value.
func Constant(total, value int) []int {
	out := make([]int, total)
	for i := range out {
		out[i] = value
	}
	return out
}

// Silence returns total zero samples.
func Silence(total int) []int {
	return make([]int, total)
}
