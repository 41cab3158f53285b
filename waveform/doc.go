// SPDX-License-Identifier: EPL-2.0

// Package waveform holds the in-memory model for downsampled waveform
// envelope data.
//
// A Data value carries the configuration of a capture (sample rate,
// samples per pixel, bit resolution, optional start time) together with an
// ordered sequence of (min, max) amplitude pairs. Each pair summarizes one
// block of SamplesPerPixel source audio samples, which makes the sequence
// compact enough to render a waveform visually one pair per pixel.
//
// # Building Data
//
// A fresh instance starts empty and is filled with chained appends:
//
//	d, err := waveform.New(44100, 512, 16)
//	if err != nil {
//	    // one of the configuration fields is invalid
//	}
//	d.Append(-99, 101).Append(-49, 51)
//
// Configuration is validated on every assignment, not just construction.
// A failed setter returns *ConfigError naming the field and leaves the
// previous value in place:
//
//	if err := d.SetSampleRate(0); err != nil {
//	    var cfg *waveform.ConfigError
//	    errors.As(err, &cfg) // cfg.Field == "sample_rate"
//	}
//
// The invariants are:
//   - sample rate > 0
//   - samples per pixel > 0
//   - bits is 8 or 16
//   - start time, when set, is not negative
//
// # Reading pairs
//
// Pairs are addressed by index in insertion (time) order:
//
//	for i := range d.Size() {
//	    lo, _ := d.MinAt(i)
//	    hi, _ := d.MaxAt(i)
//	    // render column i from lo..hi
//	}
//
// An index at or past Size() fails with an error wrapping
// ErrIndexOutOfRange.
//
// # Codecs
//
// Serialization lives in the formats subpackages; this package only defines
// the Encoder and Decoder interfaces they implement, plus a Registry for
// looking codecs up by format key:
//
//	reg := waveform.NewRegistry()
//	reg.Register("dat", waveform.Codec{Encoder: dat.Encoder{}, Decoder: dat.Decoder{}})
//	c, ok := reg.Get("dat")
//
// # Value ranges
//
// Append performs no range validation. Values outside the configured bit
// width are accepted and wrap to that width during binary encoding, so a
// caller that wants exact round trips must supply values inside the signed
// 8-bit or 16-bit range matching Bits().
//
// # Concurrency
//
// Data is a plain value with no internal locking; callers that share one
// instance across goroutines must serialize access themselves. The Registry
// is safe for concurrent use.
package waveform
