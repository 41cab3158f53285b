// SPDX-License-Identifier: EPL-2.0

// Package peaks stores, serializes and generates downsampled audio waveform
// envelope data.
//
// For every fixed-size block of audio samples ("samples per pixel") the data
// records the minimum and maximum amplitude. The result is a compact
// representation suitable for rendering a waveform visually, one pair per
// pixel column.
//
// # Components
//
// The module is split the following way:
//   - waveform: the in-memory model (configuration, pair sequence,
//     validation) and the codec interfaces plus registry
//   - formats/dat: the compact binary serialization (20-byte header plus
//     packed sample values)
//   - formats/json: the structured-text serialization
//   - peaks (this package): convenience generators that fold PCM samples
//     into pairs
//
// # Quick Start
//
// Generate envelope data from decoded PCM and write it as a binary file:
//
//	d, err := peaks.Generate(samples, 44100, 512, 16)
//	if err != nil {
//	    return err
//	}
//
//	file, _ := os.Create("audio.dat")
//	defer file.Close()
//	err = dat.Encoder{}.Encode(file, d)
//
// Read it back:
//
//	file, _ := os.Open("audio.dat")
//	d, err := dat.Decoder{}.Decode(file)
//
// Or build the data by hand:
//
//	d, _ := waveform.New(44100, 512, 16)
//	d.Append(-99, 101).Append(-49, 51)
//
// # go-audio interop
//
// GenerateBuffer accepts a go-audio IntBuffer, so any go-audio decoder can
// feed the generator without conversion:
//
//	dec := wav.NewDecoder(file)
//	buf, _ := dec.FullPCMBuffer()
//	d, err := peaks.GenerateBuffer(buf, 512, 16)
//
// # Choosing a format
//
// Codecs implement the waveform.Encoder and waveform.Decoder interfaces and
// can be selected at run time through a registry:
//
//	reg := waveform.NewRegistry()
//	reg.Register("dat", waveform.Codec{Encoder: dat.Encoder{}, Decoder: dat.Decoder{}})
//	reg.Register("json", waveform.Codec{Encoder: wjson.Encoder{}, Decoder: wjson.Decoder{}})
//
// # Scope
//
// The module does not decode or resample audio: generators take PCM values
// that are already decoded, and the example program under examples/peakgen
// shows how to wire third-party decoders in front. There is no compression
// and no streaming decode; codecs read or write a whole stream in one pass.
package peaks
