// SPDX-License-Identifier: EPL-2.0

// Package json implements the structured-text serialization of waveform
// data.
//
// The representation is one JSON object:
//
//	{
//	  "sample_rate": 44100,
//	  "bits": 16,
//	  "samples_per_pixel": 512,
//	  "length": 2,
//	  "start_time": 8.5,
//	  "data": [-99, 101, -49, 51]
//	}
//
// length is the pair count and data holds every pair value flat and
// interleaved, min then max per pair. start_time appears only when a start
// time has been set on the model; it is never emitted as null. An empty
// capture encodes data as [], not null.
//
// Decoding enforces the same field validation as the binary format and
// additionally rejects a data array whose length is odd (ErrOddDataLength),
// since values pair up positionally.
package json
