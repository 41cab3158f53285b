// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"io"
	"sync"
)

// Encoder serializes a Data to an output stream in one write pass.
type Encoder interface {
	Encode(w io.Writer, d *Data) error
}

// Decoder constructs a Data from an input reader. The whole stream is
// consumed in one read pass.
type Decoder interface {
	Decode(r io.Reader) (*Data, error)
}

// Codec bundles the encoder and decoder for one serialization format.
type Codec struct {
	Encoder
	Decoder
}

// Registry for codecs by format key (e.g., "dat", "json").
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = c
}

func (r *Registry) Get(format string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	return c, ok
}
