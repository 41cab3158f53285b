package dat

import "errors"

var (
	ErrTruncatedHeader    = errors.New("truncated waveform data header")
	ErrUnsupportedVersion = errors.New("unsupported waveform data version")
)
