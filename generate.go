package peaks

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/peaks/utils"
	"github.com/ik5/peaks/waveform"
)

// Generate folds already-decoded PCM samples into waveform envelope data:
// each consecutive block of samplesPerPixel values becomes one (min, max)
// pair. The final block may be shorter than samplesPerPixel and still
// produces a pair.
//
// Parameters:
//   - samples: flat PCM values; any channel interleaving is the caller's
//     interpretation, the sequence is scanned as-is
//   - sampleRate: source sample rate in Hz, must be positive
//   - samplesPerPixel: block size, must be positive
//   - bits: stored resolution, 8 or 16
//
// Returns the populated waveform data, or *waveform.ConfigError when one of
// the configuration values is invalid. Sample values are not rescaled: when
// folding 16-bit PCM into 8-bit pairs, shrink the values first (see
// utils.ScaleTo8), otherwise they wrap during binary encoding.
//
// Example:
//
//	d, err := peaks.Generate(samples, 44100, 512, 16)
//	if err != nil {
//	    return err
//	}
//	// d.Size() == ceil(len(samples) / 512)
func Generate(samples []int, sampleRate, samplesPerPixel, bits int) (*waveform.Data, error) {
	d, err := waveform.New(sampleRate, samplesPerPixel, bits)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(samples); i += samplesPerPixel {
		end := min(i+samplesPerPixel, len(samples))
		lo, hi := utils.MinMax(samples[i:end])
		d.Append(lo, hi)
	}

	return d, nil
}

// GenerateInt16 is Generate for the []int16 buffers audio pipelines usually
// produce.
func GenerateInt16(samples []int16, sampleRate, samplesPerPixel, bits int) (*waveform.Data, error) {
	widened := make([]int, len(samples))
	for i, s := range samples {
		widened[i] = int(s)
	}

	return Generate(widened, sampleRate, samplesPerPixel, bits)
}

// GenerateBuffer folds a go-audio IntBuffer into waveform envelope data,
// taking the sample rate from the buffer format. This lets the output of any
// go-audio decoder feed the generator directly:
//
//	buf, _ := wavDecoder.FullPCMBuffer()
//	d, err := peaks.GenerateBuffer(buf, 512, 16)
//
// A nil buffer or a buffer without format information fails the sample rate
// validation.
func GenerateBuffer(buf *goaudio.IntBuffer, samplesPerPixel, bits int) (*waveform.Data, error) {
	sampleRate := 0
	var data []int

	if buf != nil {
		data = buf.Data
		if buf.Format != nil {
			sampleRate = buf.Format.SampleRate
		}
	}

	return Generate(data, sampleRate, samplesPerPixel, bits)
}
