// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestMinMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []int
		wantLo  int
		wantHi  int
	}{
		{
			name:    "empty",
			samples: nil,
			wantLo:  0,
			wantHi:  0,
		},
		{
			name:    "single value",
			samples: []int{42},
			wantLo:  42,
			wantHi:  42,
		},
		{
			name:    "mixed",
			samples: []int{3, -7, 0, 12, -1},
			wantLo:  -7,
			wantHi:  12,
		},
		{
			name:    "all negative",
			samples: []int{-5, -3, -20},
			wantLo:  -20,
			wantHi:  -3,
		},
		{
			name:    "all equal",
			samples: []int{8, 8, 8},
			wantLo:  8,
			wantHi:  8,
		},
		{
			name:    "16-bit extremes",
			samples: []int{0, 32767, -32768, 100},
			wantLo:  -32768,
			wantHi:  32767,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lo, hi := MinMax(tt.samples)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("MinMax(%v) = (%d, %d), want (%d, %d)",
					tt.samples, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

// BenchmarkMinMax measures the block scan over a typical pixel block
func BenchmarkMinMax(b *testing.B) {
	samples := make([]int, 512)
	for i := range samples {
		samples[i] = (i*31)%65536 - 32768
	}

	b.ResetTimer()
	b.ReportAllocs()

	var lo, hi int
	for i := 0; i < b.N; i++ {
		lo, hi = MinMax(samples)
	}

	_, _ = lo, hi
}
