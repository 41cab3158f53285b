// SPDX-License-Identifier: EPL-2.0

package waveform_test

import (
	"errors"
	"fmt"

	"github.com/ik5/peaks/waveform"
)

// Example_building demonstrates creating waveform data and appending pairs.
func Example_building() {
	d, err := waveform.New(44100, 512, 16)
	if err != nil {
		fmt.Printf("config error: %v\n", err)
		return
	}

	// One pair per block of 512 source samples, in time order.
	d.Append(-99, 101).Append(-49, 51)

	fmt.Printf("Sample rate: %d Hz\n", d.SampleRate())
	fmt.Printf("Samples per pixel: %d\n", d.SamplesPerPixel())
	fmt.Printf("Pairs: %d\n", d.Size())

	lo, _ := d.MinAt(0)
	hi, _ := d.MaxAt(0)
	fmt.Printf("First pair: (%d, %d)\n", lo, hi)
	// Output:
	// Sample rate: 44100 Hz
	// Samples per pixel: 512
	// Pairs: 2
	// First pair: (-99, 101)
}

// Example_validation shows how configuration errors report the field at fault.
func Example_validation() {
	_, err := waveform.New(0, 512, 16)

	var cfg *waveform.ConfigError
	if errors.As(err, &cfg) {
		fmt.Printf("field: %s\n", cfg.Field)
		fmt.Printf("value: %v\n", cfg.Value)
	}
	// Output:
	// field: sample_rate
	// value: 0
}

// ExampleData_SetStartTime shows the optional start offset.
func ExampleData_SetStartTime() {
	d, _ := waveform.New(16000, 256, 8)

	if _, ok := d.StartTime(); !ok {
		fmt.Println("start time unset")
	}

	d.SetStartTime(8.5)

	if st, ok := d.StartTime(); ok {
		fmt.Printf("start time: %v seconds\n", st)
	}
	// Output:
	// start time unset
	// start time: 8.5 seconds
}
