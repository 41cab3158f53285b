// SPDX-License-Identifier: EPL-2.0

package json_test

import (
	"bytes"
	"fmt"
	"strings"

	wjson "github.com/ik5/peaks/formats/json"
	"github.com/ik5/peaks/waveform"
)

// Example_encoding writes waveform data as a JSON object.
func Example_encoding() {
	d, _ := waveform.New(16000, 256, 8)
	d.Append(-10, 10).Append(-5, 5)

	buf := new(bytes.Buffer)
	if err := (wjson.Encoder{}).Encode(buf, d); err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}

	fmt.Print(buf.String())
	// Output:
	// {"sample_rate":16000,"bits":8,"samples_per_pixel":256,"length":2,"data":[-10,10,-5,5]}
}

// Example_startTime shows that start_time appears only when set.
func Example_startTime() {
	d, _ := waveform.New(16000, 256, 8)
	d.SetStartTime(8.5)

	buf := new(bytes.Buffer)
	wjson.Encoder{}.Encode(buf, d)

	fmt.Print(buf.String())
	// Output:
	// {"sample_rate":16000,"bits":8,"samples_per_pixel":256,"length":0,"start_time":8.5,"data":[]}
}

// Example_decoding parses the JSON representation back into a model.
func Example_decoding() {
	input := `{"sample_rate":44100,"bits":16,"samples_per_pixel":512,"length":1,"data":[-99,101]}`

	d, err := (wjson.Decoder{}).Decode(strings.NewReader(input))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	lo, _ := d.MinAt(0)
	hi, _ := d.MaxAt(0)
	fmt.Printf("%d pair at %d Hz: (%d, %d)\n", d.Size(), d.SampleRate(), lo, hi)
	// Output:
	// 1 pair at 44100 Hz: (-99, 101)
}
