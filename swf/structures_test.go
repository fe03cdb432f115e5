package swf_test

import (
	"testing"

	"github.com/wippyai/swf-transcoder/swf"
)

// nbits=4, xmin=1, xmax=5, ymin=2, ymax=6, zero padded to 3 bytes
var testRect = []byte{0x20, 0xA9, 0x30}

func TestDecodeRect(t *testing.T) {
	c := swf.NewCursor(append(testRect, 0xFF))

	r, err := swf.DecodeRect(c)
	if err != nil {
		t.Fatal(err)
	}
	want := swf.Rect{X: 1, Y: 2, Width: 4, Height: 4}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
	if c.Position() != 3 {
		t.Errorf("cursor position: got %d, want 3", c.Position())
	}
}

func TestDecodeRectEmptyWidth(t *testing.T) {
	// nbits=0: the four fields consume no bits at all
	c := swf.NewCursor([]byte{0x00})
	r, err := swf.DecodeRect(c)
	if err != nil {
		t.Fatal(err)
	}
	if r != (swf.Rect{}) {
		t.Errorf("got %+v, want zero rect", r)
	}
	if c.Position() != 1 {
		t.Errorf("cursor position: got %d, want 1", c.Position())
	}
}

func TestSkipMatrix(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		end  int
	}{
		// translate only: nbits=2, tx=1, ty=2
		{"translate only", []byte{0x04, 0xC0, 0xFF}, 2},
		// scale, rotate and translate pairs, all 2-bit fields
		{"all pairs", []byte{0x89, 0xA2, 0xD1, 0x48, 0xFF}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := swf.NewCursor(tt.data)
			if err := swf.SkipMatrix(c); err != nil {
				t.Fatal(err)
			}
			if c.Position() != tt.end {
				t.Errorf("cursor position: got %d, want %d", c.Position(), tt.end)
			}
		})
	}
}

func TestSkipColorTransform(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		end  int
	}{
		// no add, no mult: only the flags and field width are present
		{"flags only", []byte{0x10, 0xFF}, 1},
		// both transforms, 2-bit fields, eight terms
		{"add and mult", []byte{0xC9, 0x55, 0x54, 0xFF}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := swf.NewCursor(tt.data)
			if err := swf.SkipColorTransform(c); err != nil {
				t.Fatal(err)
			}
			if c.Position() != tt.end {
				t.Errorf("cursor position: got %d, want %d", c.Position(), tt.end)
			}
		})
	}
}
