package swf_test

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/swf-transcoder/errors"
	"github.com/wippyai/swf-transcoder/swf"
)

func TestBitReaderUnsigned(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		reads []int
		want  []uint32
	}{
		{"within one byte", []byte{0xB4}, []int{3, 5}, []uint32{0b101, 0b10100}},
		{"across bytes", []byte{0x12, 0x34}, []int{16}, []uint32{0x1234}},
		{"partial second byte", []byte{0xAB, 0xCD}, []int{12}, []uint32{0xABC}},
		{"full width", []byte{0xDE, 0xAD, 0xBE, 0xEF}, []int{32}, []uint32{0xDEADBEEF}},
		{"zero width", []byte{0xFF}, []int{0, 4}, []uint32{0, 0xF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := swf.NewBitReader(swf.NewCursor(tt.data))
			for i, n := range tt.reads {
				got, err := r.ReadUBits(n)
				if err != nil {
					t.Fatalf("ReadUBits(%d): %v", n, err)
				}
				if got != tt.want[i] {
					t.Errorf("ReadUBits(%d): got %#x, want %#x", n, got, tt.want[i])
				}
			}
		})
	}
}

func TestBitReaderSigned(t *testing.T) {
	tests := []struct {
		data []byte
		n    int
		want int32
	}{
		{[]byte{0xB4}, 3, -3},      // 101
		{[]byte{0x80}, 2, -2},      // 10
		{[]byte{0x50}, 3, 2},       // 010
		{[]byte{0xFF, 0xFF}, 16, -1},
		{[]byte{0x7F, 0xFF}, 16, 0x7FFF},
	}

	for _, tt := range tests {
		r := swf.NewBitReader(swf.NewCursor(tt.data))
		got, err := r.ReadSBits(tt.n)
		if err != nil {
			t.Fatalf("ReadSBits(%d): %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("ReadSBits(%d) of %v: got %d, want %d", tt.n, tt.data, got, tt.want)
		}
	}
}

func TestBitReaderBit(t *testing.T) {
	r := swf.NewBitReader(swf.NewCursor([]byte{0xA0})) // 1010...
	want := []bool{true, false, true, false}
	for i, w := range want {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit %d: %v", i, err)
		}
		if got != w {
			t.Errorf("ReadBit %d: got %v, want %v", i, got, w)
		}
	}
}

func TestBitReaderSync(t *testing.T) {
	c := swf.NewCursor([]byte{0xFF, 0x0F})
	r := swf.NewBitReader(c)

	if _, err := r.ReadUBits(4); err != nil {
		t.Fatal(err)
	}
	r.Sync()
	// the partially consumed byte is discarded; the next read starts on
	// the following byte
	got, err := r.ReadUBits(8)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x0F {
		t.Errorf("after Sync: got %#x, want 0x0F", got)
	}
	if c.Position() != 2 {
		t.Errorf("cursor position: got %d, want 2", c.Position())
	}
}

func TestBitReaderOverflow(t *testing.T) {
	r := swf.NewBitReader(swf.NewCursor(make([]byte, 8)))
	_, err := r.ReadUBits(33)
	if err == nil {
		t.Fatal("expected error for 33-bit read")
	}
	if !stderrors.Is(err, errors.BitOverflow(33)) {
		t.Errorf("got %v, want overflow error", err)
	}
}

func TestBitReaderExhausted(t *testing.T) {
	r := swf.NewBitReader(swf.NewCursor([]byte{0xFF}))
	if _, err := r.ReadUBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadUBits(1); !stderrors.Is(err, swf.ErrShortBuffer) {
		t.Fatalf("got %v, want short buffer", err)
	}
}
