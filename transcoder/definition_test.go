package transcoder

import "testing"

func TestDefinitionSparseBookkeeping(t *testing.T) {
	d := &Definition{TagStart: 10, BodyStart: 16, Length: 70}

	if d.sparse() {
		t.Error("fresh definition reports sparse")
	}
	if got := d.retainedLength(); got != 70 {
		t.Errorf("retainedLength: got %d, want 70", got)
	}
	if got := d.fullLengthAsProvided(); got != 76 {
		t.Errorf("fullLengthAsProvided: got %d, want 76", got)
	}
	// 70-byte body encodes long form
	if got := d.fullLengthRecoded(); got != 76 {
		t.Errorf("fullLengthRecoded: got %d, want 76", got)
	}

	d.exclude(20, 30)
	if !d.sparse() {
		t.Error("definition not sparse after exclusion")
	}
	if got := d.retainedLength(); got != 60 {
		t.Errorf("retainedLength after first exclusion: got %d, want 60", got)
	}

	d.exclude(40, 45)
	if got := d.retainedLength(); got != 55 {
		t.Errorf("retainedLength after second exclusion: got %d, want 55", got)
	}
	// 55 bytes fits the short header form again
	if got := d.fullLengthRecoded(); got != 57 {
		t.Errorf("fullLengthRecoded after exclusions: got %d, want 57", got)
	}
	// the original span is unaffected by exclusions
	if got := d.fullLengthAsProvided(); got != 76 {
		t.Errorf("fullLengthAsProvided after exclusions: got %d, want 76", got)
	}

	want := []int{20, 30, 40, 45}
	if len(d.excluded) != len(want) {
		t.Fatalf("excluded pairs: got %v, want %v", d.excluded, want)
	}
	for i := range want {
		if d.excluded[i] != want[i] {
			t.Fatalf("excluded pairs: got %v, want %v", d.excluded, want)
		}
	}
}

func TestDefinitionZeroLengthExclusion(t *testing.T) {
	d := &Definition{TagStart: 0, BodyStart: 2, Length: 10}
	d.exclude(4, 4)

	if !d.sparse() {
		t.Error("empty exclusion must still switch to sparse mode")
	}
	if got := d.retainedLength(); got != 10 {
		t.Errorf("retainedLength: got %d, want 10", got)
	}
}
