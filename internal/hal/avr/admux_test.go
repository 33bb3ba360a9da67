package avr

import (
	"testing"

	"github.com/cbegin/lofisynth/internal/hal"
)

func TestADMUXSelectsAREF(t *testing.T) {
	for ch := hal.Channel(0); ch < 32; ch++ {
		v := admux(ch)
		if v&admuxRefMask != 0 {
			t.Fatalf("admux(%d) = %#02x sets reference bits", ch, v)
		}
		if want := uint8(ch) & 0x0F; v != want {
			t.Fatalf("admux(%d) = %#02x, want %#02x", ch, v, want)
		}
	}
	if admux(0) != 0 {
		t.Fatalf("init value = %#02x, want 0", admux(0))
	}
}
