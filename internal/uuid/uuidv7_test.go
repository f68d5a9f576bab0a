package uuid

import (
	"strings"
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNew_Ordered(t *testing.T) {
	a := New()
	b := New()
	// The first 48 bits are a millisecond timestamp, so later ids never sort lower.
	if strings.Compare(a[:13], b[:13]) > 0 {
		t.Errorf("expected %s to sort before or equal to %s", a, b)
	}
}

func TestNormalize(t *testing.T) {
	t.Run("valid upper-case", func(t *testing.T) {
		got, ok := Normalize("0190F3A2-7B1C-7D2E-8F00-0123456789AB")
		if !ok {
			t.Fatal("expected ok")
		}
		if got != "0190f3a2-7b1c-7d2e-8f00-0123456789ab" {
			t.Errorf("unexpected normalized value %s", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, ok := Normalize("not-a-uuid"); ok {
			t.Error("expected not ok")
		}
	})
}
