package checksum

import "testing"

func TestCalculate(t *testing.T) {
	a := Calculate("function f()\nend function")
	b := Calculate("function f()\nend function")
	c := Calculate("function g()\nend function")

	if a != b {
		t.Errorf("identical sources should produce identical checksums: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different sources should produce different checksums")
	}
	if len(a) != 8 {
		t.Errorf("checksum should be 8 hex characters, got %q", a)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	sum := Calculate("some source")
	blob := Header(sum) + "\n\n/**\n * @module m\n */\n"

	if got := FromBlob(blob); got != sum {
		t.Errorf("FromBlob() = %q, want %q", got, sum)
	}
}

func TestFromBlobWithoutMarker(t *testing.T) {
	if got := FromBlob("/**\n * @module m\n */\n"); got != "" {
		t.Errorf("blob without marker should yield empty checksum, got %q", got)
	}
	if got := FromBlob(""); got != "" {
		t.Errorf("empty blob should yield empty checksum, got %q", got)
	}
}
