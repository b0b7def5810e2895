package tn5250

import "testing"

func TestCodePage037(t *testing.T) {
	cp, err := NewCodePage("IBM037")
	if err != nil {
		t.Fatalf("IBM037 should be available: %v", err)
	}

	if ch := cp.ToUnicode(0xC1); ch != 'A' {
		t.Errorf("0xC1 should decode to A, got %q", ch)
	}
	if ch := cp.ToUnicode(0x40); ch != ' ' {
		t.Errorf("0x40 should decode to space, got %q", ch)
	}
	if ch := cp.ToUnicode(0xF0); ch != '0' {
		t.Errorf("0xF0 should decode to 0, got %q", ch)
	}

	if b := cp.ToEbcdic('A'); b != 0xC1 {
		t.Errorf("A should encode to 0xC1, got 0x%02x", b)
	}
	if b := cp.ToEbcdic(' '); b != 0x40 {
		t.Errorf("space should encode to 0x40, got 0x%02x", b)
	}
}

func TestCodePageRoundTrip(t *testing.T) {
	cp, err := NewCodePage("IBM037")
	if err != nil {
		t.Fatal(err)
	}

	for _, ch := range "HELLO WORLD 0123456789 abcdefg" {
		if got := cp.ToUnicode(cp.ToEbcdic(ch)); got != ch {
			t.Errorf("%q did not survive the round trip: got %q", ch, got)
		}
	}
}

func TestCodePageUnmappedCharacter(t *testing.T) {
	cp, err := NewCodePage("IBM037")
	if err != nil {
		t.Fatal(err)
	}

	if b := cp.ToEbcdic('☃'); b != 0x40 {
		t.Errorf("unmapped character should fall back to EBCDIC space, got 0x%02x", b)
	}
}

func TestCodePageSwappable(t *testing.T) {
	for _, name := range []string{"IBM037", "IBM500", "IBM273"} {
		cp, err := NewCodePage(name)
		if err != nil {
			t.Errorf("code page %s should be available: %v", name, err)
			continue
		}

		// The digits sit at the same code points in all three pages.
		if ch := cp.ToUnicode(0xF1); ch != '1' {
			t.Errorf("%s: 0xF1 should decode to 1, got %q", name, ch)
		}
	}
}

func TestCodePage500NationalUse(t *testing.T) {
	cp, err := NewCodePage("IBM500")
	if err != nil {
		t.Fatalf("IBM500 should be available: %v", err)
	}

	if cp.Name() != "IBM500" {
		t.Errorf("name should be IBM500, got %q", cp.Name())
	}

	// The seven code points that move relative to IBM037.
	moved := map[byte]rune{
		0x4A: '[', 0x4F: '!', 0x5A: ']', 0x5F: '^',
		0xB0: '¢', 0xBA: '¬', 0xBB: '|',
	}
	for b, want := range moved {
		if ch := cp.ToUnicode(b); ch != want {
			t.Errorf("0x%02x should decode to %q, got %q", b, want, ch)
		}
		if got := cp.ToEbcdic(want); got != b {
			t.Errorf("%q should encode to 0x%02x, got 0x%02x", want, b, got)
		}
	}

	// The shared repertoire stays where IBM037 put it.
	if ch := cp.ToUnicode(0xC1); ch != 'A' {
		t.Errorf("0xC1 should decode to A, got %q", ch)
	}
}

func TestCodePage273NationalUse(t *testing.T) {
	cp, err := NewCodePage("IBM273")
	if err != nil {
		t.Fatalf("IBM273 should be available: %v", err)
	}

	moved := map[byte]rune{
		0x4A: 'Ä', 0x5A: 'Ü', 0x6A: 'ö', 0xC0: 'ä', 0xD0: 'ü',
		0xE0: 'Ö', 0xA1: 'ß', 0x7C: '§', 0xB5: '@',
		0x43: '{', 0xDC: '}', 0x63: '[', 0xFC: ']', 0xEC: '\\',
	}
	for b, want := range moved {
		if ch := cp.ToUnicode(b); ch != want {
			t.Errorf("0x%02x should decode to %q, got %q", b, want, ch)
		}
		if got := cp.ToEbcdic(want); got != b {
			t.Errorf("%q should encode to 0x%02x, got 0x%02x", want, b, got)
		}
	}
}

func TestCodePage273RoundTrip(t *testing.T) {
	cp, err := NewCodePage("IBM273")
	if err != nil {
		t.Fatal(err)
	}

	for _, ch := range "GRÜSSE AUS KÖLN müßig äöü §@[]{}" {
		if got := cp.ToUnicode(cp.ToEbcdic(ch)); got != ch {
			t.Errorf("%q did not survive the round trip: got %q", ch, got)
		}
	}
}

func TestCodePageOverridesDoNotLeak(t *testing.T) {
	cp, err := NewCodePage("IBM037")
	if err != nil {
		t.Fatal(err)
	}

	// IBM037 keeps its own national-use assignments.
	if ch := cp.ToUnicode(0x4A); ch != '¢' {
		t.Errorf("IBM037 0x4A should decode to ¢, got %q", ch)
	}
	if ch := cp.ToUnicode(0xBA); ch != '[' {
		t.Errorf("IBM037 0xBA should decode to [, got %q", ch)
	}
}

func TestCodePageUnknown(t *testing.T) {
	if _, err := NewCodePage("NOT-A-CODEPAGE"); err == nil {
		t.Error("unknown code page should be rejected")
	}
}
