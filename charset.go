package tn5250

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// CodePage is a pure byte-to-character mapping between the host's EBCDIC
// code page and Unicode. The engine never embeds translation logic of its
// own: both directions are built once, at construction, from the IANA
// registry entry for the requested code page, and lookups afterward are
// plain table reads with no state. A CodePage is therefore safe to share
// between sessions and goroutines.
//
// CECP pages the IANA index in x/text cannot construct are served from
// built-in override tables instead; see builtinCodePages.
type CodePage struct {
	name      string
	toUnicode [256]rune
	toEbcdic  map[rune]byte
}

const builtinBasePage = "IBM037"

// builtinCodePages carries the EBCDIC CECP pages the x/text IANA index
// has no charmap for. The CECP family shares one character repertoire
// and differs only in where the national-use code points sit, so each
// page is the set of code points that move relative to the IBM037 base
// page.
var builtinCodePages = map[string]map[byte]rune{
	// CECP: International
	"IBM500": {
		0x4A: '[', 0x4F: '!', 0x5A: ']', 0x5F: '^',
		0xB0: '¢', 0xBA: '¬', 0xBB: '|',
	},
	// CECP: Germany, Austria
	"IBM273": {
		0x43: '{', 0x4A: 'Ä', 0x4F: '!', 0x59: '~', 0x5A: 'Ü',
		0x5F: '^', 0x63: '[', 0x6A: 'ö', 0x7C: '§', 0xA1: 'ß',
		0xB0: '¢', 0xB5: '@', 0xBA: '¬', 0xBB: '|', 0xC0: 'ä',
		0xCC: '¦', 0xD0: 'ü', 0xDC: '}', 0xE0: 'Ö', 0xEC: '\\',
		0xFC: ']',
	},
}

// NewCodePage builds the translation tables for a registered IANA code
// page name, such as "IBM037" (US/Canada), "IBM500" (International), or
// "IBM273" (Germany/Austria).
func NewCodePage(name string) (*CodePage, error) {
	cp := &CodePage{
		toEbcdic: make(map[rune]byte, 256),
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err == nil && enc == nil {
		err = errors.New("ianaindex: unsupported encoding")
	}

	switch {
	case err == nil:
		cp.name = name
		if canonical, nameErr := ianaindex.IANA.Name(enc); nameErr == nil {
			cp.name = canonical
		}
		decodeTable(&cp.toUnicode, enc)

	default:
		overrides, builtin := builtinCodePages[strings.ToUpper(name)]
		if !builtin {
			return nil, fmt.Errorf("codepage %q: %w", name, err)
		}

		base, baseErr := ianaindex.IANA.Encoding(builtinBasePage)
		if baseErr != nil || base == nil {
			return nil, fmt.Errorf("codepage %q: base page %s: %w", name, builtinBasePage, baseErr)
		}

		cp.name = strings.ToUpper(name)
		decodeTable(&cp.toUnicode, base)
		for b, ch := range overrides {
			cp.toUnicode[b] = ch
		}
	}

	for b := 0; b < 256; b++ {
		ch := cp.toUnicode[b]
		if ch == '�' {
			continue
		}

		// First mapping wins when a character appears at more than one
		// code point.
		if _, taken := cp.toEbcdic[ch]; !taken {
			cp.toEbcdic[ch] = byte(b)
		}
	}

	return cp, nil
}

// decodeTable fills table by decoding every byte value through enc. Bytes
// the encoding has no mapping for become the replacement character.
func decodeTable(table *[256]rune, enc encoding.Encoding) {
	decoder := enc.NewDecoder()
	single := [1]byte{}
	for b := 0; b < 256; b++ {
		single[0] = byte(b)

		decoded, err := decoder.Bytes(single[:])
		if err != nil || len(decoded) == 0 {
			table[b] = '�'
			continue
		}

		table[b] = []rune(string(decoded))[0]
	}
}

// Name returns the canonical IANA name of the code page.
func (cp *CodePage) Name() string {
	return cp.name
}

// ToUnicode translates one host byte to its character. Bytes with no
// mapping translate to the Unicode replacement character.
func (cp *CodePage) ToUnicode(b byte) rune {
	return cp.toUnicode[b]
}

// ToEbcdic translates one character to its host byte. Characters outside
// the code page translate to the EBCDIC space.
func (cp *CodePage) ToEbcdic(ch rune) byte {
	b, found := cp.toEbcdic[ch]
	if !found {
		return 0x40
	}

	return b
}
