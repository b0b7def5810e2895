package tn5250

import "strings"

// KeyStrokenizer splits a send-keys string into individual keystrokes: a
// plain character per stroke, or a bracketed mnemonic such as "[enter]"
// or "[pf5]" returned as one token. Literal brackets are written doubled,
// "[[" and "]]".
//
// The tokenizer is deliberately forgiving: an unterminated mnemonic or a
// stray closing bracket yields the text as-is rather than an error, since
// send strings come from scripts and operators, not the host.
type KeyStrokenizer struct {
	strokes []rune
	index   int
}

// NewKeyStrokenizer creates a tokenizer over the given send string.
func NewKeyStrokenizer(strokes string) *KeyStrokenizer {
	return &KeyStrokenizer{strokes: []rune(strokes)}
}

// SetKeyStrokes resets the tokenizer over a new send string.
func (k *KeyStrokenizer) SetKeyStrokes(strokes string) {
	k.strokes = []rune(strokes)
	k.index = 0
}

// HasMoreKeyStrokes reports whether any keystrokes remain.
func (k *KeyStrokenizer) HasMoreKeyStrokes() bool {
	return k.index < len(k.strokes)
}

// NextKeyStroke consumes and returns the next keystroke.
func (k *KeyStrokenizer) NextKeyStroke() string {
	if k.index >= len(k.strokes) {
		return ""
	}

	c := k.strokes[k.index]

	switch c {
	case '[':
		k.index++
		if k.index >= len(k.strokes) {
			return "["
		}

		if k.strokes[k.index] == '[' {
			k.index++
			return "["
		}

		var sb strings.Builder
		sb.WriteRune('[')
		for k.index < len(k.strokes) {
			next := k.strokes[k.index]
			sb.WriteRune(next)
			k.index++

			if next == ']' {
				return sb.String()
			}
		}

		// Ending never found; hand back the remainder as typed.
		return sb.String()

	case ']':
		k.index++
		if k.index < len(k.strokes) && k.strokes[k.index] == ']' {
			k.index++
		}
		return "]"

	default:
		k.index++
		return string(c)
	}
}
