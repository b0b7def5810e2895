package tn5250

import "sort"

// Field format word bits. The first format word byte carries the bypass
// bit, the dup-enable bit, the modified data tag, and the field shift in
// its low three bits. The second carries the auto-enter, field-exit-
// required, monocase, and mandatory-enter bits.
const (
	ffwBypass     byte = 0x20
	ffwDup        byte = 0x10
	ffwMDT        byte = 0x08
	ffwShift      byte = 0x07
	ffw2AutoEnter byte = 0x80
	ffw2FER       byte = 0x40
	ffw2Monocase  byte = 0x20
	ffw2MandEnter byte = 0x08
)

// Field shift values carried in the low bits of the first format word.
const (
	shiftAlphaShift    byte = 0
	shiftNumericShift  byte = 2
	shiftNumericOnly   byte = 3
	shiftDigitsOnly    byte = 5
	shiftSignedNumeric byte = 7
)

// ScreenField is one entry of the field format table: a run of input or
// display positions defined by the host, carrying the attribute byte that
// precedes it, its two format words, and any continuation words reserved
// for extended attributes.
type ScreenField struct {
	startPos int
	length   int
	attr     byte
	ffw1     byte
	ffw2     byte
	fcw1     byte
	fcw2     byte
	mdt      bool

	cols int
}

// StartPos returns the linear buffer position of the field's first
// character (the position after its attribute byte).
func (f *ScreenField) StartPos() int {
	return f.startPos
}

// StartRow returns the row of the field's first character.
func (f *ScreenField) StartRow() int {
	return f.startPos / f.cols
}

// StartCol returns the column of the field's first character.
func (f *ScreenField) StartCol() int {
	return f.startPos % f.cols
}

// EndPos returns the linear position of the field's last character. A
// zero-length field ends before it starts; callers iterate with Length.
func (f *ScreenField) EndPos() int {
	return f.startPos + f.length - 1
}

// Length returns the field length in positions. Zero is a valid length:
// some hosts send degenerate field definitions and the table keeps them.
func (f *ScreenField) Length() int {
	return f.length
}

// Attribute returns the attribute byte governing the field.
func (f *ScreenField) Attribute() byte {
	return f.attr
}

// ContinuationWords returns the field's format-control words, reserved
// for extended attribute definitions.
func (f *ScreenField) ContinuationWords() (byte, byte) {
	return f.fcw1, f.fcw2
}

// Within reports whether pos falls inside the field.
func (f *ScreenField) Within(pos int) bool {
	return pos >= f.startPos && pos < f.startPos+f.length
}

// IsBypassField reports whether the field is protected from input.
func (f *ScreenField) IsBypassField() bool {
	return f.ffw1&ffwBypass != 0
}

// IsDupEnabled reports whether the Dup key is permitted in the field.
func (f *ScreenField) IsDupEnabled() bool {
	return f.ffw1&ffwDup != 0
}

// IsAutoEnter reports whether exiting the field transmits automatically.
func (f *ScreenField) IsAutoEnter() bool {
	return f.ffw2&ffw2AutoEnter != 0
}

// IsFER reports whether the field requires an explicit field-exit key.
func (f *ScreenField) IsFER() bool {
	return f.ffw2&ffw2FER != 0
}

// IsToUpper reports whether input to the field is folded to upper case.
func (f *ScreenField) IsToUpper() bool {
	return f.ffw2&ffw2Monocase != 0
}

// IsMandatoryEnter reports whether the field must be filled before the
// screen can be transmitted.
func (f *ScreenField) IsMandatoryEnter() bool {
	return f.ffw2&ffw2MandEnter != 0
}

// IsNumericOnly reports whether the field accepts digits, sign, and
// punctuation only.
func (f *ScreenField) IsNumericOnly() bool {
	shift := f.ffw1 & ffwShift
	return shift == shiftNumericOnly || shift == shiftDigitsOnly
}

// IsSignedNumeric reports whether the field is a signed numeric field.
func (f *ScreenField) IsSignedNumeric() bool {
	return f.ffw1&ffwShift == shiftSignedNumeric
}

// IsHidden reports whether the field's attribute byte is a non-display
// attribute.
func (f *ScreenField) IsHidden() bool {
	return disperseAttribute(f.attr).disp&DisplayNonDisplay != 0
}

// IsModified reports the field's modified data tag.
func (f *ScreenField) IsModified() bool {
	return f.mdt
}

// SetModified sets the field's modified data tag.
func (f *ScreenField) SetModified() {
	f.mdt = true
}

// ResetModified clears the field's modified data tag.
func (f *ScreenField) ResetModified() {
	f.mdt = false
}

// ScreenFields is the field format table of one session: every input and
// display field the host has defined on the current screen, ordered by
// start position, plus the current-field reference the keyboard handler
// works against.
//
// The host changes screen formats three ways and the table supports all
// of them: leaving the format alone (nothing is touched), redefining a
// subset of fields (unmentioned fields keep their positions and modified
// data tags), and replacing the format wholesale (Clear followed by a
// full sequence of Define calls).
type ScreenFields struct {
	fields  []*ScreenField
	current *ScreenField

	cols int
}

// NewScreenFields creates an empty field table for a screen with the
// given column count.
func NewScreenFields(cols int) *ScreenFields {
	return &ScreenFields{cols: cols}
}

// Clear empties the table for a complete format change. The current-field
// reference is dropped in the same call so it can never dangle into the
// discarded table.
func (ft *ScreenFields) Clear() {
	ft.fields = ft.fields[:0]
	ft.current = nil
}

// Define appends or replaces a field at the position computed from row
// and col. Defining a field at the start position of an existing field
// replaces that field; other fields are untouched, which is what keeps
// their modified data tags alive across partial format changes.
//
// Degenerate definitions are accepted: a zero length produces a field
// with Length() == 0, and out-of-geometry coordinates produce whatever
// linear position they compute to. Geometric sanity is the driver's
// responsibility.
func (ft *ScreenFields) Define(attr byte, row, col, length int, formatWords ...byte) *ScreenField {
	field := &ScreenField{
		startPos: row*ft.cols + col,
		length:   length,
		attr:     attr,
		cols:     ft.cols,
	}

	words := [4]byte{}
	copy(words[:], formatWords)
	field.ffw1, field.ffw2, field.fcw1, field.fcw2 = words[0], words[1], words[2], words[3]
	field.mdt = field.ffw1&ffwMDT != 0

	for i, existing := range ft.fields {
		if existing.startPos == field.startPos {
			if ft.current == existing {
				ft.current = field
			}
			ft.fields[i] = field
			return field
		}
	}

	ft.fields = append(ft.fields, field)
	sort.SliceStable(ft.fields, func(i, j int) bool {
		return ft.fields[i].startPos < ft.fields[j].startPos
	})

	return field
}

// Count returns the number of fields in the table.
func (ft *ScreenFields) Count() int {
	return len(ft.fields)
}

// Fields returns the table's fields in start-position order. The slice is
// shared with the table and must not be mutated.
func (ft *ScreenFields) Fields() []*ScreenField {
	return ft.fields
}

// ExistsAt reports whether any field contains pos.
func (ft *ScreenFields) ExistsAt(pos int) bool {
	return ft.FieldContaining(pos) != nil
}

// FieldContaining returns the field containing pos, or nil.
func (ft *ScreenFields) FieldContaining(pos int) *ScreenField {
	for _, field := range ft.fields {
		if field.Within(pos) {
			return field
		}
	}

	return nil
}

// SetCurrentField establishes the field the keyboard handler is working
// in.
func (ft *ScreenFields) SetCurrentField(field *ScreenField) {
	ft.current = field
}

// CurrentField returns the current field, or nil when none is
// established.
func (ft *ScreenFields) CurrentField() *ScreenField {
	return ft.current
}

// IsCurrentField reports whether a current field is established.
func (ft *ScreenFields) IsCurrentField() bool {
	return ft.current != nil
}

// SetCurrentFieldModified sets the modified data tag on the current
// field. It is a no-op when no current field is established.
func (ft *ScreenFields) SetCurrentFieldModified() {
	if ft.current == nil {
		return
	}

	ft.current.SetModified()
}

// IsCurrentFieldBypass reports whether the current field is protected.
// With no current field it reports false rather than failing.
func (ft *ScreenFields) IsCurrentFieldBypass() bool {
	return ft.current != nil && ft.current.IsBypassField()
}

// IsCurrentFieldFER reports whether the current field requires an
// explicit field-exit key; false with no current field.
func (ft *ScreenFields) IsCurrentFieldFER() bool {
	return ft.current != nil && ft.current.IsFER()
}

// IsCurrentFieldDupEnabled reports whether the current field permits the
// Dup key; false with no current field.
func (ft *ScreenFields) IsCurrentFieldDupEnabled() bool {
	return ft.current != nil && ft.current.IsDupEnabled()
}

// IsCurrentFieldToUpper reports whether the current field folds input to
// upper case; false with no current field.
func (ft *ScreenFields) IsCurrentFieldToUpper() bool {
	return ft.current != nil && ft.current.IsToUpper()
}

// IsMasterModified reports whether any field's modified data tag is set.
// It is recomputed from the table on every call so it can never go stale
// against the per-field tags.
func (ft *ScreenFields) IsMasterModified() bool {
	for _, field := range ft.fields {
		if field.mdt {
			return true
		}
	}

	return false
}

// ResetModified clears every field's modified data tag.
func (ft *ScreenFields) ResetModified() {
	for _, field := range ft.fields {
		field.mdt = false
	}
}

// NextField returns the first field after pos in start-position order,
// wrapping to the first field of the table. It returns nil only when the
// table is empty.
func (ft *ScreenFields) NextField(pos int) *ScreenField {
	if len(ft.fields) == 0 {
		return nil
	}

	for _, field := range ft.fields {
		if field.startPos > pos {
			return field
		}
	}

	return ft.fields[0]
}

// PreviousField returns the last field before pos in start-position
// order, wrapping to the last field of the table. It returns nil only
// when the table is empty.
func (ft *ScreenFields) PreviousField(pos int) *ScreenField {
	if len(ft.fields) == 0 {
		return nil
	}

	for i := len(ft.fields) - 1; i >= 0; i-- {
		if ft.fields[i].startPos < pos {
			return ft.fields[i]
		}
	}

	return ft.fields[len(ft.fields)-1]
}
