package tn5250

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Work-station opcodes carried at offset 9 of a 5250 record header. The
// driver dispatches on these; everything it does not recognize is passed
// through to the record hooks untouched.
const (
	OpNoOp            byte = 0x00
	OpInviteOp        byte = 0x01
	OpOutputOnly      byte = 0x02
	OpPutGet          byte = 0x03
	OpSaveScreen      byte = 0x04
	OpRestoreScreen   byte = 0x05
	OpReadImmediate   byte = 0x06
	OpReadScreen      byte = 0x08
	OpCancelInvite    byte = 0x0A
	OpMessageLightOn  byte = 0x0B
	OpMessageLightOff byte = 0x0C
)

const (
	recordOpcodeOffset    = 9
	recordVarHeaderOffset = 6
	recordMinHeader       = 10
)

// Record stream parse failures.
var (
	ErrRecordTooShort = errors.New("record shorter than its header")
	ErrPastEnd        = errors.New("read past end of record")
)

// Record is a sequential reader over one 5250 data-stream record: a
// 16-bit big-endian length, a variable-length header whose size is
// carried at offset 6, the opcode at offset 9, and the record data.
//
// The read cursor starts at the first data byte. Reads past the end of
// the record return ErrPastEnd instead of corrupting adjacent state, so
// a truncated or hostile record can never take the session down.
type Record struct {
	buffer []byte
	size   int
	opcode byte
	start  int
	pos    int
}

// NewRecord parses the record header of data. The data slice is retained,
// not copied; it must not be mutated while the record is in use.
func NewRecord(data []byte) (*Record, error) {
	if len(data) < recordMinHeader {
		return nil, fmt.Errorf("record: %d bytes: %w", len(data), ErrRecordTooShort)
	}

	// Declared size excludes the end-of-record marker; clip it to what
	// actually arrived.
	size := int(binary.BigEndian.Uint16(data))
	if size > len(data) {
		size = len(data)
	}

	start := recordVarHeaderOffset + int(data[recordVarHeaderOffset])
	if start > len(data) {
		return nil, fmt.Errorf("record: header length %d exceeds %d byte record: %w",
			data[recordVarHeaderOffset], len(data), ErrRecordTooShort)
	}

	return &Record{
		buffer: data,
		size:   size,
		opcode: data[recordOpcodeOffset],
		start:  start,
		pos:    start,
	}, nil
}

// Opcode returns the record's work-station opcode.
func (r *Record) Opcode() byte {
	return r.opcode
}

// Size returns the declared record size in bytes.
func (r *Record) Size() int {
	return r.size
}

// Pos returns the read cursor's position within the record.
func (r *Record) Pos() int {
	return r.pos
}

// HasNext reports whether any data bytes remain to be read.
func (r *Record) HasNext() bool {
	return r.pos < r.size
}

// NextByte consumes and returns the next data byte.
func (r *Record) NextByte() (byte, error) {
	if r.pos < 0 || r.pos >= r.size {
		return 0, fmt.Errorf("record: position %d of %d: %w", r.pos, r.size, ErrPastEnd)
	}

	b := r.buffer[r.pos]
	r.pos++
	return b, nil
}

// Rewind moves the read cursor back one byte, used after look-ahead
// dispatch.
func (r *Record) Rewind() error {
	if r.pos <= r.start {
		return fmt.Errorf("record: rewind at data start: %w", ErrPastEnd)
	}

	r.pos--
	return nil
}

// ByteAt returns the data byte at the given offset from the cursor
// without consuming anything.
func (r *Record) ByteAt(offset int) (byte, error) {
	index := r.pos + offset
	if index < 0 || index >= r.size {
		return 0, fmt.Errorf("record: offset %d from position %d: %w", offset, r.pos, ErrPastEnd)
	}

	return r.buffer[index], nil
}

// Segment consumes a length-prefixed segment: the next two bytes carry
// the total segment length including themselves, and the returned slice
// holds the bytes that follow the prefix.
func (r *Record) Segment() ([]byte, error) {
	if r.pos < 0 || r.pos+1 >= r.size {
		return nil, fmt.Errorf("record: segment prefix at position %d: %w", r.pos, ErrPastEnd)
	}

	length := int(binary.BigEndian.Uint16(r.buffer[r.pos:]))
	if length < 2 || r.pos+length > r.size {
		return nil, fmt.Errorf("record: %d byte segment at position %d of %d: %w",
			length, r.pos, r.size, ErrPastEnd)
	}

	segment := r.buffer[r.pos+2 : r.pos+length]
	r.pos += length
	return segment, nil
}

// Remaining returns the unread data bytes without consuming them.
func (r *Record) Remaining() []byte {
	if r.pos >= r.size {
		return nil
	}

	return r.buffer[r.pos:r.size]
}
