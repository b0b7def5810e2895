package tn5250

import (
	"encoding/binary"
	"errors"
	"testing"
)

// buildRecord assembles a record with the standard 10-byte header (a
// 4-byte variable header) around the given opcode and data.
func buildRecord(opcode byte, data ...byte) []byte {
	record := make([]byte, recordMinHeader+len(data))
	binary.BigEndian.PutUint16(record, uint16(len(record)))
	record[2] = 0x12
	record[3] = 0xA0
	record[recordVarHeaderOffset] = 0x04
	record[recordOpcodeOffset] = opcode
	copy(record[recordMinHeader:], data)

	return record
}

func TestRecordHeaderParse(t *testing.T) {
	record, err := NewRecord(buildRecord(OpPutGet, 0x11, 0x22))
	if err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	if record.Opcode() != OpPutGet {
		t.Errorf("expected opcode 0x%02x, got 0x%02x", OpPutGet, record.Opcode())
	}
	if record.Size() != 12 {
		t.Errorf("expected size 12, got %d", record.Size())
	}
	if record.Pos() != recordMinHeader {
		t.Errorf("cursor should start at first data byte, got %d", record.Pos())
	}
}

func TestRecordSequentialRead(t *testing.T) {
	record, err := NewRecord(buildRecord(OpOutputOnly, 0x01, 0x02, 0x03))
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x01, 0x02, 0x03}
	for i, expected := range want {
		if !record.HasNext() {
			t.Fatalf("expected more data at byte %d", i)
		}

		b, err := record.NextByte()
		if err != nil {
			t.Fatalf("read %d failed: %v", i, err)
		}
		if b != expected {
			t.Errorf("byte %d: expected 0x%02x, got 0x%02x", i, expected, b)
		}
	}

	if record.HasNext() {
		t.Error("expected record exhausted")
	}
}

func TestRecordReadPastEnd(t *testing.T) {
	record, err := NewRecord(buildRecord(OpNoOp))
	if err != nil {
		t.Fatal(err)
	}

	for record.HasNext() {
		if _, err := record.NextByte(); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := record.NextByte(); !errors.Is(err, ErrPastEnd) {
		t.Errorf("expected ErrPastEnd, got %v", err)
	}
}

func TestRecordRewind(t *testing.T) {
	record, err := NewRecord(buildRecord(OpOutputOnly, 0xAB))
	if err != nil {
		t.Fatal(err)
	}

	if err := record.Rewind(); !errors.Is(err, ErrPastEnd) {
		t.Errorf("rewind at data start should fail, got %v", err)
	}

	if _, err := record.NextByte(); err != nil {
		t.Fatal(err)
	}
	if err := record.Rewind(); err != nil {
		t.Fatalf("rewind after read failed: %v", err)
	}

	b, err := record.NextByte()
	if err != nil || b != 0xAB {
		t.Errorf("expected to re-read 0xAB, got 0x%02x, %v", b, err)
	}
}

func TestRecordByteAt(t *testing.T) {
	record, err := NewRecord(buildRecord(OpOutputOnly, 0x10, 0x20))
	if err != nil {
		t.Fatal(err)
	}

	b, err := record.ByteAt(1)
	if err != nil || b != 0x20 {
		t.Errorf("expected peek of 0x20, got 0x%02x, %v", b, err)
	}
	if record.Pos() != recordMinHeader {
		t.Error("peek should not move the cursor")
	}

	if _, err := record.ByteAt(100); !errors.Is(err, ErrPastEnd) {
		t.Errorf("expected ErrPastEnd for far peek, got %v", err)
	}
}

func TestRecordSegment(t *testing.T) {
	record, err := NewRecord(buildRecord(OpOutputOnly, 0x00, 0x05, 0xAA, 0xBB, 0xCC))
	if err != nil {
		t.Fatal(err)
	}

	segment, err := record.Segment()
	if err != nil {
		t.Fatalf("segment read failed: %v", err)
	}
	if len(segment) != 3 || segment[0] != 0xAA || segment[2] != 0xCC {
		t.Errorf("unexpected segment contents: %x", segment)
	}
	if record.HasNext() {
		t.Error("segment should consume its length prefix and body")
	}
}

func TestRecordSegmentTruncated(t *testing.T) {
	record, err := NewRecord(buildRecord(OpOutputOnly, 0x00, 0x50, 0xAA))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := record.Segment(); !errors.Is(err, ErrPastEnd) {
		t.Errorf("expected ErrPastEnd for truncated segment, got %v", err)
	}
}

func TestRecordTooShort(t *testing.T) {
	if _, err := NewRecord([]byte{0x00, 0x02, 0x12}); !errors.Is(err, ErrRecordTooShort) {
		t.Errorf("expected ErrRecordTooShort, got %v", err)
	}
}

func TestRecordHeaderLengthBeyondRecord(t *testing.T) {
	data := buildRecord(OpNoOp)
	data[recordVarHeaderOffset] = 0x70

	if _, err := NewRecord(data); !errors.Is(err, ErrRecordTooShort) {
		t.Errorf("expected ErrRecordTooShort for oversized header, got %v", err)
	}
}

func TestRecordDeclaredSizeClipped(t *testing.T) {
	data := buildRecord(OpOutputOnly, 0x01)
	binary.BigEndian.PutUint16(data, 0x7FFF)

	record, err := NewRecord(data)
	if err != nil {
		t.Fatal(err)
	}

	if record.Size() != len(data) {
		t.Errorf("declared size should clip to actual %d, got %d", len(data), record.Size())
	}
}

func TestRecordTrailingBytesBeyondDeclaredSize(t *testing.T) {
	// Two data bytes inside the declared size, two trailing bytes past it.
	data := append(buildRecord(OpOutputOnly, 0xAA, 0xBB), 0xCC, 0xDD)

	record, err := NewRecord(data)
	if err != nil {
		t.Fatal(err)
	}

	var read []byte
	for record.HasNext() {
		b, err := record.NextByte()
		if err != nil {
			t.Fatal(err)
		}
		read = append(read, b)
	}

	if len(read) != 2 || read[0] != 0xAA || read[1] != 0xBB {
		t.Fatalf("expected the two declared data bytes, got %x", read)
	}

	if b, err := record.NextByte(); !errors.Is(err, ErrPastEnd) {
		t.Errorf("trailing byte should not be readable, got 0x%02x, %v", b, err)
	}
	if b, err := record.ByteAt(0); !errors.Is(err, ErrPastEnd) {
		t.Errorf("trailing byte should not be peekable, got 0x%02x, %v", b, err)
	}
	if _, err := record.Segment(); !errors.Is(err, ErrPastEnd) {
		t.Errorf("segment should not reach past the declared size, got %v", err)
	}
	if remaining := record.Remaining(); remaining != nil {
		t.Errorf("expected no remaining declared bytes, got %x", remaining)
	}
}

func TestRecordRemaining(t *testing.T) {
	record, err := NewRecord(buildRecord(OpOutputOnly, 0x0A, 0x0B))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := record.NextByte(); err != nil {
		t.Fatal(err)
	}

	remaining := record.Remaining()
	if len(remaining) != 1 || remaining[0] != 0x0B {
		t.Errorf("unexpected remaining bytes: %x", remaining)
	}
}
