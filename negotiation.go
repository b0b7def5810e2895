package tn5250

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// DeviceType is the class of device negotiated over TN5250E. The wire
// format defines exactly three and no extension point.
type DeviceType byte

const (
	DeviceDisplay DeviceType = iota
	DevicePrinter
	DeviceCombined
)

func (d DeviceType) String() string {
	switch d {
	case DeviceDisplay:
		return "display"
	case DevicePrinter:
		return "printer"
	case DeviceCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// TN5250E device-negotiation wire format, network byte order:
//
//	offset 0-1: packet length (u16), must equal the actual packet length
//	offset 2:   command code, fixed 0x41
//	offset 3-4: reserved, must be zero
//	offset 5:   flags - bits 0-1 device type, bit 3 bypass, rest reserved
//	offset 6:   mode mask - bit 0 record mode, bit 1 response mode, rest reserved
//	offset 7..: device name, ASCII, NUL-terminated or bound at 8 bytes
const (
	negotiationCommand  byte = 0x41
	negotiationMinSize       = 7
	maxDeviceNameLength      = 8

	flagDeviceTypeMask byte = 0x03
	flagBypass         byte = 0x08
	flagReservedMask   byte = ^(flagDeviceTypeMask | flagBypass)

	modeRecord       byte = 0x01
	modeResponse     byte = 0x02
	modeReservedMask byte = ^(modeRecord | modeResponse)
)

// Negotiation packet rejection reasons. NegotiateDevice wraps these with
// the offending values.
var (
	ErrPacketTooShort   = errors.New("packet shorter than negotiation header")
	ErrLengthMismatch   = errors.New("declared length does not match packet")
	ErrBadCommand       = errors.New("not a device negotiation command")
	ErrReservedBytes    = errors.New("reserved header bytes not zero")
	ErrBadDeviceType    = errors.New("invalid device type")
	ErrReservedFlags    = errors.New("reserved flag bits set")
	ErrReservedModeBits = errors.New("reserved mode mask bits set")
)

// DeviceConfig is a validated TN5250E device negotiation result.
type DeviceConfig struct {
	Type         DeviceType
	Bypass       bool
	RecordMode   bool
	ResponseMode bool
	Name         string
}

// CombinedMode reports whether the negotiated device is a combined
// display/printer device.
func (c DeviceConfig) CombinedMode() bool {
	return c.Type == DeviceCombined
}

// NegotiateDevice validates a TN5250E device-negotiation packet and
// returns the device configuration it describes. Validation short-
// circuits on the first failed rule; a rejected packet yields a zero
// DeviceConfig and a non-nil error wrapping one of the Err* reasons.
//
// NegotiateDevice is a pure function with no retained state and is safe
// to call from any goroutine.
func NegotiateDevice(packet []byte) (DeviceConfig, error) {
	if len(packet) < negotiationMinSize {
		return DeviceConfig{}, fmt.Errorf("negotiate: %d byte packet: %w", len(packet), ErrPacketTooShort)
	}

	declared := int(binary.BigEndian.Uint16(packet))
	if declared != len(packet) || declared < negotiationMinSize {
		return DeviceConfig{}, fmt.Errorf("negotiate: declared %d, got %d bytes: %w", declared, len(packet), ErrLengthMismatch)
	}

	if packet[2] != negotiationCommand {
		return DeviceConfig{}, fmt.Errorf("negotiate: command 0x%02x: %w", packet[2], ErrBadCommand)
	}

	if packet[3] != 0 || packet[4] != 0 {
		return DeviceConfig{}, fmt.Errorf("negotiate: reserved bytes 0x%02x 0x%02x: %w", packet[3], packet[4], ErrReservedBytes)
	}

	flags := packet[5]
	deviceType := flags & flagDeviceTypeMask
	if deviceType > byte(DeviceCombined) {
		return DeviceConfig{}, fmt.Errorf("negotiate: device type %d: %w", deviceType, ErrBadDeviceType)
	}
	if flags&flagReservedMask != 0 {
		return DeviceConfig{}, fmt.Errorf("negotiate: flags 0x%02x: %w", flags, ErrReservedFlags)
	}

	mode := packet[6]
	if mode&modeReservedMask != 0 {
		return DeviceConfig{}, fmt.Errorf("negotiate: mode mask 0x%02x: %w", mode, ErrReservedModeBits)
	}

	return DeviceConfig{
		Type:         DeviceType(deviceType),
		Bypass:       flags&flagBypass != 0,
		RecordMode:   mode&modeRecord != 0,
		ResponseMode: mode&modeResponse != 0,
		Name:         deviceName(packet[negotiationMinSize:]),
	}, nil
}

// deviceName reads the ASCII device name following the header: up to
// eight bytes, stopping early at a NUL terminator. A missing name is
// valid and yields an empty string.
func deviceName(remainder []byte) string {
	if len(remainder) > maxDeviceNameLength {
		remainder = remainder[:maxDeviceNameLength]
	}

	for i, b := range remainder {
		if b == 0 {
			return string(remainder[:i])
		}
	}

	return string(remainder)
}
