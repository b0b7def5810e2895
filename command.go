package tn5250

// Telnet opcodes used by the 5250 record framing. TN5250E sessions run in
// binary mode with end-of-record framing: every 5250 record from the host
// arrives terminated by IAC EOR, and IAC NOP serves as the session
// heartbeat.
const (
	// EOR - End Of Record, terminates each 5250 record on the wire
	EOR byte = 239
	// NOP - No-Op, sent after IAC as a keep-alive heartbeat
	NOP byte = 241
	// IAC - precedes every telnet command byte; doubled to escape 0xFF data
	IAC byte = 255
)

// AID is the attention identifier transmitted to the host to report which
// key triggered the transmission.
type AID byte

const (
	AIDClear           AID = 0xBD
	AIDEnter           AID = 0xF1
	AIDHelp            AID = 0xF3
	AIDRollDown        AID = 0xF4
	AIDRollUp          AID = 0xF5
	AIDPrint           AID = 0xF6
	AIDRecordBackspace AID = 0xF8

	AIDF1  AID = 0x31
	AIDF2  AID = 0x32
	AIDF3  AID = 0x33
	AIDF4  AID = 0x34
	AIDF5  AID = 0x35
	AIDF6  AID = 0x36
	AIDF7  AID = 0x37
	AIDF8  AID = 0x38
	AIDF9  AID = 0x39
	AIDF10 AID = 0x3A
	AIDF11 AID = 0x3B
	AIDF12 AID = 0x3C

	AIDF13 AID = 0xB1
	AIDF14 AID = 0xB2
	AIDF15 AID = 0xB3
	AIDF16 AID = 0xB4
	AIDF17 AID = 0xB5
	AIDF18 AID = 0xB6
	AIDF19 AID = 0xB7
	AIDF20 AID = 0xB8
	AIDF21 AID = 0xB9
	AIDF22 AID = 0xBA
	AIDF23 AID = 0xBB
	AIDF24 AID = 0xBC
)

var aidNames = map[AID]string{
	AIDClear:           "Clear",
	AIDEnter:           "Enter",
	AIDHelp:            "Help",
	AIDRollDown:        "RollDown",
	AIDRollUp:          "RollUp",
	AIDPrint:           "Print",
	AIDRecordBackspace: "RecordBackspace",
	AIDF1:              "F1",
	AIDF2:              "F2",
	AIDF3:              "F3",
	AIDF4:              "F4",
	AIDF5:              "F5",
	AIDF6:              "F6",
	AIDF7:              "F7",
	AIDF8:              "F8",
	AIDF9:              "F9",
	AIDF10:             "F10",
	AIDF11:             "F11",
	AIDF12:             "F12",
	AIDF13:             "F13",
	AIDF14:             "F14",
	AIDF15:             "F15",
	AIDF16:             "F16",
	AIDF17:             "F17",
	AIDF18:             "F18",
	AIDF19:             "F19",
	AIDF20:             "F20",
	AIDF21:             "F21",
	AIDF22:             "F22",
	AIDF23:             "F23",
	AIDF24:             "F24",
}

func (a AID) String() string {
	name, hasName := aidNames[a]
	if !hasName {
		return "unknown"
	}

	return name
}

// aidMnemonics maps send-key mnemonic tokens, as produced by
// KeyStrokenizer, to the AID byte they transmit.
var aidMnemonics = map[string]AID{
	"[enter]":  AIDEnter,
	"[clear]":  AIDClear,
	"[help]":   AIDHelp,
	"[pgup]":   AIDRollDown,
	"[pgdown]": AIDRollUp,
	"[print]":  AIDPrint,
	"[pf1]":    AIDF1,
	"[pf2]":    AIDF2,
	"[pf3]":    AIDF3,
	"[pf4]":    AIDF4,
	"[pf5]":    AIDF5,
	"[pf6]":    AIDF6,
	"[pf7]":    AIDF7,
	"[pf8]":    AIDF8,
	"[pf9]":    AIDF9,
	"[pf10]":   AIDF10,
	"[pf11]":   AIDF11,
	"[pf12]":   AIDF12,
	"[pf13]":   AIDF13,
	"[pf14]":   AIDF14,
	"[pf15]":   AIDF15,
	"[pf16]":   AIDF16,
	"[pf17]":   AIDF17,
	"[pf18]":   AIDF18,
	"[pf19]":   AIDF19,
	"[pf20]":   AIDF20,
	"[pf21]":   AIDF21,
	"[pf22]":   AIDF22,
	"[pf23]":   AIDF23,
	"[pf24]":   AIDF24,
}

// AIDForMnemonic resolves a send-key mnemonic token such as "[enter]" or
// "[pf5]" to its AID byte.
func AIDForMnemonic(mnemonic string) (AID, bool) {
	aid, found := aidMnemonics[mnemonic]
	return aid, found
}
