package tn5250

// 5250 display attributes occupy the range 0x20-0x3F. An attribute byte
// written into the buffer claims its own cell (rendered as a blank) and
// governs the presentation of the cells that follow it, up to the next
// attribute byte.
const (
	AttrMin byte = 0x20
	AttrMax byte = 0x3F
)

// Color is the resolved foreground color of a buffer cell.
type Color byte

const (
	ColorGreen Color = iota
	ColorWhite
	ColorRed
	ColorCyan
	ColorYellow
	ColorPink
	ColorMagenta
	ColorBlue
)

var colorNames = map[Color]string{
	ColorGreen:   "green",
	ColorWhite:   "white",
	ColorRed:     "red",
	ColorCyan:    "cyan",
	ColorYellow:  "yellow",
	ColorPink:    "pink",
	ColorMagenta: "magenta",
	ColorBlue:    "blue",
}

func (c Color) String() string {
	name, hasName := colorNames[c]
	if !hasName {
		return "unknown"
	}

	return name
}

// DisplayAttr is a bit set describing how a run of cells is presented.
// The zero value is a normal, left-to-right green-screen cell.
type DisplayAttr byte

const (
	DisplayReverse DisplayAttr = 1 << iota
	DisplayUnderline
	DisplayBlink
	DisplayColumnSep
	DisplayNonDisplay
)

// DisplayNormal is the display attribute of an unadorned cell.
const DisplayNormal DisplayAttr = 0

// ExtAttr is the extended-attribute plane bit set. Unlike DisplayAttr,
// which is derived from the attribute byte, these bits can also be set
// individually by structured fields.
type ExtAttr byte

const (
	ExtDoubleHeight ExtAttr = 1 << iota
	ExtDoubleWidth
	ExtUnderline
	ExtBlink
	ExtColumnSep
	ExtNonDisplay
)

type attrDispersal struct {
	color Color
	disp  DisplayAttr
	ext   ExtAttr
}

// attributeTable maps each attribute byte (0x20-0x3F, indexed by attr-0x20)
// to the color, display attribute, and extended bits it disperses onto its
// cell. Values 0x27, 0x2F, 0x37 and 0x3F are the non-display attributes.
var attributeTable = [32]attrDispersal{
	0x00: {ColorGreen, DisplayNormal, 0},
	0x01: {ColorGreen, DisplayReverse, 0},
	0x02: {ColorWhite, DisplayNormal, 0},
	0x03: {ColorWhite, DisplayReverse, 0},
	0x04: {ColorGreen, DisplayUnderline, ExtUnderline},
	0x05: {ColorGreen, DisplayReverse | DisplayUnderline, ExtUnderline},
	0x06: {ColorWhite, DisplayUnderline, ExtUnderline},
	0x07: {ColorWhite, DisplayNonDisplay, ExtNonDisplay},
	0x08: {ColorRed, DisplayNormal, 0},
	0x09: {ColorRed, DisplayReverse, 0},
	0x0A: {ColorRed, DisplayBlink, ExtBlink},
	0x0B: {ColorRed, DisplayReverse | DisplayBlink, ExtBlink},
	0x0C: {ColorRed, DisplayUnderline, ExtUnderline},
	0x0D: {ColorRed, DisplayReverse | DisplayUnderline, ExtUnderline},
	0x0E: {ColorRed, DisplayUnderline | DisplayBlink, ExtUnderline | ExtBlink},
	0x0F: {ColorRed, DisplayNonDisplay, ExtNonDisplay},
	0x10: {ColorCyan, DisplayColumnSep, ExtColumnSep},
	0x11: {ColorCyan, DisplayReverse | DisplayColumnSep, ExtColumnSep},
	0x12: {ColorBlue, DisplayColumnSep, ExtColumnSep},
	0x13: {ColorYellow, DisplayColumnSep, ExtColumnSep},
	0x14: {ColorCyan, DisplayUnderline | DisplayColumnSep, ExtUnderline | ExtColumnSep},
	0x15: {ColorCyan, DisplayReverse | DisplayUnderline | DisplayColumnSep, ExtUnderline | ExtColumnSep},
	0x16: {ColorBlue, DisplayUnderline | DisplayColumnSep, ExtUnderline | ExtColumnSep},
	0x17: {ColorWhite, DisplayNonDisplay, ExtNonDisplay | ExtColumnSep},
	0x18: {ColorPink, DisplayNormal, 0},
	0x19: {ColorPink, DisplayReverse, 0},
	0x1A: {ColorMagenta, DisplayNormal, 0},
	0x1B: {ColorBlue, DisplayNormal, 0},
	0x1C: {ColorBlue, DisplayReverse, 0},
	0x1D: {ColorMagenta, DisplayReverse, 0},
	0x1E: {ColorBlue, DisplayUnderline, ExtUnderline},
	0x1F: {ColorBlue, DisplayNonDisplay, ExtNonDisplay},
}

// disperseAttribute resolves an attribute byte into the values stored on
// the color and extended planes. Bytes outside the attribute range resolve
// to a normal green cell.
func disperseAttribute(attr byte) attrDispersal {
	if attr < AttrMin || attr > AttrMax {
		return attrDispersal{}
	}

	return attributeTable[attr-AttrMin]
}
