package tn5250

// Plane identifies one of the parallel planes maintained by ScreenPlanes.
type Plane byte

const (
	// PlaneText holds the character stored at each position
	PlaneText Plane = iota
	// PlaneAttr holds the raw attribute byte at attribute places, 0 elsewhere
	PlaneAttr
	// PlaneColor holds the resolved Color of each position
	PlaneColor
	// PlaneExtended holds the ExtAttr bit set of each position
	PlaneExtended
	// PlaneIsAttr holds 1 at attribute places and 0 elsewhere
	PlaneIsAttr
)

// ScreenPlanes is the multi-plane character buffer of one host session.
// Every plane has length Rows x Columns, fixed at creation; changing the
// screen geometry means allocating a new buffer.
//
// Write methods trust the caller to pass positions in [0, Size()). The
// protocol driver validates positions against the negotiated geometry
// before writing, so the buffer does not re-check them. Read methods are
// total: out-of-range coordinates clamp or clip rather than fail, because
// the read path is exercised by automation with arbitrary inputs.
type ScreenPlanes struct {
	rows    int
	cols    int
	text    []rune
	isAttr  []bool
	attr    []byte
	color   []Color
	disp    []DisplayAttr
	extAttr []ExtAttr
}

// NewScreenPlanes allocates a buffer for the given geometry. The standard
// 5250 geometries are 24x80 and 27x132.
func NewScreenPlanes(rows, cols int) *ScreenPlanes {
	size := rows * cols

	p := &ScreenPlanes{
		rows:    rows,
		cols:    cols,
		text:    make([]rune, size),
		isAttr:  make([]bool, size),
		attr:    make([]byte, size),
		color:   make([]Color, size),
		disp:    make([]DisplayAttr, size),
		extAttr: make([]ExtAttr, size),
	}

	return p
}

// Rows returns the number of screen rows.
func (p *ScreenPlanes) Rows() int {
	return p.rows
}

// Columns returns the number of screen columns.
func (p *ScreenPlanes) Columns() int {
	return p.cols
}

// Size returns the length of every plane (Rows x Columns).
func (p *ScreenPlanes) Size() int {
	return len(p.text)
}

// Pos converts a row/column pair into a linear plane position.
func (p *ScreenPlanes) Pos(row, col int) int {
	return row*p.cols + col
}

// RowOf returns the row containing pos, clamped into [0, Rows()) so that
// hostile positions never produce an unusable row.
func (p *ScreenPlanes) RowOf(pos int) int {
	row := pos / p.cols
	if row < 0 {
		return 0
	}
	if row >= p.rows {
		return p.rows - 1
	}

	return row
}

// ColOf returns the column containing pos, clamped into [0, Columns()).
func (p *ScreenPlanes) ColOf(pos int) int {
	if pos < 0 {
		return 0
	}

	return pos % p.cols
}

// SetChar stores ch on the text plane and clears the attribute marker at
// pos, leaving the adjacent positions untouched.
func (p *ScreenPlanes) SetChar(pos int, ch rune) {
	p.text[pos] = ch
	p.isAttr[pos] = false
}

// Char returns the character stored at pos.
func (p *ScreenPlanes) Char(pos int) rune {
	return p.text[pos]
}

// SetAttribute marks pos as an attribute place holding attr and disperses
// the derived color, display attribute, and extended bits onto the same
// position. The character at pos is suppressed.
func (p *ScreenPlanes) SetAttribute(pos int, attr byte) {
	dispersed := disperseAttribute(attr)

	p.isAttr[pos] = true
	p.attr[pos] = attr
	p.text[pos] = 0
	p.color[pos] = dispersed.color
	p.disp[pos] = dispersed.disp
	p.extAttr[pos] = dispersed.ext
}

// Attribute returns the attribute byte last written at exactly pos. The
// buffer does not forward-propagate attributes on read; the driver paints
// each position's resolved attribute explicitly.
func (p *ScreenPlanes) Attribute(pos int) byte {
	return p.attr[pos]
}

// IsAttributePlace reports whether pos carries an attribute byte rather
// than displayable data.
func (p *ScreenPlanes) IsAttributePlace(pos int) bool {
	return p.isAttr[pos]
}

// SetResolved paints the resolved presentation of a non-attribute position,
// used when dispersing an attribute across the run of cells it governs.
func (p *ScreenPlanes) SetResolved(pos int, attr byte) {
	dispersed := disperseAttribute(attr)

	p.attr[pos] = attr
	p.color[pos] = dispersed.color
	p.disp[pos] = dispersed.disp
	p.extAttr[pos] = dispersed.ext
}

// Color returns the resolved color at pos.
func (p *ScreenPlanes) Color(pos int) Color {
	return p.color[pos]
}

// DisplayAttr returns the derived display attribute at pos.
func (p *ScreenPlanes) DisplayAttr(pos int) DisplayAttr {
	return p.disp[pos]
}

// Extended returns the extended-attribute bits at pos.
func (p *ScreenPlanes) Extended(pos int) ExtAttr {
	return p.extAttr[pos]
}

// SetExtended overwrites the extended-attribute bits at pos. Extended bits
// are independently settable from the attribute byte.
func (p *ScreenPlanes) SetExtended(pos int, ext ExtAttr) {
	p.extAttr[pos] = ext
}

// ReadScreen returns the full text plane as a rune slice of length Size().
// When includeMarkers is false, attribute places and control characters
// below the printable threshold are rendered as spaces; when true, raw
// values are returned verbatim, including zero bytes.
func (p *ScreenPlanes) ReadScreen(includeMarkers bool) []rune {
	out := make([]rune, len(p.text))

	for i, ch := range p.text {
		if !includeMarkers && (p.isAttr[i] || ch < ' ') {
			out[i] = ' '
			continue
		}

		out[i] = ch
	}

	return out
}

// ReadPlaneRect extracts the linear run of plane values between the two
// coordinate pairs. Inverted coordinates are swapped rather than rejected,
// and an end position past the buffer is clipped to the buffer length.
func (p *ScreenPlanes) ReadPlaneRect(plane Plane, startRow, startCol, endRow, endCol int) []rune {
	start := p.Pos(startRow, startCol)
	end := p.Pos(endRow, endCol)

	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end >= len(p.text) {
		end = len(p.text) - 1
	}
	if end < start {
		return nil
	}

	out := make([]rune, 0, end-start+1)
	for pos := start; pos <= end; pos++ {
		out = append(out, p.planeValue(plane, pos))
	}

	return out
}

func (p *ScreenPlanes) planeValue(plane Plane, pos int) rune {
	switch plane {
	case PlaneAttr:
		return rune(p.attr[pos])
	case PlaneColor:
		return rune(p.color[pos])
	case PlaneExtended:
		return rune(p.extAttr[pos])
	case PlaneIsAttr:
		if p.isAttr[pos] {
			return 1
		}
		return 0
	default:
		return p.text[pos]
	}
}

// Clear resets every plane to its zero value.
func (p *ScreenPlanes) Clear() {
	for i := range p.text {
		p.text[i] = 0
		p.isAttr[i] = false
		p.attr[i] = 0
		p.color[i] = 0
		p.disp[i] = 0
		p.extAttr[i] = 0
	}
}
