package interval

import (
	"fmt"
	"strconv"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/errors"
)

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

// String formats c as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a "#rrggbb" (or "rrggbb") color.
func ParseRGB(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, errors.E(errors.Invalid, "interval.ParseRGB: expected 6 hex digits, got", strconv.Quote(s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, errors.E(errors.Invalid, err, "interval.ParseRGB:", s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// labelPalette holds well-separated colors for peak labels.
var labelPalette = []RGB{
	{0x1f, 0x77, 0xb4},
	{0xff, 0x7f, 0x0e},
	{0x2c, 0xa0, 0x2c},
	{0xd6, 0x27, 0x28},
	{0x94, 0x67, 0xbd},
	{0x8c, 0x56, 0x4b},
	{0xe3, 0x77, 0xc2},
	{0x7f, 0x7f, 0x7f},
	{0xbc, 0xbd, 0x22},
	{0x17, 0xbe, 0xcf},
}

// LabelColor returns the default color for a peak label.  The result only
// depends on the label, so the same analyte gets the same color in every
// export.
func LabelColor(label string) RGB {
	return labelPalette[seahash.Sum64([]byte(label))%uint64(len(labelPalette))]
}

// ColoredRange is a peak region: a Range decorated with a display label, a
// color, and an opaque handle to the peak identification it came from.  The
// decoration does not change any interval arithmetic.
type ColoredRange struct {
	Range
	Label string
	Color RGB
	// Peak is owned by the caller; this package never inspects it.
	Peak interface{}
}

// NewColoredRange validates [start, stop] as New does and attaches the
// metadata.
func NewColoredRange(start, stop float64, label string, color RGB, peak interface{}) (ColoredRange, error) {
	r, err := New(start, stop)
	if err != nil {
		return ColoredRange{}, err
	}
	return ColoredRange{Range: r, Label: label, Color: color, Peak: peak}, nil
}

// String formats c as "label[start, stop]#rrggbb".
func (c ColoredRange) String() string {
	return c.Label + c.Range.String() + c.Color.String()
}
