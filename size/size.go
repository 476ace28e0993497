/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package size provides a byte-count type with human-readable parsing and
// formatting, used anywhere the toolkit exposes a size in configuration:
// the framed channel's max frame size, shared memory region lengths, event
// bus history/buffer capacities expressed in bytes.
package size

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is a count of bytes. It marshals to/from JSON as a short human
// string ("64MB") and parses back the same way, so configuration records
// can carry sizes without forcing callers to write raw integers.
type Size uint64

const (
	SizeNul  Size = 0
	SizeUnit Size = 1
	SizeKilo      = SizeUnit << 10
	SizeMega      = SizeKilo << 10
	SizeGiga      = SizeMega << 10
	SizeTera      = SizeGiga << 10
	SizePeta      = SizeTera << 10
	SizeExa       = SizePeta << 10
)

const (
	FormatRound0 = "%.0f"
	FormatRound1 = "%.1f"
	FormatRound2 = "%.2f"
	FormatRound3 = "%.3f"
)

var defaultUnit rune = 'B'

// SetDefaultUnit changes the suffix rune appended after the unit letter
// returned by Code, e.g. 'i' turns "KB" into "Ki" (binary-prefix style).
func SetDefaultUnit(r rune) {
	if r != 0 {
		defaultUnit = r
	}
}

// ParseInt64 takes the absolute value of i as a byte count.
func ParseInt64(i int64) Size {
	if i < 0 {
		i = -i
	}
	return Size(i)
}

// ParseUint64 is a trivial conversion, kept for symmetry with ParseInt64/ParseFloat64.
func ParseUint64(u uint64) Size {
	return Size(u)
}

// ParseFloat64 floors the absolute value of f, saturating at math.MaxUint64.
func ParseFloat64(f float64) Size {
	if f < 0 {
		f = -f
	}
	f = math.Floor(f)
	if f >= math.MaxUint64 {
		return Size(math.MaxUint64)
	}
	return Size(f)
}

func SizeFromInt64(i int64) Size { return ParseInt64(i) }

func SizeFromFloat64(f float64) Size { return ParseFloat64(f) }

func (s Size) Int64() int64 {
	if s > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(s)
}

func (s Size) Uint64() uint64 {
	return uint64(s)
}

func (s Size) Float64() float64 {
	return float64(s)
}

// Mul scales the size in place by f, rounding up and saturating at
// math.MaxUint64 instead of wrapping around.
func (s *Size) Mul(f float64) {
	_ = s.MulErr(f)
}

func (s *Size) MulErr(f float64) error {
	if f <= 0 {
		*s = SizeNul
		return nil
	}

	r := math.Ceil(float64(*s) * f)
	if r >= math.MaxUint64 {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size: multiplication overflow")
	}

	*s = Size(r)
	return nil
}

func (s *Size) Div(f float64) {
	_ = s.DivErr(f)
}

func (s *Size) DivErr(f float64) error {
	if f <= 0 {
		return fmt.Errorf("size: invalid diviser '%v'", f)
	}

	*s = Size(math.Ceil(float64(*s) / f))
	return nil
}

func (s *Size) Add(o Size) {
	_ = s.AddErr(o)
}

func (s *Size) AddErr(o Size) error {
	if math.MaxUint64-uint64(*s) < uint64(o) {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size: addition overflow")
	}
	*s += o
	return nil
}

func (s *Size) Sub(o Size) {
	_ = s.SubErr(o)
}

func (s *Size) SubErr(o Size) error {
	if o > *s {
		*s = SizeNul
		return fmt.Errorf("size: invalid substractor '%d'", uint64(o))
	}
	*s -= o
	return nil
}

// KiloBytes etc. floor-divide into the given unit, matching the semantics
// of a file manager's "size in KB" column rather than a precise ratio.
func (s Size) KiloBytes() uint64 { return uint64(s) / uint64(SizeKilo) }
func (s Size) MegaBytes() uint64 { return uint64(s) / uint64(SizeMega) }
func (s Size) GigaBytes() uint64 { return uint64(s) / uint64(SizeGiga) }
func (s Size) TeraBytes() uint64 { return uint64(s) / uint64(SizeTera) }
func (s Size) PetaBytes() uint64 { return uint64(s) / uint64(SizePeta) }
func (s Size) ExaBytes() uint64  { return uint64(s) / uint64(SizeExa) }

func (s Size) floatIn(unit Size) float64 { return float64(s) / float64(unit) }

// Unit returns the short unit letter(s) for the largest unit that s fits
// in, optionally suffixed with r (0 to skip the suffix).
func (s Size) Unit(r rune) string {
	var u string
	switch {
	case s >= SizeExa:
		u = "E"
	case s >= SizePeta:
		u = "P"
	case s >= SizeTera:
		u = "T"
	case s >= SizeGiga:
		u = "G"
	case s >= SizeMega:
		u = "M"
	case s >= SizeKilo:
		u = "K"
	default:
		u = ""
	}

	if u == "" {
		return "B"
	}

	if r == 0 {
		return u + "B"
	}

	return u + string(r)
}

// Code is Unit using the package default suffix rune set by SetDefaultUnit.
func (s Size) Code(r rune) string {
	if r == 0 {
		r = defaultUnit
	}
	return s.Unit(r)
}

// Format renders s in its largest-fitting unit using the given printf
// float layout (e.g. FormatRound2), without the unit suffix.
func (s Size) Format(layout string) string {
	switch {
	case s >= SizeExa:
		return fmt.Sprintf(layout, s.floatIn(SizeExa))
	case s >= SizePeta:
		return fmt.Sprintf(layout, s.floatIn(SizePeta))
	case s >= SizeTera:
		return fmt.Sprintf(layout, s.floatIn(SizeTera))
	case s >= SizeGiga:
		return fmt.Sprintf(layout, s.floatIn(SizeGiga))
	case s >= SizeMega:
		return fmt.Sprintf(layout, s.floatIn(SizeMega))
	case s >= SizeKilo:
		return fmt.Sprintf(layout, s.floatIn(SizeKilo))
	default:
		return fmt.Sprintf(layout, float64(s))
	}
}

// String renders the largest unit that keeps the mantissa >= 1, trimming
// trailing zeroes in the decimal part.
func (s Size) String() string {
	v := s.Format(FormatRound2)
	if strings.Contains(v, ".") {
		v = strings.TrimRight(v, "0")
		v = strings.TrimSuffix(v, ".")
	}
	return v + s.Unit(0)
}

var unitMultiplier = map[string]Size{
	"":  SizeUnit,
	"B": SizeUnit,
	"K": SizeKilo, "KB": SizeKilo,
	"M": SizeMega, "MB": SizeMega,
	"G": SizeGiga, "GB": SizeGiga,
	"T": SizeTera, "TB": SizeTera,
	"P": SizePeta, "PB": SizePeta,
	"E": SizeExa, "EB": SizeExa,
}

// Parse parses strings like "64MB", "1.5GB", "1K" or a bare integer byte
// count, tolerating surrounding whitespace, a leading '+' and single
// or double quotes.
func Parse(str string) (Size, error) {
	str = strings.TrimSpace(str)
	str = strings.Trim(str, `"'`)
	str = strings.TrimSpace(str)

	if str == "" {
		return SizeNul, fmt.Errorf("size: invalid size %q", str)
	}

	if strings.HasPrefix(str, "-") {
		return SizeNul, fmt.Errorf("size: negative size %q is not allowed", str)
	}

	str = strings.TrimPrefix(str, "+")

	if v, err := strconv.ParseUint(str, 10, 64); err == nil {
		return Size(v), nil
	}

	i := 0
	for i < len(str) && (str[i] == '.' || (str[i] >= '0' && str[i] <= '9')) {
		i++
	}

	if i == 0 {
		return SizeNul, fmt.Errorf("size: missing numeric part in %q", str)
	}

	numPart := str[:i]
	unitPart := strings.ToUpper(strings.TrimSpace(str[i:]))

	if unitPart == "" {
		return SizeNul, fmt.Errorf("size: missing unit in %q", str)
	}

	mul, ok := unitMultiplier[unitPart]
	if !ok {
		return SizeNul, fmt.Errorf("size: unknown unit %q in %q", unitPart, str)
	}

	f, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return SizeNul, fmt.Errorf("size: invalid numeric part %q: %w", numPart, err)
	}

	r := f * float64(mul)
	if r >= math.MaxUint64 {
		return SizeNul, fmt.Errorf("size: %q overflows size", str)
	}

	return SizeFromFloat64(r), nil
}

// ParseByte is Parse over a byte slice.
func ParseByte(b []byte) (Size, error) {
	return Parse(string(b))
}

// ParseSize is a deprecated alias of Parse kept for source compatibility.
func ParseSize(str string) (Size, error) {
	return Parse(str)
}

// ParseByteAsSize is a deprecated alias of ParseByte kept for source compatibility.
func ParseByteAsSize(b []byte) (Size, error) {
	return ParseByte(b)
}

// GetSize is a deprecated, error-swallowing alias of Parse.
func GetSize(str string) (Size, bool) {
	s, err := Parse(str)
	if err != nil {
		return SizeNul, false
	}
	return s, true
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(p []byte) error {
	v, err := Parse(string(p))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
