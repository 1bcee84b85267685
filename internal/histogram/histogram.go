// Package histogram counts single-digit values and renders them as a
// vertical bar chart of asterisks above a fixed two-line footer.
package histogram

import (
	"strings"

	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/samber/lo"
)

const (
	digits = 10
	bar    = '*'
	footer = "==========\n0123456789\n"
)

// Frequencies maps each digit 0-9 to the number of times it occurred.
type Frequencies [digits]int

// Count tallies the digits in values. Values outside 0-9 are ignored.
func Count(values []int) (Frequencies, error) {
	var f Frequencies
	if err := utils.RequireInput("histogram", values); err != nil {
		return f, err
	}
	for _, v := range values {
		f.add(v)
	}
	return f, nil
}

// CountOptional is like Count but accepts absent (nil) elements, which are
// skipped.
func CountOptional(values []*int) (Frequencies, error) {
	var f Frequencies
	if err := utils.RequireInput("histogram", values); err != nil {
		return f, err
	}
	for _, v := range values {
		if v != nil {
			f.add(*v)
		}
	}
	return f, nil
}

func (f *Frequencies) add(v int) {
	if v >= 0 && v < digits {
		f[v]++
	}
}

// Max returns the highest digit count, which is the number of bar rows.
func (f Frequencies) Max() int {
	return lo.Max(f[:])
}

// Total returns the number of counted values.
func (f Frequencies) Total() int {
	return lo.Sum(f[:])
}

// Render draws one row per unit of height, tallest first, followed by the
// footer. Trailing spaces are trimmed from each row; leading and interior
// spaces are kept so columns stay aligned. With no counted values only the
// footer is returned.
func (f Frequencies) Render() string {
	var b strings.Builder
	for height := range utils.Progression(f.Max(), -1, 0) {
		b.WriteString(f.row(height))
		b.WriteByte('\n')
	}
	b.WriteString(footer)
	return b.String()
}

func (f Frequencies) row(height int) string {
	line := make([]byte, digits)
	for d, c := range f {
		if c >= height {
			line[d] = bar
		} else {
			line[d] = ' '
		}
	}
	return strings.TrimRight(string(line), " ")
}

// Render counts values and renders the histogram.
func Render(values []int) (string, error) {
	f, err := Count(values)
	if err != nil {
		return "", err
	}
	return f.Render(), nil
}

// RenderOptional counts values, skipping absent ones, and renders the histogram.
func RenderOptional(values []*int) (string, error) {
	f, err := CountOptional(values)
	if err != nil {
		return "", err
	}
	return f.Render(), nil
}
