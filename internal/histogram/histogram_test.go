package histogram_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/KaramelBytes/kata-cli/internal/histogram"
	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const footer = "==========\n0123456789\n"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want string
	}{
		{"empty", []int{}, footer},
		{"out of range only", []int{10, -1}, footer},
		{"three ones and a five", []int{1, 1, 1, 5}, " *\n *\n *   *\n" + footer},
		{"two columns of equal height", []int{1, 1, 1, 5, 5, 5}, " *   *\n *   *\n *   *\n" + footer},
		{"single zero", []int{0}, "*\n" + footer},
		{"single nine", []int{9}, "         *\n" + footer},
		{"interior gap kept", []int{0, 0, 3}, "*\n*  *\n" + footer},
		{"every digit once", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, "**********\n" + footer},
		{"mixed with noise", []int{3, 42, 3, -7, 8, 100, 3, 8}, "   *\n   *    *\n   *    *\n" + footer},
	}
	for _, tt := range tests {
		got, err := histogram.Render(tt.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestRenderOptional(t *testing.T) {
	one, five, ten := 1, 5, 10
	got, err := histogram.RenderOptional([]*int{&one, nil, &one, &five, nil, &ten})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := " *\n *   *\n" + footer
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = histogram.RenderOptional([]*int{nil, nil})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != footer {
		t.Errorf("all absent: got %q, want footer only", got)
	}
}

func TestRenderInvalidArgument(t *testing.T) {
	if _, err := histogram.Render(nil); !errors.Is(err, utils.ErrInvalidArgument) {
		t.Fatalf("Render(nil): got %v, want ErrInvalidArgument", err)
	}
	if _, err := histogram.RenderOptional(nil); !errors.Is(err, utils.ErrInvalidArgument) {
		t.Fatalf("RenderOptional(nil): got %v, want ErrInvalidArgument", err)
	}
}

func TestCount(t *testing.T) {
	f, err := histogram.Count([]int{1, 1, 1, 5, 12, -3})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := histogram.Frequencies{0, 3, 0, 0, 0, 1, 0, 0, 0, 0}
	if f != want {
		t.Fatalf("got %v, want %v", f, want)
	}
	if f.Max() != 3 {
		t.Fatalf("Max: got %d, want 3", f.Max())
	}
	if f.Total() != 4 {
		t.Fatalf("Total: got %d, want 4", f.Total())
	}
}

func TestRenderTallColumn(t *testing.T) {
	in := make([]int, 250)
	for i := range in {
		in[i] = 7
	}
	got, err := histogram.Render(in)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 252 {
		t.Fatalf("got %d lines, want 250 rows plus footer", len(lines))
	}
	for i, l := range lines[:250] {
		if l != "       *" {
			t.Fatalf("row %d: got %q", i, l)
		}
	}
}

func TestRenderProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("shape follows the counts", prop.ForAll(
		func(in []int) bool {
			in = append([]int{}, in...)
			f, err := histogram.Count(in)
			if err != nil {
				return false
			}
			out := f.Render()
			if !strings.HasSuffix(out, footer) {
				return false
			}
			rows := strings.Split(strings.TrimSuffix(out, footer), "\n")
			rows = rows[:len(rows)-1]
			if len(rows) != f.Max() {
				return false
			}
			stars := 0
			for _, r := range rows {
				if strings.HasSuffix(r, " ") || len(r) > 10 {
					return false
				}
				stars += strings.Count(r, "*")
			}
			return stars == f.Total()
		},
		gen.SliceOf(gen.IntRange(-3, 12)),
	))

	properties.Property("deterministic", prop.ForAll(
		func(in []int) bool {
			in = append([]int{}, in...)
			a, errA := histogram.Render(in)
			b, errB := histogram.Render(in)
			return errA == nil && errB == nil && a == b
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

func TestWriteTable(t *testing.T) {
	f, err := histogram.Count([]int{1, 1, 1, 5})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var b strings.Builder
	f.WriteTable(&b)
	out := b.String()
	for _, want := range []string{"DIGIT", "COUNT", "SHARE", "75.0%", "25.0%", "TOTAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
