package utils_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/google/go-cmp/cmp"
)

func TestProgression(t *testing.T) {
	cases := []struct {
		name             string
		start, step, end int
		want             []int
	}{
		{"stride one", 0, 1, 4, []int{0, 1, 2, 3}},
		{"stride two from one", 1, 2, 4, []int{1, 3}},
		{"start past end", 3, 4, 3, nil},
		{"count down", 3, -1, 0, []int{3, 2, 1}},
		{"zero step", 0, 0, 10, nil},
	}
	for _, c := range cases {
		got := slices.Collect(utils.Progression(c.start, c.step, c.end))
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestProgressionRestartable(t *testing.T) {
	seq := utils.Progression(2, 3, 11)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("second pass differs: %v vs %v", first, second)
	}
	for v := range seq {
		if v != 2 {
			t.Fatalf("expected early break after first value, got %d", v)
		}
		break
	}
}

func TestRequireInput(t *testing.T) {
	if err := utils.RequireInput[int]("x", nil); !errors.Is(err, utils.ErrInvalidArgument) {
		t.Fatalf("nil input: got %v, want ErrInvalidArgument", err)
	}
	if err := utils.RequireInput("x", []int{}); err != nil {
		t.Fatalf("empty input: unexpected error %v", err)
	}
}

func TestSafeWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := utils.EnsureDir(dir); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	p := filepath.Join(dir, "out.yaml")
	if err := utils.SafeWriteFile(p, []byte("output: json\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "output: json\n" {
		t.Fatalf("unexpected content: %q", b)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}
