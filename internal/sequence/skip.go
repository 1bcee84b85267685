package sequence

import (
	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/samber/lo"
)

// SkipSample returns len(in) sub-slices where the k-th (1-indexed) holds the
// elements at indices k-1, 2k-1, 3k-1, ... of in. The first sub-slice is
// therefore a copy of in. An empty input yields an empty outer slice.
func SkipSample[T any](in []T) ([][]T, error) {
	if err := utils.RequireInput("skip sample", in); err != nil {
		return nil, err
	}
	n := len(in)
	return lo.Map(in, func(_ T, offset int) []T {
		stride := offset + 1
		out := make([]T, 0, (n-offset+stride-1)/stride)
		for i := range utils.Progression(offset, stride, n) {
			out = append(out, in[i])
		}
		return out
	}), nil
}
