package sequence

import (
	"cmp"
	"fmt"

	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/samber/lo"
)

// LocalMaxima returns the interior elements of in that are strictly greater
// than both immediate neighbours, in their original order. Inputs shorter
// than three elements have no interior and yield an empty result.
func LocalMaxima[T cmp.Ordered](in []T) ([]T, error) {
	if err := utils.RequireInput("local maxima", in); err != nil {
		return nil, err
	}
	return localMaxima(in, func(a, b T) bool { return a > b }), nil
}

// LocalMaximaFunc is like LocalMaxima but orders elements with compare, which
// must return a positive number when a > b.
func LocalMaximaFunc[T any](in []T, compare func(a, b T) int) ([]T, error) {
	if err := utils.RequireInput("local maxima", in); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, fmt.Errorf("local maxima: comparator is nil: %w", utils.ErrInvalidArgument)
	}
	return localMaxima(in, func(a, b T) bool { return compare(a, b) > 0 }), nil
}

func localMaxima[T any](in []T, greater func(a, b T) bool) []T {
	if len(in) < 3 {
		return []T{}
	}
	// v sits at in[i+1]; its neighbours are in[i] and in[i+2].
	return lo.Filter(in[1:len(in)-1], func(v T, i int) bool {
		return greater(v, in[i]) && greater(v, in[i+2])
	})
}
