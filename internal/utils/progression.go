package utils

import "iter"

// Progression yields start, start+step, start+2*step, ... while the value
// stays on the start side of end (exclusive). A negative step counts down.
// A zero step yields nothing. The sequence is finite and can be ranged over
// any number of times.
func Progression(start, step, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		switch {
		case step > 0:
			for i := start; i < end; i += step {
				if !yield(i) {
					return
				}
			}
		case step < 0:
			for i := start; i > end; i += step {
				if !yield(i) {
					return
				}
			}
		}
	}
}
