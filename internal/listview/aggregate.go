package listview

type Number interface {
	~int | ~int64 | ~float64
}

func Sum[T any, N Number](items []T, get func(T) N) N {
	var total N
	for _, v := range items {
		total += get(v)
	}
	return total
}

// Average is 0 for an empty slice.
func Average[T any, N Number](items []T, get func(T) N) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items, get)) / float64(len(items))
}

func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, v := range items {
		if pred(v) {
			n++
		}
	}
	return n
}

// Ratio divides by max(den, 1) so an empty denominator yields 0.
func Ratio(num, den int) float64 {
	return float64(num) / float64(max(den, 1))
}
