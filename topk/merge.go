package topk

// Merge combines two non-increasing sequences into the k largest values,
// non-increasing, keeping duplicates. On equal heads a is consumed first.
// The result never aliases a or b.
func Merge(a, b []int, k int) []int {
	n := len(a) + len(b)
	if n > k {
		n = k
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, 0, n)

	i, j := 0, 0
	for len(out) < k && (i < len(a) || j < len(b)) {
		if j >= len(b) || (i < len(a) && a[i] >= b[j]) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}

	return out
}

// shift returns s with v added to every element.
func shift(s []int, v int) []int {
	out := make([]int, len(s))
	for i, x := range s {
		out[i] = x + v
	}

	return out
}
