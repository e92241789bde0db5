package knapsack

// Complexity is the static cost annotation attached to a solve: the
// asymptotic time and space classes of the variant, the number of cell
// operations and the table footprint at 4 bytes per value (8 for counts).
type Complexity struct {
	Time        string
	Space       string
	Operations  int
	MemoryBytes int
}

// Complexity derives the annotation from the solved instance.
func (r *Result) Complexity() Complexity {
	n := len(r.Items)
	c := r.Capacity.Weight + 1

	switch r.Variant {
	case ZeroOne, Complete, Mixed:
		return Complexity{"O(n*C)", "O(n*C)", n * c, (n + 1) * c * 4}
	case Count:
		return Complexity{"O(n*C)", "O(n*C)", n * c, (n + 1) * c * 8}
	case Multiple:
		m := len(r.Splits)
		return Complexity{"O(C*Σlog(k))", "O(m*C)", m * c, (m + 1) * c * 4}
	case Dependency:
		m := len(r.Packages)
		return Complexity{"O(2^k*C)", "O(m*C)", m * c, (m + 1) * c * 4}
	case TwoDimensional:
		v := r.Capacity.Volume + 1
		return Complexity{"O(n*C*M)", "O(n*C*M)", n * c * v, (n + 1) * c * v * 4}
	case Group:
		g := len(r.Groups)
		ops := 0
		if g > 0 {
			ops = g * c * (n / g)
		}
		return Complexity{"O(G*C*K)", "O(G*C)", ops, (g + 1) * c * 4}
	case Kth:
		return Complexity{"O(n*C*K)", "O(n*C*K)", n * c * r.K, (n + 1) * c * r.K * 4}
	case Tree:
		return Complexity{"O(n*C^2)", "O(n*C)", n * c * c, n * c * 4}
	default:
		return Complexity{}
	}
}
