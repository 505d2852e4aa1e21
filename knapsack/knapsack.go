package knapsack

// Solve01 — exact 0/1 knapsack
//
// Algorithm Outline:
//  1. Let n = len(values). Cell (i, w) holds the best achievable value
//     using items 0..i-1 with total weight <= w:
//     table[i][w] = table[i-1][w]                                if weights[i-1] > w
//     table[i][w] = max(table[i-1][w],
//     table[i-1][w-weights[i-1]] + values[i-1])   otherwise
//  2. objective = table[n][capacity].
//  3. Reconstruction walks from (n, capacity) backward: item i-1 is selected
//     iff table[i][w] != table[i-1][w], i.e. taking it strictly improved the
//     cell. Ties therefore always resolve to "not taken", which makes
//     repeated solves of identical instances return identical selections.
//
// Edge cases:
//   - n == 0 or capacity == 0 → objective 0, all-zero selection.
//   - An item whose weight exceeds capacity is simply never selectable.
//   - Negative-value items are legal; the recurrence never picks them
//     (the candidate can only lose against the monotone previous row).
//
// Complexity: O(n·capacity) time; memory per Options.MemoryMode.

// Solve01 solves the 0/1 knapsack problem exactly and returns the optimal
// objective together with a 0/1 selection vector aligned to item order.
// A nil opts selects DefaultOptions.
//
// Example:
//
//	obj, sel, err := knapsack.Solve01([]float64{60, 100, 120}, []int{10, 20, 30}, 50, nil)
//	// obj == 220, sel == []int{0, 1, 1}
func Solve01(values []float64, weights []int, capacity int, opts *Options) (objective float64, selection []int, err error) {
	n := len(values)
	if len(weights) != n {
		return 0, nil, ErrBadInput
	}
	if capacity < 0 {
		return 0, nil, ErrBadInput
	}
	for _, w := range weights {
		if w < 0 {
			return 0, nil, ErrBadInput
		}
	}

	mode := FullTable
	if opts != nil {
		mode = opts.MemoryMode
	}

	// Trivially-empty instances: nothing to choose.
	if n == 0 || capacity == 0 {
		return 0, make([]int, n), nil
	}

	if mode == RollingKeep {
		return solveRolling(values, weights, capacity)
	}

	return solveFull(values, weights, capacity)
}

// solveFull runs the DP over the complete value table and backtracks by
// comparing adjacent rows.
func solveFull(values []float64, weights []int, capacity int) (float64, []int, error) {
	n := len(values)

	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, capacity+1)
	}

	for i := 1; i <= n; i++ {
		vi, wi := values[i-1], weights[i-1]
		prev, curr := table[i-1], table[i]
		for w := 0; w <= capacity; w++ {
			best := prev[w]
			if wi <= w {
				if cand := prev[w-wi] + vi; cand > best {
					best = cand
				}
			}
			curr[w] = best
		}
	}

	selection := make([]int, n)
	w := capacity
	for i := n; i >= 1; i-- {
		if table[i][w] != table[i-1][w] {
			selection[i-1] = 1
			w -= weights[i-1]
			if w < 0 {
				return 0, nil, ErrInternal
			}
		}
	}

	return table[n][capacity], selection, nil
}

// solveRolling runs the DP over two value rows and records "take" decisions
// in a packed bitset; reconstruction replays the bits. The keep bit is set
// exactly when the candidate strictly improves the cell, which is the same
// predicate solveFull evaluates on its table, so the two modes agree bit
// for bit.
func solveRolling(values []float64, weights []int, capacity int) (float64, []int, error) {
	n := len(values)
	words := (capacity >> 6) + 1

	prev := make([]float64, capacity+1)
	curr := make([]float64, capacity+1)
	keep := make([][]uint64, n)

	for i := 1; i <= n; i++ {
		vi, wi := values[i-1], weights[i-1]
		bits := make([]uint64, words)
		for w := 0; w <= capacity; w++ {
			best := prev[w]
			if wi <= w {
				if cand := prev[w-wi] + vi; cand > best {
					best = cand
					bits[w>>6] |= 1 << (uint(w) & 63)
				}
			}
			curr[w] = best
		}
		keep[i-1] = bits
		prev, curr = curr, prev
	}

	selection := make([]int, n)
	w := capacity
	for i := n; i >= 1; i-- {
		if keep[i-1][w>>6]&(1<<(uint(w)&63)) != 0 {
			selection[i-1] = 1
			w -= weights[i-1]
			if w < 0 {
				return 0, nil, ErrInternal
			}
		}
	}

	// After the final swap, prev holds row n.
	return prev[capacity], selection, nil
}
