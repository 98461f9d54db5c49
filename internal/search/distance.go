package search

// Distance returns the Levenshtein edit distance between a and b: the minimum
// number of single-rune insertions, deletions or substitutions that turn one
// into the other. Working space is a single row sized to the shorter input.
func Distance(a, b string) int {
	long, short := []rune(a), []rune(b)
	if len(long) < len(short) {
		long, short = short, long
	}
	if len(short) == 0 {
		return len(long)
	}

	row := make([]int, len(short)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(long); i++ {
		diag := row[0] // row[i-1][j-1]
		row[0] = i
		for j := 1; j <= len(short); j++ {
			above := row[j]
			cost := 1
			if long[i-1] == short[j-1] {
				cost = 0
			}
			row[j] = min(
				above+1,    // deletion
				row[j-1]+1, // insertion
				diag+cost,  // substitution
			)
			diag = above
		}
	}

	return row[len(short)]
}
