package engine

// abs returns the absolute value of x.
func abs(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int8) int8 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
