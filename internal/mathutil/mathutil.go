package mathutil

var (
	// powers of ten that fit a 32-bit int, so the table is valid on any platform.
	decimalFactorTable = [...]int{
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000,
	}
)

// Pow10 returns 10^pow for a non-negative pow, and 0 otherwise.
// Past the end of the table the multiplication continues in plain int
// arithmetic, so the result wraps on overflow just like the callers do.
func Pow10(pow int) int {
	if pow < 0 {
		return 0
	}
	result := 1
	for ; pow >= len(decimalFactorTable); pow -= len(decimalFactorTable) - 1 {
		result *= decimalFactorTable[len(decimalFactorTable)-1]
	}
	return result * decimalFactorTable[pow]
}
