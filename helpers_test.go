package outline

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

// setEpsilon changes the comparison tolerance, the returned function restores it.
func setEpsilon(eps float64) func() {
	prev := Epsilon
	Epsilon = eps
	return func() { Epsilon = prev }
}

func approx(t *testing.T, got, want, tol float64, msgs ...any) {
	t.Helper()
	test.That(t, -tol <= got-want && got-want <= tol, append([]any{fmt.Sprintf("%v != %v", got, want)}, msgs...)...)
}

// RandomPathData returns path data of n random commands, mixing absolute and relative commands.
func RandomPathData(r *rand.Rand, n int) string {
	num := func() string {
		return fmt.Sprintf("%.3f", r.NormFloat64()*10.0)
	}
	sb := strings.Builder{}
	sb.WriteString("M" + num() + "," + num())
	for i := 0; i < n; i++ {
		cmd := "MLHVCSQTAZ"[r.IntN(10)]
		if r.IntN(2) == 0 {
			cmd += 'a' - 'A'
		}
		sb.WriteByte(cmd)
		switch cmd {
		case 'M', 'm', 'L', 'l', 'T', 't':
			sb.WriteString(num() + " " + num())
		case 'H', 'h', 'V', 'v':
			sb.WriteString(num())
		case 'S', 's', 'Q', 'q':
			sb.WriteString(num() + " " + num() + " " + num() + " " + num())
		case 'C', 'c':
			sb.WriteString(num() + " " + num() + " " + num() + " " + num() + " " + num() + " " + num())
		case 'A', 'a':
			sb.WriteString(fmt.Sprintf("%s %s %s %d %d %s %s", num(), num(), num(), r.IntN(2), r.IntN(2), num(), num()))
		}
	}
	return sb.String()
}
