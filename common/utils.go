package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec3 = mgl32.Vec3

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DoWhile runs do at least once and keeps running it while while() holds.
// do returning true stops the loop early.
func DoWhile(do func() (stop bool), while func() bool) {
	if do() {
		return
	}
	for while() {
		if do() {
			return
		}
	}
}

// AssertTrue panics when a caller precondition does not hold.
func AssertTrue(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf(format, args...))
	}
}

// Prev returns the cyclic predecessor of i in [0, n).
func Prev[T IT](i, n T) T {
	if i-1 >= 0 {
		return i - 1
	}
	return n - 1
}

// Next returns the cyclic successor of i in [0, n).
func Next[T IT](i, n T) T {
	if i+1 < n {
		return i + 1
	}
	return 0
}
