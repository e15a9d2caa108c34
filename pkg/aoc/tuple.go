package aoc

// Tuple2 is a parsed value whose fields bind, by position, to the two
// arguments of a Part2 function.
type Tuple2[T1, T2 any] struct {
	First  T1
	Second T2
}

// Tuple3 is a parsed value whose fields bind, by position, to the three
// arguments of a Part3 function.
type Tuple3[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

// Pair builds a Tuple2
func Pair[T1, T2 any](a T1, b T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{First: a, Second: b}
}

// Triple builds a Tuple3
func Triple[T1, T2, T3 any](a T1, b T2, c T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{First: a, Second: b, Third: c}
}
