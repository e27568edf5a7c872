package opflow

import "fmt"

// Pair is the success value of a two-member WhenAll.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the success value of a three-member WhenAll.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
