package solo

import "github.com/ib-77/opflow/pkg/opflow"

func WhenAll2[A, B any](a opflow.Outcome[A], b opflow.Outcome[B]) opflow.Outcome[opflow.Pair[A, B]] {
	if a.IsFailure() {
		return opflow.FailureFrom[A, opflow.Pair[A, B]](a)
	}
	if b.IsFailure() {
		return opflow.FailureFrom[B, opflow.Pair[A, B]](b)
	}
	return opflow.Success(opflow.Pair[A, B]{First: a.Result(), Second: b.Result()})
}

func WhenAll3[A, B, C any](a opflow.Outcome[A], b opflow.Outcome[B],
	c opflow.Outcome[C]) opflow.Outcome[opflow.Triple[A, B, C]] {

	if a.IsFailure() {
		return opflow.FailureFrom[A, opflow.Triple[A, B, C]](a)
	}
	if b.IsFailure() {
		return opflow.FailureFrom[B, opflow.Triple[A, B, C]](b)
	}
	if c.IsFailure() {
		return opflow.FailureFrom[C, opflow.Triple[A, B, C]](c)
	}
	return opflow.Success(opflow.Triple[A, B, C]{First: a.Result(), Second: b.Result(), Third: c.Result()})
}

// WhenAll returns the first failing member in positional order, or all values
// in positional order.
func WhenAll[T any](ops ...opflow.Outcome[T]) opflow.Outcome[[]T] {
	values := make([]T, 0, len(ops))
	for _, op := range ops {
		if op.IsFailure() {
			return opflow.FailureFrom[T, []T](op)
		}
		values = append(values, op.Result())
	}
	return opflow.Success(values)
}
