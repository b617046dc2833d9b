package ctopt

// Option is a value paired with a Choice recording whether decoding it
// succeeded. Every sub-field of a decode is computed unconditionally and
// folded into the combined Choice with And; nothing short-circuits on an
// earlier failure, so the time taken (and which branch of later code
// runs) does not reveal which sub-field, if any, was invalid.
type Option[T any] struct {
	value T
	ok    Choice
}

// Some wraps a successfully decoded value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: Choice(1)}
}

// None returns a failed option carrying the zero value of T.
func None[T any]() Option[T] {
	var zero T
	return Option[T]{value: zero, ok: Choice(0)}
}

// FromBool wraps v with a Choice derived from an ordinary bool. Used at
// the boundary between a sub-field decode (group's Decode* functions
// report validity as a bool, converted from the pairing library's
// SetBytes error) and the AND-combination discipline above it.
func FromBool[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

// And combines this option with another validity flag: the result
// carries this option's value and is valid only if both this option and
// other are valid.
// Both sides are always evaluated by the caller before calling And —
// this method itself never branches on either Choice.
func (o Option[T]) And(other Choice) Option[T] {
	return Option[T]{value: o.value, ok: o.ok.And(other)}
}

// Unwrap returns the carried value and whether it is valid.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok.Bool()
}

// Choice returns the validity flag carried alongside the value, for
// combining with other Options (of possibly different T) via Choice.And
// before any of them is unwrapped.
func (o Option[T]) Choice() Choice {
	return o.ok
}
