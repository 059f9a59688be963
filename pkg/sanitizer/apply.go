package sanitizer

// Apply runs value through the given transforms in order. Useful for one-off
// cleanup chains on a single address.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable cleanup pipeline from the given transforms.
// Preferred over repeated Apply calls when the same chain handles every
// inbound address.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
