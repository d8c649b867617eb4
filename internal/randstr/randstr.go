package randstr

// DefaultLen is the default length of a generated string.
const DefaultLen = 16

// Pool is an ordered sequence of characters a generated string draws from.
// Duplicate characters are permitted and bias the distribution toward the
// duplicated character; deduplication is the caller's concern.
type Pool []rune

// NewPool builds a Pool from the characters of s.
func NewPool(s string) Pool {
	return Pool(s)
}

// Generate returns a string of exactly length characters, each drawn
// independently and uniformly from pool using the operating system CSPRNG.
func Generate(length int, pool Pool) (string, error) {
	return GenerateWith(DefaultSource, length, pool)
}

// GenerateWith is Generate with an injected randomness source.
// Validation happens before any randomness is consumed: a non-positive
// length returns ErrInvalidLength and an empty pool returns ErrEmptyPool.
func GenerateWith(src Source, length int, pool Pool) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	out := make([]rune, length)

	for i := range out {
		idx, err := src.Intn(len(pool))
		if err != nil {
			return "", err
		}

		out[i] = pool[idx]
	}

	return string(out), nil
}
