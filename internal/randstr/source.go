package randstr

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Source draws one uniform index in [0, n). Implementations must be
// unpredictable even to an adversary who knows the algorithm and prior
// outputs; a seedable pseudo-random generator violates the contract.
type Source interface {
	Intn(n int) (int, error)
}

const (
	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// wordRange is the total number of possible uint32 values (2^32).
	wordRange = 1 << 32
)

// CryptoSource reads uniform indexes from a cryptographically secure byte
// stream, rejecting values that would introduce modulo bias.
type CryptoSource struct {
	r io.Reader
}

// NewCryptoSource returns a Source backed by the given secure byte stream.
func NewCryptoSource(r io.Reader) *CryptoSource {
	return &CryptoSource{r: r}
}

// DefaultSource is the production source, backed by the operating system
// CSPRNG via crypto/rand. It is safe for concurrent use.
var DefaultSource Source = NewCryptoSource(rand.Reader)

// Intn draws one uniform index in [0, n). n must be at least 1 and is
// guaranteed by the generator's eager validation.
func (s *CryptoSource) Intn(n int) (int, error) {
	if n < 1 {
		panic("randstr: Intn called with non-positive n")
	}

	if n <= byteRange {
		return s.intnByte(n)
	}

	return s.intnWord(n)
}

// intnByte draws an index from single random bytes. Bytes above maxRb are
// skipped so that every residue class mod n stays equally likely.
func (s *CryptoSource) intnByte(n int) (int, error) {
	var buf [1]byte

	maxRb := maxByteValue - byteRange%n

	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, errors.Wrap(ErrEntropyUnavailable, err.Error())
		}

		c := int(buf[0])
		if c > maxRb {
			continue
		}

		return c % n, nil
	}
}

// intnWord draws an index from 4-byte words for pools larger than 256
// characters, with the same rejection rule widened to the uint32 range.
func (s *CryptoSource) intnWord(n int) (int, error) {
	var buf [4]byte

	limit := uint64(wordRange) - uint64(wordRange)%uint64(n)

	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, errors.Wrap(ErrEntropyUnavailable, err.Error())
		}

		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v >= limit {
			continue
		}

		return int(v % uint64(n)), nil
	}
}
