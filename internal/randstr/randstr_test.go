package randstr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randstr-cli/randstr/internal/randstr"
)

// stubSource replays a fixed index sequence, reduced mod n.
type stubSource struct {
	seq []int
	pos int
}

func (s *stubSource) Intn(n int) (int, error) {
	idx := s.seq[s.pos%len(s.seq)]
	s.pos++

	return idx % n, nil
}

// failSource always fails, standing in for an unreadable entropy source.
type failSource struct{}

func (failSource) Intn(_ int) (int, error) {
	return 0, randstr.ErrEntropyUnavailable
}

func TestGenerateLength(t *testing.T) {
	pool := randstr.NewPool("abc")

	for _, length := range []int{1, 2, 12, 64, 1024} {
		s, err := randstr.Generate(length, pool)
		require.NoError(t, err)
		assert.Len(t, []rune(s), length)
	}
}

func TestGeneratePoolMembership(t *testing.T) {
	pool := randstr.NewPool("abc")

	s, err := randstr.Generate(12, pool)
	require.NoError(t, err)

	for _, r := range s {
		assert.Contains(t, "abc", string(r))
	}
}

func TestGenerateAlphanumericScenario(t *testing.T) {
	pool, err := randstr.ResolveCharset(randstr.CharsetAlphanumeric, "")
	require.NoError(t, err)

	s, err := randstr.Generate(8, pool)
	require.NoError(t, err)
	assert.Len(t, s, 8)

	for _, r := range s {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", string(r))
	}
}

func TestGenerateUnicodePool(t *testing.T) {
	pool := randstr.NewPool("äöü€")

	s, err := randstr.Generate(20, pool)
	require.NoError(t, err)
	assert.Len(t, []rune(s), 20)

	for _, r := range s {
		assert.Contains(t, "äöü€", string(r))
	}
}

func TestGenerateInvalidArguments(t *testing.T) {
	pool := randstr.NewPool("abc")

	tests := []struct {
		name    string
		length  int
		pool    randstr.Pool
		wantErr error
	}{
		{"zero length", 0, pool, randstr.ErrInvalidLength},
		{"negative length", -1, pool, randstr.ErrInvalidLength},
		{"empty pool", 12, randstr.Pool{}, randstr.ErrEmptyPool},
		{"nil pool", 12, nil, randstr.ErrEmptyPool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := randstr.Generate(tt.length, tt.pool)
			assert.Empty(t, s)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateValidatesBeforeDrawing(t *testing.T) {
	// Validation failures must never touch the source.
	_, err := randstr.GenerateWith(failSource{}, 0, randstr.NewPool("abc"))
	assert.ErrorIs(t, err, randstr.ErrInvalidLength)

	_, err = randstr.GenerateWith(failSource{}, 8, nil)
	assert.ErrorIs(t, err, randstr.ErrEmptyPool)
}

func TestGenerateWithEntropyFailure(t *testing.T) {
	_, err := randstr.GenerateWith(failSource{}, 8, randstr.NewPool("abc"))
	assert.ErrorIs(t, err, randstr.ErrEntropyUnavailable)
}

func TestGenerateWithStubSource(t *testing.T) {
	src := &stubSource{seq: []int{0, 1, 2}}

	s, err := randstr.GenerateWith(src, 6, randstr.NewPool("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abcabc", s)
}

func TestGenerateSuccessiveCallsDiffer(t *testing.T) {
	pool, err := randstr.ResolveCharset(randstr.CharsetAlphanumeric, "")
	require.NoError(t, err)

	first, err := randstr.Generate(32, pool)
	require.NoError(t, err)

	second, err := randstr.Generate(32, pool)
	require.NoError(t, err)

	// 62^32 possibilities; a collision here means a fixed seed snuck in.
	assert.NotEqual(t, first, second)
}

func TestCryptoSourceUnreadableStream(t *testing.T) {
	src := randstr.NewCryptoSource(errReader{})

	_, err := randstr.GenerateWith(src, 8, randstr.NewPool("abc"))
	assert.ErrorIs(t, err, randstr.ErrEntropyUnavailable)
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("closed")
}

// TestGenerateUniformity is a chi-square goodness-of-fit check: over a large
// sample the per-character frequency must converge toward 1/k.
func TestGenerateUniformity(t *testing.T) {
	const (
		sample = 100000

		// df = 9; crossing this by chance has probability well below 1e-4.
		critical = 35.0
	)

	pool, err := randstr.ResolveCharset(randstr.CharsetDigits, "")
	require.NoError(t, err)

	s, err := randstr.Generate(sample, pool)
	require.NoError(t, err)

	counts := make(map[rune]int, len(pool))
	for _, r := range s {
		counts[r]++
	}

	require.Len(t, counts, len(pool), "every pool character should appear in a sample this large")

	expected := float64(sample) / float64(len(pool))

	var chi2 float64

	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}

	assert.Less(t, chi2, critical, "distribution deviates from uniform")
}

func TestGenerateLargePoolUsesWordDraws(t *testing.T) {
	// Over 256 distinct runes forces the 4-byte rejection path.
	var b strings.Builder
	for r := rune(0x100); r < 0x100+300; r++ {
		b.WriteRune(r)
	}

	pool := randstr.NewPool(b.String())
	require.Greater(t, len(pool), 256)

	s, err := randstr.Generate(50, pool)
	require.NoError(t, err)
	assert.Len(t, []rune(s), 50)

	member := make(map[rune]struct{}, len(pool))
	for _, r := range pool {
		member[r] = struct{}{}
	}

	for _, r := range s {
		_, ok := member[r]
		assert.True(t, ok)
	}
}
