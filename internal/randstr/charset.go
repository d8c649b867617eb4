package randstr

// Charset selector names accepted on the command line and in the config
// file. Each resolves to a concrete Pool before the generator runs.
const (
	CharsetAlphanumeric        = "alphanumeric"
	CharsetAlphanumericSymbols = "alphanumeric_symbols"
	CharsetDigits              = "digits"
	CharsetLetters             = "letters"
	CharsetSymbols             = "symbols"
	CharsetCustom              = "custom"
)

const (
	digits    = "0123456789"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letters   = lowercase + uppercase

	// symbols matches the common ASCII punctuation set.
	symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Charsets lists the supported charset selector names.
func Charsets() []string {
	return []string{
		CharsetAlphanumeric,
		CharsetAlphanumericSymbols,
		CharsetDigits,
		CharsetLetters,
		CharsetSymbols,
		CharsetCustom,
	}
}

// ResolveCharset maps a charset selector to a concrete Pool. The custom
// selector uses the characters of custom verbatim, duplicates included, and
// fails with ErrEmptyCustomChars when custom is empty. An unrecognized
// selector fails with ErrUnknownCharset.
func ResolveCharset(name, custom string) (Pool, error) {
	switch name {
	case CharsetAlphanumeric:
		return NewPool(letters + digits), nil
	case CharsetAlphanumericSymbols:
		return NewPool(letters + digits + symbols), nil
	case CharsetDigits:
		return NewPool(digits), nil
	case CharsetLetters:
		return NewPool(letters), nil
	case CharsetSymbols:
		return NewPool(symbols), nil
	case CharsetCustom:
		if custom == "" {
			return nil, ErrEmptyCustomChars
		}

		return NewPool(custom), nil
	default:
		return nil, ErrUnknownCharset
	}
}
