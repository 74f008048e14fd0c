package numeral

// Verification error messages.
const (
	ErrUnknownSystem = "Unknown system"
	ErrOutOfRange    = "Out of range"
	ErrMismatch      = "Mismatch"
)

// VerifyRoundTrip encodes n in the given system, feeds the symbols back into
// the matching decoder and checks that n comes out again.
//
// This is the auditor: it proves the encoder and decoder agree on n.
func VerifyRoundTrip(id string, n int) Verification {
	s, ok := Lookup(id)
	if !ok {
		return Verification{Original: n, Error: ErrUnknownSystem}
	}
	return s.Verify(n)
}

// Verify runs the round trip for n against this system.
func (s *System) Verify(n int) Verification {
	// 1. Encode
	encoded := s.Encode(n)
	if !encoded.OK() {
		return Verification{Original: n, Error: ErrOutOfRange}
	}

	// 2. Reshape into decoder order and decode
	decoded := s.Decode(s.reshape(encoded.Symbols))
	if decoded.Err != nil {
		return Verification{Original: n, Error: decoded.Err.Message}
	}

	// 3. Compare
	v := Verification{Original: n, Parsed: decoded.Value, Passed: *decoded.Value == n}
	if !v.Passed {
		v.Error = ErrMismatch
	}
	return v
}

// Canonical returns the encoding of n in display order (most significant
// first), or nil when n is outside the range.
func (s *System) Canonical(n int) Notation {
	return s.reshape(s.Encode(n).Symbols)
}

// reshape adapts encoder output to decoder input. Sequences emitted ones
// first are reversed; text and groups are already in decoder order.
func (s *System) reshape(symbols Notation) Notation {
	switch v := symbols.(type) {
	case Sequence:
		if s.Order == LeastSignificantFirst {
			return v.Reversed()
		}
		return v
	case Text, Groups:
		return v
	default:
		return nil
	}
}
