package model

// Token represents one OCR-recognized word with its normalized position.
// X and Y are the left-bottom corner of the word's bounding box in page
// coordinates (see package documentation). Tokens are immutable once
// produced by the engine.
type Token struct {
	Text   string
	X, Y   float64
	Height float64
}

// TokenStore holds recognized tokens in the OCR engine's emission order.
// Emission order is the on-page reading order and is the tie-break when
// multiple tokens fall inside the same region, so the store never reorders
// tokens after construction.
type TokenStore struct {
	tokens []Token
}

// NewTokenStore creates a store over the given tokens. The slice is copied
// so later mutation by the caller cannot affect the store.
func NewTokenStore(tokens []Token) *TokenStore {
	ts := make([]Token, len(tokens))
	copy(ts, tokens)
	return &TokenStore{tokens: ts}
}

// Len returns the number of tokens in the store.
func (s *TokenStore) Len() int {
	return len(s.tokens)
}

// Token returns the token at index i in emission order.
func (s *TokenStore) Token(i int) Token {
	return s.tokens[i]
}

// InRegion returns the tokens whose anchor falls inside the region,
// in emission order. Boundary containment is inclusive.
func (s *TokenStore) InRegion(r Region) []Token {
	var matched []Token
	for _, tok := range s.tokens {
		if r.Contains(tok.X, tok.Y) {
			matched = append(matched, tok)
		}
	}
	return matched
}
