package models

// Token couples the claim set embedded in a freshly issued bearer token with
// its compact signed serialization.
//
// SignedString holds the serialized form (header.payload.signature) ready to
// be transmitted in the Authorization header. Claims is the snapshot that was
// signed; it is kept so callers can inspect the issued identity without
// re-parsing the token.
type Token struct {
	// Claims is the claim set that was signed into the token.
	Claims AccessClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
