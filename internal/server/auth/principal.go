package auth

// Principal is the opaque authenticated caller identity. It is produced only
// by the request boundary's token-verification step, after the token subject
// has been resolved to an existing user; services never derive identity from
// caller-supplied fields.
type Principal struct {
	UserID string
}
