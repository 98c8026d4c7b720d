package utils

// ProductKeyString builds the composite a product key attests to.
// Deterministic: the same (email, role, secret) always yields the same string.
func ProductKeyString(email, role, secret string) string {
	return email + ":" + role + ":" + secret
}

// VerifyProductKey checks a candidate key handed out by key generation.
// The distributed key is the bcrypt hash of the composite, so verification
// is a hash-and-compare against the recomputed composite. An empty candidate
// never verifies.
func VerifyProductKey(email, role, secret, candidate string) bool {
	if candidate == "" {
		return false
	}
	return CheckPassword(candidate, ProductKeyString(email, role, secret))
}
