package utils

import "crypto/subtle"

// CompareCredential compares a presented credential with the stored one.
// Credentials are currently stored as-is; this function is the single place
// that compares them, so switching to a hashed scheme later only touches
// this file.
func CompareCredential(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}
