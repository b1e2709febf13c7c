package common

import "math/rand/v2"

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandBase36String generates a random string of length n over the lowercase
// base36 alphabet [0-9a-z].
//
// Example:
//
//	s := RandBase36String(9)
//	fmt.Println(s) // e.g., "k3j9x0q2b"
//
// The result is not cryptographically strong; it only needs to be unique in
// practice, so it must never be used for secrets.
func RandBase36String(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}
	return string(b)
}
