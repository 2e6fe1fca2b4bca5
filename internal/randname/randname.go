// Package randname generates random alphanumeric names for filesystem entries.
package randname

import "math/rand"

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Suffix returns a string of n random ASCII alphanumeric characters.
// The draws are uniform and independent across calls, but not
// cryptographically secure - the goal is collision avoidance between
// concurrent legitimate creators, not resistance to a determined attacker.
func Suffix(n int) string {
	b := make([]byte, n)

	for i := range b {
		b[i] = alphanumeric[rand.Intn(len(alphanumeric))] //nolint:gosec
	}

	return string(b)
}
