// Package testutil provides deterministic helpers shared across test
// packages.
package testutil

// FixedToken returns a run token generator that always yields the same
// token.
//
// Output filenames embed the run token, so a fixed token makes a full run
// byte-identical across invocations and suitable for golden snapshot
// comparison. If token is empty the generator yields "testtoken".
func FixedToken(token string) func() string {
	if token == "" {
		token = "testtoken"
	}
	return func() string {
		return token
	}
}
