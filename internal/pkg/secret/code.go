package secret

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// CodeLength is the length of every generated verification/recovery code.
const CodeLength = 20

// codeAlphabet is the character pool codes are drawn from.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"1234567890" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!@#$%&*-+=?"

// GenerateCode returns a fresh random code of CodeLength characters, each
// drawn independently from codeAlphabet using crypto/rand. Callers are
// responsible for recording the code and delivering it to the user.
func GenerateCode() (string, error) {
	// Rejection sampling keeps the per-character distribution uniform.
	limit := byte(256 - 256%len(codeAlphabet))
	code := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength)
	for len(code) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}
	return string(code), nil
}

// CodeMatches compares a user-entered code against the issued one in
// constant time. An empty issued code never matches.
func CodeMatches(entered, issued string) bool {
	if issued == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(entered), []byte(issued)) == 1
}
