package game

import "math/rand"

// CodeLength is the length of a room join code.
const CodeLength = 5

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateJoinCode returns a code of the given length that is not
// currently taken. Codes only need to be unique among live rooms, not
// unpredictable; the caller must register the code before releasing
// whatever lock guards the room registry.
func GenerateJoinCode(length int, taken func(string) bool) string {
	buf := make([]byte, length)
	for {
		for i := range buf {
			buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		code := string(buf)
		if !taken(code) {
			return code
		}
	}
}
