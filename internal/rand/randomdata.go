// Package rand produces random name suffixes for ephemeral workspaces.
package rand

import (
	"bytes"
	"math/rand"
	"sync"
	"time"
)

// LetterString returns a random string picked in the [0-9]|[a-z] range
func LetterString(n int) string {
	return string(randLetterBytes(n))
}

var (
	onceSource  sync.Once
	rgen        *rand.Rand
	onceLetters sync.Once
	randMutex   sync.Mutex
	letters     []byte
)

func seed() {
	src := rand.NewSource(time.Now().UnixNano())
	rgen = rand.New(src) // #nosec
}

func makeLetters() {
	// pads "a" over 256 locations (0-9 U a-z covers 252 only and we map the full uint8 range),
	// so "a" is slightly more frequent. Speed over exact randomness.
	letters = bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz0123456789a"), 7)
}

func randLetterBytes(n int) []byte {
	onceSource.Do(seed)
	onceLetters.Do(makeLetters)
	buf := make([]byte, n)
	randMutex.Lock()
	_, _ = rgen.Read(buf)
	randMutex.Unlock()
	for i, b := range buf {
		buf[i] = letters[b]
	}
	return buf
}
