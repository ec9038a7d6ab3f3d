package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterString(t *testing.T) {
	name := LetterString(20)
	assert.Len(t, name, 20)
	for _, r := range name {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	}
}

func benchmarkLetterString(b *testing.B, size int) {
	for n := 0; n < b.N; n++ {
		_ = LetterString(size)
	}
}

func BenchmarkLetterString20(b *testing.B)   { benchmarkLetterString(b, 20) }
func BenchmarkLetterString100(b *testing.B)  { benchmarkLetterString(b, 100) }
func BenchmarkLetterString1000(b *testing.B) { benchmarkLetterString(b, 1000) }
