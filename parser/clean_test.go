package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLineSeparatorsBecomeNewlines(t *testing.T) {
	for _, sep := range []string{
		"\x00", "\x01", "\x02", "\x03", "\x04", "\x05", "\x12", "\x13", "\x15", "\x17",
	} {
		got := CleanLine("abc" + sep + "def")
		assert.Equal(t, "abc\ndef", got, "separator %q", sep)
	}
}

func TestCleanLineBellBecomesSpace(t *testing.T) {
	assert.Equal(t, "a b", CleanLine("a\x07b"))
}

func TestCleanLineDeletesControlNoise(t *testing.T) {
	in := "a\x06\x08\x0B\x0C\x0E\x0F\x10\x11\x14\x16\x18\x19\x1A\x1B\x1C\x1D\x1E\x1F\x7Fb"
	assert.Equal(t, "ab", CleanLine(in))
}

func TestCleanLineDeletesReplacementChar(t *testing.T) {
	assert.Equal(t, "ab", CleanLine("a�b"))
}

func TestCleanLineMasksUnprintable(t *testing.T) {
	assert.Equal(t, "h?llo", CleanLine("héllo"))
	assert.Equal(t, "??", CleanLine("日本"))
}

func TestCleanLineKeepsPrintableAndTabs(t *testing.T) {
	in := "host1\t192.168.0.1, ok!"
	assert.Equal(t, in, CleanLine(in))
}

// The pass order matters: BEL must become a space, not survive into the
// delete pass, and the separators must win before the delete set sees
// 0x17.
func TestCleanLinePassOrder(t *testing.T) {
	assert.Equal(t, "x\ny", CleanLine("x\x17y"))
	assert.Equal(t, "x y", CleanLine("x\x07y"))
}
