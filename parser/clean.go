package parser

import "strings"

// The .vc0 payload packs several logical records into one physical line,
// delimited by a fixed set of control characters. CleanLine rewrites a
// decoded line through four ordered passes; each pass only sees what the
// previous passes left behind, so the order is load-bearing:
//
//  1. record separator control characters become '\n'
//  2. BEL becomes a space
//  3. the remaining known control/formatting characters are deleted,
//     including U+FFFD left over from lossy UTF-8 decoding
//  4. anything still outside the printable set becomes '?'
//
// The caller splits the result on '\n' to recover the logical sub-lines.
func CleanLine(line string) string {
	line = strings.Map(separatorToNewline, line)
	line = strings.Map(bellToSpace, line)
	line = strings.Map(dropControl, line)
	line = strings.Map(maskUnprintable, line)
	return line
}

// separatorToNewline reinterprets embedded record separators
// (0x00..0x05, 0x12, 0x13, 0x15, 0x17) as line breaks.
func separatorToNewline(r rune) rune {
	switch r {
	case 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x12, 0x13, 0x15, 0x17:
		return '\n'
	}
	return r
}

func bellToSpace(r rune) rune {
	if r == 0x07 {
		return ' '
	}
	return r
}

// dropControl removes the control and formatting characters that carry no
// record structure. 0x17 is listed for completeness although the first
// pass has already consumed it.
func dropControl(r rune) rune {
	switch r {
	case 0x06, 0x08, 0x0B, 0x0C, 0x0E, 0x0F, 0x10, 0x11,
		0x14, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C,
		0x1D, 0x1E, 0x1F, 0x7F, '�':
		return -1
	}
	return r
}

// maskUnprintable replaces whatever survived the earlier passes but is
// still not printable ASCII (or standard whitespace) with '?'.
func maskUnprintable(r rune) rune {
	if isPrintable(r) {
		return r
	}
	return '?'
}

func isPrintable(r rune) bool {
	if r >= 0x20 && r <= 0x7E {
		return true
	}
	switch r {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
