package utils

import "unicode/utf8"

// CharOffset returns the byte offset in s at which the Unicode scalar value
// at code-point index i begins. If i equals the number of scalars in s, it
// returns len(s). Panics if i is negative or greater than the scalar count,
// the only way this can fail.
//
// Every index used to walk a word through the compiled trie is a code-point
// index, not a byte index: this is the single place that translates between
// the two so the rest of the core never decodes UTF-8 itself.
func CharOffset(s string, i int) int {
	if i < 0 {
		panic("utils: negative char index")
	}
	offset := 0
	for count := 0; count < i; count++ {
		if offset >= len(s) {
			panic("utils: char index out of range")
		}
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}

// Scalars decodes s into its sequence of Unicode scalar values. This is the
// representation every trie operation in this module works over.
func Scalars(s string) []rune {
	return []rune(s)
}
