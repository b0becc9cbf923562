package speedyxml

// Byte-level classification tables for XML names. Element and attribute
// names use different grammars: element names follow the Name production
// (https://www.w3.org/TR/xml/#NT-NameStartChar) at byte granularity, while
// attribute names accept anything a parser could have tokenized as a name,
// so that parsed attributes can be re-emitted without loss.
//
// Multi-byte UTF-8 sequences are accepted wholesale; validation is
// deliberately byte-oriented and does not decode runes.

var nameStartByte = [256]int{
	':': 1, '_': 1,
	'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1, 'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1, 'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
}

var nameByte = [256]int{
	'-': 1, '.': 1, ':': 1, '_': 1, 0xB7: 1,
	'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
	'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1, 'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1, 'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
}

var attrNameByte [256]int

func init() {
	for i := 0x80; i < 256; i++ {
		nameStartByte[i] = 1
		nameByte[i] = 1
	}
	for i := 0x21; i < 256; i++ {
		attrNameByte[i] = 1
	}
	for _, b := range []byte{'"', '\'', '/', '<', '=', '>'} {
		attrNameByte[b] = 0
	}
}

func isInvalidNameByte(b byte) bool { return nameByte[b] == 0 }

func isInvalidAttrNameByte(b byte) bool { return attrNameByte[b] == 0 }

// validElementName reports whether name satisfies the element name grammar.
// The empty string is not a valid name, and a name may not begin with a
// digit, '-' or '.'.
func validElementName(name string) bool {
	if name == "" {
		return false
	}
	if nameStartByte[name[0]] == 0 {
		return false
	}
	for i := 1; i < len(name); i++ {
		if isInvalidNameByte(name[i]) {
			return false
		}
	}
	return true
}

// validAttrName reports whether name is acceptable as an attribute name.
// The attribute grammar is looser than the element grammar: any non-empty
// run of bytes free of whitespace, control bytes, quotes and tag-structural
// punctuation passes.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if isInvalidAttrNameByte(name[i]) {
			return false
		}
	}
	return true
}
