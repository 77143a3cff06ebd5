package classfile

// ConstantPool keeps only the entries this package resolves: Utf8 strings and
// class references. Every other entry kind is parsed for its length and
// dropped.
type ConstantPool struct {
	utf8    map[uint16]string
	classes map[uint16]uint16 // Class entry index -> Utf8 index
}

func (cp ConstantPool) Utf8(index uint16) string {
	return cp.utf8[index]
}

// ClassName resolves a Class entry to its internal name, or "".
func (cp ConstantPool) ClassName(index uint16) string {
	nameIndex, ok := cp.classes[index]
	if !ok {
		return ""
	}
	return cp.utf8[nameIndex]
}

// decodeModifiedUtf8 decodes the JVM's modified UTF-8: no 4-byte sequences,
// NUL encoded as 0xC0 0x80, supplementary characters as surrogate pairs.
func decodeModifiedUtf8(b []byte) string {
	runes := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			runes = append(runes, rune(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			runes = append(runes, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			r := rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			i += 3
			// Combine a high surrogate with the following low surrogate.
			if r >= 0xD800 && r <= 0xDBFF && i+2 < len(b) && b[i]&0xF0 == 0xE0 {
				low := rune(b[i]&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
				if low >= 0xDC00 && low <= 0xDFFF {
					r = 0x10000 + (r-0xD800)<<10 + (low - 0xDC00)
					i += 3
				}
			}
			runes = append(runes, r)
		default:
			runes = append(runes, rune(c))
			i++
		}
	}
	return string(runes)
}
