package ident

import (
	"fmt"
	"unicode/utf8"
)

// latin1Lower maps every Latin-1 byte to its lower-case form. Only A-Z and
// the accented capitals 0xC0-0xDE (except the multiplication sign 0xD7) change.
var latin1Lower = func() (t [256]byte) {
	for i := range t {
		b := byte(i)
		switch {
		case b >= 'A' && b <= 'Z':
			b += 'a' - 'A'
		case b >= 0xC0 && b <= 0xDE && b != 0xD7:
			b += 0x20
		}
		t[i] = b
	}
	return t
}()

// latin1Pretty renders each Latin-1 byte as printable UTF-8.
//
//   - C0 controls become the matching U+2400 control picture, DEL becomes U+2421;
//   - C1 controls, NBSP and the soft hyphen are escaped as \xNN;
//   - everything else is the UTF-8 encoding of the code point.
var latin1Pretty = func() (t [256]string) {
	for i := range t {
		switch {
		case i < 0x20:
			t[i] = string(rune(0x2400 + i))
		case i == 0x7F:
			t[i] = "␡"
		case i >= 0x80 && i <= 0xA0, i == 0xAD:
			t[i] = fmt.Sprintf("\\x%02x", i)
		default:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], rune(i))
			t[i] = string(buf[:n])
		}
	}
	return t
}()

// IsBasicChar reports whether b may appear in a basic identifier.
func IsBasicChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9', b == '_':
		return true
	case b >= 0xC0 && b <= 0xDE:
		return b != 0xD7
	case b >= 0xDF:
		return b != 0xF7
	}
	return false
}

// IsExtendedChar reports whether b may appear in an extended identifier:
// anything except C0 controls, DEL and C1 controls.
func IsExtendedChar(b byte) bool {
	switch {
	case b <= 0x1F, b == 0x7F:
		return false
	case b >= 0x80 && b <= 0x9F:
		return false
	}
	return true
}

// validBasicShape checks the structural rule for basic identifiers: non-empty,
// no leading digit or underscore, no doubled underscore and no trailing underscore.
func validBasicShape(name string) bool {
	if name == "" {
		return false
	}
	if first := name[0]; (first >= '0' && first <= '9') || first == '_' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] == '_' && name[i-1] == '_' {
			return false
		}
	}
	// TODO: confirm with the language owners whether a lone trailing underline should stay illegal.
	return name[len(name)-1] != '_'
}

// PrettyByte renders a single Latin-1 byte the same way Identifier.Pretty does.
func PrettyByte(b byte) string {
	return latin1Pretty[b]
}

// PrettyLatin1 renders a whole Latin-1 string as printable UTF-8.
func PrettyLatin1(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, latin1Pretty[s[i]]...)
	}
	return string(out)
}

// LowerLatin1 folds ASCII and Latin-1 capitals to lower case.
func LowerLatin1(s string) string {
	out := []byte(s)
	for i, b := range out {
		out[i] = latin1Lower[b]
	}
	return string(out)
}
