package lexer

// skipTrivia пропускает пробелы, переводы строк и комментарии `--` до конца строки.
// Format effectors and the Latin-1 no-break space count as separators.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSeparator(b) {
			lx.cursor.Bump()
			continue
		}
		if lx.cursor.HasPrefix("--") {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0xA0:
		return true
	}
	return false
}
