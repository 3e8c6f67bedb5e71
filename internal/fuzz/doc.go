// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the front end and the analyser (source -> lexer -> parser -> sema).
// The goal is to catch panics, hangs and broken span invariants.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, парсер и анализ.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
