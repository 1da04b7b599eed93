// Package fuzztests houses Go fuzz harnesses that exercise the pipeline
// (source -> lexer -> parser -> format). Its goal is to smoke test
// robustness and guard against panics or allocator explosions on arbitrary
// inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер/форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/ast,
// internal/format, internal/diag.
package fuzztests
