// Package format re-renders list-text into the canonical layout used by the
// KiCad file family. The pass is purely textual: it walks bytes, tracks
// bracket depth and quote state, and re-emits the input with normalized
// whitespace. It never tokenizes and never validates — feed it through the
// parser first if you need structural guarantees.
//
// Layout rules, in order of precedence:
//  1. every open paren starts a new line, indented one tab per depth level;
//  2. exception: "(xy " lists chain on one line until column 99;
//  3. exception (compact mode): lists headed by a fixed keyword set stay on
//     the line of their parent;
//  4. atoms separate with one space until column 72, then wrap;
//  5. a close paren gets its own line iff the list spilled onto
//     multiple lines;
//  6. output always ends with exactly one newline.
//
// Quoted strings pass through byte for byte; a quote preceded by an odd
// number of backslashes does not toggle string state.
package format
