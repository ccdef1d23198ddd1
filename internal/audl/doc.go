// Package audl compiles AUDL markup into Vue-style template text.
//
// The pipeline consists of:
//   - [Tokenize]: splits AUDL source into a flat token sequence
//   - [ParseElementHeader]: decodes one element header (tag, classes, id, props)
//   - [Parser]: builds an AST of [Element], [ForLoop] and [Text] nodes
//   - [Generator]: serializes the AST into indented template markup
//
// [Compile] runs the whole pipeline and never fails: any error is reported
// as a single-line HTML comment in place of the template.
package audl
