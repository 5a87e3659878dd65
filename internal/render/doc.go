// Package render turns a pattern grid into something a person can look at.
//
//   - [Text]: plain text using the pattern alphabet
//   - [Styled]: text coloured with a [Theme] for terminals
//   - [SVG]: a scalable vector image of the strokes
//
// A [Renderer] writes the text form to a [Surface], which may be a terminal,
// a file, or every browser connected to the web server.
package render
