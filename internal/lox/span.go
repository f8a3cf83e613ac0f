package lox

import "fmt"

// Loc is a position in the source text. Idx is a byte offset, Row and Col are
// 1-based and count characters, not bytes.
type Loc struct {
	Idx int
	Row int
	Col int
}

func (loc Loc) String() string {
	return fmt.Sprintf("%d:%d", loc.Row, loc.Col)
}

// Span is the half-open range [Lo, Hi) of source text covered by a token or
// an error.
type Span struct {
	Lo Loc
	Hi Loc
}

// Text returns the part of source covered by the span.
func (span Span) Text(source string) string {
	return source[span.Lo.Idx:span.Hi.Idx]
}

// Len is the number of bytes covered by the span.
func (span Span) Len() int {
	return span.Hi.Idx - span.Lo.Idx
}

func (span Span) String() string {
	return span.Lo.String()
}
