package playground

import "fmt"

// Block is a single unit of a document. The only implementations are [Code],
// [Text] and [Header]; two blocks are equal under == when they are the same
// kind and carry the same string.
//
//sumtype:decl
type Block interface {
	fmt.Stringer

	block()
}

// Prose is a [Block] that is not code.
//
//sumtype:decl
type Prose interface {
	Block

	prose()
}

// Blocks is an ordered document.
type Blocks []Block

type (
	// Code is source code. It is both a [Block] and an [Element].
	Code string

	// Text is a paragraph of documentation.
	Text string

	// Header is a documentation heading.
	Header string
)

func (Code) block()   {}
func (Text) block()   {}
func (Header) block() {}

func (Text) prose()   {}
func (Header) prose() {}

func (c Code) String() string {
	return fmt.Sprintf("code(%q)", string(c))
}

func (t Text) String() string {
	return fmt.Sprintf("text(%q)", string(t))
}

func (h Header) String() string {
	return fmt.Sprintf("header(%q)", string(h))
}
