package playground

// Group folds every run of consecutive non-code blocks into one
// [Documentation] element and passes each [Code] block through on its own,
// keeping the original order. Nil entries are skipped. The result shares no
// memory with blocks.
func Group(blocks Blocks) Elements {
	var elements Elements

	for _, block := range blocks {
		switch block := block.(type) {
		case Code:
			elements = append(elements, block)
		case Prose:
			last := len(elements) - 1
			if last >= 0 {
				if doc, ok := elements[last].(Documentation); ok {
					elements[last] = append(doc, block)

					continue
				}
			}

			elements = append(elements, Documentation{block})
		}
	}

	return elements
}

// Flatten unwraps grouped elements back into the block sequence they were
// built from. For any blocks without nil entries, Flatten(Group(blocks))
// equals blocks.
func Flatten(elements Elements) Blocks {
	var blocks Blocks

	for _, element := range elements {
		switch element := element.(type) {
		case Code:
			blocks = append(blocks, element)
		case Documentation:
			for _, prose := range element {
				blocks = append(blocks, prose)
			}
		}
	}

	return blocks
}
