// Package playground groups the blocks of a playground-style document.
//
// A document is an ordered list of [Block] values: [Code], [Text] or [Header].
// [Group] keeps every code block on its own and folds each run of
// consecutive text and header blocks into a single [Documentation] element:
//
//	Group(Blocks{Code("a"), Header("H"), Text("t"), Code("b")})
//	// [code("a") documentation([header("H") text("t")]) code("b")]
//
// [Flatten] reverses the grouping.
package playground
