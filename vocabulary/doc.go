/*
Package vocabulary keeps a set of words in a splay tree.

Vocabularies are a classic application of self-adjusting trees: words which
have been looked up recently move to the top of the tree and are found
faster the next time. Natural language text follows Zipf's law, so a small
number of words makes up most lookups.

Words are extracted from text with the Unicode word-breaking rules of
UAX#29.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vocabulary

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splay'
func tracer() tracing.Trace {
	return tracing.Select("splay")
}
