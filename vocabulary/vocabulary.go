package vocabulary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/splay"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// ErrEmptyWord is returned when adding an empty word.
var ErrEmptyWord = errors.New("vocabulary: empty word")

// Config configures a vocabulary.
type Config struct {
	FoldCase  bool // store and look up words in lower case
	MinLength int  // words with fewer runes are not loaded from text
}

// Vocabulary is a set of words. Like the underlying splay tree, a
// vocabulary must not be used by more than one goroutine at a time.
type Vocabulary struct {
	cfg   Config
	words *splay.Tree[string]
}

// New creates an empty vocabulary.
func New(cfg Config) *Vocabulary {
	return &Vocabulary{
		cfg:   cfg,
		words: splay.NewOrdered[string](),
	}
}

func (v *Vocabulary) normalize(word string) string {
	if v.cfg.FoldCase {
		return strings.ToLower(word)
	}
	return word
}

// Add puts word into the vocabulary. It returns true if the word has not
// been known before.
func (v *Vocabulary) Add(word string) (bool, error) {
	if word == "" {
		return false, ErrEmptyWord
	}
	return v.words.Insert(v.normalize(word)), nil
}

// Knows reports whether word is part of the vocabulary.
func (v *Vocabulary) Knows(word string) bool {
	return v.words.Contains(v.normalize(word))
}

// Forget removes word from the vocabulary.
func (v *Vocabulary) Forget(word string) bool {
	return v.words.Remove(v.normalize(word))
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return v.words.Size()
}

// Words returns an iterator over all words in lexicographic order.
func (v *Vocabulary) Words() iter.Seq[string] {
	return v.words.InOrder()
}

// Recent returns the word touched last by Add, Knows or Forget (or its
// nearest neighbour, if the word was not found).
func (v *Vocabulary) Recent() (string, bool) {
	return v.words.Root()
}

// Load reads UTF-8 text from r, breaks it into words and adds them to the
// vocabulary. Segments which do not start with a letter or a digit, such as
// white space and punctuation, are skipped. Load returns the number of words
// which have not been known before.
func (v *Vocabulary) Load(r io.Reader) (added int, err error) {
	segmenter := segment.NewSegmenter(uax29.NewWordBreaker(1))
	segmenter.Init(bufio.NewReader(r))
	total := 0
	for segmenter.Next() {
		word := string(segmenter.Bytes())
		if !isWord(word) || utf8.RuneCountInString(word) < v.cfg.MinLength {
			continue
		}
		total++
		if v.words.Insert(v.normalize(word)) {
			added++
		}
	}
	if err = segmenter.Err(); err != nil {
		return added, fmt.Errorf("vocabulary: reading text: %w", err)
	}
	tracer().Infof("vocabulary: loaded %d words, %d new, %d distinct", total, added, v.Len())
	return added, nil
}

func isWord(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
