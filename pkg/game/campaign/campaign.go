// Package campaign orders the levels of a level book. Training levels are
// played first, then the normal levels; the player discovers the end by
// finishing the last one.
package campaign

import (
	"github.com/leonelquinteros/gotext"

	"roomforge/pkg/game/descriptor"
)

// Buckets is the play order of the level buckets
var Buckets = []descriptor.Bucket{
	descriptor.BucketTraining,
	descriptor.BucketNormal,
}

// Ref identifies one level of the book
type Ref struct {
	Bucket descriptor.Bucket
	Index  int
}

// Campaign is the linear path through a book's levels
type Campaign struct {
	book *descriptor.Book
}

// New creates a campaign over book
func New(book *descriptor.Book) *Campaign {
	return &Campaign{book: book}
}

// Total returns the number of levels across all buckets
func (c *Campaign) Total() int {
	if c.book == nil {
		return 0
	}
	n := 0
	for _, b := range Buckets {
		n += c.book.Count(b)
	}
	return n
}

// Valid returns true if ref names a level in the book
func (c *Campaign) Valid(ref Ref) bool {
	if c.book == nil {
		return false
	}
	return ref.Index >= 0 && ref.Index < c.book.Count(ref.Bucket)
}

// First returns the first level, or false if the book is empty
func (c *Campaign) First() (Ref, bool) {
	return c.from(0, 0)
}

// Next returns the level after ref, or false if ref is the final level or
// not in the book
func (c *Campaign) Next(ref Ref) (Ref, bool) {
	if !c.Valid(ref) {
		return Ref{}, false
	}
	return c.from(bucketOrder(ref.Bucket), ref.Index+1)
}

// IsFinal returns true if ref is the last level of the campaign
func (c *Campaign) IsFinal(ref Ref) bool {
	if !c.Valid(ref) {
		return false
	}
	_, more := c.Next(ref)
	return !more
}

// Number returns the 1-based position of ref in the campaign, or 0
func (c *Campaign) Number(ref Ref) int {
	if !c.Valid(ref) {
		return 0
	}
	n := 0
	for _, b := range Buckets {
		if b == ref.Bucket {
			return n + ref.Index + 1
		}
		n += c.book.Count(b)
	}
	return 0
}

// from returns the first level at or after index in bucket order position
func (c *Campaign) from(order, index int) (Ref, bool) {
	if c.book == nil {
		return Ref{}, false
	}
	for ; order < len(Buckets); order++ {
		b := Buckets[order]
		if index < c.book.Count(b) {
			return Ref{Bucket: b, Index: index}, true
		}
		index = 0
	}
	return Ref{}, false
}

func bucketOrder(b descriptor.Bucket) int {
	for i, ob := range Buckets {
		if ob == b {
			return i
		}
	}
	return len(Buckets)
}

// Title returns the translated title of ref. Uses gotext.Get with constant
// keys to satisfy vet.
func Title(ref Ref) string {
	switch ref.Bucket {
	case descriptor.BucketTraining:
		return gotext.Get("Training %d", ref.Index+1)
	default:
		return gotext.Get("Level %d", ref.Index+1)
	}
}
