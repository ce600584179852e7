package descriptor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bucket names a group of levels in the level book
type Bucket string

// Level buckets
const (
	BucketTraining Bucket = "training-levels"
	BucketNormal   Bucket = "levels"
)

// ParseBucket accepts a bucket key or its short name ("training", "normal")
func ParseBucket(s string) (Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "training", string(BucketTraining):
		return BucketTraining, nil
	case "normal", string(BucketNormal):
		return BucketNormal, nil
	default:
		return "", fmt.Errorf("unknown level bucket %q", s)
	}
}

// Book is the decoded level book. JSON books decode too, since JSON is a
// subset of YAML.
type Book struct {
	Training []Raw `yaml:"training-levels"`
	Normal   []Raw `yaml:"levels"`
}

// DecodeBook reads a level book from r
func DecodeBook(r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level book: %w", err)
	}
	var b Book
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&b); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse level book: %w", err)
	}
	return &b, nil
}

// LoadBook loads the level book at path
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level book %s: %w", path, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Entries returns the raw levels of a bucket
func (b *Book) Entries(bucket Bucket) []Raw {
	if b == nil {
		return nil
	}
	switch bucket {
	case BucketTraining:
		return b.Training
	case BucketNormal:
		return b.Normal
	default:
		return nil
	}
}

// Count returns the number of levels in a bucket
func (b *Book) Count(bucket Bucket) int {
	return len(b.Entries(bucket))
}

// Level decodes level index of bucket for a width x height grid
func (b *Book) Level(bucket Bucket, index, width, height int) (*Descriptor, error) {
	entries := b.Entries(bucket)
	if index < 0 || index >= len(entries) {
		return nil, &FormatError{
			Bucket: bucket,
			Index:  index,
			Row:    -1,
			Reason: fmt.Sprintf("index out of range (bucket has %d levels)", len(entries)),
		}
	}

	d, err := Parse(entries[index], width, height)
	if err != nil {
		if fe, ok := err.(*FormatError); ok {
			fe.Bucket = bucket
			fe.Index = index
		}
		return nil, err
	}
	d.Bucket = bucket
	d.Index = index
	return d, nil
}
