package campaign

import (
	"testing"

	"roomforge/pkg/game/descriptor"
)

func testBook(training, normal int) *descriptor.Book {
	return &descriptor.Book{
		Training: make([]descriptor.Raw, training),
		Normal:   make([]descriptor.Raw, normal),
	}
}

func TestCampaign_Walk(t *testing.T) {
	c := New(testBook(2, 3))

	if c.Total() != 5 {
		t.Errorf("Total() = %d, want 5", c.Total())
	}

	ref, ok := c.First()
	if !ok || ref != (Ref{descriptor.BucketTraining, 0}) {
		t.Fatalf("First() = %v,%v, want training 0", ref, ok)
	}

	var walked []Ref
	for ok {
		walked = append(walked, ref)
		ref, ok = c.Next(ref)
	}
	want := []Ref{
		{descriptor.BucketTraining, 0},
		{descriptor.BucketTraining, 1},
		{descriptor.BucketNormal, 0},
		{descriptor.BucketNormal, 1},
		{descriptor.BucketNormal, 2},
	}
	if len(walked) != len(want) {
		t.Fatalf("walked %v, want %v", walked, want)
	}
	for i := range want {
		if walked[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, walked[i], want[i])
		}
		if got := c.Number(walked[i]); got != i+1 {
			t.Errorf("Number(%v) = %d, want %d", walked[i], got, i+1)
		}
	}
	if !c.IsFinal(want[4]) {
		t.Error("IsFinal(last) = false")
	}
	if c.IsFinal(want[3]) {
		t.Error("IsFinal(second to last) = true")
	}
}

func TestCampaign_EmptyBuckets(t *testing.T) {
	c := New(testBook(0, 1))
	ref, ok := c.First()
	if !ok || ref.Bucket != descriptor.BucketNormal {
		t.Errorf("First() with no training = %v,%v, want normal 0", ref, ok)
	}

	c = New(testBook(1, 0))
	if _, ok := c.Next(Ref{descriptor.BucketTraining, 0}); ok {
		t.Error("Next() past the last training level with no normal levels = true")
	}

	c = New(nil)
	if _, ok := c.First(); ok {
		t.Error("First() without book = true")
	}
	if c.Total() != 0 {
		t.Errorf("Total() without book = %d", c.Total())
	}
}

func TestCampaign_InvalidRef(t *testing.T) {
	c := New(testBook(1, 1))
	bad := Ref{descriptor.BucketNormal, 4}
	if c.Valid(bad) {
		t.Error("Valid(out of range) = true")
	}
	if _, ok := c.Next(bad); ok {
		t.Error("Next(out of range) = true")
	}
	if c.Number(bad) != 0 || c.IsFinal(bad) {
		t.Error("out of range ref has a number or is final")
	}
}

func TestTitle_Untranslated(t *testing.T) {
	if got := Title(Ref{descriptor.BucketTraining, 0}); got != "Training 1" {
		t.Errorf("Title(training 0) = %q, want %q", got, "Training 1")
	}
	if got := Title(Ref{descriptor.BucketNormal, 2}); got != "Level 3" {
		t.Errorf("Title(normal 2) = %q, want %q", got, "Level 3")
	}
}
