package generator

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"roomforge/pkg/game/descriptor"
	"roomforge/pkg/game/setup"
)

func generate(t *testing.T, g GridGenerator, seed int64, w, h int) descriptor.Raw {
	t.Helper()
	raw, err := g.Generate(rand.New(rand.NewSource(seed)), w, h)
	if err != nil {
		t.Fatalf("Generate(seed %d, %dx%d) error = %v", seed, w, h, err)
	}
	return raw
}

func count(raw descriptor.Raw, r rune) int {
	n := 0
	for i, row := range raw.Rooms {
		if i%2 != 0 {
			continue
		}
		for j, c := range row {
			if j%2 == 0 && c == r {
				n++
			}
		}
	}
	return n
}

func TestLineWalker_LevelsAreSolvable(t *testing.T) {
	sizes := [][2]int{{5, 5}, {3, 3}, {7, 4}, {9, 9}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 40; seed++ {
			raw := generate(t, DefaultGenerator, seed, size[0], size[1])

			opts := setup.DefaultOptions()
			opts.Width, opts.Height = size[0], size[1]
			l := setup.NewLoader(opts, nil, nil, nil, nil)
			d, err := descriptor.Parse(raw, size[0], size[1])
			if err != nil {
				t.Fatalf("seed %d %v: Parse() error = %v\n%s", seed, size, err, strings.Join(raw.Rooms, "\n"))
			}
			if err := l.LoadLevel(d); err != nil {
				t.Fatalf("seed %d %v: LoadLevel() error = %v", seed, size, err)
			}
			if problems := setup.CheckSolvability(l.Level(), 3); len(problems) != 0 {
				t.Errorf("seed %d %v: CheckSolvability() = %v\n%s", seed, size, problems, strings.Join(raw.Rooms, "\n"))
			}
			if problems := l.Grid().CheckSharedWalls(); len(problems) != 0 {
				t.Errorf("seed %d %v: CheckSharedWalls() = %v", seed, size, problems)
			}
		}
	}
}

func TestLineWalker_Contents(t *testing.T) {
	raw := generate(t, LineWalker, 11, 5, 5)
	for _, c := range []struct {
		code rune
		want int
	}{
		{'S', 1},
		{'E', 1},
		{'M', 1},
		{'d', 1},
		{'m', 3},
	} {
		if got := count(raw, c.code); got != c.want {
			t.Errorf("%q rooms = %d, want %d\n%s", c.code, got, c.want, strings.Join(raw.Rooms, "\n"))
		}
	}
	if !strings.ContainsRune(strings.Join(raw.Rooms, ""), 'D') {
		t.Error("no switch wall generated")
	}
}

func TestLineWalker_Deterministic(t *testing.T) {
	a := generate(t, LineWalker, 77, 6, 5)
	b := generate(t, LineWalker, 77, 6, 5)
	if strings.Join(a.Rooms, "\n") != strings.Join(b.Rooms, "\n") {
		t.Errorf("same seed gave different levels:\n%s\n\n%s", strings.Join(a.Rooms, "\n"), strings.Join(b.Rooms, "\n"))
	}
}

func TestLineWalker_WithoutSwitch(t *testing.T) {
	g := &LineWalkerGenerator{MinRun: 1, MaxRun: 2, Parts: 2}
	raw := generate(t, g, 3, 4, 4)
	if count(raw, 'd') != 0 || strings.ContainsRune(strings.Join(raw.Rooms, ""), 'D') {
		t.Error("switch placed although disabled")
	}
	if count(raw, 'm') != 2 {
		t.Errorf("parts = %d, want 2", count(raw, 'm'))
	}
}

func TestLineWalker_TooSmall(t *testing.T) {
	_, err := LineWalker.Generate(rand.New(rand.NewSource(1)), 2, 2)
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("Generate(2x2) error = %v, want ErrTooSmall", err)
	}
	if LineWalker.Name() == "" {
		t.Error("Name() is empty")
	}
}
