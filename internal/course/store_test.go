package course

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreAllPreservesOrder(t *testing.T) {
	s := NewStore(Seed())

	got := s.All()
	if diff := cmp.Diff(Seed(), got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore(Seed())

	got := s.All()
	got[0].Topic = "tampered"

	c, _ := s.Get(1)
	if c.Topic != "Node.js" {
		t.Errorf("store was modified through All() result: topic = %q", c.Topic)
	}
}

func TestNewStoreCopiesSeed(t *testing.T) {
	seed := Seed()
	s := NewStore(seed)
	seed[2].Title = "changed"

	c, _ := s.Get(3)
	if c.Title == "changed" {
		t.Error("store aliases the seed slice")
	}
}

func TestStoreGet(t *testing.T) {
	s := NewStore(Seed())

	tests := []struct {
		name      string
		id        int
		wantFound bool
		wantTitle string
	}{
		{"first", 1, true, "The Complete Node.js Developer Course"},
		{"last", 3, true, "JavaScript: Understanding The Weird Parts"},
		{"missing", 999, false, ""},
		{"zero", 0, false, ""},
		{"negative", -1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Get(tt.id)
			if ok != tt.wantFound {
				t.Fatalf("Get(%d) found = %v, want %v", tt.id, ok, tt.wantFound)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Get(%d).Title = %q, want %q", tt.id, got.Title, tt.wantTitle)
			}
		})
	}
}

func TestStoreGetReturnsFirstMatch(t *testing.T) {
	s := NewStore([]Course{
		{ID: 7, Title: "first"},
		{ID: 7, Title: "second"},
	})

	got, ok := s.Get(7)
	if !ok || got.Title != "first" {
		t.Errorf("Get(7) = %+v, %v; want first record", got, ok)
	}
}

func TestStoreUpdateTopic(t *testing.T) {
	s := NewStore(Seed())

	got, ok := s.UpdateTopic(2, "Backend")
	if !ok {
		t.Fatal("UpdateTopic(2) found = false, want true")
	}
	if got.ID != 2 || got.Topic != "Backend" {
		t.Errorf("UpdateTopic(2) = %+v, want id 2 with topic Backend", got)
	}

	after, _ := s.Get(2)
	if after.Topic != "Backend" {
		t.Errorf("Get(2).Topic = %q after update, want %q", after.Topic, "Backend")
	}

	want := Seed()
	want[1].Topic = "Backend"
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("collection mismatch after update (-want +got):\n%s", diff)
	}
}

func TestStoreUpdateTopicMissing(t *testing.T) {
	s := NewStore(Seed())

	called := false
	s.SetOnUpdate(func(Course) { called = true })

	got, ok := s.UpdateTopic(999, "X")
	if ok {
		t.Errorf("UpdateTopic(999) found = true, got %+v", got)
	}
	if called {
		t.Error("onUpdate called for a missing id")
	}
	if diff := cmp.Diff(Seed(), s.All()); diff != "" {
		t.Errorf("collection changed on miss (-want +got):\n%s", diff)
	}
}

func TestStoreOnUpdate(t *testing.T) {
	s := NewStore(Seed())

	var got []Course
	s.SetOnUpdate(func(c Course) { got = append(got, c) })

	s.UpdateTopic(3, "Frontend")
	if len(got) != 1 || got[0].ID != 3 || got[0].Topic != "Frontend" {
		t.Errorf("onUpdate received %+v, want course 3 with topic Frontend", got)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(Seed())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.UpdateTopic(1, "Backend")
		}()
		go func() {
			defer wg.Done()
			if c, ok := s.Get(1); !ok || (c.Topic != "Node.js" && c.Topic != "Backend") {
				t.Errorf("Get(1) observed topic %q", c.Topic)
			}
		}()
	}
	wg.Wait()

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestStoreOnUpdateOrderMatchesStore(t *testing.T) {
	s := NewStore(Seed())

	var (
		mu   sync.Mutex
		last Course
	)
	s.SetOnUpdate(func(c Course) {
		mu.Lock()
		last = c
		mu.Unlock()
	})

	topics := []string{"Backend", "Frontend", "DevOps", "Databases"}
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			s.UpdateTopic(2, topic)
		}(topics[i%len(topics)])
	}
	wg.Wait()

	final, _ := s.Get(2)
	if last.Topic != final.Topic {
		t.Errorf("last onUpdate topic = %q, store topic = %q", last.Topic, final.Topic)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"int", 2, 2, true},
		{"int32", int32(3), 3, true},
		{"int64", int64(1), 1, true},
		{"json number", float64(2), 2, true},
		{"fractional", 2.5, 0, false},
		{"numeral string", "2", 2, true},
		{"padded string", " 3 ", 3, true},
		{"word", "two", 0, false},
		{"max int32 string", "2147483647", 2147483647, true},
		{"min int32 string", "-2147483648", -2147483648, true},
		{"string beyond int32", "4294967298", 0, false},
		{"string beyond int64", "99999999999999999999", 0, false},
		{"int64 beyond int32", int64(-2147483649), 0, false},
		{"json number beyond int32", float64(4294967298), 0, false},
		{"huge json number", 1e300, 0, false},
		{"empty", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseID(%v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "seed.yml")
		content := `courses:
  - id: 10
    title: Go in Practice
    author: Someone
    description: Idiomatic Go
    topic: Go
    url: https://example.com/go
  - id: 11
    title: Rust Basics
    topic: Rust
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		got, err := LoadSeedFile(path)
		if err != nil {
			t.Fatalf("LoadSeedFile() error = %v", err)
		}
		want := []Course{
			{ID: 10, Title: "Go in Practice", Author: "Someone", Description: "Idiomatic Go", Topic: "Go", URL: "https://example.com/go"},
			{ID: 11, Title: "Rust Basics", Topic: "Rust"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadSeedFile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := filepath.Join(dir, "dupes.yml")
		content := "courses:\n  - id: 1\n  - id: 1\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		if _, err := LoadSeedFile(path); err == nil {
			t.Error("LoadSeedFile() expected error for duplicate ids")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yml")
		if err := os.WriteFile(path, []byte("courses: [\n"), 0644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		if _, err := LoadSeedFile(path); err == nil {
			t.Error("LoadSeedFile() expected error for invalid yaml")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSeedFile(filepath.Join(dir, "nope.yml")); err == nil {
			t.Error("LoadSeedFile() expected error for missing file")
		}
	})
}
