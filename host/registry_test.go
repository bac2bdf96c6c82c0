// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"errors"
	"testing"
)

// stubDocument is a Document with no elements.
type stubDocument struct {
	name string
}

func (d *stubDocument) ElementByID(string) (Node, bool)       { return nil, false }
func (d *stubDocument) CreateElement(string) (Node, error)    { return nil, errors.New("stub") }
func (d *stubDocument) DevicePixelRatio() float64             { return 1 }
func (d *stubDocument) OnResize(func()) (Subscription, error) { return SubscriptionFunc(func() {}), nil }

func stubFactory(name string) Factory {
	return func() (Document, error) {
		return &stubDocument{name: name}, nil
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, stubFactory("test"), nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("off", 200, stubFactory("off"), func() bool { return false })

	list := r.List()
	want := []string{"off", "high", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}

	avail := r.Available()
	if len(avail) != 2 || avail[0] != "high" {
		t.Errorf("Available() = %v, want [high low]", avail)
	}
}

func TestRegistryOpenDefault(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)

	doc, err := r.OpenDefault()
	if err != nil {
		t.Fatalf("OpenDefault() error = %v", err)
	}
	if got := doc.(*stubDocument).name; got != "high" {
		t.Errorf("OpenDefault() opened %s, want high", got)
	}
}

func TestRegistryOpenDefaultFallsBack(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, func() (Document, error) {
		return nil, errors.New("broken backend")
	}, nil)
	r.Register("memory", 10, stubFactory("memory"), nil)

	doc, err := r.OpenDefault()
	if err != nil {
		t.Fatalf("OpenDefault() error = %v", err)
	}
	if got := doc.(*stubDocument).name; got != "memory" {
		t.Errorf("OpenDefault() opened %s, want memory", got)
	}
}

func TestRegistryOpenDefaultEmpty(t *testing.T) {
	r := NewRegistry()
	_, err := r.OpenDefault()
	if !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("expected ErrNoBackendAvailable, got %v", err)
	}
}

func TestRegistryOpenErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("off", 10, stubFactory("off"), func() bool { return false })

	_, err := r.Open("missing")
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Open(missing) error = %v, want BackendNotFoundError", err)
	}

	_, err = r.Open("off")
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("Open(off) error = %v, want BackendUnavailableError", err)
	}
	if unavailable != nil && unavailable.Name != "off" {
		t.Errorf("unavailable.Name = %s, want off", unavailable.Name)
	}
}

func TestSubscriptionFunc(t *testing.T) {
	called := 0
	var s Subscription = SubscriptionFunc(func() { called++ })
	s.Cancel()
	if called != 1 {
		t.Errorf("Cancel called fn %d times, want 1", called)
	}
}
