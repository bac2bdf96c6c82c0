// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package memhost

import (
	"errors"
	"testing"

	"github.com/zeronehost/tiny-draw/host"
)

func TestAddElement(t *testing.T) {
	d := NewDocument()

	app, err := d.AddElement("app", "", 50, 20)
	if err != nil {
		t.Fatalf("AddElement() error = %v", err)
	}
	if got := app.OffsetPosition(); got != (host.Position{Top: 50, Left: 20}) {
		t.Errorf("OffsetPosition() = %+v, want {50 20}", got)
	}
	if app.Parent() != d.Body() {
		t.Error("top-level element should be a child of the body")
	}
	if got := app.Style("position"); got != "relative" {
		t.Errorf("position = %q, want relative", got)
	}

	if _, err := d.AddElement("app", "", 0, 0); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate AddElement() error = %v, want ErrDuplicateID", err)
	}
	if _, err := d.AddElement("x", "missing", 0, 0); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("AddElement(unknown parent) error = %v, want ErrUnknownElement", err)
	}

	if _, err := d.AddText("label"); err != nil {
		t.Fatalf("AddText() error = %v", err)
	}
	if _, err := d.AddElement("y", "label", 0, 0); !errors.Is(err, ErrNotElement) {
		t.Errorf("AddElement(text parent) error = %v, want ErrNotElement", err)
	}
}

func TestOffsetParentChain(t *testing.T) {
	d := NewDocument()
	if _, err := d.AddElement("page", "", 10, 5); err != nil {
		t.Fatal(err)
	}
	app, err := d.AddElement("app", "page", 40, 15)
	if err != nil {
		t.Fatal(err)
	}

	p, ok := app.OffsetParent()
	if !ok {
		t.Fatal("app should have an offset parent")
	}
	if p.(*Element).ID() != "page" {
		t.Errorf("app offset parent = %v, want page", p)
	}

	p, ok = p.OffsetParent()
	if !ok || p != host.Element(d.Body()) {
		t.Errorf("page offset parent = %v, %v, want body", p, ok)
	}
	if _, ok := d.Body().OffsetParent(); ok {
		t.Error("body should have no offset parent")
	}
}

func TestOffsetParentSkipsStatic(t *testing.T) {
	d := NewDocument()
	if _, err := d.AddElement("outer", "", 0, 0); err != nil {
		t.Fatal(err)
	}
	inner, err := d.AddElement("inner", "outer", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := inner.SetStyle("position", "static"); err != nil {
		t.Fatal(err)
	}

	node, err := d.CreateElement("canvas")
	if err != nil {
		t.Fatal(err)
	}
	c := node.(*Canvas)
	if err := inner.AppendChild(c); err != nil {
		t.Fatal(err)
	}

	p, ok := c.OffsetParent()
	if !ok || p.(*Element).ID() != "outer" {
		t.Errorf("canvas offset parent = %v, want outer", p)
	}
}

func TestAppendChildMoves(t *testing.T) {
	d := NewDocument()
	a, _ := d.AddElement("a", "", 0, 0)
	b, _ := d.AddElement("b", "", 0, 0)
	node, _ := d.CreateElement("canvas")

	if err := a.AppendChild(node); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendChild(node); err != nil {
		t.Fatal(err)
	}
	if n := len(a.Children()); n != 0 {
		t.Errorf("a has %d children after move, want 0", n)
	}
	if kids := b.Children(); len(kids) != 1 || kids[0] != node {
		t.Errorf("b children = %v, want [canvas]", kids)
	}

	txt, _ := d.AddText("t")
	if err := a.AppendChild(txt); !errors.Is(err, ErrNotElement) {
		t.Errorf("AppendChild(text) error = %v, want ErrNotElement", err)
	}
}

func TestCanvasSetSizeResetsTransform(t *testing.T) {
	d := NewDocument()
	node, err := d.CreateElement("CANVAS")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := node.(*Canvas)
	if !ok {
		t.Fatalf("CreateElement(CANVAS) = %T, want *Canvas", node)
	}
	if c.NodeName() != "CANVAS" {
		t.Errorf("NodeName() = %s, want CANVAS", c.NodeName())
	}

	ctx, err := c.Context2D()
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.SetTransform(host.Scale(2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := c.SetSize(20, 10); err != nil {
		t.Fatal(err)
	}
	if ctx.Transform() != host.Identity() {
		t.Errorf("transform after SetSize = %+v, want identity", ctx.Transform())
	}
	if w, h := c.Size(); w != 20 || h != 10 {
		t.Errorf("Size() = %dx%d, want 20x10", w, h)
	}
	if b := c.Image().Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("Image() bounds = %v, want 20x10", b)
	}

	again, _ := c.Context2D()
	if again != ctx {
		t.Error("Context2D() should return the same context")
	}
}

func TestPixelsIsCopy(t *testing.T) {
	d := NewDocument()
	node, _ := d.CreateElement("canvas")
	c := node.(*Canvas)
	if err := c.SetSize(2, 2); err != nil {
		t.Fatal(err)
	}
	ctx, _ := c.Context2D()

	px := ctx.(host.PixelSource).Pixels()
	px.Pix[0] = 99
	if c.Image().Pix[0] != 0 {
		t.Error("Pixels() should return a copy")
	}
}

func TestFailAndClear(t *testing.T) {
	d := NewDocument()
	boom := errors.New("boom")

	d.Fail(OpCreateElement, boom)
	if _, err := d.CreateElement("canvas"); !errors.Is(err, boom) {
		t.Errorf("CreateElement() error = %v, want boom", err)
	}
	d.Clear(OpCreateElement)
	if _, err := d.CreateElement("canvas"); err != nil {
		t.Errorf("CreateElement() after Clear error = %v", err)
	}

	d.Fail(OpSubscribe, boom)
	if _, err := d.OnResize(func() {}); !errors.Is(err, boom) {
		t.Errorf("OnResize() error = %v, want boom", err)
	}
	if d.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", d.Subscribers())
	}
}

func TestFailAfter(t *testing.T) {
	d := NewDocument()
	boom := errors.New("boom")

	d.FailAfter(OpCreateElement, 2, boom)
	for i := 0; i < 2; i++ {
		if _, err := d.CreateElement("canvas"); err != nil {
			t.Fatalf("CreateElement() call %d error = %v", i+1, err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := d.CreateElement("canvas"); !errors.Is(err, boom) {
			t.Errorf("CreateElement() call %d error = %v, want boom", i+3, err)
		}
	}
}

func TestRemoveChild(t *testing.T) {
	d := NewDocument()
	app, _ := d.AddElement("app", "", 0, 0)
	other, _ := d.AddElement("other", "", 0, 0)
	a, _ := d.CreateElement("canvas")
	b, _ := d.CreateElement("canvas")
	_ = app.AppendChild(a)
	_ = app.AppendChild(b)

	if err := app.RemoveChild(a); err != nil {
		t.Fatalf("RemoveChild() error = %v", err)
	}
	kids := app.Children()
	if len(kids) != 1 || kids[0] != b {
		t.Errorf("Children() after RemoveChild = %v, want [b]", kids)
	}
	if a.(*Canvas).Parent() != nil {
		t.Error("removed child should have no parent")
	}

	if err := app.RemoveChild(a); !errors.Is(err, ErrNotChild) {
		t.Errorf("second RemoveChild() error = %v, want ErrNotChild", err)
	}
	if err := other.RemoveChild(b); !errors.Is(err, ErrNotChild) {
		t.Errorf("RemoveChild() from non-parent error = %v, want ErrNotChild", err)
	}
	text, _ := d.AddText("t")
	if err := app.RemoveChild(text); !errors.Is(err, ErrNotElement) {
		t.Errorf("RemoveChild(text) error = %v, want ErrNotElement", err)
	}

	boom := errors.New("boom")
	d.Fail(OpRemoveChild, boom)
	if err := app.RemoveChild(b); !errors.Is(err, boom) {
		t.Errorf("RemoveChild() error = %v, want boom", err)
	}
	if len(app.Children()) != 1 {
		t.Error("failed RemoveChild must keep the child")
	}
}

func TestCallLog(t *testing.T) {
	d := NewDocument()
	app, _ := d.AddElement("app", "", 0, 0)
	node, _ := d.CreateElement("canvas")
	_ = app.SetStyle("width", "10px")
	_ = app.AppendChild(node)

	calls := d.Calls()
	want := []string{
		"createElement document canvas",
		"setStyle #app width: 10px",
		"appendChild #app canvas#1",
	}
	if len(calls) != len(want) {
		t.Fatalf("Calls() = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i].String() != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestDispatchResize(t *testing.T) {
	d := NewDocument()
	var order []int

	s1, err := d.OnResize(func() { order = append(order, 1) })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.OnResize(func() { order = append(order, 2) }); err != nil {
		t.Fatal(err)
	}

	d.DispatchResize()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("dispatch order = %v, want [1 2]", order)
	}

	s1.Cancel()
	s1.Cancel()
	if d.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", d.Subscribers())
	}

	order = nil
	d.DispatchResize()
	if len(order) != 1 || order[0] != 2 {
		t.Errorf("dispatch after cancel = %v, want [2]", order)
	}
}

func TestDevicePixelRatio(t *testing.T) {
	if got := NewDocument().DevicePixelRatio(); got != 1 {
		t.Errorf("default DevicePixelRatio() = %v, want 1", got)
	}
	d := NewDocument(WithDevicePixelRatio(2))
	if got := d.DevicePixelRatio(); got != 2 {
		t.Errorf("DevicePixelRatio() = %v, want 2", got)
	}
	d.SetDevicePixelRatio(0)
	if got := d.DevicePixelRatio(); got != 1 {
		t.Errorf("DevicePixelRatio() with zero ratio = %v, want 1", got)
	}
}

func TestRegistered(t *testing.T) {
	doc, err := host.Open("memory")
	if err != nil {
		t.Fatalf("host.Open(memory) error = %v", err)
	}
	if _, ok := doc.(*Document); !ok {
		t.Errorf("host.Open(memory) = %T, want *Document", doc)
	}
}
