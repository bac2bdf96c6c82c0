// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package memhost

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/zeronehost/tiny-draw/host"
)

// Op names a host capability for failure injection and call recording.
type Op string

// Host capabilities.
const (
	OpCreateElement Op = "createElement"
	OpSetStyle      Op = "setStyle"
	OpAppendChild   Op = "appendChild"
	OpRemoveChild   Op = "removeChild"
	OpSetSize       Op = "setSize"
	OpContext2D     Op = "getContext"
	OpSetTransform  Op = "setTransform"
	OpSubscribe     Op = "subscribeResize"
)

// Errors returned by layout manipulation.
var (
	// ErrDuplicateID is returned when an element id is already in use.
	ErrDuplicateID = errors.New("memhost: duplicate element id")

	// ErrUnknownElement is returned when an id does not name an element.
	ErrUnknownElement = errors.New("memhost: unknown element")

	// ErrNotElement is returned when a node cannot take part in layout.
	ErrNotElement = errors.New("memhost: node is not an element")

	// ErrNotChild is returned when removing a node from an element that is
	// not its parent.
	ErrNotChild = errors.New("memhost: node is not a child")
)

// Call is one recorded mutating call.
type Call struct {
	Op     Op
	Target string
	Arg    string
}

func (c Call) String() string {
	if c.Arg == "" {
		return fmt.Sprintf("%s %s", c.Op, c.Target)
	}
	return fmt.Sprintf("%s %s %s", c.Op, c.Target, c.Arg)
}

// Option configures a Document.
type Option func(*Document)

// WithDevicePixelRatio sets the initial device pixel ratio.
func WithDevicePixelRatio(dpr float64) Option {
	return func(d *Document) {
		d.dpr = dpr
	}
}

// Document is an in-memory host document.
// It is safe for concurrent use; resize callbacks are serialised.
type Document struct {
	mu         sync.Mutex
	dispatchMu sync.Mutex

	body     *Element
	byID     map[string]host.Node
	dpr      float64
	failures map[Op]*failure
	subs     map[uint64]func()
	nextSub  uint64
	serial   int
	calls    []Call
}

var _ host.Document = (*Document)(nil)

// NewDocument creates an empty document with a body at the page origin.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		byID:     make(map[string]host.Node),
		dpr:      1,
		failures: make(map[Op]*failure),
		subs:     make(map[uint64]func()),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.body = newElement(d, "body", "")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.body
}

// AddElement creates a positioned div with the given id inside parent
// (the body when parent is empty) at (top, left) within it.
func (d *Document) AddElement(id, parent string, top, left int) (*Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	p := d.body
	if parent != "" {
		n, ok := d.byID[parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownElement, parent)
		}
		if p, ok = asElement(n); !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotElement, parent)
		}
	}

	el := newElement(d, "div", id)
	el.pos = host.Position{Top: top, Left: left}
	el.style["position"] = "relative"
	el.parent = p
	p.children = append(p.children, el)
	d.byID[id] = el
	return el, nil
}

// AddText registers a text node under id. Text nodes cannot be styled.
func (d *Document) AddText(id string) (*Text, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	t := &Text{id: id}
	d.byID[id] = t
	return t, nil
}

// Move changes the declared position of the element with the given id.
// It does not notify subscribers; call DispatchResize for that.
func (d *Document) Move(id string, top, left int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownElement, id)
	}
	el, ok := asElement(n)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotElement, id)
	}
	el.pos = host.Position{Top: top, Left: left}
	return nil
}

// SetDevicePixelRatio changes the reported device pixel ratio.
func (d *Document) SetDevicePixelRatio(dpr float64) {
	d.mu.Lock()
	d.dpr = dpr
	d.mu.Unlock()
}

// Fail makes every later call of op return err until Clear is called.
func (d *Document) Fail(op Op, err error) {
	d.mu.Lock()
	d.failures[op] = &failure{err: err}
	d.mu.Unlock()
}

// FailAfter lets the next n calls of op succeed and makes every call after
// them return err until Clear is called.
func (d *Document) FailAfter(op Op, n int, err error) {
	d.mu.Lock()
	d.failures[op] = &failure{err: err, skip: n}
	d.mu.Unlock()
}

// Clear removes an injected failure.
func (d *Document) Clear(op Op) {
	d.mu.Lock()
	delete(d.failures, op)
	d.mu.Unlock()
}

// Calls returns a copy of the recorded call log.
func (d *Document) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// Subscribers returns the number of active resize callbacks.
func (d *Document) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.subs)
}

// DispatchResize runs every resize callback in subscription order.
// Dispatches never overlap.
func (d *Document) DispatchResize() {
	d.dispatchMu.Lock()
	defer d.dispatchMu.Unlock()

	d.mu.Lock()
	ids := make([]uint64, 0, len(d.subs))
	for id := range d.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, d.subs[id])
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// ElementByID implements host.Document.
func (d *Document) ElementByID(id string) (host.Node, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.byID[id]
	return n, ok
}

// CreateElement implements host.Document.
// A "canvas" tag yields a *Canvas, anything else an *Element.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	tag = strings.ToLower(tag)
	if err := d.record(OpCreateElement, "document", tag); err != nil {
		return nil, err
	}
	el := newElement(d, tag, "")
	if tag == "canvas" {
		return &Canvas{Element: el}, nil
	}
	return el, nil
}

// DevicePixelRatio implements host.Document.
func (d *Document) DevicePixelRatio() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dpr <= 0 || math.IsNaN(d.dpr) {
		return 1
	}
	return d.dpr
}

// OnResize implements host.Document.
func (d *Document) OnResize(fn func()) (host.Subscription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.record(OpSubscribe, "window", "resize"); err != nil {
		return nil, err
	}
	d.nextSub++
	id := d.nextSub
	d.subs[id] = fn
	return host.SubscriptionFunc(func() {
		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
	}), nil
}

// record logs a call and returns the injected failure for op, if any.
// Must be called with d.mu held.
func (d *Document) record(op Op, target, arg string) error {
	if f := d.failures[op]; f != nil {
		if f.skip == 0 {
			return f.err
		}
		f.skip--
	}
	d.calls = append(d.calls, Call{Op: op, Target: target, Arg: arg})
	return nil
}

// failure is an injected error for one Op.
type failure struct {
	err  error
	skip int
}

// name returns a stable label for an element in the call log.
// Must be called with d.mu held.
func (d *Document) name(el *Element) string {
	if el.id != "" {
		return "#" + el.id
	}
	if el.label == "" {
		d.serial++
		el.label = fmt.Sprintf("%s#%d", el.tag, d.serial)
	}
	return el.label
}
