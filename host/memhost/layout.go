// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package memhost

import (
	"encoding/json"
	"fmt"
	"io"
)

// Layout describes page geometry in JSON:
//
//	{
//	  "devicePixelRatio": 2,
//	  "elements": [
//	    {"id": "page", "top": 0, "left": 0},
//	    {"id": "app", "parent": "page", "top": 50, "left": 20}
//	  ]
//	}
//
// Elements are listed parents first. Positions are relative to the parent.
type Layout struct {
	DevicePixelRatio float64         `json:"devicePixelRatio,omitempty"`
	Elements         []LayoutElement `json:"elements"`
}

// LayoutElement is one positioned box of a Layout.
type LayoutElement struct {
	ID     string `json:"id"`
	Parent string `json:"parent,omitempty"`
	Top    int    `json:"top"`
	Left   int    `json:"left"`
}

// LoadLayout decodes a Layout.
func LoadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("memhost: decode layout: %w", err)
	}
	for i, e := range l.Elements {
		if e.ID == "" {
			return nil, fmt.Errorf("memhost: layout element %d has no id", i)
		}
	}
	return &l, nil
}

// ApplyLayout creates the elements of l that do not exist yet and moves the
// ones that do. A positive ratio replaces the device pixel ratio.
// Subscribers are not notified.
func (d *Document) ApplyLayout(l *Layout) error {
	for _, e := range l.Elements {
		if _, ok := d.ElementByID(e.ID); ok {
			if err := d.Move(e.ID, e.Top, e.Left); err != nil {
				return err
			}
			continue
		}
		if _, err := d.AddElement(e.ID, e.Parent, e.Top, e.Left); err != nil {
			return err
		}
	}
	if l.DevicePixelRatio > 0 {
		d.SetDevicePixelRatio(l.DevicePixelRatio)
	}
	return nil
}
