// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Registry holds the current [Palette]. Readers always see a complete
// palette; replacing it never mutates one that is in use.
type Registry struct {
	current atomic.Pointer[Palette]

	// mu serializes Reload.
	mu sync.Mutex
}

// NewRegistry returns a registry holding p.
func NewRegistry(p *Palette) *Registry {
	r := &Registry{}
	r.current.Store(p)
	return r
}

// Palette returns the current palette.
func (r *Registry) Palette() *Palette {
	return r.current.Load()
}

// Reload builds a new palette and, if it succeeds and shares the grid
// of the current one, makes it current. On failure the current palette
// is kept.
func (r *Registry) Reload(build func() (*Palette, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := build()
	if err != nil {
		return err
	}
	if old := r.current.Load(); old != nil && !old.Grid().Equal(p.Grid()) {
		return fmt.Errorf("pigment.Registry.Reload: grid changed from %v to %v", old.Grid(), p.Grid())
	}
	r.current.Store(p)
	slog.Info("loaded pigment palette", "pigments", p.Len())
	return nil
}
