// Package pool provides sync.Pool-backed buffers for the render hot path.
// A full-screen composite runs every tick, so builders, layer slices, and
// styles are recycled instead of reallocated per frame.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

var stringBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// GetStringBuilder returns a reset string builder from the pool.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets the builder and returns it to the pool. Builders
// that grew past 64KB are dropped so one giant frame does not pin memory.
func PutStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	if sb.Cap() > 64*1024 {
		return
	}
	sb.Reset()
	stringBuilderPool.Put(sb)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, 16)
		return &s
	},
}

// GetLayerSlice returns a zero-length layer slice with capacity for a
// typical desktop's worth of layers.
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice clears the slice and returns it to the pool. Elements are
// nilled out first so pooled slices do not keep whole layers alive.
func PutLayerSlice(s *[]*lipgloss.Layer) {
	if s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = nil
	}
	*s = (*s)[:0]
	layerSlicePool.Put(s)
}

var stylePool = sync.Pool{
	New: func() any {
		s := lipgloss.NewStyle()
		return &s
	},
}

// GetStyle returns a fresh style from the pool.
func GetStyle() *lipgloss.Style {
	return stylePool.Get().(*lipgloss.Style)
}

// PutStyle returns a style to the pool. Styles are value types; the caller
// must not hold the pointer after putting it back.
func PutStyle(s *lipgloss.Style) {
	if s == nil {
		return
	}
	*s = lipgloss.NewStyle()
	stylePool.Put(s)
}
