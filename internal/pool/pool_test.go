package pool

import (
	"strings"
	"sync"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestStringBuilderPool(t *testing.T) {
	sb := GetStringBuilder()
	if sb == nil {
		t.Fatal("GetStringBuilder returned nil")
	}

	sb.WriteString("badge")
	if got := sb.String(); got != "badge" {
		t.Errorf("String() = %q, want %q", got, "badge")
	}
	PutStringBuilder(sb)

	// Recycled builders come back empty
	sb2 := GetStringBuilder()
	if sb2.Len() != 0 {
		t.Errorf("recycled builder has Len() = %d, want 0", sb2.Len())
	}
	PutStringBuilder(sb2)
}

func TestPutStringBuilderEdgeCases(t *testing.T) {
	PutStringBuilder(nil)

	// Builders past the size cap are dropped rather than recycled
	big := &strings.Builder{}
	big.Grow(65 * 1024)
	PutStringBuilder(big)
}

func TestStringBuilderPoolConcurrent(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				sb := GetStringBuilder()
				sb.WriteString("line")
				if sb.String() != "line" {
					t.Error("builder contents clobbered")
				}
				PutStringBuilder(sb)
			}
		}()
	}
	wg.Wait()
}

func TestLayerSlicePool(t *testing.T) {
	layers := GetLayerSlice()
	if layers == nil || *layers == nil {
		t.Fatal("GetLayerSlice returned nil slice")
	}
	if cap(*layers) < 16 {
		t.Errorf("cap = %d, want at least 16", cap(*layers))
	}

	*layers = append(*layers, lipgloss.NewLayer("x"))
	PutLayerSlice(layers)

	layers2 := GetLayerSlice()
	if len(*layers2) != 0 {
		t.Errorf("recycled slice has len = %d, want 0", len(*layers2))
	}
	PutLayerSlice(layers2)

	PutLayerSlice(nil)
}

func TestStylePool(t *testing.T) {
	style := GetStyle()
	if style == nil {
		t.Fatal("GetStyle returned nil")
	}
	PutStyle(style)
	PutStyle(nil)
}

func BenchmarkStringBuilderPool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := GetStringBuilder()
			sb.WriteString("status line")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})
	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := &strings.Builder{}
			sb.WriteString("status line")
			_ = sb.String()
		}
	})
}

func BenchmarkLayerSlicePool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			layers := GetLayerSlice()
			PutLayerSlice(layers)
		}
	})
	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = make([]*lipgloss.Layer, 0, 16)
		}
	})
}
