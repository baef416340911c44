package render

import (
	"image/color"
	"testing"
)

func TestNGonCounts(t *testing.T) {
	tests := []struct {
		name        string
		vertices    int
		wantVerts   int
		wantIndices int
	}{
		{"triangle", 3, 4, 9},
		{"square", 4, 5, 12},
		{"pentagon", 5, 6, 15},
		{"clamped below minimum", 2, 4, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NGon(10, tt.vertices, color.White)
			if m.VertexCount() != tt.wantVerts {
				t.Errorf("VertexCount = %d, want %d", m.VertexCount(), tt.wantVerts)
			}
			if m.IndexCount() != tt.wantIndices {
				t.Errorf("IndexCount = %d, want %d", m.IndexCount(), tt.wantIndices)
			}
		})
	}
}

func TestNilMeshCountsZero(t *testing.T) {
	var m *Mesh
	if m.VertexCount() != 0 || m.IndexCount() != 0 {
		t.Fatal("nil mesh should report zero counts")
	}
}

func TestNamedColor(t *testing.T) {
	if _, err := NamedColor("tomato"); err != nil {
		t.Errorf("tomato: %v", err)
	}
	if _, err := NamedColor("Gold"); err != nil {
		t.Errorf("names should be case-insensitive: %v", err)
	}
	if c, err := NamedColor(""); err != nil || c != color.White {
		t.Errorf("empty name = %v, %v; want white", c, err)
	}
	if _, err := NamedColor("notacolor"); err == nil {
		t.Error("unknown names should fail")
	}
}
