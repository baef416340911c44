package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// The 1x1 white source pixel is created on first draw, not at package init,
// so importing this package never touches the graphics backend.
var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Mesh is a flat-colored triangle list in model space, origin at the shape
// center.
type Mesh struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// NGon builds a regular polygon mesh as a triangle fan: one vertex per corner
// plus a center vertex, three indices per triangle.
func NGon(radius float64, vertices int, col color.Color) *Mesh {
	if vertices < 3 {
		vertices = 3
	}
	r, g, b, a := col.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	m := &Mesh{
		vertices: make([]ebiten.Vertex, 0, vertices+1),
		indices:  make([]uint16, 0, vertices*3),
	}
	for i := 0; i < vertices; i++ {
		angle := float64(i) / float64(vertices) * 2 * math.Pi
		m.vertices = append(m.vertices, ebiten.Vertex{
			DstX:   float32(radius * math.Cos(angle)),
			DstY:   float32(radius * math.Sin(angle)),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	m.vertices = append(m.vertices, ebiten.Vertex{
		SrcX: 1, SrcY: 1,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	center := uint16(vertices)
	for i := 0; i < vertices; i++ {
		m.indices = append(m.indices, uint16(i), uint16((i+1)%vertices), center)
	}
	return m
}

// VertexCount returns the number of mesh vertices including the center.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.vertices)
}

// IndexCount returns the number of triangle indices.
func (m *Mesh) IndexCount() int {
	if m == nil {
		return 0
	}
	return len(m.indices)
}

// Draw renders the mesh with its center at screen position (x, y).
func (m *Mesh) Draw(dst *ebiten.Image, x, y float64) {
	if m == nil || dst == nil {
		return
	}
	translated := make([]ebiten.Vertex, len(m.vertices))
	for i, v := range m.vertices {
		v.DstX += float32(x)
		v.DstY += float32(y)
		translated[i] = v
	}
	dst.DrawTriangles(translated, m.indices, whitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// FillRect draws a solid rectangle; used for health bars.
func FillRect(dst *ebiten.Image, x, y, w, h float64, col color.Color) {
	if dst == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(whitePixel(), op)
}
