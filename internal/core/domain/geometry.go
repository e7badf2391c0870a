package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Primitive is a geometry-stage primitive type.
type Primitive string

// Geometry primitive names as accepted in configuration.
const (
	PrimitivePoints             Primitive = "points"
	PrimitiveLines              Primitive = "lines"
	PrimitiveLinesAdjacency     Primitive = "lines_adjacency"
	PrimitiveLineStrip          Primitive = "line_strip"
	PrimitiveTriangles          Primitive = "triangles"
	PrimitiveTrianglesAdjacency Primitive = "triangles_adjacency"
	PrimitiveTriangleStrip      Primitive = "triangle_strip"
)

var knownPrimitives = map[Primitive]bool{
	PrimitivePoints:             true,
	PrimitiveLines:              true,
	PrimitiveLinesAdjacency:     true,
	PrimitiveLineStrip:          true,
	PrimitiveTriangles:          true,
	PrimitiveTrianglesAdjacency: true,
	PrimitiveTriangleStrip:      true,
}

// ParsePrimitive converts a configuration value into a Primitive.
// Matching is case-insensitive and accepts dashes in place of underscores.
func ParsePrimitive(s string) (Primitive, error) {
	p := Primitive(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !knownPrimitives[p] {
		return "", zerr.With(zerr.Wrap(ErrUnknownPrimitive, "failed to parse primitive"), "primitive", s)
	}
	return p, nil
}

// IsOutput reports whether p is a valid geometry output primitive.
func (p Primitive) IsOutput() bool {
	return p == PrimitivePoints || p == PrimitiveLineStrip || p == PrimitiveTriangleStrip
}

// GeometryConfig holds the geometry-stage parameters.
// They are independent of file identity and survive every reload.
type GeometryConfig struct {
	InputType   Primitive
	OutputType  Primitive
	OutputCount int
}

// DefaultGeometryConfig returns the parameters used when nothing is configured.
func DefaultGeometryConfig() GeometryConfig {
	return GeometryConfig{
		InputType:   PrimitiveTriangles,
		OutputType:  PrimitiveTriangleStrip,
		OutputCount: 3,
	}
}
