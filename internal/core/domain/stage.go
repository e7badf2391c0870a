package domain

import "iter"

// StageKind identifies one compilable stage of a shader program.
type StageKind uint8

const (
	// StageVertex is the vertex stage.
	StageVertex StageKind = iota
	// StageFragment is the fragment stage.
	StageFragment
	// StageGeometry is the optional geometry stage.
	StageGeometry
)

// StageCount is the number of stages tracked per program.
const StageCount = 3

// String returns the lower-case stage name.
func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// Extension returns the conventional source file extension for the stage.
func (k StageKind) Extension() string {
	switch k {
	case StageVertex:
		return ".vert"
	case StageFragment:
		return ".frag"
	case StageGeometry:
		return ".geom"
	default:
		return ""
	}
}

// ShaderFiles holds the source paths of the three stages of one program.
// An empty Geometry path means the program has no geometry stage.
type ShaderFiles struct {
	Vertex   string
	Fragment string
	Geometry string
}

// ShaderFilesFromName expands a base name into <base>.vert, <base>.frag and <base>.geom.
func ShaderFilesFromName(base string) ShaderFiles {
	return ShaderFiles{
		Vertex:   base + StageVertex.Extension(),
		Fragment: base + StageFragment.Extension(),
		Geometry: base + StageGeometry.Extension(),
	}
}

// Path returns the path recorded for the given stage.
func (f ShaderFiles) Path(kind StageKind) string {
	switch kind {
	case StageVertex:
		return f.Vertex
	case StageFragment:
		return f.Fragment
	case StageGeometry:
		return f.Geometry
	default:
		return ""
	}
}

// HasGeometry reports whether a geometry stage is configured.
func (f ShaderFiles) HasGeometry() bool {
	return f.Geometry != ""
}

// Stages yields every stage with its path in vertex, fragment, geometry order.
// The geometry stage is yielded even when its path is empty.
func (f ShaderFiles) Stages() iter.Seq2[StageKind, string] {
	return func(yield func(StageKind, string) bool) {
		for _, kind := range []StageKind{StageVertex, StageFragment, StageGeometry} {
			if !yield(kind, f.Path(kind)) {
				return
			}
		}
	}
}
