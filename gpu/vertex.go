package gpu

import (
	"fmt"
	"slices"
	"unsafe"
)

// AttribMarker describes how one attribute of a vertex record is laid out,
// in the terms glVertexAttribPointer expects.
type AttribMarker struct {
	Slot       Slot
	Type       ComponentType
	Components int32
	Normalize  bool
	Offset     int
}

func (m AttribMarker) size() int {
	return int(m.Components) * m.Type.Size()
}

// Vertex is a fixed-layout record that can be uploaded to a vertex buffer.
// The markers returned by Attribs must cover the record byte for byte.
type Vertex interface {
	Attribs() []AttribMarker
}

// Float32Attrib is a shorthand for a float attribute with n components.
func Float32Attrib(slot Slot, n int32, offset int) AttribMarker {
	return AttribMarker{Slot: slot, Type: Float, Components: n, Offset: offset}
}

// ValidateLayout checks that markers partition a record of the given size
// with no gaps and no overlap, and that no slot is used twice.
func ValidateLayout(markers []AttribMarker, size int) error {
	if len(markers) == 0 {
		return fmt.Errorf("%w: no attributes", ErrLayoutMismatch)
	}
	sorted := slices.Clone(markers)
	slices.SortFunc(sorted, func(a, b AttribMarker) int { return a.Offset - b.Offset })

	seen := make(map[Slot]bool, len(sorted))
	end := 0
	for _, m := range sorted {
		if seen[m.Slot] {
			return fmt.Errorf("%w: slot %d used twice", ErrLayoutMismatch, m.Slot)
		}
		seen[m.Slot] = true
		if m.Components < 1 || m.Components > 4 {
			return fmt.Errorf("%w: slot %d has %d components", ErrLayoutMismatch, m.Slot, m.Components)
		}
		if m.Offset != end {
			return fmt.Errorf("%w: slot %d at offset %d, expected %d", ErrLayoutMismatch, m.Slot, m.Offset, end)
		}
		end += m.size()
	}
	if end != size {
		return fmt.Errorf("%w: attributes cover %d bytes of a %d byte vertex", ErrLayoutMismatch, end, size)
	}
	return nil
}

// sliceBytes reinterprets a slice of fixed-layout records as raw bytes.
func sliceBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(zero)))
}
