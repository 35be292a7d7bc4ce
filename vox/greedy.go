package vox

// Quad is one merged rectangle of coplanar same-material exposed faces.
// P is the slice position along the direction's perpendicular axis; (U,V) is
// the rectangle's first cell in slice coordinates, H spans u and W spans v.
type Quad struct {
	Dir      int
	P, U, V  int
	W, H     int
	Material uint8
}

// mergeSlice partitions the slice's exposed cells into rectangles: scan
// row-major for the first live cell, grow along v while the material matches,
// then extend whole rows along u, stopping at the first row that breaks the
// full width. Every live cell lands in exactly one quad and the scan order is
// fixed, so identical masks always give identical quads.
func mergeSlice(mask *sliceMask, dirIdx, p int) []Quad {
	visited := make([]bool, len(mask.cells))
	var quads []Quad
	for u := 0; u < mask.du; u++ {
		for v := 0; v < mask.dv; {
			c := mask.at(u, v)
			if c == 0 || visited[u*mask.dv+v] {
				v++
				continue
			}
			width := 1
			for w := v + 1; w < mask.dv && mask.at(u, w) == c && !visited[u*mask.dv+w]; w++ {
				width++
			}
			height := 1
			for h := u + 1; h < mask.du; h++ {
				ok := true
				for w := v; w < v+width; w++ {
					if mask.at(h, w) != c || visited[h*mask.dv+w] {
						ok = false
						break
					}
				}
				if !ok {
					break
				}
				height++
			}
			for hu := u; hu < u+height; hu++ {
				for hv := v; hv < v+width; hv++ {
					visited[hu*mask.dv+hv] = true
				}
			}
			quads = append(quads, Quad{Dir: dirIdx, P: p, U: u, V: v, W: width, H: height, Material: c})
			v += width
		}
	}
	return quads
}
