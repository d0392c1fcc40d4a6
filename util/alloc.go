package util

// MakeRectangular allocates a rows×cols matrix of float64 backed by a
// single contiguous slice.
func MakeRectangular(rows, cols int) [][]float64 {
	arr := make([]float64, rows*cols)
	rect := make([][]float64, rows)
	for i := range rect {
		rect[i] = arr[:cols]
		arr = arr[cols:]
	}
	return rect
}
