package background

import (
	"fmt"

	"gocv.io/x/gocv"
)

// maxSide is the largest width or height the loader will resize to.
const maxSide = 32768

func validateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty for %s", operation)
	}
	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("image has invalid dimensions %dx%d for %s", mat.Cols(), mat.Rows(), operation)
	}
	switch mat.Channels() {
	case 1, 3, 4:
	default:
		return fmt.Errorf("image has %d channels, %s needs 1, 3 or 4", mat.Channels(), operation)
	}
	return nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if width > maxSide || height > maxSide {
		return fmt.Errorf("target size %dx%d exceeds %d", width, height, maxSide)
	}
	return nil
}
