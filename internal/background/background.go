// Package background prepares the optional decorative image drawn behind the
// tracker window.
package background

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"volume-tracker/internal/logger"

	"gocv.io/x/gocv"
)

// fallbackGIF is a 1x1 light grey pixel used when no image is available.
const fallbackGIF = "R0lGODlhAQABAIAAAOjo6AAAACwAAAAAAQABAAACAkQBADs="

// minDrawableSide keeps placeholder-sized images off the canvas.
const minDrawableSide = 10

// DefaultDim is the brightness multiplier applied so the form stays readable.
const DefaultDim = 0.35

type Image struct {
	Image    image.Image
	Source   string
	Fallback bool
}

// Drawable reports whether the image is large enough to be worth painting.
func (i *Image) Drawable() bool {
	if i == nil || i.Image == nil {
		return false
	}
	b := i.Image.Bounds()
	return b.Dx() > minDrawableSide && b.Dy() > minDrawableSide
}

type Loader struct {
	logger logger.Logger
	dim    float64
}

func NewLoader(lg logger.Logger) *Loader {
	return &Loader{logger: lg, dim: DefaultDim}
}

// Load decodes path, scales it to width×height and dims it. A missing or
// undecodable file yields the embedded fallback; only a broken fallback is an error.
func (l *Loader) Load(path string, width, height int) (*Image, error) {
	if path == "" {
		return l.fallback()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("Background", "image not found, using embedded fallback", map[string]interface{}{
			"path": path,
		})
		return l.fallback()
	}
	if err != nil {
		l.logger.Warning("Background", "image unreadable, using embedded fallback", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return l.fallback()
	}

	img, err := l.process(data, width, height)
	if err != nil {
		l.logger.Warning("Background", "image failed to load, using embedded fallback", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return l.fallback()
	}

	bounds := img.Bounds()
	l.logger.Debug("Background", "image prepared", map[string]interface{}{
		"path":   path,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	})
	return &Image{Image: img, Source: path}, nil
}

func (l *Loader) process(data []byte, width, height int) (image.Image, error) {
	mat, err := decode(data)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if err := validateMat(mat, "resize"); err != nil {
		return nil, err
	}
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	if mat.Cols() != width || mat.Rows() != height {
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(mat, &resized, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationArea)
		if resized.Empty() {
			return nil, fmt.Errorf("resize to %dx%d failed", width, height)
		}
		resized.CopyTo(&mat)
	}

	dimmed := gocv.NewMat()
	defer dimmed.Close()
	gocv.ConvertScaleAbs(mat, &dimmed, l.dim, 0)
	if err := validateMat(dimmed, "conversion"); err != nil {
		return nil, err
	}

	img, err := dimmed.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting to image: %w", err)
	}
	return img, nil
}

// decode tries OpenCV first and falls back to the standard decoders for
// formats the OpenCV build lacks (GIF in most distributions).
func decode(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if err == nil {
		mat.Close()
	}

	img, _, stdErr := image.Decode(bytes.NewReader(data))
	if stdErr != nil {
		return gocv.NewMat(), fmt.Errorf("decoding image: %w", stdErr)
	}
	mat, err = gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("converting decoded image: %w", err)
	}
	return mat, nil
}

func (l *Loader) fallback() (*Image, error) {
	data, err := base64.StdEncoding.DecodeString(fallbackGIF)
	if err != nil {
		return nil, fmt.Errorf("decoding embedded fallback: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding embedded fallback: %w", err)
	}
	return &Image{Image: img, Fallback: true}, nil
}
