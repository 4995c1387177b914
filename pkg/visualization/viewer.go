// Package visualization exports phantom volumes and coil images as
// grayscale images for visual inspection.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/cmplx"
	"os"
	"path/filepath"

	"phantomgen/internal/models"
)

// Viewer extracts and saves 2D views of a phantom volume
type Viewer struct {
	volume *models.Volume
}

// NewViewer creates a viewer over the given volume
func NewViewer(volume *models.Volume) *Viewer {
	return &Viewer{volume: volume}
}

// ExtractSlice extracts a 2D slice from the volume along the specified axis.
// Intensities are rescaled to span the full grayscale range, since phantom
// values can be negative (subtraction regions) and are not bounded by 1.
func (v *Viewer) ExtractSlice(axis string, position int) (image.Image, error) {
	if position < 0 {
		return nil, fmt.Errorf("position must be non-negative")
	}

	vol := v.volume
	var w, h int
	var sample func(i, j int) float64

	switch axis {
	case "x", "X":
		if position >= vol.Width {
			return nil, fmt.Errorf("position %d exceeds width %d", position, vol.Width)
		}
		w, h = vol.Depth, vol.Height
		sample = func(i, j int) float64 { return vol.At(position, j, i) }

	case "y", "Y":
		if position >= vol.Height {
			return nil, fmt.Errorf("position %d exceeds height %d", position, vol.Height)
		}
		w, h = vol.Width, vol.Depth
		sample = func(i, j int) float64 { return vol.At(i, position, j) }

	case "z", "Z":
		if position >= vol.Depth {
			return nil, fmt.Errorf("position %d exceeds depth %d", position, vol.Depth)
		}
		w, h = vol.Width, vol.Height
		sample = func(i, j int) float64 { return vol.At(i, j, position) }

	default:
		return nil, fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	data := make([]float64, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			data[j*w+i] = sample(i, j)
		}
	}
	return grayImage(data, w, h), nil
}

// SaveSlice saves an extracted slice as a PNG image
func (v *Viewer) SaveSlice(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveSliceSequence extracts and saves every slice along the specified axis
func (v *Viewer) SaveSliceSequence(axis string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	var maxPos int
	switch axis {
	case "x", "X":
		maxPos = v.volume.Width
	case "y", "Y":
		maxPos = v.volume.Height
	case "z", "Z":
		maxPos = v.volume.Depth
	default:
		return fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	for pos := 0; pos < maxPos; pos++ {
		img, err := v.ExtractSlice(axis, pos)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%s_%03d.png", axis, pos))
		if err := v.SaveSlice(img, filename); err != nil {
			return err
		}
	}

	return nil
}

// SaveGrid saves a 2D grid as a grayscale PNG image
func SaveGrid(grid *models.Grid, filename string) error {
	img := grayImage(grid.Data, grid.Width, grid.Height)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveComplexImage saves the magnitude of a size x size complex field
// (a gridded coil image, for example) as a grayscale PNG image
func SaveComplexImage(field []complex128, size int, filename string) error {
	if len(field) != size*size {
		return fmt.Errorf("field length %d does not match %dx%d grid", len(field), size, size)
	}

	data := make([]float64, len(field))
	for i, c := range field {
		data[i] = cmplx.Abs(c)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, grayImage(data, size, size))
}

// grayImage rescales data to the full 16-bit grayscale range
func grayImage(data []float64, w, h int) *image.Gray16 {
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	scale := 0.0
	if hi > lo {
		scale = 65535 / (hi - lo)
	}

	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16((data[y*w+x] - lo) * scale)})
		}
	}
	return img
}
