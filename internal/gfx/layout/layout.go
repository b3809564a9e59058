// Package layout computes screen regions for gfx screen descriptions.
// Every function is pure, so a description can rebuild its layout on each
// row window and get identical rectangles.
package layout

import "image"

// Inset shrinks rect by px on all sides.
func Inset(rect image.Rectangle, px int) image.Rectangle {
	if px <= 0 {
		return rect
	}
	return Normalize(image.Rect(rect.Min.X+px, rect.Min.Y+px, rect.Max.X-px, rect.Max.Y-px))
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// SplitLeft cuts a column of width px off the left of rect.
func SplitLeft(rect image.Rectangle, px int) (left, right image.Rectangle) {
	rect = Normalize(rect)
	x := rect.Min.X + clamp(px, 0, rect.Dx())
	return image.Rect(rect.Min.X, rect.Min.Y, x, rect.Max.Y), image.Rect(x, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// SplitTop cuts a band of height px off the top of rect.
func SplitTop(rect image.Rectangle, px int) (top, bottom image.Rectangle) {
	rect = Normalize(rect)
	y := rect.Min.Y + clamp(px, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, y), image.Rect(rect.Min.X, y, rect.Max.X, rect.Max.Y)
}

// SplitBottom cuts a band of height px off the bottom of rect.
func SplitBottom(rect image.Rectangle, px int) (top, bottom image.Rectangle) {
	rect = Normalize(rect)
	return SplitTop(rect, rect.Dy()-clamp(px, 0, rect.Dy()))
}

// Rows divides rect into n bands of equal height separated by gap pixels.
// Leftover pixels go to the last band.
func Rows(rect image.Rectangle, n, gap int) []image.Rectangle {
	rect = Normalize(rect)
	if n <= 0 {
		return nil
	}
	gap = max(gap, 0)
	h := max((rect.Dy()-gap*(n-1))/n, 0)
	out := make([]image.Rectangle, n)
	y := rect.Min.Y
	for i := range out {
		bottom := min(y+h, rect.Max.Y)
		if i == n-1 {
			bottom = rect.Max.Y
		}
		out[i] = image.Rect(rect.Min.X, min(y, rect.Max.Y), rect.Max.X, bottom)
		y += h + gap
	}
	return out
}

// Columns divides rect into n columns of equal width separated by gap
// pixels. Leftover pixels go to the last column.
func Columns(rect image.Rectangle, n, gap int) []image.Rectangle {
	rect = Normalize(rect)
	rows := Rows(image.Rect(rect.Min.Y, rect.Min.X, rect.Max.Y, rect.Max.X), n, gap)
	for i, r := range rows {
		rows[i] = image.Rect(r.Min.Y, r.Min.X, r.Max.Y, r.Max.X)
	}
	return rows
}

// Center returns a width x height rectangle centered in rect. The size is
// clamped to rect.
func Center(rect image.Rectangle, width, height int) image.Rectangle {
	rect = Normalize(rect)
	width = clamp(width, 0, rect.Dx())
	height = clamp(height, 0, rect.Dy())
	x := rect.Min.X + (rect.Dx()-width)/2
	y := rect.Min.Y + (rect.Dy()-height)/2
	return image.Rect(x, y, x+width, y+height)
}

// AnchorTopLeft returns a width x height rectangle in the top-left corner
// of rect, clamped to rect.
func AnchorTopLeft(rect image.Rectangle, width, height int) image.Rectangle {
	rect = Normalize(rect)
	width = clamp(width, 0, rect.Dx())
	height = clamp(height, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Min.Y+height)
}

// FitSquare returns the largest square that fits into rect, centered.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	return Center(rect, size, size)
}

// Scale returns the largest integer scale at which a width x height item
// fits into rect, and at least 1.
func Scale(rect image.Rectangle, width, height int) int {
	if width <= 0 || height <= 0 {
		return 1
	}
	rect = Normalize(rect)
	return max(min(rect.Dx()/width, rect.Dy()/height), 1)
}
