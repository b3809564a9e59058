package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInset(t *testing.T) {
	assert.Equal(t, image.Rect(2, 2, 8, 6), Inset(image.Rect(0, 0, 10, 8), 2))
	assert.Equal(t, image.Rect(0, 0, 10, 8), Inset(image.Rect(0, 0, 10, 8), 0))
	// Over-inset rectangles are normalized, not inverted.
	assert.Equal(t, image.Rect(2, 2, 3, 3), Inset(image.Rect(0, 0, 5, 5), 3))
}

func TestSplits(t *testing.T) {
	r := image.Rect(0, 0, 320, 240)

	left, right := SplitLeft(r, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 240), left)
	assert.Equal(t, image.Rect(100, 0, 320, 240), right)

	top, bottom := SplitTop(r, 500)
	assert.Equal(t, r, top)
	assert.True(t, bottom.Empty())

	top, bottom = SplitBottom(r, 20)
	assert.Equal(t, image.Rect(0, 0, 320, 220), top)
	assert.Equal(t, image.Rect(0, 220, 320, 240), bottom)
}

func TestRows(t *testing.T) {
	rows := Rows(image.Rect(0, 10, 100, 110), 3, 2)

	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 10, 100, 42),
		image.Rect(0, 44, 100, 76),
		image.Rect(0, 78, 100, 110),
	}, rows)
	assert.Nil(t, Rows(image.Rect(0, 0, 10, 10), 0, 0))
}

func TestColumns(t *testing.T) {
	cols := Columns(image.Rect(0, 0, 10, 4), 2, 0)

	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 5, 4),
		image.Rect(5, 0, 10, 4),
	}, cols)
}

func TestCenterAndFit(t *testing.T) {
	r := image.Rect(0, 0, 100, 60)

	assert.Equal(t, image.Rect(40, 20, 60, 40), Center(r, 20, 20))
	assert.Equal(t, image.Rect(20, 0, 80, 60), FitSquare(r))
	assert.Equal(t, image.Rect(0, 0, 100, 10), AnchorTopLeft(r, 200, 10))
	assert.Equal(t, 2, Scale(r, 25, 29))
	assert.Equal(t, 1, Scale(r, 300, 300))
}
