// Package shape holds simple geometric value types.
package shape

import (
	"strconv"
)

// Rectangle is an axis aligned rectangle. Values are not validated: NaN,
// infinities and negative sizes are kept as given and propagate into Area.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area is computed from current field values on every call.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

// String returns rectangle dimensions as "WxH".
func (r *Rectangle) String() string {
	return strconv.FormatFloat(r.Width, 'g', -1, 64) + "x" + strconv.FormatFloat(r.Height, 'g', -1, 64)
}
