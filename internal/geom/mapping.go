package geom

// MapToCanvas rescales a pointer position into canvas space. box is the
// on-screen extent of the drawing surface and canvasW/canvasH its logical
// pixel size. A zero-sized box maps everything onto the box origin.
func MapToCanvas(client Point, box Rect, canvasW, canvasH float64) Point {
	var x, y float64
	if box.Width != 0 {
		x = (client.X - box.X) / box.Width * canvasW
	}
	if box.Height != 0 {
		y = (client.Y - box.Y) / box.Height * canvasH
	}
	return Point{X: x, Y: y}
}

// MapFromCanvas is the inverse of MapToCanvas.
func MapFromCanvas(p Point, box Rect, canvasW, canvasH float64) Point {
	var x, y float64
	if canvasW != 0 {
		x = box.X + p.X/canvasW*box.Width
	}
	if canvasH != 0 {
		y = box.Y + p.Y/canvasH*box.Height
	}
	return Point{X: x, Y: y}
}
