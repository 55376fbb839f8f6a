package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// flipRows mirrors img vertically in place.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func glError(op string, code uint32) error {
	var name string
	switch code {
	case gl.INVALID_ENUM:
		name = "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		name = "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		name = "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		name = "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		name = "GL_OUT_OF_MEMORY"
	default:
		name = fmt.Sprintf("0x%04X", code)
	}
	return fmt.Errorf("%s: %s", op, name)
}
