package systems

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// TextSizer 返回单行文字的渲染宽高（像素）
type TextSizer func(s string) (width, height float64)

// FaceSizer 返回使用指定字体测量的 TextSizer
func FaceSizer(face text.Face) TextSizer {
	return func(s string) (float64, float64) {
		if face == nil {
			return 0, 0
		}
		return text.Measure(s, face, 0)
	}
}
