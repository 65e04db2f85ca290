package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Measurer 返回一行文字的渲染宽度（像素）
type Measurer func(line string) float64

// FaceMeasurer 返回使用指定字体测量宽度的 Measurer
func FaceMeasurer(face text.Face) Measurer {
	return func(line string) float64 {
		if line == "" || face == nil {
			return 0
		}
		width, _ := text.Measure(line, face, 0)
		return width
	}
}

// WrapText 将文本按像素宽度自动换行
//
// 参数:
//   - textStr: 要换行的文本，"\n" 分隔的每段独立换行
//   - measure: 宽度测量函数
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组，空段落对应空行
//
// 换行规则:
//   - 只在空白处断行，连续空白合并为一个空格
//   - 单个单词超过最大宽度时独占一行，不拆分
func WrapText(textStr string, measure Measurer, maxWidth float64) []string {
	lines := make([]string, 0)
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapWords(strings.Fields(paragraph), func(candidate string) bool {
			return measure(candidate) <= maxWidth
		})...)
	}
	return lines
}

// WrapByChars 将文本按字符数换行
// 每行（单词之间以单个空格连接）不超过 maxChars 个字符，超长单词独占一行
func WrapByChars(textStr string, maxChars int) []string {
	lines := wrapWords(strings.Fields(textStr), func(candidate string) bool {
		return len([]rune(candidate)) <= maxChars
	})
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// wrapWords 贪心地把单词拼成行，fits 判断候选行是否放得下
// 没有单词时返回一个空行
func wrapWords(words []string, fits func(candidate string) bool) []string {
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if fits(candidate) {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
