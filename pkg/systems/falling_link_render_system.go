package systems

import (
	"image/color"

	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FallingLinkRenderSystem 掉落链接渲染系统
// 链接文字绘制在点击矩形的左上角，保证所见即可点
type FallingLinkRenderSystem struct {
	entityManager *ecs.EntityManager
	font          text.Face
	textColor     color.Color
}

// NewFallingLinkRenderSystem 创建掉落链接渲染系统
func NewFallingLinkRenderSystem(em *ecs.EntityManager, font text.Face, textColor color.Color) *FallingLinkRenderSystem {
	return &FallingLinkRenderSystem{
		entityManager: em,
		font:          font,
		textColor:     textColor,
	}
}

// Draw 渲染所有链接
func (s *FallingLinkRenderSystem) Draw(screen *ebiten.Image) {
	if s.font == nil {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FallingLinkComponent](s.entityManager) {
		link, _ := ecs.GetComponent[*components.FallingLinkComponent](s.entityManager, id)

		op := &text.DrawOptions{}
		op.GeoM.Translate(link.Bounds.X, link.Bounds.Y)
		op.ColorScale.ScaleWithColor(s.textColor)
		text.Draw(screen, link.Text, s.font, op)
	}
}
