package systems

import (
	"math"

	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SetProgress 设置进度条当前值，限制在 [0, MaxValue]
func SetProgress(em *ecs.EntityManager, id ecs.EntityID, value float64) {
	bar, ok := ecs.GetComponent[*components.ProgressBarComponent](em, id)
	if !ok {
		return
	}
	bar.CurrentValue = math.Max(0, math.Min(value, bar.MaxValue))
}

// FillWidth 返回进度条填充宽度：floor(当前值/最大值 * 宽度)
func FillWidth(bar *components.ProgressBarComponent) float64 {
	if bar.MaxValue <= 0 {
		return 0
	}
	return math.Floor(bar.CurrentValue / bar.MaxValue * bar.Width)
}

// ProgressBarRenderSystem 进度条渲染系统
type ProgressBarRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewProgressBarRenderSystem 创建进度条渲染系统
func NewProgressBarRenderSystem(em *ecs.EntityManager) *ProgressBarRenderSystem {
	return &ProgressBarRenderSystem{entityManager: em}
}

// Draw 渲染所有进度条（描边 + 填充）
func (s *ProgressBarRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ProgressBarComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := float32(pos.X), float32(pos.Y)
		if bar.BorderColor != nil && bar.BorderWidth > 0 {
			vector.StrokeRect(screen, x, y, float32(bar.Width), float32(bar.Height), float32(bar.BorderWidth), bar.BorderColor, false)
		}
		if fill := FillWidth(bar); fill > 0 && bar.FillColor != nil {
			vector.DrawFilledRect(screen, x, y, float32(fill), float32(bar.Height), bar.FillColor, false)
		}
	}
}
