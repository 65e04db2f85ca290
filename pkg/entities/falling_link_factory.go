package entities

import (
	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
)

// NewFallingLink 创建掉落链接实体
//
// 参数：
//   - em: 实体管理器
//   - link: CSV 中的链接
//   - x, y: 文字中心点（屏幕坐标）
//   - width, height: 文字渲染尺寸
//
// 返回：
//   - 链接实体ID
func NewFallingLink(em *ecs.EntityManager, link linkcsv.Link, x, y, width, height float64) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.FallingLinkComponent{
		Text:    link.Text,
		IsLegit: link.IsLegit,
		Width:   width,
		Height:  height,
		Bounds: components.Rect{
			X: x - width/2,
			Y: y - height/2,
			W: width,
			H: height,
		},
	})

	return entity
}
