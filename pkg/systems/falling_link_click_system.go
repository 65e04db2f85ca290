package systems

import (
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
)

// LinkClickResult 一次点击的判定结果
type LinkClickResult struct {
	Hit     bool   // 是否点中链接
	IsLegit bool   // 点中的链接是否合法
	Text    string // 点中的链接文字
}

// ScoreDelta 返回本次点击的分数变化：合法 +1，钓鱼 -1，未命中 0
func (r LinkClickResult) ScoreDelta() int {
	switch {
	case !r.Hit:
		return 0
	case r.IsLegit:
		return 1
	default:
		return -1
	}
}

// FallingLinkClickSystem 处理掉落链接的点击
type FallingLinkClickSystem struct {
	entityManager *ecs.EntityManager
}

// NewFallingLinkClickSystem 创建掉落链接点击系统
func NewFallingLinkClickSystem(em *ecs.EntityManager) *FallingLinkClickSystem {
	return &FallingLinkClickSystem{entityManager: em}
}

// HandleClick 判定点击位置命中的链接
// 多个链接重叠时只处理最早生成的一个，命中的链接被标记删除
func (s *FallingLinkClickSystem) HandleClick(x, y float64) LinkClickResult {
	for _, id := range ecs.GetEntitiesWith1[*components.FallingLinkComponent](s.entityManager) {
		if s.entityManager.IsPendingDestroy(id) {
			continue
		}
		link, _ := ecs.GetComponent[*components.FallingLinkComponent](s.entityManager, id)
		if !link.Bounds.Contains(x, y) {
			continue
		}

		s.entityManager.DestroyEntity(id)
		return LinkClickResult{Hit: true, IsLegit: link.IsLegit, Text: link.Text}
	}
	return LinkClickResult{}
}
