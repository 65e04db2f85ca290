package systems

import (
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
)

// FallingLinkMovementSystem 管理掉落链接的下落与回收
type FallingLinkMovementSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   float64
	screenHeight  float64
}

// NewFallingLinkMovementSystem 创建掉落链接移动系统
func NewFallingLinkMovementSystem(em *ecs.EntityManager, screenWidth, screenHeight float64) *FallingLinkMovementSystem {
	return &FallingLinkMovementSystem{
		entityManager: em,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// Update 让所有链接下落并更新点击矩形
//
// 参数：
//   - deltaTime: 帧时长（秒）
//   - speed: 下落速度（像素/帧，按 TargetTPS 换算为本帧位移）
func (s *FallingLinkMovementSystem) Update(deltaTime, speed float64) {
	step := speed * deltaTime * config.TargetTPS

	for _, id := range ecs.GetEntitiesWith2[*components.FallingLinkComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.Y += step
		clampBounds(id, s.entityManager, s.screenWidth)
	}
}

// Cull 标记删除已落出屏幕底部（y >= 屏幕高度）的链接
//
// 返回：
//   - int: 本次标记的链接数量
func (s *FallingLinkMovementSystem) Cull() int {
	removed := 0
	for _, id := range ecs.GetEntitiesWith2[*components.FallingLinkComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos.Y >= s.screenHeight && !s.entityManager.IsPendingDestroy(id) {
			s.entityManager.DestroyEntity(id)
			removed++
		}
	}
	return removed
}

// clampBounds 以位置为中心计算点击矩形，并把矩形水平限制在屏幕内
func clampBounds(id ecs.EntityID, em *ecs.EntityManager, screenWidth float64) {
	link, ok := ecs.GetComponent[*components.FallingLinkComponent](em, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}

	bounds := components.Rect{
		X: pos.X - link.Width/2,
		Y: pos.Y - link.Height/2,
		W: link.Width,
		H: link.Height,
	}
	if bounds.X < 0 {
		bounds.X = 0
	} else if bounds.X+bounds.W > screenWidth {
		bounds.X = screenWidth - bounds.W
	}
	link.Bounds = bounds
}
