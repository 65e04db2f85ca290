package scenes

import (
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/entities"
	"github.com/decker502/fonolt/pkg/systems"
	"github.com/decker502/fonolt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// buttonLayer 画面内的一组按钮及其交互、渲染系统
type buttonLayer struct {
	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	renderSystem  *systems.ButtonRenderSystem
}

func newButtonLayer() *buttonLayer {
	em := ecs.NewEntityManager()
	return &buttonLayer{
		entityManager: em,
		buttonSystem:  systems.NewButtonSystem(em),
		renderSystem:  systems.NewButtonRenderSystem(em),
	}
}

// add 创建一个按钮并返回实体ID
func (l *buttonLayer) add(x, y, width, height float64, label string, font *text.GoTextFace, onClick func()) ecs.EntityID {
	return entities.NewButton(l.entityManager, x, y, width, height, label, font, onClick)
}

// setHidden 显示或隐藏按钮，隐藏的按钮不响应点击
func (l *buttonLayer) setHidden(id ecs.EntityID, hidden bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](l.entityManager, id); ok {
		button.Hidden = hidden
	}
}

// isHidden 返回按钮是否隐藏（不存在的按钮视为隐藏）
func (l *buttonLayer) isHidden(id ecs.EntityID) bool {
	button, ok := ecs.GetComponent[*components.ButtonComponent](l.entityManager, id)
	return !ok || button.Hidden
}

// update 处理本帧输入，返回是否有按钮被点击
func (l *buttonLayer) update(input utils.InputState) bool {
	return l.buttonSystem.Update(input)
}

func (l *buttonLayer) draw(screen *ebiten.Image) {
	l.renderSystem.Draw(screen)
}
