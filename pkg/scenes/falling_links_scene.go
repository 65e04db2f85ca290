package scenes

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/entities"
	"github.com/decker502/fonolt/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// FallingLinksScene 掉落链接小游戏的一轮
//
// 每帧依次：按已用时间计算速度、尝试生成链接、所有链接下落、处理点击、
// 移除掉出屏幕的链接、检查通关/失败分数
type FallingLinksScene struct {
	ctx        *Context
	params     *config.FallingLinksConfig
	background string
	textColour color.Color
	onFinish   func(passed bool, score int)

	entityManager  *ecs.EntityManager
	spawnSystem    *systems.FallingLinkSpawnSystem
	movementSystem *systems.FallingLinkMovementSystem
	clickSystem    *systems.FallingLinkClickSystem
	linkRender     *systems.FallingLinkRenderSystem
	barRender      *systems.ProgressBarRenderSystem
	progressBar    ecs.EntityID

	score    int
	elapsed  float64
	finished bool
	logger   *log.Logger
}

// NewFallingLinksScene 创建一轮掉落链接小游戏
//
// 参数：
//   - ctx: 共享运行环境（Links 与 Rand 必须已设置）
//   - level: 关卡配置（FallingLinks 参数已应用默认值）
//   - onFinish: 达到通关或失败分数时调用一次
func NewFallingLinksScene(ctx *Context, level *config.LevelConfig, onFinish func(passed bool, score int)) *FallingLinksScene {
	params := level.FallingLinks
	if params == nil {
		params = config.DefaultFallingLinksConfig()
	}

	em := ecs.NewEntityManager()
	width := float64(config.GameWindowWidth)
	height := float64(config.GameWindowHeight)

	scene := &FallingLinksScene{
		ctx:            ctx,
		params:         params,
		background:     level.Background,
		textColour:     level.TextRGBA(),
		onFinish:       onFinish,
		entityManager:  em,
		spawnSystem:    systems.NewFallingLinkSpawnSystem(em, ctx.Links, params, ctx.Rand, systems.FaceSizer(ctx.Fonts.Body), width),
		movementSystem: systems.NewFallingLinkMovementSystem(em, width, height),
		clickSystem:    systems.NewFallingLinkClickSystem(em),
		linkRender:     systems.NewFallingLinkRenderSystem(em, ctx.Fonts.Body, level.TextRGBA()),
		barRender:      systems.NewProgressBarRenderSystem(em),
		logger:         log.WithPrefix("FallingLinksScene"),
	}

	if params.PassScore > 0 {
		scene.progressBar = entities.NewProgressBar(em,
			config.ProgressBarX, config.ProgressBarY,
			config.ProgressBarWidth, config.ProgressBarHeight,
			float64(params.PassScore))
	}

	return scene
}

// Score 返回本轮当前分数
func (s *FallingLinksScene) Score() int {
	return s.score
}

// LinkCount 返回屏幕上的链接数量
func (s *FallingLinksScene) LinkCount() int {
	return len(ecs.GetEntitiesWith1[*components.FallingLinkComponent](s.entityManager))
}

// EntityManager 返回本轮的实体管理器
func (s *FallingLinksScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Update 推进一帧
func (s *FallingLinksScene) Update(deltaTime float64) {
	if s.finished {
		return
	}

	speed := s.params.SpeedAt(s.elapsed)
	s.elapsed += deltaTime

	s.spawnSystem.Update()
	s.movementSystem.Update(deltaTime, speed)

	if input := s.ctx.input(); input.JustPressed {
		s.handleClick(float64(input.X), float64(input.Y))
	}

	s.movementSystem.Cull()
	s.entityManager.RemoveMarkedEntities()

	if s.progressBar != 0 {
		systems.SetProgress(s.entityManager, s.progressBar, float64(s.score))
	}

	switch {
	case s.score >= s.params.PassScore:
		s.finish(true)
	case s.score <= s.params.FailScore:
		s.finish(false)
	}
}

// handleClick 点击链接：合法 +1，钓鱼 -1
func (s *FallingLinksScene) handleClick(x, y float64) {
	result := s.clickSystem.HandleClick(x, y)
	if !result.Hit {
		return
	}

	s.score += result.ScoreDelta()
	if result.IsLegit {
		s.ctx.playSound(SoundCorrect)
	} else {
		s.ctx.playSound(SoundWrong)
	}
	s.logger.Debug("link clicked", "text", result.Text, "legit", result.IsLegit, "score", s.score)
}

func (s *FallingLinksScene) finish(passed bool) {
	s.finished = true
	s.logger.Info("round finished", "passed", passed, "score", s.score, "elapsed", s.elapsed)
	if s.onFinish != nil {
		s.onFinish(passed, s.score)
	}
}

// Draw 绘制背景、链接和 HUD
func (s *FallingLinksScene) Draw(screen *ebiten.Image) {
	s.ctx.drawBackground(screen, s.background)
	drawText(screen, fmt.Sprintf("Score: %d", s.score), s.ctx.Fonts.Body,
		config.HUDScoreX, config.HUDScoreY, config.ColourWhite)
	s.linkRender.Draw(screen)
	s.barRender.Draw(screen)
}
