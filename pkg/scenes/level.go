package scenes

import (
	"fmt"

	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/config"
)

// 结果提示文字
const (
	MessageLevelCompleted = "Level Completed!"
	MessageLevelFailed    = "Level Failed"
	MessageTryAgain       = "Level Failed. Try again!"
)

// LevelResult 关卡结束时返回给调用方的结果
type LevelResult struct {
	Score    int
	HasScore bool // 介绍页、信息页不返回分数
}

// Level 由若干画面组成的关卡流程
type Level interface {
	// Config 返回关卡配置
	Config() *config.LevelConfig
	// Start 切换到关卡的第一个画面，关卡结束时调用 done
	Start(done func(LevelResult))
}

// NewLevel 按关卡类型创建关卡流程
//
// 返回：
//   - Level: 关卡流程
//   - error: 未知的关卡类型，或掉落链接关卡没有可用链接
func NewLevel(ctx *Context, lc *config.LevelConfig) (Level, error) {
	switch lc.Kind {
	case config.KindIntroduction:
		return &IntroductionLevel{ctx: ctx, config: lc}, nil
	case config.KindInfo:
		return &InfoLevel{ctx: ctx, config: lc}, nil
	case config.KindQuiz:
		return &QuizLevel{ctx: ctx, config: lc}, nil
	case config.KindFallingLinks:
		if err := linkcsv.Require(ctx.Links); err != nil {
			return nil, fmt.Errorf("level %s: %w", lc.ID, err)
		}
		return &FallingLinksLevel{ctx: ctx, config: lc}, nil
	default:
		return nil, fmt.Errorf("level %s: unknown kind %q", lc.ID, lc.Kind)
	}
}

// NewLevels 按顺序创建所有关卡
func NewLevels(ctx *Context, configs []*config.LevelConfig) ([]Level, error) {
	levels := make([]Level, 0, len(configs))
	for _, lc := range configs {
		level, err := NewLevel(ctx, lc)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// IntroductionLevel 开场介绍：逐字显示欢迎文字，不计分
type IntroductionLevel struct {
	ctx    *Context
	config *config.LevelConfig
}

// Config 返回关卡配置
func (l *IntroductionLevel) Config() *config.LevelConfig { return l.config }

// Start 显示逐字介绍
func (l *IntroductionLevel) Start(done func(LevelResult)) {
	l.ctx.switchTo(NewTypewriterScene(l.ctx, l.config.Instructions, l.config.Background, l.config.TextRGBA(), func() {
		done(LevelResult{})
	}))
}

// InfoLevel 通用信息页，不计分
type InfoLevel struct {
	ctx    *Context
	config *config.LevelConfig
}

// Config 返回关卡配置
func (l *InfoLevel) Config() *config.LevelConfig { return l.config }

// Start 显示信息页
func (l *InfoLevel) Start(done func(LevelResult)) {
	l.ctx.switchTo(NewInstructionsScene(l.ctx, l.config.Instructions, l.config.InstructionLayout,
		l.config.Background, l.config.TextRGBA(), func() {
			done(LevelResult{})
		}))
}

// FallingLinksLevel 掉落链接关卡
//
// 流程：教程（可选）→ 说明 → 若干轮小游戏直到通关。
// 失败后显示 "Level Failed"，再显示 "Level Failed. Try again!" 并开始新一轮，
// 教程和说明不再重复
type FallingLinksLevel struct {
	ctx    *Context
	config *config.LevelConfig
	rounds int
}

// Config 返回关卡配置
func (l *FallingLinksLevel) Config() *config.LevelConfig { return l.config }

// Rounds 返回已开始的轮数
func (l *FallingLinksLevel) Rounds() int { return l.rounds }

// Start 从教程开始
func (l *FallingLinksLevel) Start(done func(LevelResult)) {
	showInstructions := func() {
		l.ctx.switchTo(NewInstructionsScene(l.ctx, l.config.Instructions, l.config.InstructionLayout,
			l.config.Background, l.config.TextRGBA(), func() {
				l.playRound(done)
			}))
	}

	if len(l.config.Tutorial) == 0 {
		showInstructions()
		return
	}
	l.ctx.switchTo(NewTutorialScene(l.ctx, l.config.Tutorial, l.config.Background, l.config.TextRGBA(), showInstructions))
}

// playRound 开始一轮小游戏，结束后恢复之前的背景音乐
func (l *FallingLinksLevel) playRound(done func(LevelResult)) {
	l.rounds++
	previousMusic := l.ctx.playMusic(l.config.Music)

	l.ctx.switchTo(NewFallingLinksScene(l.ctx, l.config, func(passed bool, score int) {
		if l.config.Music != "" {
			l.ctx.playMusic(previousMusic)
		}

		if passed {
			l.ctx.switchTo(NewResultScene(l.ctx, MessageLevelCompleted, ResultSeconds, func() {
				done(LevelResult{Score: l.config.ResultScore(score, true), HasScore: true})
			}))
			return
		}

		l.ctx.switchTo(NewResultScene(l.ctx, MessageLevelFailed, ResultSeconds, func() {
			if !l.config.RetryOnFail {
				done(LevelResult{Score: score, HasScore: true})
				return
			}
			l.ctx.switchTo(NewResultScene(l.ctx, MessageTryAgain, RetrySeconds, func() {
				l.playRound(done)
			}))
		}))
	}))
}

// QuizLevel 限时邮件测验关卡
//
// 有通关分数时：达到分数显示 "Level Completed!"；未达到且允许重来时显示
// "Level Failed. Try again!" 并从说明页重新开始。没有通关分数时直接返回得分。
// 配置了 CompletionScore 时通关只计入该分数
type QuizLevel struct {
	ctx      *Context
	config   *config.LevelConfig
	attempts int
}

// Config 返回关卡配置
func (l *QuizLevel) Config() *config.LevelConfig { return l.config }

// Attempts 返回已开始的尝试次数
func (l *QuizLevel) Attempts() int { return l.attempts }

// Start 从说明页开始
func (l *QuizLevel) Start(done func(LevelResult)) {
	l.attempts++
	l.ctx.switchTo(NewInstructionsScene(l.ctx, l.config.Instructions, l.config.InstructionLayout,
		l.config.Background, l.config.TextRGBA(), func() {
			l.playQuiz(done)
		}))
}

func (l *QuizLevel) playQuiz(done func(LevelResult)) {
	previousMusic := l.ctx.playMusic(l.config.Music)

	l.ctx.switchTo(NewQuizScene(l.ctx, l.config, func(score int) {
		if l.config.Music != "" {
			l.ctx.playMusic(previousMusic)
		}
		result := LevelResult{Score: score, HasScore: true}

		pass, ok := l.config.PassThreshold()
		switch {
		case !ok:
			result.Score = l.config.ResultScore(score, true)
			done(result)
		case score >= pass:
			result.Score = l.config.ResultScore(score, true)
			l.ctx.switchTo(NewResultScene(l.ctx, MessageLevelCompleted, ResultSeconds, func() {
				done(result)
			}))
		case l.config.RetryOnFail:
			l.ctx.switchTo(NewResultScene(l.ctx, MessageTryAgain, RetrySeconds, func() {
				l.Start(done)
			}))
		default:
			l.ctx.switchTo(NewResultScene(l.ctx, MessageLevelFailed, ResultSeconds, func() {
				done(result)
			}))
		}
	}))
}
