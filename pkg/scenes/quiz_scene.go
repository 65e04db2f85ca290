package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 反馈结果文字
const (
	FeedbackCorrect   = "Correct"
	FeedbackIncorrect = "Incorrect"
	FeedbackTimeout   = "Time's up"
)

// 测验选项按钮布局
const (
	optionButtonGap = 20.0
	quizContentX    = 50.0
	quizContentY    = 50.0
	feedbackTitleY  = 50.0
	feedbackTextY   = 100.0
)

type quizPhase int

const (
	phaseQuestion quizPhase = iota
	phaseFeedback
	phaseDone
)

// QuizScene 限时邮件判断测验
//
// 依次显示每封邮件，玩家在限时内选择一个选项：
// 选对 +1 并播放正确音效，选错播放错误音效，超时不计分；
// 每题之后按关卡的反馈样式显示结果与解释，全部答完后回调总分
type QuizScene struct {
	ctx        *Context
	level      *config.LevelConfig
	textColour color.Color
	onDone     func(score int)

	index    int     // 当前题目
	score    int     // 答对题数
	elapsed  float64 // 当前题已用时间
	phase    quizPhase
	feedback string   // 反馈结果
	details  []string // 反馈解释（wrapped 样式下已换行）
	shown    float64  // 反馈已显示时间

	buttons       *buttonLayer
	optionButtons []ecs.EntityID
	logger        *log.Logger
}

// NewQuizScene 创建测验画面
//
// 参数：
//   - ctx: 共享运行环境
//   - level: 测验关卡配置
//   - onDone: 所有题目（含最后一题反馈）结束后调用，参数为答对题数
func NewQuizScene(ctx *Context, level *config.LevelConfig, onDone func(score int)) *QuizScene {
	scene := &QuizScene{
		ctx:        ctx,
		level:      level,
		textColour: level.TextRGBA(),
		onDone:     onDone,
		buttons:    newButtonLayer(),
		logger:     log.WithPrefix("QuizScene"),
	}

	n := float64(len(level.Options))
	rowWidth := n*config.OptionButtonWidth + (n-1)*optionButtonGap
	x := float64(config.GameWindowWidth)/2 - rowWidth/2
	y := float64(config.GameWindowHeight) - config.ContinueButtonBottom
	for _, option := range level.Options {
		id := scene.buttons.add(x, y, config.OptionButtonWidth, config.ButtonHeight, option, ctx.Fonts.UI, func() {
			scene.answer(option)
		})
		scene.optionButtons = append(scene.optionButtons, id)
		x += config.OptionButtonWidth + optionButtonGap
	}

	if len(level.Scenarios) == 0 {
		scene.phase = phaseDone
	}
	return scene
}

// Score 返回当前答对题数
func (s *QuizScene) Score() int {
	return s.score
}

// ScenarioIndex 返回当前题目索引
func (s *QuizScene) ScenarioIndex() int {
	return s.index
}

// InFeedback 返回是否正在显示反馈
func (s *QuizScene) InFeedback() bool {
	return s.phase == phaseFeedback
}

// Feedback 返回当前反馈的结果与解释
func (s *QuizScene) Feedback() (string, []string) {
	return s.feedback, s.details
}

// TimeLeft 返回当前题剩余的整秒数（向下取整，不小于 0）
func (s *QuizScene) TimeLeft() int {
	remaining := math.Max(0, s.level.TimeLimit-s.elapsed)
	return int(math.Floor(remaining + timeEpsilon))
}

// HUDText 返回右上角显示的计时与分数
func (s *QuizScene) HUDText() (timer, score string) {
	return fmt.Sprintf("Time left: %ds", s.TimeLeft()),
		fmt.Sprintf("Score: %d/%d", s.score, len(s.level.Scenarios))
}

// Update 推进答题或反馈
func (s *QuizScene) Update(deltaTime float64) {
	switch s.phase {
	case phaseQuestion:
		s.elapsed += deltaTime
		s.buttons.update(s.ctx.input())
		if s.phase == phaseQuestion && s.elapsed >= s.level.TimeLimit-timeEpsilon {
			s.logger.Debug("time's up", "scenario", s.index)
			s.showFeedback(FeedbackTimeout)
		}
	case phaseFeedback:
		s.shown += deltaTime
		if s.shown >= s.level.FeedbackSeconds-timeEpsilon {
			s.next()
		}
	case phaseDone:
		s.complete()
	}
}

// answer 处理选项按钮点击
func (s *QuizScene) answer(option string) {
	if s.phase != phaseQuestion {
		return
	}

	scenario := s.level.Scenarios[s.index]
	if scenario.IsCorrect(option) {
		s.score++
		s.ctx.playSound(SoundCorrect)
		s.showFeedback(FeedbackCorrect)
	} else {
		s.ctx.playSound(SoundWrong)
		s.showFeedback(FeedbackIncorrect)
	}
	s.logger.Debug("answered", "scenario", s.index, "option", option, "result", s.feedback)
}

// showFeedback 进入反馈阶段
func (s *QuizScene) showFeedback(result string) {
	s.phase = phaseFeedback
	s.feedback = result
	explanation := s.level.Scenarios[s.index].ExplanationText()
	if s.level.FeedbackStyle == config.FeedbackPlain {
		s.details = []string{explanation}
	} else {
		s.details = utils.WrapByChars(explanation, config.FeedbackWrapChars)
	}
	s.shown = 0
	for _, id := range s.optionButtons {
		s.buttons.setHidden(id, true)
	}
}

// next 进入下一题，最后一题之后结束
func (s *QuizScene) next() {
	s.index++
	if s.index >= len(s.level.Scenarios) {
		s.phase = phaseDone
		s.complete()
		return
	}

	s.phase = phaseQuestion
	s.elapsed = 0
	s.feedback = ""
	s.details = nil
	for _, id := range s.optionButtons {
		s.buttons.setHidden(id, false)
	}
}

// complete 回调总分（只调用一次）
func (s *QuizScene) complete() {
	if s.onDone == nil {
		return
	}
	done := s.onDone
	s.onDone = nil
	s.logger.Info("quiz finished", "level", s.level.ID, "score", s.score, "total", len(s.level.Scenarios))
	done(s.score)
}

// Draw 绘制题目或反馈
func (s *QuizScene) Draw(screen *ebiten.Image) {
	if s.phase == phaseFeedback && s.level.FeedbackStyle == config.FeedbackPlain {
		s.drawPlainFeedback(screen)
		return
	}

	s.ctx.drawBackground(screen, s.level.Background)

	switch s.phase {
	case phaseQuestion:
		s.drawQuestion(screen)
	case phaseFeedback:
		drawText(screen, s.feedback, s.ctx.Fonts.Large, quizContentX, feedbackTitleY, s.textColour)
		for i, line := range s.details {
			drawText(screen, line, s.ctx.Fonts.Small, quizContentX,
				feedbackTextY+float64(i)*config.QuizLineSpacing, s.textColour)
		}
	}
}

// drawPlainFeedback 黑底白字，结果在中心上方 50 像素，解释不换行
func (s *QuizScene) drawPlainFeedback(screen *ebiten.Image) {
	screen.Fill(config.ColourBlack)
	x := float64(config.GameWindowWidth)/2 - 100
	cy := float64(config.GameWindowHeight) / 2
	drawText(screen, s.feedback, s.ctx.Fonts.Title, x, cy-50, config.ColourWhite)
	for _, line := range s.details {
		drawText(screen, line, s.ctx.Fonts.Title, x, cy, config.ColourWhite)
	}
}

func (s *QuizScene) drawQuestion(screen *ebiten.Image) {
	scenario := s.level.Scenarios[s.index]
	for i, line := range scenario.Content {
		drawText(screen, line, s.ctx.Fonts.Small, quizContentX,
			quizContentY+float64(i)*config.QuizLineSpacing, s.textColour)
	}

	drawText(screen, s.level.Question, s.ctx.Fonts.Large, quizContentX, config.QuizQuestionY, s.textColour)

	timer, score := s.HUDText()
	drawText(screen, timer, s.ctx.Fonts.Small, config.QuizHUDX, config.QuizTimerY, s.textColour)
	drawText(screen, score, s.ctx.Fonts.Small, config.QuizHUDX, config.QuizScoreY, s.textColour)

	s.buttons.draw(screen)
}
