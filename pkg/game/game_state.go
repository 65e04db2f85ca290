package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// State 游戏的顶层状态
type State int

const (
	// StateHomeScreen 主界面（Start / Exit）
	StateHomeScreen State = iota
	// StatePlaying 正在运行关卡序列
	StatePlaying
	// StateEndScreen 结束画面
	StateEndScreen
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateHomeScreen:
		return "HOME_SCREEN"
	case StatePlaying:
		return "PLAYING"
	case StateEndScreen:
		return "END_SCREEN"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrInvalidTransition 请求了不允许的状态转换
var ErrInvalidTransition = errors.New("invalid state transition")

// allowedTransitions 合法的状态转换：主界面 -> 游戏中 -> 结束画面
var allowedTransitions = map[State]State{
	StateHomeScreen: StatePlaying,
	StatePlaying:    StateEndScreen,
}

// GameStateManager 保存当前顶层状态
// 只有 App 会驱动状态转换
type GameStateManager struct {
	state  State
	logger *log.Logger
}

// NewGameStateManager 创建状态管理器，初始状态为主界面
func NewGameStateManager() *GameStateManager {
	return &GameStateManager{
		state:  StateHomeScreen,
		logger: log.WithPrefix("GameStateManager"),
	}
}

// State 返回当前状态
func (m *GameStateManager) State() State {
	return m.state
}

// SetState 切换到下一个状态
//
// 返回：
//   - error: 转换不合法时返回包装了 ErrInvalidTransition 的错误，状态保持不变
func (m *GameStateManager) SetState(next State) error {
	if want, ok := allowedTransitions[m.state]; !ok || want != next {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, next)
	}
	m.logger.Debug("state changed", "from", m.state, "to", next)
	m.state = next
	return nil
}
