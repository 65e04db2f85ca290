package game

// Session 一次游戏过程中的分数与关卡编号
// 只保存在内存中，退出即丢弃
type Session struct {
	score       int
	levelNumber int
}

// NewSession 创建新会话，分数为 0，关卡编号从 1 开始
func NewSession() *Session {
	return &Session{levelNumber: 1}
}

// Score 返回累计分数
func (s *Session) Score() int {
	return s.score
}

// AddScore 累加关卡返回的分数（可以为负）
func (s *Session) AddScore(delta int) {
	s.score += delta
}

// LevelNumber 返回当前计分关卡的编号
func (s *Session) LevelNumber() int {
	return s.levelNumber
}

// CompleteLevel 完成一个计分关卡
//
// 返回：
//   - int: 刚完成的关卡编号（用于 "Level N Complete!"）
func (s *Session) CompleteLevel() int {
	n := s.levelNumber
	s.levelNumber++
	return n
}
