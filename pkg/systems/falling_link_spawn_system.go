package systems

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/entities"
)

// FallingLinkSpawnSystem 管理掉落链接的随机生成
//
// 每帧以 1/SpawnOneIn 的概率尝试生成一个链接：
//   - 同屏链接数达到 MaxLinks 时不生成
//   - 随机选取 CSV 中的一条链接，X 取 [0, 屏幕宽度-SpawnMargin] 内的整数，Y 为 0
//   - 与任一已有链接水平距离 < CollisionX 且垂直距离 < CollisionY 时放弃本次生成
type FallingLinkSpawnSystem struct {
	entityManager *ecs.EntityManager
	links         []linkcsv.Link
	params        *config.FallingLinksConfig
	rng           *rand.Rand
	sizer         TextSizer
	screenWidth   float64
	logger        *log.Logger
}

// NewFallingLinkSpawnSystem 创建掉落链接生成系统
//
// 参数：
//   - em: 实体管理器
//   - links: 候选链接（不能为空）
//   - params: 掉落链接参数
//   - rng: 随机数源（测试时传入固定种子）
//   - sizer: 链接文字尺寸测量函数
//   - screenWidth: 屏幕宽度
func NewFallingLinkSpawnSystem(
	em *ecs.EntityManager,
	links []linkcsv.Link,
	params *config.FallingLinksConfig,
	rng *rand.Rand,
	sizer TextSizer,
	screenWidth float64,
) *FallingLinkSpawnSystem {
	return &FallingLinkSpawnSystem{
		entityManager: em,
		links:         links,
		params:        params,
		rng:           rng,
		sizer:         sizer,
		screenWidth:   screenWidth,
		logger:        log.WithPrefix("FallingLinkSpawnSystem"),
	}
}

// Update 执行一次生成尝试
//
// 返回：
//   - ecs.EntityID: 新链接实体ID
//   - bool: 本帧是否生成了链接
func (s *FallingLinkSpawnSystem) Update() (ecs.EntityID, bool) {
	if len(s.links) == 0 {
		return 0, false
	}
	if s.rng.IntN(s.params.SpawnOneIn) != 0 {
		return 0, false
	}

	existing := ecs.GetEntitiesWith2[*components.FallingLinkComponent, *components.PositionComponent](s.entityManager)
	if len(existing) >= s.params.MaxLinks {
		return 0, false
	}

	link := s.links[s.rng.IntN(len(s.links))]
	maxX := int(math.Max(0, s.screenWidth-s.params.SpawnMargin))
	x := float64(s.rng.IntN(maxX + 1))
	y := 0.0

	if s.collides(existing, x, y) {
		s.logger.Debug("spawn skipped, too close to another link", "x", x)
		return 0, false
	}

	width, height := s.sizer(link.Text)
	id := entities.NewFallingLink(s.entityManager, link, x, y, width, height)
	clampBounds(id, s.entityManager, s.screenWidth)
	s.logger.Debug("spawned link", "id", id, "text", link.Text, "legit", link.IsLegit, "x", x)
	return id, true
}

// collides 检查新位置是否与已有链接过近
func (s *FallingLinkSpawnSystem) collides(existing []ecs.EntityID, x, y float64) bool {
	for _, id := range existing {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if math.Abs(x-pos.X) < s.params.CollisionX && math.Abs(y-pos.Y) < s.params.CollisionY {
			return true
		}
	}
	return false
}
