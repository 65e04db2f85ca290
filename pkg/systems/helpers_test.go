package systems

import (
	"math/rand/v2"

	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/config"
)

// fixedSizer 每个字符 10 像素宽、20 像素高
func fixedSizer(s string) (float64, float64) {
	return float64(len(s)) * 10, 20
}

// newTestRand 返回固定种子的随机数源
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// alwaysSpawnParams 每帧都尝试生成的参数
func alwaysSpawnParams() *config.FallingLinksConfig {
	params := config.DefaultFallingLinksConfig()
	params.SpawnOneIn = 1
	return params
}

var testLinks = []linkcsv.Link{
	{Text: "https://www.fonolt.ac.uk", IsLegit: true},
	{Text: "http://fonolt-login.xyz", IsLegit: false},
}
