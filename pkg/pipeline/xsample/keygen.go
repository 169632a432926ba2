package xsample

import (
	"fmt"
	"math"
)

// TopKGenerator 顺序统计量键生成器。
//
// 对于配置的总体规模 n，按需产出严格递减序列 k_0 > k_1 > ...，
// 其分布与「n 个独立 Uniform(0,1) 抽样中最大的 m 个、降序排列」
// 完全一致，而无需实际抽取全部 n 个值。
//
// 依据的恒等式：n 个 Uniform(0,1) 抽样的最大值与 U^{1/n} 同分布；
// 在最大值给定的条件下，剩余 n-1 个值中的最大值等于当前上限
// 乘以 U^{1/(n-1)}，依此类推。
//
// 状态只有一个标量上限 c ∈ (0,1]，初始为 1.0，每次抽取单调下降。
// 实例归属单个采样操作，不做并发防护。
type TopKGenerator struct {
	population int64
	drawn      int64
	ceiling    float64
	randFn     func() float64
}

// NewTopKGenerator 创建总体规模为 population 的键生成器。
//
// population < 1 时返回 ErrInvalidPopulation。
// 调用方请求的键数不得超过 population，超出时 Next 返回 ErrKeysExhausted。
func NewTopKGenerator(population int64) (*TopKGenerator, error) {
	if population < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPopulation, population)
	}
	return &TopKGenerator{
		population: population,
		ceiling:    1.0,
		randFn:     randFloat64,
	}, nil
}

// Next 产出序列中的下一个键。
//
// 设已产出 j 个键，剩余槽位 n-j：抽取 u ~ Uniform(0,1)，
// 上限更新为 c·u^{1/(n-j)} 并作为本次的键返回。
func (g *TopKGenerator) Next() (float64, error) {
	remaining := g.population - g.drawn
	if remaining <= 0 {
		return 0, fmt.Errorf("%w: all %d keys drawn", ErrKeysExhausted, g.population)
	}
	g.ceiling *= math.Pow(g.randFn(), 1.0/float64(remaining))
	g.drawn++
	return g.ceiling, nil
}

// Drawn 返回已产出的键数。
func (g *TopKGenerator) Drawn() int64 {
	return g.drawn
}

// Population 返回配置的总体规模。
func (g *TopKGenerator) Population() int64 {
	return g.population
}
