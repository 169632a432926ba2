package xsample

import "math/rand/v2"

// randFloat64 返回 [0.0, 1.0) 范围内的随机浮点数。
//
// 采样键只需要统计均匀性，不需要密码学强度，因此使用
// math/rand/v2 的全局生成器（ChaCha8 驱动、运行时随机播种）。
// 采样器按设计不可跨运行复现，播种不可控不构成问题。
func randFloat64() float64 {
	return rand.Float64()
}
