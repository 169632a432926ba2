// Package xstage 定义流水线算子之间的拉取协议。
//
// 每个算子实现 Stage 接口，每次 Next 调用返回三态结果之一：
//
//   - Advance: 产出了一条文档
//   - Pause:   本次调用没有产出，调用方应稍后重试
//   - EOF:     流已结束，之后的调用必须持续返回 EOF
//
// # Pause 转发规则
//
// 一个算子若需要多次拉取上游才能决定一条输出（如需要先吃完整个
// 上游的缓冲类算子），必须把每个 Pause 立即原样转发给下游，
// 不得在内部吞掉；只有 Advance 和 EOF 可以被内部消费。
//
// # 协议违例
//
// 在结构上不可能出现 Pause 的位置收到 Pause，说明上游实现有缺陷。
// 这是内部不变式违例而非普通错误：继续执行会产出统计上错误的结果，
// 因此通过 UnreachablePause 直接 panic，绝不作为 error 返回。
package xstage
