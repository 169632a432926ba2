// Package xsample 实现文档流水线的随机采样算子。
//
// 包内包含两个互相配合的采样算子和一个可独立使用的统计原语：
//
//   - ReservoirStage: 有界蓄水池采样。单遍消费长度未知的上游流，
//     为每条文档抽取独立的 Uniform(0,1) 排名键，维护容量为 size 的
//     最小堆，最终按键降序输出 min(N, size) 条文档。
//   - RandomCursorStage: 随机游标加速采样。消费外部随机访问源
//     （近似均匀、可能重复）的有限流，按标识字段去重，并用
//     TopKGenerator 产生排名键，使输出分布与 ReservoirStage 完全一致，
//     且无需缓冲任何文档。
//   - TopKGenerator: 顺序统计量键生成器。按需产出与 n 个独立
//     Uniform(0,1) 抽样中前 m 大顺序统计量同分布的严格递减序列，
//     无需实际抽取全部 n 个值。
//
// # 排名键与跨分区归并
//
// 每条输出文档携带一个 float64 排名元数据（见 xdoc 包）。为每条文档
// 抽取独立的随机键（而非复用顺序统计量）使得多个分区各自的采样结果
// 可以合并后按键重新取前 size 条，仍然构成合法的均匀采样。
//
// # 错误分类
//
// 配置错误（规格非对象、size 非数值/为负、未知选项、缺少 size）
// 在构造期用独立的哨兵错误报告，绝不延迟到迭代期；数据错误（缺少
// 标识字段）与资源耗尽错误（连续重复过多）在触发的那次拉取上同步
// 返回，出错后算子实例不可继续使用。协议违例（结构上不可能的
// Pause）通过 panic 终止，见 xstage 包。
package xsample
