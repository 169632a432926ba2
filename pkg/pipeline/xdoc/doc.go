// Package xdoc 提供流水线内部使用的文档模型。
//
// Document 是对 BSON 文档的轻量包装，字段内容对流水线算子不透明：
// 算子只读取声明的标识字段（如 _id），不修改任何原始字段。
//
// # 随机排名元数据
//
// 采样类算子会为输出文档附加一个 float64 排名值（rand meta）。
// 该值存放在 Document 的独立元数据槽中，与普通字段完全隔离，
// 不会与任何字段名冲突，也不会出现在字段序列化结果里。
// 下游的跨分区归并逻辑依赖此值对多个独立采样结果重新选优。
//
// # 标识值哈希
//
// HashValue 将任意 BSON 值规范化为字节序列后用 xxhash 计算 64 位摘要，
// 用作去重集合的键。xxhash 是确定性哈希，同一标识值在任何进程中
// 产生相同摘要；64 位空间下的碰撞概率对采样场景可以忽略。
package xdoc
