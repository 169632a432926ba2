// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xmongo: MongoDB 文档源封装，面向采样管道
//
// 设计原则：
//   - 对上游暴露拉取式迭代接口，屏蔽游标与批次细节
//   - 内置重试策略与操作日志
package storage
