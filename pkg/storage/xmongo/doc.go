// Package xmongo 把 MongoDB 集合适配为采样流水线的数据源。
//
// 提供两种 xstage.Stage 实现：
//
//   - RandomDocSource: 随机访问源。通过 $sample 聚合分批拉取近似
//     均匀随机的文档，可能重复，拉取总量有界（默认为集合规模估计），
//     供 xsample.RandomCursorStage 消费。
//   - CursorSource: 顺序源。包装一个已有的 mongo.Cursor，把整个
//     结果集按拉取协议逐条产出，供 xsample.ReservoirStage 消费。
//
// 通过小接口 + 适配器注入底层集合操作，便于用假游标做单元测试；
// 批次拉取失败时用 retry-go 做有限次重试。
package xmongo
