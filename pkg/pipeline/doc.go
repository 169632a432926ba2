// Package pipeline 提供文档查询管道相关的子包。
//
// 子包列表：
//   - xstage: 拉取式算子契约（Advance/Pause/EOF）
//   - xdoc: 不可变文档载体与标识指纹
//   - xsample: 均匀随机采样算子
//
// 设计原则：
//   - 算子之间只通过 Stage 接口耦合，单线程拉取
//   - 配置错误在构造期检出，迭代期只报数据与资源错误
package pipeline
