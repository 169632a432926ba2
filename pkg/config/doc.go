// Package config 提供配置加载相关的子包。
//
// 子包列表：
//   - xconf: 采样管道运行配置（koanf，YAML/JSON）
package config
