// Package xconf 加载采样管道的运行配置。
//
// 配置文件支持 YAML 与 JSON 两种格式，按扩展名自动识别。
// 加载后得到强类型的 Config，包含数据源、采样参数与日志三个部分，
// 并在加载时完成字段校验与默认值填充。
//
// 基本用法：
//
//	cfg, err := xconf.Load("pipeline.yaml")
//	if err != nil {
//		// 处理错误
//	}
//	fmt.Println(cfg.Sample.Size)
//
// 来自 ConfigMap 等内存数据的场景使用 LoadBytes：
//
//	cfg, err := xconf.LoadBytes(data, xconf.FormatYAML)
package xconf
