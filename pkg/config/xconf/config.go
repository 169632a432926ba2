package xconf

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Mode 定义采样模式。
type Mode string

// 支持的采样模式。
const (
	// ModeReservoir 蓄水池采样：顺序拉取全部上游文档，保留 size 条。
	ModeReservoir Mode = "reservoir"

	// ModeCursor 随机游标采样：依赖存储端的随机批次，去重后取 size 条。
	ModeCursor Mode = "cursor"
)

// SourceConfig 描述数据来源。
//
// reservoir 模式下 URI 为空时从标准输入读取扩展 JSON 文档；
// cursor 模式必须提供 URI、Database 与 Collection。
type SourceConfig struct {
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
	BatchSize  int    `koanf:"batchSize"`
}

// SampleConfig 描述采样参数。
type SampleConfig struct {
	Mode Mode  `koanf:"mode"`
	Size int64 `koanf:"size"`

	// IDField 去重字段名，仅 cursor 模式使用，默认 "_id"。
	IDField string `koanf:"idField"`

	// PopulationEstimate 总体规模估计，仅 cursor 模式使用。
	// 为 0 时由存储端的文档计数估计填充。
	PopulationEstimate int64 `koanf:"populationEstimate"`

	// MaxConsecutiveDuplicates 连续重复上限，为 0 时使用内部默认值。
	MaxConsecutiveDuplicates int `koanf:"maxConsecutiveDuplicates"`
}

// LogConfig 描述日志输出。
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`

	// File 日志文件路径，为空时输出到标准错误。
	File string `koanf:"file"`
}

// Config 是采样管道的完整运行配置。
type Config struct {
	Source SourceConfig `koanf:"source"`
	Sample SampleConfig `koanf:"sample"`
	Log    LogConfig    `koanf:"log"`
}

// defaultConfig 返回填充默认值的配置。
func defaultConfig() Config {
	return Config{
		Sample: SampleConfig{
			Mode:    ModeReservoir,
			IDField: "_id",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate 校验配置的一致性。
func (c *Config) Validate() error {
	switch c.Sample.Mode {
	case ModeReservoir:
	case ModeCursor:
		if c.Source.URI == "" {
			return ErrMissingURI
		}
		if c.Source.Database == "" || c.Source.Collection == "" {
			return ErrMissingCollection
		}
	default:
		return ErrUnknownMode
	}

	if c.Sample.Size < 0 {
		return ErrInvalidSize
	}
	return nil
}
