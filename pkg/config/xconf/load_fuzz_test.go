package xconf

import (
	"strings"
	"testing"
)

func FuzzLoadBytes(f *testing.F) {
	f.Add([]byte("sample:\n  size: 3\n"), "yaml")
	f.Add([]byte(`{"sample":{"mode":"reservoir"}}`), "json")

	f.Fuzz(func(t *testing.T, data []byte, format string) {
		if len(data) == 0 {
			return
		}

		switch strings.ToLower(format) {
		case "yaml", "yml":
			format = string(FormatYAML)
		case "json":
			format = string(FormatJSON)
		default:
			return
		}

		cfg, err := LoadBytes(data, Format(format))
		if err != nil {
			return
		}

		// 成功加载的配置必然通过校验
		if err := cfg.Validate(); err != nil {
			t.Fatalf("loaded config failed validation: %v", err)
		}
	})
}
