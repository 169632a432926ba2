package xsample

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Spec $sample 阶段的不可变配置。
type Spec struct {
	// Size 输出的文档条数，必须 >= 0。
	// Size = 0 的采样器立即耗尽，除上游自身的行为外不消费任何输入。
	Size int64
}

// RandomCursorSpec $sampleFromRandomCursor 阶段的不可变配置。
type RandomCursorSpec struct {
	// Size 输出的文档条数，必须 >= 0。
	Size int64

	// IDField 去重所用的标识字段名，必须非空。
	IDField string

	// PopulationEstimate 随机访问源可提供的不同文档总数估计，
	// 必须 >= 1，用于校准排名键的统计分布。
	PopulationEstimate int64
}

// ParseSpec 解析 $sample 的规格文档。
//
// 接受 bson.D、bson.M 或 map[string]any 形式的 {"size": N}。
// 每类畸形对应独立的哨兵错误，全部在此处检出，绝不延迟到迭代期：
//
//   - 非对象规格: ErrSpecNotObject
//   - size 非数值: ErrSizeNotNumeric
//   - size 为负:  ErrNegativeSize
//   - 未知选项:   ErrUnknownOption
//   - 缺少 size:  ErrMissingSize
func ParseSpec(v any) (Spec, error) {
	fields, ok := specFields(v)
	if !ok {
		return Spec{}, fmt.Errorf("%w: got %T", ErrSpecNotObject, v)
	}

	var (
		size     int64
		seenSize bool
	)
	for _, e := range fields {
		switch e.Key {
		case "size":
			n, err := asSize(e.Value)
			if err != nil {
				return Spec{}, err
			}
			size, seenSize = n, true
		default:
			return Spec{}, fmt.Errorf("%w: %q", ErrUnknownOption, e.Key)
		}
	}
	if !seenSize {
		return Spec{}, ErrMissingSize
	}
	return Spec{Size: size}, nil
}

// Document 序列化回规格文档形式，与 ParseSpec 互逆。
func (s Spec) Document() bson.D {
	return bson.D{{Key: "size", Value: s.Size}}
}

func (s Spec) validate() error {
	if s.Size < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSize, s.Size)
	}
	return nil
}

func (s RandomCursorSpec) validate() error {
	if s.Size < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSize, s.Size)
	}
	if s.IDField == "" {
		return ErrEmptyIDField
	}
	if s.PopulationEstimate < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPopulation, s.PopulationEstimate)
	}
	return nil
}

// specFields 把支持的文档表示统一为有序字段列表。
func specFields(v any) (bson.D, bool) {
	switch spec := v.(type) {
	case bson.D:
		return spec, true
	case bson.M:
		fields := make(bson.D, 0, len(spec))
		for k, val := range spec {
			fields = append(fields, bson.E{Key: k, Value: val})
		}
		return fields, true
	case map[string]any:
		fields := make(bson.D, 0, len(spec))
		for k, val := range spec {
			fields = append(fields, bson.E{Key: k, Value: val})
		}
		return fields, true
	default:
		return nil, false
	}
}

// asSize 把 size 参数归一化为非负 int64。
func asSize(v any) (int64, error) {
	var n int64
	switch num := v.(type) {
	case int:
		n = int64(num)
	case int32:
		n = int64(num)
	case int64:
		n = num
	case float64:
		if num < 0 {
			return 0, fmt.Errorf("%w: got %v", ErrNegativeSize, num)
		}
		n = int64(num)
	case float32:
		if num < 0 {
			return 0, fmt.Errorf("%w: got %v", ErrNegativeSize, num)
		}
		n = int64(num)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrSizeNotNumeric, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeSize, n)
	}
	return n, nil
}
