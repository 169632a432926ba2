package xsample

import "errors"

// 配置错误：构造期检出，每类畸形对应独立的哨兵错误
var (
	// ErrSpecNotObject 表示 $sample 的规格不是文档对象
	ErrSpecNotObject = errors.New("xsample: the $sample stage specification must be an object")

	// ErrSizeNotNumeric 表示 size 参数不是数值
	ErrSizeNotNumeric = errors.New("xsample: size argument to $sample must be a number")

	// ErrNegativeSize 表示 size 参数为负数
	ErrNegativeSize = errors.New("xsample: size argument to $sample must not be negative")

	// ErrUnknownOption 表示规格中出现了无法识别的选项
	ErrUnknownOption = errors.New("xsample: unrecognized option to $sample")

	// ErrMissingSize 表示规格缺少必需的 size 参数
	ErrMissingSize = errors.New("xsample: $sample stage must specify a size")

	// ErrEmptyIDField 表示随机游标采样的标识字段名为空
	ErrEmptyIDField = errors.New("xsample: identifier field name must not be empty")

	// ErrInvalidPopulation 表示总体规模估计不是正整数
	ErrInvalidPopulation = errors.New("xsample: population estimate must be positive")

	// ErrNilUpstream 表示上游算子为 nil
	ErrNilUpstream = errors.New("xsample: upstream stage must not be nil")
)

// 运行期错误：在触发的那次拉取上同步返回，不会内部重试
var (
	// ErrMissingIDField 表示输入文档缺少声明的标识字段（数据错误）
	ErrMissingIDField = errors.New("xsample: sampled document does not have the identifier field")

	// ErrTooManyDuplicates 表示随机源连续返回的重复文档超过上限
	// （资源耗尽错误）：源无法提供足够多的不同文档来满足请求
	ErrTooManyDuplicates = errors.New("xsample: too many consecutive duplicate documents from random cursor")

	// ErrKeysExhausted 表示向 TopKGenerator 请求的键数超过了配置的总体规模
	ErrKeysExhausted = errors.New("xsample: order-statistic key generator exhausted")
)
