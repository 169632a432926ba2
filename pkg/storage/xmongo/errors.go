package xmongo

import "errors"

var (
	// ErrNilCollection 表示传入的集合为 nil。
	ErrNilCollection = errors.New("xmongo: nil collection")

	// ErrNilCursor 表示传入的游标为 nil。
	ErrNilCursor = errors.New("xmongo: nil cursor")

	// ErrNilContext 表示传入的 context 为 nil。
	// 数据源在构造入口处检查此条件。
	ErrNilContext = errors.New("xmongo: context must not be nil")

	// ErrInvalidBatchSize 表示批次大小无效（必须 >= 1）。
	ErrInvalidBatchSize = errors.New("xmongo: batch size must be >= 1")

	// ErrInvalidMaxDraws 表示拉取总量上限无效（必须 >= 1）。
	ErrInvalidMaxDraws = errors.New("xmongo: max draws must be >= 1")
)
