package xstage

import (
	"fmt"

	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
)

// status 三态结果的判别标签。
type status int

const (
	statusAdvanced status = iota
	statusPaused
	statusEOF
)

// Result 一次拉取的结果。
//
// 三态判别联合：只有 Advance 携带文档载荷。
// 消费方必须显式处理全部三种状态。
type Result struct {
	status status
	doc    *xdoc.Document
}

// Advance 构造携带文档的推进结果。
func Advance(doc *xdoc.Document) Result {
	return Result{status: statusAdvanced, doc: doc}
}

// Pause 构造暂停结果：本次调用无产出，调用方需重试。
func Pause() Result {
	return Result{status: statusPaused}
}

// EOF 构造流结束结果。
func EOF() Result {
	return Result{status: statusEOF}
}

// IsAdvanced 报告结果是否为 Advance。
func (r Result) IsAdvanced() bool {
	return r.status == statusAdvanced
}

// IsPaused 报告结果是否为 Pause。
func (r Result) IsPaused() bool {
	return r.status == statusPaused
}

// IsEOF 报告结果是否为 EOF。
func (r Result) IsEOF() bool {
	return r.status == statusEOF
}

// Document 返回 Advance 结果携带的文档。
//
// 在非 Advance 结果上调用属于使用错误，直接 panic。
func (r Result) Document() *xdoc.Document {
	if r.status != statusAdvanced {
		panic(fmt.Sprintf("xstage: Document() called on non-advanced result (status=%d)", r.status))
	}
	return r.doc
}

// Stage 流水线算子的拉取接口。
//
// Next 返回本次拉取的三态结果；错误（配置外的运行期故障）通过
// error 同步返回，返回过 error 的算子不可继续使用。
// 单线程协作式调度：实现不得阻塞，挂起通过返回 Pause 表达。
type Stage interface {
	Next() (Result, error)
}

// UnreachablePause 报告协议违例：在不可能出现 Pause 的位置收到了 Pause。
//
// 这是不可恢复的内部不变式违例，正确性优先于可用性，直接 panic
// 终止本次操作，而不是静默产出错误的采样结果。
func UnreachablePause(stage string) {
	panic("xstage: " + stage + ": unexpected Pause from upstream (pull protocol violation)")
}
