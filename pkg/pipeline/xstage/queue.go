package xstage

import (
	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
)

// QueueStage 预置结果队列的源算子，用于测试和离线数据注入。
//
// 队列耗尽后持续返回 EOF。零值可用。
type QueueStage struct {
	queue []Result
	err   error
}

// NewQueueStage 创建空队列源。
func NewQueueStage() *QueueStage {
	return &QueueStage{}
}

// Push 追加一条文档。
func (q *QueueStage) Push(doc *xdoc.Document) {
	q.queue = append(q.queue, Advance(doc))
}

// PushPause 追加一个 Pause。
func (q *QueueStage) PushPause() {
	q.queue = append(q.queue, Pause())
}

// PushResult 追加任意结果。
func (q *QueueStage) PushResult(r Result) {
	q.queue = append(q.queue, r)
}

// FailWith 设置队列耗尽后返回的错误（代替 EOF）。
func (q *QueueStage) FailWith(err error) {
	q.err = err
}

// Len 返回队列中剩余的结果数。
func (q *QueueStage) Len() int {
	return len(q.queue)
}

// Next 弹出队首结果；队列为空时返回 EOF（或 FailWith 设置的错误）。
func (q *QueueStage) Next() (Result, error) {
	if len(q.queue) == 0 {
		if q.err != nil {
			return Result{}, q.err
		}
		return EOF(), nil
	}
	r := q.queue[0]
	q.queue = q.queue[1:]
	return r, nil
}

var _ Stage = (*QueueStage)(nil)
