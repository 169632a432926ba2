package xsample

import (
	"container/heap"
	"sort"

	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
	"github.com/lunalice/mongo/pkg/pipeline/xstage"
)

// reservoirStageName 用于指标属性。
const reservoirStageName = "$sample"

// entry 蓄水池中的一项：排名键与文档的配对。
// 条目只在算子内部创建、比较与淘汰，不对外暴露。
type entry struct {
	key float64
	doc *xdoc.Document
}

// minHeap 按键的固定容量最小堆：堆顶是当前保留的最小键，
// 新键大于堆顶时淘汰堆顶。键为连续抽样，相等概率为零，平局任意。
type minHeap []entry

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i].key < h[j].key }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(entry)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// ReservoirStage 有界蓄水池采样算子。
//
// 单遍消费长度未知的上游流，产出 min(N, size) 条均匀随机抽取的
// 文档，按排名键降序输出，每条携带排名元数据。O(N log size) 时间、
// O(size) 空间。为每条文档独立抽键使得多个分区的输出可以合并后
// 按键重新取前 size 条，仍是合法的均匀采样。
//
// 状态机：填充（吃完上游，转发所有 Pause）→ 排空（降序输出）→
// 耗尽（幂等返回 EOF）。实例归属单个采样操作，不可复用。
type ReservoirStage struct {
	spec     Spec
	upstream xstage.Stage

	randFn  func() float64
	metrics *stageMetrics

	reservoir minHeap
	drain     []entry
	populated bool
	exhausted bool
}

// NewReservoirStage 创建 $sample 算子。
//
// spec.Size < 0 返回 ErrNegativeSize；upstream 为 nil 返回 ErrNilUpstream。
// 配置校验全部发生在此处，构造成功后迭代期不会再报配置错误。
func NewReservoirStage(spec Spec, upstream xstage.Stage, opts ...Option) (*ReservoirStage, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if upstream == nil {
		return nil, ErrNilUpstream
	}

	cfg := applyOptions(opts)
	metrics, err := newStageMetrics(cfg.meterProvider, reservoirStageName)
	if err != nil {
		return nil, err
	}

	return &ReservoirStage{
		spec:     spec,
		upstream: upstream,
		randFn:   cfg.randFn,
		metrics:  metrics,
	}, nil
}

// Next 实现 xstage.Stage。
func (s *ReservoirStage) Next() (xstage.Result, error) {
	if s.exhausted {
		return xstage.EOF(), nil
	}

	if !s.populated {
		if s.spec.Size == 0 {
			// 不触碰上游，立即耗尽
			s.exhausted = true
			return xstage.EOF(), nil
		}
		done, res, err := s.populate()
		if err != nil {
			return xstage.Result{}, err
		}
		if !done {
			// 填充期间上游的 Pause 原样转发
			return res, nil
		}
	}

	if len(s.drain) == 0 {
		s.exhausted = true
		return xstage.EOF(), nil
	}
	e := s.drain[0]
	s.drain = s.drain[1:]
	s.metrics.addEmitted()
	return xstage.Advance(e.doc.WithRandMeta(e.key)), nil
}

// populate 持续拉取上游直到 EOF。
// 返回 done=false 表示收到 Pause，需要把 res 转发给下游。
func (s *ReservoirStage) populate() (done bool, res xstage.Result, err error) {
	for {
		r, err := s.upstream.Next()
		if err != nil {
			return false, xstage.Result{}, err
		}
		switch {
		case r.IsPaused():
			return false, r, nil
		case r.IsEOF():
			s.finishPopulate()
			return true, xstage.Result{}, nil
		}

		s.metrics.addScanned(1)
		s.update(r.Document())
	}
}

// update 把一条文档连同新抽的键插入蓄水池。
func (s *ReservoirStage) update(doc *xdoc.Document) {
	key := s.randFn()
	switch {
	case int64(s.reservoir.Len()) < s.spec.Size:
		heap.Push(&s.reservoir, entry{key: key, doc: doc})
	case key > s.reservoir[0].key:
		s.reservoir[0] = entry{key: key, doc: doc}
		heap.Fix(&s.reservoir, 0)
	default:
		// 新键不大于当前最小键，文档不可能进入最终样本，丢弃
	}
}

// finishPopulate 切换到排空状态：剩余条目按键降序排列。
func (s *ReservoirStage) finishPopulate() {
	s.drain = []entry(s.reservoir)
	s.reservoir = nil
	sort.Slice(s.drain, func(i, j int) bool {
		return s.drain[i].key > s.drain[j].key
	})
	s.populated = true
}

var _ xstage.Stage = (*ReservoirStage)(nil)
