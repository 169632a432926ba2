package xsample

import (
	"fmt"

	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
	"github.com/lunalice/mongo/pkg/pipeline/xstage"
)

// randomCursorStageName 用于指标属性与协议违例信息。
const randomCursorStageName = "$sampleFromRandomCursor"

// RandomCursorStage 随机游标加速采样算子。
//
// 消费外部随机访问源（近似均匀随机、可能重复、必然终止）的文档流，
// 按 IDField 去重，并用 TopKGenerator（n = PopulationEstimate）为每条
// 接受的文档产生排名键，使输出与 ReservoirStage 在统计上不可区分。
//
// 键生成器天然按降序产键且与接受顺序一致，因此每条接受的文档可以
// 立即带键输出，全程不缓冲任何文档。
//
// 状态机：Active → (Active | Exhausted)，Exhausted 为终态且幂等。
// 已见标识集与键生成器状态归属单个采样操作，新操作必须新建实例。
type RandomCursorStage struct {
	spec     RandomCursorSpec
	upstream xstage.Stage

	keygen  *TopKGenerator
	metrics *stageMetrics

	seen          map[uint64]struct{}
	maxDuplicates int
	duplicates    int
	emitted       int64
	accepted      bool
	exhausted     bool
}

// NewRandomCursorStage 创建 $sampleFromRandomCursor 算子。
//
// 配置校验全部发生在此处：Size < 0 返回 ErrNegativeSize，IDField 为空
// 返回 ErrEmptyIDField，PopulationEstimate < 1 返回 ErrInvalidPopulation，
// upstream 为 nil 返回 ErrNilUpstream。
func NewRandomCursorStage(spec RandomCursorSpec, upstream xstage.Stage, opts ...Option) (*RandomCursorStage, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if upstream == nil {
		return nil, ErrNilUpstream
	}

	cfg := applyOptions(opts)
	keygen, err := NewTopKGenerator(spec.PopulationEstimate)
	if err != nil {
		return nil, err
	}
	keygen.randFn = cfg.randFn

	metrics, err := newStageMetrics(cfg.meterProvider, randomCursorStageName)
	if err != nil {
		return nil, err
	}

	return &RandomCursorStage{
		spec:          spec,
		upstream:      upstream,
		keygen:        keygen,
		metrics:       metrics,
		seen:          make(map[uint64]struct{}),
		maxDuplicates: cfg.maxDuplicates,
	}, nil
}

// Next 实现 xstage.Stage。
func (s *RandomCursorStage) Next() (xstage.Result, error) {
	if s.exhausted {
		return xstage.EOF(), nil
	}
	if s.spec.Size == 0 {
		// 不触碰上游，立即耗尽
		s.exhausted = true
		return xstage.EOF(), nil
	}

	for {
		r, err := s.upstream.Next()
		if err != nil {
			return xstage.Result{}, err
		}
		switch {
		case r.IsPaused():
			if s.accepted {
				// 本算子每条输出至多一次上游拉取（重复除外），
				// 接受过文档之后结构上不可能再出现 Pause
				xstage.UnreachablePause(randomCursorStageName)
			}
			return r, nil
		case r.IsEOF():
			// 源在凑满 size 之前耗尽
			s.exhausted = true
			return xstage.EOF(), nil
		}

		doc := r.Document()
		s.metrics.addScanned(1)

		accepted, err := s.accept(doc)
		if err != nil {
			return xstage.Result{}, err
		}
		if !accepted {
			continue
		}

		key, err := s.keygen.Next()
		if err != nil {
			return xstage.Result{}, err
		}

		s.emitted++
		if s.emitted >= s.spec.Size {
			s.exhausted = true
		}
		s.metrics.addEmitted()
		return xstage.Advance(doc.WithRandMeta(key)), nil
	}
}

// accept 按标识字段判定文档去留。
//
// 标识缺失返回数据错误；重复文档计数并丢弃，连续重复超过上限
// 返回资源耗尽错误；接受时记录标识并清零连续重复计数。
func (s *RandomCursorStage) accept(doc *xdoc.Document) (bool, error) {
	idVal, ok := doc.Lookup(s.spec.IDField)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrMissingIDField, s.spec.IDField)
	}

	h, err := xdoc.HashValue(idVal)
	if err != nil {
		return false, err
	}

	if _, dup := s.seen[h]; dup {
		s.duplicates++
		s.metrics.addDuplicate()
		if s.duplicates >= s.maxDuplicates {
			return false, fmt.Errorf("%w: %d consecutive duplicates on field %q",
				ErrTooManyDuplicates, s.duplicates, s.spec.IDField)
		}
		return false, nil
	}

	s.seen[h] = struct{}{}
	s.duplicates = 0
	s.accepted = true
	return true, nil
}

var _ xstage.Stage = (*RandomCursorStage)(nil)
