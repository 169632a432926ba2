package xmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
	"github.com/lunalice/mongo/pkg/pipeline/xstage"
)

// CursorSource 把一个 mongo.Cursor 包装为顺序文档源。
//
// 游标耗尽或出错后关闭游标并进入幂等终态；游标的所有权随构造
// 转移给本源，调用方不得再使用。
type CursorSource struct {
	ctx  context.Context
	cur  *mongo.Cursor
	done bool
}

// NewCursorSource 创建顺序文档源。
func NewCursorSource(ctx context.Context, cur *mongo.Cursor) (*CursorSource, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if cur == nil {
		return nil, ErrNilCursor
	}
	return &CursorSource{ctx: ctx, cur: cur}, nil
}

// Next 实现 xstage.Stage。
func (s *CursorSource) Next() (xstage.Result, error) {
	if s.done {
		return xstage.EOF(), nil
	}

	if s.cur.Next(s.ctx) {
		var fields bson.D
		if err := s.cur.Decode(&fields); err != nil {
			s.close()
			return xstage.Result{}, fmt.Errorf("xmongo: decode document: %w", err)
		}
		return xstage.Advance(xdoc.New(fields)), nil
	}

	err := s.cur.Err()
	s.close()
	if err != nil {
		return xstage.Result{}, fmt.Errorf("xmongo: cursor iteration: %w", err)
	}
	return xstage.EOF(), nil
}

func (s *CursorSource) close() {
	if !s.done {
		s.done = true
		_ = s.cur.Close(s.ctx)
	}
}

var _ xstage.Stage = (*CursorSource)(nil)
