package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
	"github.com/lunalice/mongo/pkg/pipeline/xstage"
)

// maxLineSize 单行扩展 JSON 文档的大小上限（16MB，与 BSON 文档上限一致）。
const maxLineSize = 16 * 1024 * 1024

// readerSource 把每行一条扩展 JSON 的输入流适配为采样阶段的上游。
type readerSource struct {
	scanner *bufio.Scanner
	line    int
	done    bool
}

func newReaderSource(r io.Reader) *readerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &readerSource{scanner: scanner}
}

func (s *readerSource) Next() (xstage.Result, error) {
	if s.done {
		return xstage.EOF(), nil
	}

	for s.scanner.Scan() {
		s.line++
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}

		var fields bson.D
		if err := bson.UnmarshalExtJSON([]byte(text), false, &fields); err != nil {
			s.done = true
			return xstage.Result{}, fmt.Errorf("input line %d: %w", s.line, err)
		}
		return xstage.Advance(xdoc.New(fields)), nil
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return xstage.Result{}, fmt.Errorf("read input: %w", err)
	}
	return xstage.EOF(), nil
}

// writeDocuments 把一个阶段排空，按行输出宽松扩展 JSON。
// 返回输出的文档条数。
func writeDocuments(w io.Writer, stage xstage.Stage) (int64, error) {
	bw := bufio.NewWriter(w)

	var emitted int64
	for {
		r, err := stage.Next()
		if err != nil {
			return emitted, err
		}
		if r.IsEOF() {
			break
		}
		if r.IsPaused() {
			continue
		}

		data, err := bson.MarshalExtJSON(r.Document().Fields(), false, false)
		if err != nil {
			return emitted, fmt.Errorf("encode output: %w", err)
		}
		if _, err := bw.Write(append(data, '\n')); err != nil {
			return emitted, fmt.Errorf("write output: %w", err)
		}
		emitted++
	}

	if err := bw.Flush(); err != nil {
		return emitted, fmt.Errorf("write output: %w", err)
	}
	return emitted, nil
}
