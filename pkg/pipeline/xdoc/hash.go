package xdoc

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// HashValue 计算 BSON 值的确定性 64 位摘要。
//
// 值先通过 bson.Marshal 规范化为字节序列（包装为单字段文档，
// 保证类型信息参与哈希：int32(1) 与 "1" 产生不同摘要），
// 再用 xxhash 求摘要。用作去重集合的键。
func HashValue(v any) (uint64, error) {
	raw, err := bson.Marshal(bson.D{{Key: "", Value: v}})
	if err != nil {
		return 0, fmt.Errorf("xdoc: marshal value for hashing: %w", err)
	}
	return xxhash.Sum64(raw), nil
}
