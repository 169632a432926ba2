package xdoc

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Document 流水线中流转的一条记录。
//
// 字段部分使用 bson.D 保持原始字段顺序；排名元数据单独存放，
// 不占用字段命名空间。Document 按约定不可变：算子之间传递时
// 不得修改 Fields 返回的切片。
type Document struct {
	fields  bson.D
	rand    float64
	hasRand bool
}

// New 从有序字段列表创建文档。
func New(fields bson.D) *Document {
	return &Document{fields: fields}
}

// FromM 从无序字段映射创建文档。
//
// 字段顺序不确定，仅用于测试或顺序无关的场景。
func FromM(fields bson.M) *Document {
	d := make(bson.D, 0, len(fields))
	for k, v := range fields {
		d = append(d, bson.E{Key: k, Value: v})
	}
	return &Document{fields: d}
}

// Fields 返回文档的字段列表。
//
// 返回的是内部切片，调用方不得修改。
func (d *Document) Fields() bson.D {
	return d.fields
}

// Len 返回字段数量。
func (d *Document) Len() int {
	return len(d.fields)
}

// Lookup 按名称查找顶层字段。
//
// 第二个返回值表示字段是否存在；字段值为 nil 与字段缺失是不同状态。
func (d *Document) Lookup(name string) (any, bool) {
	for _, e := range d.fields {
		if e.Key == name {
			return e.Value, true
		}
	}
	return nil, false
}

// WithRandMeta 返回附加了排名元数据的文档副本。
//
// 字段切片与原文档共享（按约定不可变），只复制元数据槽。
func (d *Document) WithRandMeta(v float64) *Document {
	return &Document{
		fields:  d.fields,
		rand:    v,
		hasRand: true,
	}
}

// HasRandMeta 报告文档是否携带排名元数据。
func (d *Document) HasRandMeta() bool {
	return d.hasRand
}

// RandMeta 返回排名元数据值。
//
// 未附加元数据时返回 0；调用方应先检查 HasRandMeta。
func (d *Document) RandMeta() float64 {
	return d.rand
}
