package xsample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     any
		wantSize int64
		wantErr  error
	}{
		{"int size", bson.D{{Key: "size", Value: 5}}, 5, nil},
		{"int32 size", bson.D{{Key: "size", Value: int32(3)}}, 3, nil},
		{"int64 size", bson.D{{Key: "size", Value: int64(7)}}, 7, nil},
		{"float size", bson.D{{Key: "size", Value: 2.0}}, 2, nil},
		{"zero size", bson.D{{Key: "size", Value: 0}}, 0, nil},
		{"bson.M form", bson.M{"size": 4}, 4, nil},
		{"map form", map[string]any{"size": 6}, 6, nil},

		{"non-object int", 1, 0, ErrSpecNotObject},
		{"non-object string", "string", 0, ErrSpecNotObject},
		{"non-numeric size", bson.D{{Key: "size", Value: "string"}}, 0, ErrSizeNotNumeric},
		{"bool size", bson.D{{Key: "size", Value: true}}, 0, ErrSizeNotNumeric},
		{"negative int size", bson.D{{Key: "size", Value: -1}}, 0, ErrNegativeSize},
		{"negative float size", bson.D{{Key: "size", Value: -1.0}}, 0, ErrNegativeSize},
		{"extra option", bson.D{{Key: "size", Value: 1}, {Key: "extra", Value: 2}}, 0, ErrUnknownOption},
		{"missing size", bson.D{}, 0, ErrMissingSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec, err := ParseSpec(tt.spec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, spec.Size)
		})
	}
}

// TestSpecRoundTrip 验证生成的规格文档与解析输入互逆。
func TestSpecRoundTrip(t *testing.T) {
	t.Parallel()

	original := bson.D{{Key: "size", Value: int64(5)}}

	spec, err := ParseSpec(original)
	require.NoError(t, err)
	assert.Equal(t, original, spec.Document())

	// 再解析一轮仍然等价
	again, err := ParseSpec(spec.Document())
	require.NoError(t, err)
	assert.Equal(t, spec, again)
}

func TestRandomCursorSpecValidate(t *testing.T) {
	t.Parallel()

	valid := RandomCursorSpec{Size: 2, IDField: "_id", PopulationEstimate: 100}
	assert.NoError(t, valid.validate())

	tests := []struct {
		name    string
		mutate  func(s *RandomCursorSpec)
		wantErr error
	}{
		{"negative size", func(s *RandomCursorSpec) { s.Size = -1 }, ErrNegativeSize},
		{"empty id field", func(s *RandomCursorSpec) { s.IDField = "" }, ErrEmptyIDField},
		{"zero population", func(s *RandomCursorSpec) { s.PopulationEstimate = 0 }, ErrInvalidPopulation},
		{"negative population", func(s *RandomCursorSpec) { s.PopulationEstimate = -5 }, ErrInvalidPopulation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := valid
			tt.mutate(&spec)
			assert.ErrorIs(t, spec.validate(), tt.wantErr)
		})
	}
}
