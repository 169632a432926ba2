//go:build integration

package xmongo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lunalice/mongo/pkg/pipeline/xsample"
)

// =============================================================================
// 测试环境设置
// =============================================================================

func setupMongo(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	uri := os.Getenv("SAMPLE_MONGO_URI")
	if uri == "" {
		uri = startMongoContainer(t)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("mongo connect failed: %v", err)
	}

	// 验证连接
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		t.Fatalf("mongo ping failed: %v", err)
	}

	return client, func() {
		client.Disconnect(context.Background())
	}
}

func startMongoContainer(t *testing.T) string {
	t.Helper()

	// 探测 Docker 可用性，避免 testcontainers 内部 panic
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not found in PATH, skipping integration test")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("mongo container not available: %v", err)
	}

	t.Cleanup(func() {
		container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("mongo host failed: %v", err)
	}
	port, err := container.MappedPort(ctx, "27017/tcp")
	if err != nil {
		t.Fatalf("mongo port failed: %v", err)
	}

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func seedCollection(t *testing.T, coll *mongo.Collection, n int) {
	t.Helper()

	ctx := context.Background()
	coll.Drop(ctx)

	docs := make([]any, n)
	for i := 0; i < n; i++ {
		docs[i] = bson.M{"_id": i, "payload": fmt.Sprintf("doc-%04d", i)}
	}
	_, err := coll.InsertMany(ctx, docs)
	require.NoError(t, err)

	t.Cleanup(func() {
		coll.Drop(context.Background())
	})
}

// =============================================================================
// 随机文档源测试
// =============================================================================

func TestRandomDocSource_Integration(t *testing.T) {
	client, cleanup := setupMongo(t)
	defer cleanup()

	ctx := context.Background()
	coll := client.Database("test_sample").Collection("randdocs")
	seedCollection(t, coll, 500)

	t.Run("抽取批次", func(t *testing.T) {
		src, err := NewRandomDocSource(ctx, coll, WithBatchSize(64))
		require.NoError(t, err)
		assert.Equal(t, int64(500), src.PopulationEstimate())

		var pulled int
		for pulled < 200 {
			r, err := src.Next()
			require.NoError(t, err)
			if r.IsEOF() {
				break
			}
			require.True(t, r.IsAdvanced())
			_, ok := r.Document().Lookup("_id")
			assert.True(t, ok)
			pulled++
		}
		assert.GreaterOrEqual(t, pulled, 200)
	})

	t.Run("MaxDraws 封顶", func(t *testing.T) {
		src, err := NewRandomDocSource(ctx, coll, WithBatchSize(10), WithMaxDraws(25))
		require.NoError(t, err)

		var pulled int64
		for {
			r, err := src.Next()
			require.NoError(t, err)
			if r.IsEOF() {
				break
			}
			pulled++
		}
		assert.LessOrEqual(t, pulled, int64(25))
		assert.Equal(t, pulled, src.Drawn())
	})
}

// =============================================================================
// 采样端到端测试
// =============================================================================

func TestRandomCursorSample_Integration(t *testing.T) {
	client, cleanup := setupMongo(t)
	defer cleanup()

	ctx := context.Background()
	coll := client.Database("test_sample").Collection("cursor_sample")
	seedCollection(t, coll, 1000)

	src, err := NewRandomDocSource(ctx, coll, WithBatchSize(100))
	require.NoError(t, err)

	stage, err := xsample.NewRandomCursorStage(xsample.RandomCursorSpec{
		Size:               50,
		IDField:            "_id",
		PopulationEstimate: src.PopulationEstimate(),
	}, src)
	require.NoError(t, err)

	seen := make(map[int32]struct{})
	for {
		r, err := stage.Next()
		require.NoError(t, err)
		if r.IsEOF() {
			break
		}
		require.True(t, r.IsAdvanced())

		id, ok := r.Document().Lookup("_id")
		require.True(t, ok)
		_, dup := seen[id.(int32)]
		assert.False(t, dup, "sampled document ids must be unique")
		seen[id.(int32)] = struct{}{}

		assert.True(t, r.Document().HasRandMeta())
	}

	assert.Len(t, seen, 50)
}

func TestReservoirSample_Integration(t *testing.T) {
	client, cleanup := setupMongo(t)
	defer cleanup()

	ctx := context.Background()
	coll := client.Database("test_sample").Collection("reservoir_sample")
	seedCollection(t, coll, 300)

	cur, err := coll.Find(ctx, bson.M{})
	require.NoError(t, err)

	src, err := NewCursorSource(ctx, cur)
	require.NoError(t, err)

	stage, err := xsample.NewReservoirStage(xsample.Spec{Size: 20}, src)
	require.NoError(t, err)

	seen := make(map[int32]struct{})
	for {
		r, err := stage.Next()
		require.NoError(t, err)
		if r.IsEOF() {
			break
		}
		require.True(t, r.IsAdvanced())
		id, ok := r.Document().Lookup("_id")
		require.True(t, ok)
		seen[id.(int32)] = struct{}{}
	}

	assert.Len(t, seen, 20)
}
