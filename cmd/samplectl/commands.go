package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lunalice/mongo/pkg/config/xconf"
	"github.com/lunalice/mongo/pkg/observability/xlog"
	"github.com/lunalice/mongo/pkg/pipeline/xsample"
	"github.com/lunalice/mongo/pkg/storage/xmongo"
)

// connectTimeout MongoDB 连接与探活的超时时间。
const connectTimeout = 15 * time.Second

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createReservoirCommand(),
		createCursorCommand(),
	}
}

// createReservoirCommand 创建 reservoir 子命令（流式蓄水池采样）。
func createReservoirCommand() *cli.Command {
	return &cli.Command{
		Name:    "reservoir",
		Aliases: []string{"r"},
		Usage:   "对输入流做蓄水池采样",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "输入文件路径，\"-\" 表示标准输入",
				Value:   "-",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return cmdReservoir(ctx, cfg, cmd.String("input"), os.Stdout)
		},
	}
}

// createCursorCommand 创建 cursor 子命令（MongoDB 随机游标采样）。
func createCursorCommand() *cli.Command {
	return &cli.Command{
		Name:  "cursor",
		Usage: "对 MongoDB 集合做随机游标采样",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "uri", Usage: "MongoDB 连接地址"},
			&cli.StringFlag{Name: "database", Aliases: []string{"d"}, Usage: "数据库名"},
			&cli.StringFlag{Name: "collection", Usage: "集合名"},
			&cli.StringFlag{Name: "id-field", Usage: "去重字段名"},
			&cli.Int64Flag{Name: "population", Usage: "总体规模估计（0 表示用集合计数）"},
			&cli.IntFlag{Name: "batch", Usage: "每批拉取的文档数"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyCursorFlags(&cfg, cmd)
			if err := cfg.Validate(); err != nil {
				return &usageError{err: err}
			}
			return cmdCursor(ctx, cfg, os.Stdout)
		},
	}
}

// loadConfig 加载配置文件并套用全局 flag 覆盖。
// 未指定 --config 时使用全默认配置。
func loadConfig(cmd *cli.Command) (xconf.Config, error) {
	var (
		cfg xconf.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = xconf.Load(path)
	} else {
		cfg, err = xconf.LoadBytes(nil, xconf.FormatYAML)
	}
	if err != nil {
		return xconf.Config{}, err
	}

	if n := cmd.Int64("size"); n >= 0 {
		cfg.Sample.Size = n
	}
	return cfg, nil
}

// applyCursorFlags 把 cursor 子命令的 flag 覆盖到配置上。
func applyCursorFlags(cfg *xconf.Config, cmd *cli.Command) {
	cfg.Sample.Mode = xconf.ModeCursor
	if v := cmd.String("uri"); v != "" {
		cfg.Source.URI = v
	}
	if v := cmd.String("database"); v != "" {
		cfg.Source.Database = v
	}
	if v := cmd.String("collection"); v != "" {
		cfg.Source.Collection = v
	}
	if v := cmd.String("id-field"); v != "" {
		cfg.Sample.IDField = v
	}
	if v := cmd.Int64("population"); v > 0 {
		cfg.Sample.PopulationEstimate = v
	}
	if v := cmd.Int("batch"); v > 0 {
		cfg.Source.BatchSize = v
	}
}

// newLogger 按日志配置构造 Logger。
func newLogger(cfg xconf.LogConfig) (xlog.Logger, error) {
	level, err := xlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, &usageError{err: err}
	}

	format := xlog.FormatText
	if cfg.Format == "json" {
		format = xlog.FormatJSON
	}

	var w io.Writer = os.Stderr
	if cfg.File != "" {
		w = xlog.FileWriter(cfg.File)
	}

	logger := xlog.New(
		xlog.WithLevel(level),
		xlog.WithFormat(format),
		xlog.WithWriter(w),
	)
	return logger.With(slog.String(xlog.KeyOperationID, uuid.NewString())), nil
}

// cmdReservoir 对输入流做蓄水池采样并输出结果。
func cmdReservoir(ctx context.Context, cfg xconf.Config, inputPath string, out io.Writer) error {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	in := os.Stdin
	if inputPath != "" && inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	stage, err := xsample.NewReservoirStage(xsample.Spec{Size: cfg.Sample.Size}, newReaderSource(in))
	if err != nil {
		return &usageError{err: err}
	}

	logger.Info(ctx, "reservoir sample started",
		slog.Int64("size", cfg.Sample.Size),
		slog.String("input", inputPath),
	)

	emitted, err := writeDocuments(out, stage)
	if err != nil {
		logger.Error(ctx, "reservoir sample failed", xlog.Err(err))
		return err
	}

	logger.Info(ctx, "reservoir sample finished", slog.Int64("emitted", emitted))
	return nil
}

// cmdCursor 连接 MongoDB，对集合做随机游标采样并输出结果。
func cmdCursor(ctx context.Context, cfg xconf.Config, out io.Writer) error {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Source.URI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn(ctx, "mongo disconnect failed", xlog.Err(err))
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	coll := client.Database(cfg.Source.Database).Collection(cfg.Source.Collection)

	srcOpts := []xmongo.Option{xmongo.WithLogger(logger)}
	if cfg.Source.BatchSize > 0 {
		srcOpts = append(srcOpts, xmongo.WithBatchSize(cfg.Source.BatchSize))
	}
	src, err := xmongo.NewRandomDocSource(ctx, coll, srcOpts...)
	if err != nil {
		return err
	}

	population := cfg.Sample.PopulationEstimate
	if population <= 0 {
		population = src.PopulationEstimate()
	}
	// 空集合时源会立即报告 EOF，估计值只需保持合法
	if population < 1 {
		population = 1
	}

	var stageOpts []xsample.Option
	if cfg.Sample.MaxConsecutiveDuplicates > 0 {
		stageOpts = append(stageOpts, xsample.WithMaxConsecutiveDuplicates(cfg.Sample.MaxConsecutiveDuplicates))
	}

	stage, err := xsample.NewRandomCursorStage(xsample.RandomCursorSpec{
		Size:               cfg.Sample.Size,
		IDField:            cfg.Sample.IDField,
		PopulationEstimate: population,
	}, src, stageOpts...)
	if err != nil {
		return &usageError{err: err}
	}

	logger.Info(ctx, "cursor sample started",
		slog.String(xlog.KeyCollection, cfg.Source.Collection),
		slog.Int64("size", cfg.Sample.Size),
		slog.Int64("population", population),
	)

	emitted, err := writeDocuments(out, stage)
	if err != nil {
		logger.Error(ctx, "cursor sample failed", xlog.Err(err))
		return err
	}

	logger.Info(ctx, "cursor sample finished",
		slog.Int64("emitted", emitted),
		slog.Int64("drawn", src.Drawn()),
	)
	return nil
}
