// samplectl 对文档流或 MongoDB 集合做均匀随机采样。
//
// 用法:
//
//	samplectl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (.yaml/.yml/.json)
//	-n, --size     采样数量（覆盖配置文件中的 sample.size）
//
// 命令:
//
//	reservoir      蓄水池采样：顺序读取输入流，保留 size 条文档
//	cursor         随机游标采样：从 MongoDB 集合抽随机批次，去重后取 size 条
//	help           显示帮助信息
//
// 输入输出均为每行一条的 MongoDB 扩展 JSON 文档。
// reservoir 命令默认从标准输入读取；cursor 命令直接连接 MongoDB。
//
// 退出码:
//
//	0: 采样完成
//	1: 运行时错误（连接失败、输入非法、重复过多等）
//	2: 参数错误（未知命令、非法 flag、配置校验失败等）
//
// 示例:
//
//	samplectl reservoir -n 100 < docs.ndjson        # 从标准输入采 100 条
//	samplectl reservoir -i docs.ndjson -n 100       # 从文件采样
//	samplectl -c pipeline.yaml cursor               # 按配置文件对集合采样
//	samplectl cursor --uri mongodb://localhost:27017 \
//	    --database analytics --collection events -n 50
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lunalice/mongo/pkg/config/xconf"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "samplectl",
		Usage:   "文档流与 MongoDB 集合的均匀随机采样工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
			&cli.Int64Flag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "采样数量（覆盖配置文件）",
				Value:   -1,
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr.err)
			return 2
		}
		if errors.Is(err, xconf.ErrUnknownMode) || errors.Is(err, xconf.ErrInvalidSize) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", err)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已输出错误详情
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// usageError 标记应映射到退出码 2 的参数错误。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// setupSignalHandler 设置信号处理。
// 第一次信号优雅取消，第二次信号强制退出（130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
