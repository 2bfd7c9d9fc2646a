package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tangzhangming/phpfmt/internal/config"
)

// stats 多文件运行的计数
type stats struct {
	files   atomic.Int64
	changed atomic.Int64
	failed  atomic.Int64
}

// collectFiles 展开命令行路径
//
// 显式给出的文件总是处理；目录按配置的 include/exclude 过滤，
// 模式相对于该目录匹配。结果去重并排序。
func collectFiles(paths []string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if d.IsDir() {
				if rel != "." && cfg.Excludes(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if cfg.Selects(rel) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// processFiles 以 CPU 数为上限并发处理文件
//
// 单个文件失败不会中止其他文件，所有失败合并后返回。
func processFiles(ctx context.Context, logger *zap.Logger, files []string, fn func(ctx context.Context, file string) error) error {
	var (
		mu   sync.Mutex
		errs error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, file); err != nil {
				logger.Debug("file failed", zap.String("file", file), zap.Error(err))
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return multierr.Append(errs, err)
	}
	return errs
}
