package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pineapple/internal/diag"
	"pineapple/internal/source"
	"pineapple/internal/token"
)

// Ext is the source file extension picked up by TokenizeDir.
const Ext = ".pineapple"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string
	File   *source.File // nil, если файл не загрузился
	Tokens []token.Token
	Err    error
	Bag    *diag.Bag
}

// SourceFiles возвращает отсортированный список всех *.pineapple файлов
func SourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.pineapple файлы в директории параллельно.
// Ошибка загрузки файла попадает в его Bag, а не прерывает остальные.
func TokenizeDir(ctx context.Context, dir string, opts Options, jobs int) ([]TokenizeDirResult, error) {
	files, err := SourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))
	for _, path := range files {
		opts.emit(Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts.emit(Event{File: path, Stage: StageLoad, Status: StatusWorking})
			file, err := source.Load(path)
			if err != nil {
				opts.emit(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
				bag := diag.NewBag(opts.maxDiagnostics())
				diag.BagReporter{Bag: bag, Path: path}.Report(
					diag.IOLoadFileError, diag.SevError, source.Span{},
					fmt.Sprintf("failed to load file: %v", err),
				)
				results[i] = TokenizeDirResult{Path: path, Err: err, Bag: bag}
				return nil
			}
			opts.emit(Event{File: path, Stage: StageLex, Status: StatusWorking})
			res := Tokenize(file, opts)
			if res.Err != nil {
				opts.emit(Event{File: path, Stage: StageLex, Status: StatusError, Err: res.Err})
			} else {
				opts.emit(Event{File: path, Stage: StageClassify, Status: StatusDone})
			}
			results[i] = TokenizeDirResult{
				Path:   path,
				File:   file,
				Tokens: res.Tokens,
				Err:    res.Err,
				Bag:    res.Bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
