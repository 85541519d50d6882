package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"mcyview.dev/pkg/mcyview/internal/adapter"
	"mcyview.dev/pkg/mcyview/internal/controller"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// ErrFileNotInDatabase is reported when a file asked for by name is not
// stored in the database.
var ErrFileNotInDatabase = errors.New("database does not contain this file")

// StoreArgs locates the database and, optionally, a checkout to read design
// sources from instead of the copies in the database.
type StoreArgs struct {
	Database  m.Path
	SourceDir m.Path
}

// CoverageArgs contains the arguments for the coverage report.
type CoverageArgs struct {
	StoreArgs
	Files    []string
	Parallel uint
}

// ShowArgs selects what to describe: a mutation when HasMutation is set,
// otherwise Source.
type ShowArgs struct {
	StoreArgs
	Mutation    m.MutationID
	HasMutation bool
	Source      m.SrcTag
}

// SourceArgs contains the arguments for printing a file.
type SourceArgs struct {
	StoreArgs
	File string
}

// BrowseArgs contains the arguments for the interactive browser.
type BrowseArgs struct {
	StoreArgs
	Strict bool
}

// Workflow defines the use cases of mcyview.
type Workflow interface {
	Status(ctx context.Context, args StoreArgs) error
	Tags(ctx context.Context, args StoreArgs) error
	Coverage(ctx context.Context, args CoverageArgs) error
	Show(ctx context.Context, args ShowArgs) error
	Source(ctx context.Context, args SourceArgs) error
	Browse(ctx context.Context, args BrowseArgs) error
}

type workflow struct {
	fs     adapter.SourceFSAdapter
	stores adapter.StoreOpener
	ui     controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	stores adapter.StoreOpener,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:     fsAdapter,
		stores: stores,
		ui:     ui,
	}
}

func (w *workflow) Status(ctx context.Context, args StoreArgs) error {
	store, path, err := w.open(args)
	if err != nil {
		return err
	}
	defer closeStore(store)

	summary, err := summarize(store)
	if err != nil {
		return err
	}

	summary.Database = path

	return w.ui.DisplaySummary(ctx, summary)
}

func summarize(store adapter.MutationStore) (m.Summary, error) {
	var (
		summary m.Summary
		err     error
	)

	if summary.Mutations, err = store.MutationCount(); err != nil {
		return summary, fmt.Errorf("status: %w", err)
	}

	untagged, err := store.MutationsWithNoTags()
	if err != nil {
		return summary, fmt.Errorf("status: %w", err)
	}

	summary.Untagged = len(untagged)

	if summary.Results, err = store.ResultCounts(); err != nil {
		return summary, fmt.Errorf("status: %w", err)
	}

	if summary.Tags, err = store.TagCounts(); err != nil {
		return summary, fmt.Errorf("status: %w", err)
	}

	if summary.Tally, err = store.TagTally(); err != nil {
		return summary, fmt.Errorf("status: %w", err)
	}

	return summary, nil
}

func (w *workflow) Tags(ctx context.Context, args StoreArgs) error {
	store, _, err := w.open(args)
	if err != nil {
		return err
	}
	defer closeStore(store)

	counts, err := store.TagCounts()
	if err != nil {
		return fmt.Errorf("tags: %w", err)
	}

	return w.ui.DisplayTags(ctx, counts)
}

func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) error {
	store, _, err := w.open(args.StoreArgs)
	if err != nil {
		return err
	}
	defer closeStore(store)

	files := args.Files
	if len(files) == 0 {
		if files, err = store.ListSources(); err != nil {
			return fmt.Errorf("coverage: %w", err)
		}
	}

	coverage, err := coverFiles(ctx, NewCoverageAggregator(store), files, args.Parallel)
	if err != nil {
		return err
	}

	return w.ui.DisplayCoverage(ctx, coverage)
}

// coverFiles aggregates every file, at most parallel at a time. Results keep
// the order of files.
func coverFiles(ctx context.Context, aggregator CoverageAggregator, files []string, parallel uint) ([]m.FileCoverage, error) {
	results := make([]m.FileCoverage, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(int(parallel))
	}

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			coverage, err := aggregator.Coverage(file)
			if err != nil {
				return fmt.Errorf("coverage of %s: %w", file, err)
			}

			results[i] = coverage

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to compute coverage", "error", err)
		return nil, err
	}

	return results, nil
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	store, _, err := w.open(args.StoreArgs)
	if err != nil {
		return err
	}
	defer closeStore(store)

	forest, err := BuildForest(store)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	var (
		ref   m.NodeRef
		found bool
	)

	if args.HasMutation {
		ref, found = forest.FindMutation(args.Mutation)
		if !found {
			return fmt.Errorf("mutation %d: %w", args.Mutation, adapter.ErrNotFound)
		}
	} else {
		ref, found = forest.FindSource(args.Source)
		if !found {
			return fmt.Errorf("source %s: %w", args.Source, adapter.ErrNotFound)
		}
	}

	synchronizer := NewSynchronizer(store, forest, NewHistory(false))

	out, err := synchronizer.Dispatch(m.SelectionChanged{View: ref.View, Node: ref.Node})
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	for _, event := range out {
		if props, ok := event.(m.ShowProperties); ok {
			return w.ui.DisplayProperties(ctx, props.Record)
		}
	}

	return nil
}

func (w *workflow) Source(ctx context.Context, args SourceArgs) error {
	store, _, err := w.open(args.StoreArgs)
	if err != nil {
		return err
	}
	defer closeStore(store)

	annotated, err := annotate(store, w.fs, args.SourceDir, args.File)
	if err != nil {
		return err
	}

	return w.ui.DisplaySource(ctx, annotated)
}

// annotate reads a file, from sourceDir when given, and attaches its
// coverage margin.
func annotate(store adapter.MutationStore, fs adapter.SourceFSAdapter, sourceDir m.Path, file string) (m.AnnotatedSource, error) {
	var (
		content string
		err     error
	)

	if sourceDir != "" {
		content, err = fs.ReadSource(sourceDir, file)
	} else {
		content, err = store.FileContent(file)
	}

	if errors.Is(err, adapter.ErrNotFound) {
		return m.AnnotatedSource{File: file}, fmt.Errorf("%s: %w: %w", file, ErrFileNotInDatabase, err)
	}

	if err != nil {
		return m.AnnotatedSource{File: file}, fmt.Errorf("read %s: %w", file, err)
	}

	coverage, err := NewCoverageAggregator(store).Coverage(file)
	if err != nil {
		return m.AnnotatedSource{File: file}, err
	}

	return Annotate(content, coverage), nil
}

func (w *workflow) Browse(ctx context.Context, args BrowseArgs) error {
	store, _, err := w.open(args.StoreArgs)
	if err != nil {
		return err
	}
	defer closeStore(store)

	session, err := NewSession(store, w.fs, args.SourceDir, args.Strict)
	if err != nil {
		return err
	}

	return w.ui.Browse(ctx, session)
}

func (w *workflow) open(args StoreArgs) (adapter.MutationStore, m.Path, error) {
	path, err := w.fs.ResolveDatabase(args.Database)
	if err != nil {
		slog.Error("Failed to locate database", "location", args.Database, "error", err)
		return nil, "", err
	}

	store, err := w.stores.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}

	return store, path, nil
}

func closeStore(store adapter.MutationStore) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}
