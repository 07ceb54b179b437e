package vorbiscomment

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/vorbiscomment/internal/locale"
	"github.com/simonhull/vorbiscomment/internal/registry"
)

// Init builds the process-wide lookup tables. Lookups build them lazily,
// but calling Init during startup guarantees construction happens before
// any concurrent access.
func Init() {
	registry.Init()
	locale.Init()
}

// ParseMany parses several Vorbis comment blocks concurrently.
//
// Blocks are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input segments; each Tag
// is created with opts. The returned slice always has one entry per
// segment that was attempted, so callers can inspect partial results
// after an error. The first error is returned.
//
// Example:
//
//	tags, err := vorbiscomment.ParseMany(ctx, [][]byte{headerA, headerB})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range tags {
//		title, _ := tag.Value(vorbiscomment.Title)
//		fmt.Println(string(title))
//	}
func ParseMany(ctx context.Context, segments [][]byte, opts ...Option) ([]*Tag, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	Init()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(segments))

	for i, data := range segments {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := ParseBytes(data, opts...)
			results[i] = tag
			if err != nil {
				return fmt.Errorf("segment %d: %w", i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
