package flactag

import (
	"context"

	"github.com/simonhull/flactag/internal/flac"
)

// ReadFile reads the metadata of the FLAC file at path.
//
// The returned Tag remembers path, so Save writes back to it:
//
//	tag, err := flactag.ReadFile("song.flac")
//	if err != nil {
//		return err
//	}
//	tag.SetGenre("Jazz")
//	return tag.Save()
func ReadFile(path string, opts ...Option) (*Tag, error) {
	return flac.ReadFile(path, opts...)
}

// ReadFileContext is ReadFile with a cancellation check before the file
// is opened.
func ReadFileContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return flac.ReadFile(path, opts...)
}

// ReadFiles reads several files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, ReadFiles returns the first error and no tags.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := flactag.ReadFiles(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, tag := range tags {
//		title, _ := tag.Title()
//		fmt.Printf("%s: %s\n", paths[i], title)
//	}
func ReadFiles(ctx context.Context, paths ...string) ([]*Tag, error) {
	return flac.ReadFiles(ctx, paths...)
}
