package zip_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/mock"
	mdzip "github.com/HaoQiuji-Pavel/juejin-md-miner/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Bundler implements mdminer.Bundler at compile time.
var _ mdminer.Bundler = (*mdzip.Bundler)(nil)

// readArchive extracts a zip archive into a name→content map.
func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = string(content)
	}
	return files
}

func TestBundler_Bundle(t *testing.T) {
	t.Parallel()

	t.Run("packages markdown and fetched images", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ImageFetcher{
			FetchImageFn: func(_ context.Context, url string) ([]byte, error) {
				return []byte("blob:" + url), nil
			},
		}
		bundler := mdzip.NewBundler(fetcher)

		markdown := "intro\n![a](https://x.com/a.png)\ntext\n![b](https://x.com/b.jpg?w=1)\n"
		data, err := bundler.Bundle(context.Background(), "Post", markdown)

		require.NoError(t, err)
		files := readArchive(t, data)
		assert.Len(t, files, 3)
		assert.Contains(t, files["Post.md"], "![a](images/image_1.png)")
		assert.Contains(t, files["Post.md"], "![b](images/image_2.jpg)")
		assert.Equal(t, "blob:https://x.com/a.png", files["images/image_1.png"])
		assert.Equal(t, "blob:https://x.com/b.jpg?w=1", files["images/image_2.jpg"])
	})

	t.Run("failed fetch still rewrites but omits the file", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ImageFetcher{
			FetchImageFn: func(_ context.Context, url string) ([]byte, error) {
				if url == "https://x.com/bad.png" {
					return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "HTTP 404 for %s", url)
				}
				return []byte("ok"), nil
			},
		}
		bundler := mdzip.NewBundler(fetcher)

		markdown := "![a](https://x.com/good.png)\n![b](https://x.com/bad.png)\n"
		data, err := bundler.Bundle(context.Background(), "Post", markdown)

		require.NoError(t, err)
		files := readArchive(t, data)
		assert.Len(t, files, 2)
		assert.Contains(t, files["Post.md"], "![a](images/image_1.png)")
		assert.Contains(t, files["Post.md"], "![b](images/image_2.png)")
		_, ok := files["images/image_2.png"]
		assert.False(t, ok)
	})

	t.Run("duplicate URLs share one local name", func(t *testing.T) {
		t.Parallel()

		var fetches int
		fetcher := &mock.ImageFetcher{
			FetchImageFn: func(_ context.Context, _ string) ([]byte, error) {
				fetches++
				return []byte("ok"), nil
			},
		}
		bundler := mdzip.NewBundler(fetcher, mdzip.WithConcurrency(1))

		markdown := "![a](https://x.com/one.png)\n![b](https://x.com/one.png)\n![c](https://x.com/two.gif)\n"
		data, err := bundler.Bundle(context.Background(), "Post", markdown)

		require.NoError(t, err)
		assert.Equal(t, 2, fetches)
		files := readArchive(t, data)
		assert.Contains(t, files["Post.md"], "![a](images/image_1.png)")
		assert.Contains(t, files["Post.md"], "![b](images/image_1.png)")
		assert.Contains(t, files["Post.md"], "![c](images/image_2.gif)")
	})

	t.Run("sanitizes title in archive file name", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ImageFetcher{
			FetchImageFn: func(_ context.Context, _ string) ([]byte, error) {
				return []byte("ok"), nil
			},
		}
		bundler := mdzip.NewBundler(fetcher)

		data, err := bundler.Bundle(context.Background(), "A/B:C", "no images")

		require.NoError(t, err)
		files := readArchive(t, data)
		assert.Contains(t, files, "A_B_C.md")
	})

	t.Run("non-image markdown passes through unchanged", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ImageFetcher{
			FetchImageFn: func(_ context.Context, _ string) ([]byte, error) {
				t.Error("unexpected fetch")
				return nil, nil
			},
		}
		bundler := mdzip.NewBundler(fetcher)

		markdown := "a [link](https://x.com/page) and ![local](images/a.png)\n"
		data, err := bundler.Bundle(context.Background(), "Post", markdown)

		require.NoError(t, err)
		files := readArchive(t, data)
		assert.Equal(t, markdown, files["Post.md"])
	})
}
