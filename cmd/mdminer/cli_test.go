package main_test

import (
	"bytes"
	"context"
	"testing"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	main "github.com/HaoQiuji-Pavel/juejin-md-miner/cmd/mdminer"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/extract"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdout, stderr *bytes.Buffer, registry mdminer.AdapterRegistry, writer mdminer.MarkdownWriter, page *mdminer.Page) *main.Dependencies {
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Registry: registry,
		Dispatcher: extract.NewDispatcher(
			registry,
			func(_ string) mdminer.Bundler { return nil },
			writer,
			nil,
		),
		LoadPage: func(_ context.Context, _ main.PageSource) (*mdminer.Page, error) {
			return page, nil
		},
	}
}

func juejinRegistry(adapter mdminer.Adapter) *mock.AdapterRegistry {
	return &mock.AdapterRegistry{
		ResolveFn: func(site mdminer.Site) (mdminer.Adapter, error) {
			if site == mdminer.SiteJuejin {
				return adapter, nil
			}
			return nil, mdminer.Errorf(mdminer.ENOTSUPPORTED, "unsupported site %q", site)
		},
		ListFn: func() []mdminer.Site {
			return []mdminer.Site{mdminer.SiteGithub, mdminer.SiteJuejin, mdminer.SiteOther, mdminer.SiteZhihu}
		},
	}
}

func TestInfoCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints article info", func(t *testing.T) {
		t.Parallel()

		adapter := &mock.Adapter{
			SiteFn: func() mdminer.Site { return mdminer.SiteJuejin },
			ExtractMetadataFn: func(_ *mdminer.Page) (*mdminer.ArticleMetadata, error) {
				return &mdminer.ArticleMetadata{Title: "T", Author: "A", Date: "2024-01-01"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr, juejinRegistry(adapter), nil, &mdminer.Page{HTML: "<html></html>"})

		cmd := &main.InfoCmd{URL: "https://juejin.cn/post/1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Title:  T")
		assert.Contains(t, output, "Author: A")
		assert.Contains(t, output, "Date:   2024-01-01")
	})

	t.Run("returns normalized error on failure", func(t *testing.T) {
		t.Parallel()

		adapter := &mock.Adapter{
			SiteFn: func() mdminer.Site { return mdminer.SiteJuejin },
			ExtractMetadataFn: func(_ *mdminer.Page) (*mdminer.ArticleMetadata, error) {
				return nil, mdminer.Errorf(mdminer.ENOTFOUND, "article element not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr, juejinRegistry(adapter), nil, &mdminer.Page{HTML: "<html></html>"})

		cmd := &main.InfoCmd{URL: "https://juejin.cn/post/1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, "article element not found", err.Error())
	})
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	adapter := &mock.Adapter{
		SiteFn: func() mdminer.Site { return mdminer.SiteJuejin },
		ConvertFn: func(_ *mdminer.Page) (*mdminer.ConversionResult, error) {
			return &mdminer.ConversionResult{Title: "T", Markdown: "# T\n"}, nil
		},
	}

	t.Run("prints saved path and content hash", func(t *testing.T) {
		t.Parallel()

		writer := &mock.MarkdownWriter{
			WriteMarkdownFn: func(_, _ string) (string, error) { return "/out/T.md", nil },
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr, juejinRegistry(adapter), writer, &mdminer.Page{HTML: "<html></html>"})

		cmd := &main.ConvertCmd{URL: "https://juejin.cn/post/1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Saved to /out/T.md")
		assert.Contains(t, output, "Content hash: ")
	})
}

func TestSitesCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := newDeps(stdout, stderr, juejinRegistry(nil), nil, nil)

	cmd := &main.SitesCmd{}
	err := cmd.Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "github\njuejin\nother\nzhihu\n", stdout.String())
}
