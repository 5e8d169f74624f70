package goquery_test

import (
	"strings"
	"testing"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zhihuArticleHTML = `
<article>
  <header class="Post-Header">
    <h1 class="Post-Title">
      机器学习笔记
    </h1>
  </header>
  <div class="AuthorInfo"><meta itemprop="name" content="张三"></div>
  <div class="ContentItem-time">2024-03-04</div>
  <div class="Post-RichContent">
    <noscript><p>enable js</p></noscript>
    <p>Intro paragraph.</p>
    <pre><code>print(42)
</code></pre>
    <span class="ztext-math" data-tex="x^2">fallback</span>
  </div>
</article>`

func TestZhihuAdapter_ExtractMetadata(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewZhihuAdapter()

	t.Run("extracts metadata with author from meta tag", func(t *testing.T) {
		t.Parallel()

		meta, err := adapter.ExtractMetadata(&mdminer.Page{HTML: zhihuArticleHTML})

		require.NoError(t, err)
		assert.Equal(t, "机器学习笔记", meta.Title)
		assert.Equal(t, "张三", meta.Author)
		assert.Equal(t, "2024-03-04", meta.Date)
	})

	t.Run("date may be absent", func(t *testing.T) {
		t.Parallel()

		html := `<article>
			<h1 class="Post-Title">T</h1>
			<div class="AuthorInfo"><meta itemprop="name" content="a"></div>
		</article>`
		meta, err := adapter.ExtractMetadata(&mdminer.Page{HTML: html})

		require.NoError(t, err)
		assert.Empty(t, meta.Date)
	})

	t.Run("missing author is a hard failure", func(t *testing.T) {
		t.Parallel()

		_, err := adapter.ExtractMetadata(&mdminer.Page{HTML: `<article><h1 class="Post-Title">T</h1></article>`})

		require.Error(t, err)
		assert.Equal(t, mdminer.ENOTFOUND, mdminer.ErrorCode(err))
	})
}

func TestZhihuAdapter_Convert(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewZhihuAdapter()

	t.Run("converts rich content with plain code fence", func(t *testing.T) {
		t.Parallel()

		res, err := adapter.Convert(&mdminer.Page{HTML: zhihuArticleHTML})

		require.NoError(t, err)
		assert.Equal(t, "机器学习笔记", res.Title)
		assert.Contains(t, res.Markdown, "Intro paragraph.")
		assert.Contains(t, res.Markdown, "```\nprint(42)")
		assert.NotContains(t, res.Markdown, "```python")
		assert.NotContains(t, res.Markdown, "enable js")
	})

	t.Run("short formula renders inline", func(t *testing.T) {
		t.Parallel()

		res, err := adapter.Convert(&mdminer.Page{HTML: zhihuArticleHTML})

		require.NoError(t, err)
		assert.Contains(t, res.Markdown, "$x^2$")
		assert.NotContains(t, res.Markdown, "$$")
	})

	t.Run("long formula renders as block", func(t *testing.T) {
		t.Parallel()

		formula := strings.Repeat("x+", 30) + "1" // 61 characters
		html := `<article><h1 class="Post-Title">T</h1><div class="Post-RichContent">` +
			`<span class="ztext-math" data-tex="` + formula + `">f</span></div></article>`
		res, err := adapter.Convert(&mdminer.Page{HTML: html})

		require.NoError(t, err)
		assert.Contains(t, res.Markdown, "$$\n"+formula+"\n$$")
	})

	t.Run("environment marker forces block form", func(t *testing.T) {
		t.Parallel()

		html := `<article><h1 class="Post-Title">T</h1><div class="Post-RichContent">` +
			`<span class="ztext-math" data-tex="\begin{matrix}a\end{matrix}">f</span></div></article>`
		res, err := adapter.Convert(&mdminer.Page{HTML: html})

		require.NoError(t, err)
		assert.Contains(t, res.Markdown, "$$")
	})

	t.Run("trailing backslashes stripped before classification", func(t *testing.T) {
		t.Parallel()

		html := `<article><h1 class="Post-Title">T</h1><div class="Post-RichContent">` +
			`<span class="ztext-math" data-tex="a+b\\">f</span></div></article>`
		res, err := adapter.Convert(&mdminer.Page{HTML: html})

		require.NoError(t, err)
		assert.Contains(t, res.Markdown, "$a+b$")
		assert.NotContains(t, res.Markdown, "$$")
	})

	t.Run("missing content container", func(t *testing.T) {
		t.Parallel()

		_, err := adapter.Convert(&mdminer.Page{HTML: `<article><h1 class="Post-Title">T</h1></article>`})

		require.Error(t, err)
		assert.Equal(t, mdminer.ENOTFOUND, mdminer.ErrorCode(err))
	})
}
