package goquery_test

import (
	"testing"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Registry implements mdminer.AdapterRegistry at compile time.
var _ mdminer.AdapterRegistry = (*goquery.Registry)(nil)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := goquery.NewDefaultRegistry()

	t.Run("resolves all supported sites", func(t *testing.T) {
		t.Parallel()

		for _, site := range []mdminer.Site{
			mdminer.SiteJuejin,
			mdminer.SiteZhihu,
			mdminer.SiteGithub,
			mdminer.SiteOther,
		} {
			adapter, err := registry.Resolve(site)
			require.NoError(t, err)
			require.NotNil(t, adapter)
			assert.Equal(t, site, adapter.Site())
		}
	})

	t.Run("unknown site returns not-supported error", func(t *testing.T) {
		t.Parallel()

		adapter, err := registry.Resolve(mdminer.Site("medium"))

		require.Error(t, err)
		assert.Nil(t, adapter)
		assert.Equal(t, mdminer.ENOTSUPPORTED, mdminer.ErrorCode(err))
	})

	t.Run("empty site returns not-supported error", func(t *testing.T) {
		t.Parallel()

		_, err := registry.Resolve(mdminer.Site(""))

		require.Error(t, err)
		assert.Equal(t, mdminer.ENOTSUPPORTED, mdminer.ErrorCode(err))
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	registry := goquery.NewDefaultRegistry()

	assert.Equal(t, []mdminer.Site{
		mdminer.SiteGithub,
		mdminer.SiteJuejin,
		mdminer.SiteOther,
		mdminer.SiteZhihu,
	}, registry.List())
}
