package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Nav.Links, 4)
	assert.Len(t, cat.Problem.PainPoints, 5)
	assert.Len(t, cat.Solution.Pillars, 3)
	assert.Len(t, cat.Squad.Members, 5)
	assert.Len(t, cat.Metrics.Items, 4)
	assert.Len(t, cat.Deliverables.Items, 6)
	assert.Len(t, cat.FAQ.Entries, 4)
	assert.True(t, strings.Contains(cat.Problem.Title, cat.Problem.Highlight))
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.Nav.Links[0].Label = "changed"
	assert.Equal(t, "Problema", b.Nav.Links[0].Label)
}

func TestValidate_ReportsFields(t *testing.T) {
	cat := Default()
	cat.Nav.Links[1].Href = "/solucao"
	cat.FAQ.Entries = nil

	err := cat.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "Catalog.Nav.Links[1].Href (startswith)")
	assert.Contains(t, err.Error(), "Catalog.FAQ.Entries (required)")
}

func TestLoad(t *testing.T) {
	t.Run("empty path serves defaults", func(t *testing.T) {
		cat, err := Load(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cat)
	})

	t.Run("override replaces only named fields", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/cloudx/content.yaml", []byte(`
hero:
  cta: "Quero Escalar"
faq:
  entries:
    - question: "Tem contrato de fidelidade?"
      answer: "Não. Trabalhamos com **ciclos trimestrais**."
`), 0o644))

		cat, err := Load(fs, "/etc/cloudx/content.yaml")
		require.NoError(t, err)

		assert.Equal(t, "Quero Escalar", cat.Hero.CTA)
		assert.Equal(t, Default().Hero.Title, cat.Hero.Title, "untouched fields keep their defaults")
		require.Len(t, cat.FAQ.Entries, 1, "lists are replaced as a whole")
		assert.Equal(t, "Dúvidas Frequentes", cat.FAQ.Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "nope.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read content file nope.yaml")
	})

	t.Run("unknown key", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("heroo:\n  cta: x\n"), 0o644))
		_, err := Load(fs, "c.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse content file c.yaml")
	})

	t.Run("invalid result", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("nav:\n  links:\n    - label: Blog\n      href: /blog\n"), 0o644))
		_, err := Load(fs, "c.yaml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCatalog))
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("\n"), 0o644))
		cat, err := Load(fs, "c.yaml")
		require.NoError(t, err)
		assert.Equal(t, Default(), cat)
	})
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("Trabalhamos com **ciclos** trimestrais.")
	require.NoError(t, err)
	assert.Equal(t, "<p>Trabalhamos com <strong>ciclos</strong> trimestrais.</p>\n", html)

	html, err = RenderMarkdown("Oi <script>alert(1)</script> [link](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "javascript:")
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("hero:\n  cta: Um\n"), 0o644))

	store, err := NewStore(fs, "c.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Um", store.Catalog().Hero.CTA)

	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("hero:\n  cta: Dois\n"), 0o644))
	require.NoError(t, store.Reload())
	assert.Equal(t, "Dois", store.Catalog().Hero.CTA)

	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("hero: [broken"), 0o644))
	require.Error(t, store.Reload())
	assert.Equal(t, "Dois", store.Catalog().Hero.CTA)
}

func TestStore_StartWatcherDisabled(t *testing.T) {
	store, err := NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	require.NoError(t, store.StartWatcher(context.Background(), true), "no file configured")
	require.NoError(t, store.Close())
}

func TestStore_WatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hero:\n  cta: Antes\n"), 0o644))

	store, err := NewStore(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.StartWatcher(ctx, true))
	defer store.Close()

	require.NoError(t, os.WriteFile(path, []byte("hero:\n  cta: Depois\n"), 0o644))

	assert.Eventually(t, func() bool {
		return store.Catalog().Hero.CTA == "Depois"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestLoad_CTAVariant(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("final_cta:\n  variant: ghost\n"), 0o644))
	cat, err := Load(fs, "c.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ghost", cat.FinalCTA.Variant)

	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("final_cta:\n  variant: loud\n"), 0o644))
	_, err = Load(fs, "c.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "Catalog.FinalCTA.Variant (oneof)")
}
