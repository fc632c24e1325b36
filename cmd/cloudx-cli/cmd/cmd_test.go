package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONTENT_FILE", "")

	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cloudx-cli v"+version+"\n", out)
}

func TestRender_Stdout(t *testing.T) {
	out, _, err := run(t, "render")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 7, doc.Find("section[data-reveal]").Length())
	assert.Equal(t, 1, doc.Find(`[data-section="hero"]`).Length())
}

func TestRender_NoReveal(t *testing.T) {
	out, _, err := run(t, "render", "--no-reveal")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("section[data-reveal]").Length())
	assert.NotContains(t, out, "opacity-0 translate-y-12")
}

func TestRender_HTMLFile(t *testing.T) {
	out, errOut, err := run(t, "render", "--out", "/tmp/page.html")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Wrote /tmp/page.html")

	raw, err := afero.ReadFile(appFs, "/tmp/page.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "<!DOCTYPE html>"))
}

func TestRender_Directory(t *testing.T) {
	_, _, err := run(t, "render", "-o", "/dist")
	require.NoError(t, err)

	for _, name := range []string{"/dist/index.html", "/dist/static/js/reveal.js"} {
		ok, err := afero.Exists(appFs, name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestRender_ContentOverride(t *testing.T) {
	t.Setenv("CONTENT_FILE", "")
	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })
	require.NoError(t, afero.WriteFile(appFs, "/c.yaml", []byte("hero:\n  cta: Vamos Conversar\n"), 0o644))

	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"render", "--content", "/c.yaml"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "Vamos Conversar")
}

func TestValidate(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		out, _, err := run(t, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "✅ built-in content is valid (4 FAQ entries, 6 deliverables)")
	})

	t.Run("missing file", func(t *testing.T) {
		_, errOut, err := run(t, "validate", "/nope.yaml")
		require.Error(t, err)
		assert.Contains(t, errOut, "read content file /nope.yaml")
	})

	t.Run("too many args", func(t *testing.T) {
		_, _, err := run(t, "validate", "a.yaml", "b.yaml")
		require.Error(t, err)
	})
}

func TestRender_DirectoryWorksWithoutServer(t *testing.T) {
	_, _, err := run(t, "render", "--out", "/dist")
	require.NoError(t, err)

	raw, err := afero.ReadFile(appFs, "/dist/index.html")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "/fragments/")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Find("#faq-list details").Length())
}
