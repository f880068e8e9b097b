package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jonathan/infofill/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src, _ := newTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))
	assert.Contains(t, buf.String(), "templates:")
	assert.Contains(t, buf.String(), "default-2")

	dst, err := Load(ctx, storage.NewMemory(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, dst.Reset(ctx))
	require.NoError(t, dst.Remove(ctx, "default-1"))

	n, err := dst.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// default-1 was missing and is appended after the replaced entries.
	assert.Equal(t, []string{"default-3", "default-2", "default-1"}, ids(dst.List()))
	for _, want := range src.List() {
		got, err := dst.Get(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestImport_AssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	doc := `
templates:
  - name: Contact card
    type: text
    content: "{{basic.name}} {{basic.phone}}"
`
	n, err := s.Import(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	list := s.List()
	require.Len(t, list, 4)
	added := list[3]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Contact card", added.Name)
	assert.NotNil(t, added.Mapping)
}

func TestImport_InvalidTemplateStoresNothing(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	doc := `
templates:
  - name: Good
    type: text
    content: ok
  - name: Bad
    type: xml
    content: nope
`
	_, err := s.Import(ctx, strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad")
	assert.Len(t, s.List(), 3)
}

func TestImport_EmptyInput(t *testing.T) {
	s, _ := newTestStore(t)
	n, err := s.Import(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImport_MalformedYAML(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Import(context.Background(), strings.NewReader("templates: [unclosed"))
	assert.Error(t, err)
}
