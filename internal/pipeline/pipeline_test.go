package pipeline

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/notepolish/internal/enhance"
	"github.com/mithrel/notepolish/pkg/api"
)

type created struct {
	folder, name, body, hash string
}

// memNotebook is an in-memory Source+Sink for pipeline tests.
type memNotebook struct {
	notes    map[string][]api.Note
	failRead map[string]error
	polished map[string]bool
	created  []created
	folders  []string
}

func newMemNotebook() *memNotebook {
	return &memNotebook{
		notes:    make(map[string][]api.Note),
		failRead: make(map[string]error),
		polished: make(map[string]bool),
	}
}

func (m *memNotebook) add(folder, name, body string) {
	m.notes[folder] = append(m.notes[folder], api.Note{Folder: folder, Name: name, Body: body})
}

func (m *memNotebook) Folders(ctx context.Context) ([]api.Folder, error) {
	var out []api.Folder
	for name := range m.notes {
		out = append(out, api.Folder{Name: name})
	}
	return out, nil
}

func (m *memNotebook) Notes(ctx context.Context, folder string) ([]api.Note, error) {
	return m.notes[folder], nil
}

func (m *memNotebook) Body(ctx context.Context, folder, name string) (string, error) {
	if err := m.failRead[name]; err != nil {
		return "", err
	}
	for _, n := range m.notes[folder] {
		if n.Name == name {
			return n.Body, nil
		}
	}
	return "", errors.New("not found")
}

func (m *memNotebook) EnsureFolder(ctx context.Context, folder string) error {
	m.folders = append(m.folders, folder)
	return nil
}

func (m *memNotebook) CreateNote(ctx context.Context, folder, name, htmlBody, sourceHash string) error {
	m.created = append(m.created, created{folder, name, htmlBody, sourceHash})
	m.polished[sourceHash] = true
	return nil
}

func (m *memNotebook) HasPolished(ctx context.Context, sourceHash string) (bool, error) {
	return m.polished[sourceHash], nil
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestProcess(t *testing.T) {
	plain, frag := Process("# Notes\n\n- Eggs\n- Milk\n")
	assert.Equal(t, "NOTES\n-----\n\n• Eggs\n\n• Milk\n", plain)
	assert.True(t, strings.HasPrefix(frag, "<pre"))
	assert.Contains(t, frag, "NOTES\n-----\n\n• Eggs\n\n• Milk\n")
	assert.True(t, strings.HasSuffix(frag, "</pre>"))
}

func TestRunPolishesFolder(t *testing.T) {
	nb := newMemNotebook()
	nb.add("Inbox", "groceries", "- Eggs\n- Milk\n")
	nb.add("Inbox", "plan", "# Plan\n\ntext\n")

	rep, err := Run(context.Background(), testLogger(), nb, enhance.NopRewriter{}, nb, Options{
		SourceFolder: "Inbox",
		DestFolder:   "Clean",
		NamePrefix:   "Polished - ",
	})
	require.NoError(t, err)
	assert.Equal(t, Report{Processed: 2}, rep)
	assert.Equal(t, []string{"Clean"}, nb.folders)

	require.Len(t, nb.created, 2)
	assert.Equal(t, "Clean", nb.created[0].folder)
	assert.Equal(t, "Polished - groceries", nb.created[0].name)
	assert.Contains(t, nb.created[0].body, "• Eggs")
	assert.NotEmpty(t, nb.created[0].hash)
	assert.Equal(t, "Polished - plan", nb.created[1].name)
	assert.Contains(t, nb.created[1].body, "PLAN")
}

func TestRunSkipsFailedNotesAndContinues(t *testing.T) {
	nb := newMemNotebook()
	nb.add("Inbox", "broken", "x")
	nb.add("Inbox", "fine", "hello")
	nb.failRead["broken"] = errors.New("i/o error")

	rep, err := Run(context.Background(), testLogger(), nb, enhance.NopRewriter{}, nb, Options{
		SourceFolder: "Inbox",
		DestFolder:   "Clean",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
	assert.Equal(t, 1, rep.Processed)
	require.Len(t, nb.created, 1)
	assert.Equal(t, "fine", nb.created[0].name)
}

type failingRewriter struct{}

func (failingRewriter) Name() string { return "fail" }

func (failingRewriter) Rewrite(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

func TestRunSkipsRewriteFailures(t *testing.T) {
	nb := newMemNotebook()
	nb.add("Inbox", "a", "body")

	rep, err := Run(context.Background(), testLogger(), nb, failingRewriter{}, nb, Options{
		SourceFolder: "Inbox",
		DestFolder:   "Clean",
	})
	require.NoError(t, err)
	assert.Equal(t, Report{Skipped: 1}, rep)
	assert.Empty(t, nb.created)
}

func TestRunSkipUnchanged(t *testing.T) {
	nb := newMemNotebook()
	nb.add("Inbox", "a", "body")
	hash := api.Note{Folder: "Inbox", Name: "a", Body: "body"}.ContentHash()
	nb.polished[hash] = true

	rep, err := Run(context.Background(), testLogger(), nb, enhance.NopRewriter{}, nb, Options{
		SourceFolder:  "Inbox",
		DestFolder:    "Clean",
		SkipUnchanged: true,
	})
	require.NoError(t, err)
	assert.Equal(t, Report{Unchanged: 1}, rep)
	assert.Empty(t, nb.created)
}

func TestRunDryRunStoresNothing(t *testing.T) {
	nb := newMemNotebook()
	nb.add("Inbox", "a", "# Hello\n")

	var buf strings.Builder
	rep, err := Run(context.Background(), testLogger(), nb, enhance.NopRewriter{}, nb, Options{
		SourceFolder: "Inbox",
		DestFolder:   "Clean",
		NamePrefix:   "Polished - ",
		DryRun:       true,
		Out:          &buf,
	})
	require.NoError(t, err)
	assert.Equal(t, Report{Processed: 1}, rep)
	assert.Empty(t, nb.created)
	assert.Empty(t, nb.folders)
	assert.Contains(t, buf.String(), "Polished - a")
	assert.Contains(t, buf.String(), "HELLO")
}
