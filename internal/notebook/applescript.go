package notebook

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mithrel/notepolish/pkg/api"
)

// AppleNotes drives Notes.app through osascript. It can only run on macOS
// with Notes available; the run hook exists so script plumbing is testable
// without it.
type AppleNotes struct {
	run func(ctx context.Context, script string) (string, error)
}

func NewAppleNotes() *AppleNotes {
	return &AppleNotes{run: runOsascript}
}

func runOsascript(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errb.String()); msg != "" {
			return "", fmt.Errorf("osascript: %v: %s", err, msg)
		}
		return "", fmt.Errorf("osascript: %w", err)
	}
	return strings.TrimSpace(out.String()), nil
}

func (a *AppleNotes) Close() error { return nil }

func (a *AppleNotes) Folders(ctx context.Context) ([]api.Folder, error) {
	out, err := a.run(ctx, listFoldersScript())
	if err != nil {
		return nil, err
	}
	var folders []api.Folder
	seen := make(map[string]struct{})
	for _, name := range strings.Split(out, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		// Notes reports one folder name per account; dedupe.
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		folders = append(folders, api.Folder{Name: name})
	}
	return folders, nil
}

func (a *AppleNotes) Notes(ctx context.Context, folder string) ([]api.Note, error) {
	out, err := a.run(ctx, listNotesScript(folder))
	if err != nil {
		return nil, err
	}
	var notes []api.Note
	for _, name := range strings.Split(out, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		notes = append(notes, api.Note{Folder: folder, Name: name})
	}
	return notes, nil
}

func (a *AppleNotes) Body(ctx context.Context, folder, name string) (string, error) {
	out, err := a.run(ctx, noteBodyScript(folder, name))
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("note %q in %q: %w", name, folder, ErrNotFound)
	}
	return out, nil
}

func (a *AppleNotes) EnsureFolder(ctx context.Context, folder string) error {
	existing, err := a.Folders(ctx)
	if err != nil {
		return err
	}
	for _, f := range existing {
		if f.Name == folder {
			return nil
		}
	}
	_, err = a.run(ctx, makeFolderScript(folder))
	return err
}

func (a *AppleNotes) CreateNote(ctx context.Context, folder, name, htmlBody, sourceHash string) error {
	_, err := a.run(ctx, makeNoteScript(folder, name, htmlBody))
	return err
}

// HasPolished always reports false: Notes has nowhere to keep the source
// hash, so re-runs re-polish every note.
func (a *AppleNotes) HasPolished(ctx context.Context, sourceHash string) (bool, error) {
	return false, nil
}

// escapeAS escapes a string for embedding in a double-quoted AppleScript
// literal.
func escapeAS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func listFoldersScript() string {
	return `tell application "Notes" to get name of every folder`
}

func listNotesScript(folder string) string {
	return fmt.Sprintf(`tell application "Notes" to get name of notes of folder "%s"`, escapeAS(folder))
}

func noteBodyScript(folder, name string) string {
	return fmt.Sprintf(`
tell application "Notes"
  set theNotes to notes of folder "%s"
  repeat with n in theNotes
    if name of n is "%s" then
      return body of n
    end if
  end repeat
end tell`, escapeAS(folder), escapeAS(name))
}

func makeFolderScript(folder string) string {
	return fmt.Sprintf(`tell application "Notes" to make new folder with properties {name:"%s"}`, escapeAS(folder))
}

func makeNoteScript(folder, name, htmlBody string) string {
	return fmt.Sprintf(`
tell application "Notes"
  tell folder "%s"
    make new note with properties {name:"%s", body:"%s"}
  end tell
end tell`, escapeAS(folder), escapeAS(name), escapeAS(htmlBody))
}
