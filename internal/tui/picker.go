package tui

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/validators"
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// pickerBridge is the staging.Picker of the terminal host. The buffer calls
// Open from TriggerPick, which the model invokes inside Update, so the
// request is parked here and picked up by the model right after.
type pickerBridge struct {
	mu      sync.Mutex
	pending *staging.PickRequest
}

// Open implements staging.Picker.
func (p *pickerBridge) Open(req staging.PickRequest) {
	p.mu.Lock()
	p.pending = &req
	p.mu.Unlock()
}

func (p *pickerBridge) take() (staging.PickRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		return staging.PickRequest{}, false
	}
	req := *p.pending
	p.pending = nil
	return req, true
}

// newFilePicker configures a filepicker for req, starting in dir.
func newFilePicker(req staging.PickRequest, dir string, height int) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	if fp.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			fp.CurrentDirectory = wd
		}
	}
	fp.AllowedTypes = validators.ParseAccept(req.Accept).Extensions()
	fp.ShowPermissions = false
	if height > 0 {
		fp.AutoHeight = false
		fp.SetHeight(height)
	}
	return fp
}

// cmdLoadFiles reads paths from disk.
func cmdLoadFiles(paths []string, drop bool) tea.Cmd {
	return func() tea.Msg {
		msg := filesLoadedMsg{drop: drop}
		var errs []error
		for _, p := range paths {
			f, err := staging.LoadLocalFile(p)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			msg.files = append(msg.files, f)
		}
		msg.err = errors.Join(errs...)
		return msg
	}
}

// parsePaths extracts file paths from pasted text. Terminals paste a dragged
// file as its path, possibly quoted or with escaped spaces, one per line or
// separated by spaces when several files are dragged at once.
func parsePaths(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, splitShellWords(line)...)
	}
	return out
}

// splitShellWords splits on unescaped, unquoted spaces and removes the
// quoting.
func splitShellWords(line string) []string {
	var (
		words   []string
		current strings.Builder
		quote   rune
		escaped bool
	)
	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.TrimPrefix(current.String(), "file://"))
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ' ' || r == '\t':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}
