package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/notifier"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/validators"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastTimeout is how long a toast stays on screen.
const toastTimeout = 4 * time.Second

var (
	defaultReadClipboard = clipboard.ReadAll
	readClipboard        = defaultReadClipboard
)

type toast struct {
	id           int
	notification models.Notification
}

// stagerModel hosts one staging buffer: a list of the staged files, the file
// picker and the toasts the buffer emits.
type stagerModel struct {
	ctx      context.Context
	buffer   *staging.Buffer
	queue    *notifier.Queue
	picks    *pickerBridge
	defaults []models.FileDescriptor
	initial  []models.StagedFile
	startDir string

	files []models.StagedFile
	idx   int

	picker  filepicker.Model
	picking bool
	multi   bool
	height  int

	hydrating bool
	spinner   spinner.Model

	toasts      []toast
	nextToastID int

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel

	submitted bool
}

func newStagerModel(ctx context.Context, cfg config.ClientConfig, fetcher staging.Fetcher, buildInfo models.AppBuildInfo, log *logger.Logger) stagerModel {
	policy := models.UploadPolicy{
		Limit:    cfg.Staging.Limit,
		Accept:   cfg.Staging.Accept,
		Multiple: cfg.Staging.Multiple,
		Drag:     cfg.Staging.Drag,
	}

	queue := notifier.NewQueue(notifier.DefaultQueueSize)
	picks := &pickerBridge{}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return stagerModel{
		ctx: ctx,
		buffer: staging.New(staging.Options{
			Policy:           policy,
			Validate:         validators.FromPolicy(policy, cfg.Staging.MaxFileSize),
			Fetcher:          fetcher,
			Picker:           picks,
			Notifier:         notifier.Multi{queue, notifier.NewLog(log)},
			RejectionMessage: cfg.Staging.RejectionMessage,
			Logger:           log,
		}),
		queue:     queue,
		picks:     picks,
		defaults:  cfg.Defaults,
		startDir:  cfg.StartDir,
		hydrating: len(cfg.Defaults) > 0,
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (m stagerModel) Init() tea.Cmd {
	if !m.hydrating {
		return nil
	}

	buffer, ctx, defaults := m.buffer, m.ctx, m.defaults
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return hydratedMsg{seeded: buffer.Initialize(ctx, defaults)}
	})
}

func (m stagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hydratedMsg:
		m.hydrating = false
		m.initial = m.buffer.Files()
		m.refresh()
		return m, m.drainToasts()

	case filesLoadedMsg:
		return m.stage(msg)

	case clearToastMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.hydrating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.height = msg.Height
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m stagerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.buffer.Close()
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if m.picking {
		return m.updatePicker(msg)
	}

	if msg.Paste {
		return m.drop(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.buffer.Close()
		return m, tea.Quit
	case key.Matches(msg, keys.enter):
		m.submitted = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.files)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.open):
		return m.openPicker()
	case key.Matches(msg, keys.remove):
		if len(m.files) == 0 {
			return m, nil
		}
		if err := m.buffer.Remove(m.idx); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.refresh()
	case key.Matches(msg, keys.paste):
		text, err := readClipboard()
		if err != nil {
			m.showErrorf(fmt.Sprintf("read clipboard: %v", err))
			return m, nil
		}
		return m.drop(text)
	case key.Matches(msg, keys.reset):
		if m.buffer.Synchronize(m.initial) {
			m.refresh()
			return m, m.addToast(models.NotificationInfo, "staged files reset")
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m stagerModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || msg.String() == "q" {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		if !m.multi {
			m.picking = false
		}
		return m, tea.Batch(cmd, cmdLoadFiles([]string{path}, false))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return m, tea.Batch(cmd, m.addToast(models.NotificationError, filepath.Base(path)+": file type is not accepted"))
	}
	return m, cmd
}

func (m stagerModel) openPicker() (tea.Model, tea.Cmd) {
	if !m.buffer.TriggerPick() {
		return m, m.addToast(models.NotificationWarning, "staging is disabled")
	}
	req, ok := m.picks.take()
	if !ok {
		return m, nil
	}

	m.picker = newFilePicker(req, m.startDir, m.height-8)
	m.multi = req.Multiple
	m.picking = true
	return m, m.picker.Init()
}

// drop stages the paths in text the way a drag-and-drop would: the target
// hovers until the files are read and dropped.
func (m stagerModel) drop(text string) (tea.Model, tea.Cmd) {
	paths := parsePaths(text)
	if len(paths) == 0 {
		m.showErrorf(ErrNothingPasted.Error())
		return m, nil
	}

	policy := m.buffer.Policy()
	if policy.Drag {
		m.buffer.DragEnter()
	}
	return m, cmdLoadFiles(paths, policy.Drag)
}

// stage inserts loaded files and reports what the buffer said about them.
func (m stagerModel) stage(msg filesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showErrorf(msg.err.Error())
	}

	var err error
	switch {
	case msg.drop:
		err = m.buffer.Drop(m.ctx, msg.files...)
	case len(msg.files) > 0:
		err = m.buffer.Add(m.ctx, msg.files...)
	}

	cmds := []tea.Cmd{m.drainToasts()}
	if errors.Is(err, staging.ErrBufferDisabled) {
		cmds = append(cmds, m.addToast(models.NotificationWarning, "staging is disabled"))
	}

	m.refresh()
	if len(m.files) > 0 {
		m.idx = len(m.files) - 1
	}
	return m, tea.Batch(cmds...)
}

func (m *stagerModel) refresh() {
	m.files = m.buffer.Files()
	if m.idx >= len(m.files) {
		m.idx = max(len(m.files)-1, 0)
	}
}

func (m *stagerModel) drainToasts() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.queue.Drain() {
		cmds = append(cmds, m.pushToast(n))
	}
	return tea.Batch(cmds...)
}

func (m *stagerModel) addToast(level models.NotificationLevel, message string) tea.Cmd {
	return m.pushToast(models.Notification{Level: level, Message: message, At: time.Now()})
}

func (m *stagerModel) pushToast(n models.Notification) tea.Cmd {
	m.nextToastID++
	id := m.nextToastID
	m.toasts = append(m.toasts, toast{id: id, notification: n})

	return tea.Tick(toastTimeout, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

func (m *stagerModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// Files returns the staged files.
func (m stagerModel) Files() []models.StagedFile {
	return m.buffer.Files()
}

func (m stagerModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	if m.picking {
		body = renderPage("PICK A FILE", m.picker.View(), "enter: stage  esc: close")
	} else {
		body = renderPage(m.title(), m.listView(), "o: open  d: remove  ctrl+v: paste path  s: reset  enter: submit  v: about  q: quit")
	}

	if len(m.toasts) > 0 {
		body += "\n\n" + m.toastsView()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m stagerModel) title() string {
	policy := m.buffer.Policy()
	title := "UPLOAD STAGER"
	switch {
	case policy.Disabled:
		title += "  (disabled)"
	case policy.Unlimited():
		title += fmt.Sprintf("  %d staged", len(m.files))
	default:
		title += fmt.Sprintf("  %d/%d staged", len(m.files), policy.Limit)
	}
	if m.hydrating {
		title += "  " + m.spinner.View()
	}
	return title
}

func (m stagerModel) listView() string {
	var b strings.Builder

	if m.buffer.DragState() == models.DragHovering {
		b.WriteString(dropZoneStyle.Render("drop to stage"))
		b.WriteString("\n\n")
	}

	switch {
	case m.hydrating:
		b.WriteString("Loading default files...")
	case len(m.files) == 0:
		b.WriteString("No files staged")
	default:
		for i, f := range m.files {
			size := humanSize(f.Size)
			if f.IsPlaceholder() {
				size = "placeholder"
			}
			line := fmt.Sprintf("%-40s %-24s %s", fitText(f.Name, 40), fitText(f.MIMEType, 24), size)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			if i < len(m.files)-1 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (m stagerModel) toastsView() string {
	rendered := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := toastInfoStyle
		switch t.notification.Level {
		case models.NotificationWarning:
			style = toastWarnStyle
		case models.NotificationError:
			style = toastErrorStyle
		}
		rendered = append(rendered, style.Render(t.notification.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
