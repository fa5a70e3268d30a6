package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notewell/internal/adapter"
	"notewell/internal/workspace"
	"notewell/models"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type workspaceMode int

const (
	modeList workspaceMode = iota
	modeDetail
	modeEdit
	modeConfirmDelete
	modeSearch
	modeTagPick
	modeAIMenu
	modeAIPrompt
	modeAIResult
)

type aiTool int

const (
	aiToolSummarizeNote aiTool = iota
	aiToolExpand
	aiToolWebSummary
	aiToolChat
)

type notesRefreshedMsg struct {
	err error
}

// editReadyMsg opens the editor once the coordinator has switched the draft
// buffer into creating mode. Title and content carry optional prefill.
type editReadyMsg struct {
	err     error
	title   string
	content string
	tags    string
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type aiDoneMsg struct {
	tool   aiTool
	result string
	err    error
}

type copyDoneMsg struct {
	err error
}

type workspaceModel struct {
	ctx         context.Context
	coordinator *workspace.Coordinator
	ai          adapter.AIGateway
	renderer    *glamour.TermRenderer

	mode   workspaceMode
	idx    int
	status string
	errMsg string
	busy   bool

	searchInput textinput.Model

	tagOptions []string
	tagIdx     int

	editTitle   textinput.Model
	editTags    textinput.Model
	editContent textarea.Model
	editFocus   int
	saving      bool

	aiMenuIdx    int
	aiTool       aiTool
	aiPrompt     textinput.Model
	aiPromptArea textarea.Model
	aiRunning    bool
	aiResult     string

	logout bool
}

func newWorkspaceModel(ctx context.Context, coordinator *workspace.Coordinator, ai adapter.AIGateway) workspaceModel {
	// Rendering falls back to raw markdown when the renderer cannot be built.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	return workspaceModel{
		ctx:         ctx,
		coordinator: coordinator,
		ai:          ai,
		renderer:    renderer,
	}
}

func (m workspaceModel) Init() tea.Cmd {
	return nil
}

func (m workspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesRefreshedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.clampIdx()
		return m, nil
	case editReadyMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.clampIdx()
		m.startEdit(msg.title, msg.tags, msg.content)
		return m, textarea.Blink
	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = fmt.Sprintf("Заметка «%s» сохранена", fitText(msg.note.Title, 30))
		m.errMsg = ""
		m.clampIdx()
		return m, nil
	case noteDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.mode = modeList
			return m, nil
		}
		m.mode = modeList
		m.status = "Заметка удалена"
		m.errMsg = ""
		m.clampIdx()
		return m, nil
	case aiDoneMsg:
		m.aiRunning = false
		if msg.err != nil {
			m.errMsg = aiErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.aiTool = msg.tool
		m.aiResult = msg.result
		m.mode = modeAIResult
		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(msg)
	case modeEdit:
		return m.updateEdit(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeTagPick:
		return m.updateTagPick(msg)
	case modeAIMenu:
		return m.updateAIMenu(msg)
	case modeAIPrompt:
		return m.updateAIPrompt(msg)
	case modeAIResult:
		return m.updateAIResult(msg)
	default:
		return m.updateList(msg)
	}
}

func (m workspaceModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.coordinator.Notes())-1 {
			m.idx++
		}
	case "/":
		m.searchInput = textinput.New()
		m.searchInput.Placeholder = "текст поиска"
		m.searchInput.Width = 40
		m.searchInput.Focus()
		if filter := m.coordinator.Filter(); filter.Mode() == workspace.ModeSearch {
			m.searchInput.SetValue(filter.Query())
		}
		m.mode = modeSearch
		return m, textinput.Blink
	case "t":
		tags := m.coordinator.Tags()
		if len(tags) == 0 {
			m.status = "Тегов пока нет"
			return m, nil
		}
		m.tagOptions = tags
		m.tagIdx = 0
		m.mode = modeTagPick
	case "f":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = ""
		return m, m.cmdClearFilter()
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = ""
		return m, m.cmdRefresh()
	case "n":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = ""
		return m, m.cmdNewNote()
	case "enter":
		note, ok := m.currentNote()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.coordinator.SelectNote(note)
		m.mode = modeDetail
	case "e":
		note, ok := m.currentNote()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.coordinator.SelectNote(note)
		m.startEdit(note.Title, note.Tags, note.Content)
		return m, textarea.Blink
	case "ctrl+d":
		note, ok := m.currentNote()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.coordinator.SelectNote(note)
		m.mode = modeConfirmDelete
	case "a":
		m.aiMenuIdx = 0
		m.mode = modeAIMenu
	}

	return m, nil
}

func (m workspaceModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	note, hasNote := m.currentNote()
	if !hasNote {
		m.mode = modeList
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeList
	case "e":
		m.startEdit(note.Title, note.Tags, note.Content)
		return m, textarea.Blink
	case "c":
		return m, m.cmdCopy(note.Content)
	case "ctrl+d":
		m.mode = modeConfirmDelete
	case "a":
		m.aiMenuIdx = 0
		m.mode = modeAIMenu
	}

	return m, nil
}

func (m workspaceModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			m.saving = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.editFocusNext()
			return m, nil
		case "shift+tab":
			m.editFocusPrev()
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}

			title := strings.TrimSpace(m.editTitle.Value())
			if title == "" {
				m.errMsg = "Название обязательно"
				return m, nil
			}

			m.errMsg = ""
			m.saving = true
			return m, m.cmdSave(title, m.editContent.Value(), m.editTags.Value())
		}
	}

	var cmd tea.Cmd
	switch m.editFocus {
	case 0:
		m.editTitle, cmd = m.editTitle.Update(msg)
	case 1:
		m.editTags, cmd = m.editTags.Update(msg)
	default:
		m.editContent, cmd = m.editContent.Update(msg)
	}
	return m, cmd
}

func (m workspaceModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete()
	case "n", "esc":
		m.mode = modeList
	}

	return m, nil
}

func (m workspaceModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.mode = modeList
			m.status = ""
			return m, m.cmdSetSearch(m.searchInput.Value())
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m workspaceModel) updateTagPick(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
	case "up", "k":
		if m.tagIdx > 0 {
			m.tagIdx--
		}
	case "down", "j":
		if m.tagIdx < len(m.tagOptions)-1 {
			m.tagIdx++
		}
	case "enter":
		if m.busy || len(m.tagOptions) == 0 {
			return m, nil
		}
		m.busy = true
		m.mode = modeList
		m.status = ""
		return m, m.cmdSetTag(m.tagOptions[m.tagIdx])
	}

	return m, nil
}

func (m workspaceModel) updateAIMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
	case "up", "k":
		if m.aiMenuIdx > 0 {
			m.aiMenuIdx--
		}
	case "down", "j":
		if m.aiMenuIdx < len(aiMenuItems)-1 {
			m.aiMenuIdx++
		}
	case "1", "2", "3", "4":
		m.aiMenuIdx = int(keyMsg.String()[0] - '1')
		return m.selectAITool()
	case "enter":
		return m.selectAITool()
	}

	return m, nil
}

func (m workspaceModel) selectAITool() (tea.Model, tea.Cmd) {
	switch aiTool(m.aiMenuIdx) {
	case aiToolSummarizeNote:
		note, ok := m.currentNote()
		if !ok {
			m.errMsg = "Нет заметок"
			return m, nil
		}
		if strings.TrimSpace(note.Content) == "" {
			m.errMsg = "Заметка пуста"
			return m, nil
		}
		m.errMsg = ""
		m.aiRunning = true
		return m, m.cmdAI(aiToolSummarizeNote, note.Content)

	case aiToolExpand:
		m.aiTool = aiToolExpand
		m.aiPromptArea = textarea.New()
		m.aiPromptArea.Placeholder = "Идея или список тезисов"
		m.aiPromptArea.SetWidth(54)
		m.aiPromptArea.SetHeight(6)
		m.aiPromptArea.Focus()
		m.errMsg = ""
		m.mode = modeAIPrompt
		return m, textarea.Blink

	case aiToolWebSummary:
		m.aiTool = aiToolWebSummary
		m.aiPrompt = textinput.New()
		m.aiPrompt.Placeholder = "https://example.com/article"
		m.aiPrompt.Width = 54
		m.aiPrompt.Focus()
		m.errMsg = ""
		m.mode = modeAIPrompt
		return m, textinput.Blink

	case aiToolChat:
		m.aiTool = aiToolChat
		m.aiPrompt = textinput.New()
		m.aiPrompt.Placeholder = "Вопрос по вашим заметкам"
		m.aiPrompt.Width = 54
		m.aiPrompt.Focus()
		m.errMsg = ""
		m.mode = modeAIPrompt
		return m, textinput.Blink
	}

	return m, nil
}

func (m workspaceModel) updateAIPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeAIMenu
			m.errMsg = ""
			return m, nil
		case "ctrl+s":
			if m.aiTool != aiToolExpand {
				break
			}
			return m.submitAIPrompt(m.aiPromptArea.Value())
		case "enter":
			if m.aiTool == aiToolExpand {
				break // newline inside the textarea
			}
			return m.submitAIPrompt(m.aiPrompt.Value())
		}
	}

	var cmd tea.Cmd
	if m.aiTool == aiToolExpand {
		m.aiPromptArea, cmd = m.aiPromptArea.Update(msg)
	} else {
		m.aiPrompt, cmd = m.aiPrompt.Update(msg)
	}
	return m, cmd
}

func (m workspaceModel) submitAIPrompt(raw string) (tea.Model, tea.Cmd) {
	if m.aiRunning {
		return m, nil
	}

	input := strings.TrimSpace(raw)
	if input == "" {
		m.errMsg = "Поле не может быть пустым"
		return m, nil
	}

	m.errMsg = ""
	m.aiRunning = true
	return m, m.cmdAI(m.aiTool, input)
}

func (m workspaceModel) updateAIResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeList
	case "c":
		return m, m.cmdCopy(m.aiResult)
	case "s":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdNoteFromAI(aiResultNoteTitle(m.aiTool), m.aiResult)
	}

	return m, nil
}

func (m *workspaceModel) startEdit(title, tags, content string) {
	m.editTitle = textinput.New()
	m.editTitle.Placeholder = "Название"
	m.editTitle.CharLimit = 200
	m.editTitle.Width = 54
	m.editTitle.SetValue(title)
	m.editTitle.Focus()

	m.editTags = textinput.New()
	m.editTags.Placeholder = "теги через запятую"
	m.editTags.Width = 54
	m.editTags.SetValue(tags)

	m.editContent = textarea.New()
	m.editContent.Placeholder = "Текст заметки (markdown)"
	m.editContent.SetWidth(70)
	m.editContent.SetHeight(12)
	m.editContent.SetValue(content)

	m.editFocus = 0
	m.saving = false
	m.errMsg = ""
	m.mode = modeEdit
}

func (m *workspaceModel) editFocusNext() {
	m.editBlur()
	m.editFocus = (m.editFocus + 1) % 3
	m.editFocusCurrent()
}

func (m *workspaceModel) editFocusPrev() {
	m.editBlur()
	m.editFocus = (m.editFocus + 2) % 3
	m.editFocusCurrent()
}

func (m *workspaceModel) editBlur() {
	m.editTitle.Blur()
	m.editTags.Blur()
	m.editContent.Blur()
}

func (m *workspaceModel) editFocusCurrent() {
	switch m.editFocus {
	case 0:
		m.editTitle.Focus()
	case 1:
		m.editTags.Focus()
	default:
		m.editContent.Focus()
	}
}

func (m *workspaceModel) clampIdx() {
	notes := m.coordinator.Notes()
	if m.idx >= len(notes) {
		m.idx = len(notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m workspaceModel) currentNote() (models.Note, bool) {
	notes := m.coordinator.Notes()
	if len(notes) == 0 || m.idx < 0 || m.idx >= len(notes) {
		return models.Note{}, false
	}
	return notes[m.idx], true
}

func (m workspaceModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		return notesRefreshedMsg{err: coordinator.RefreshNotes(ctx)}
	}
}

func (m workspaceModel) cmdClearFilter() tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		return notesRefreshedMsg{err: coordinator.ClearFilter(ctx)}
	}
}

func (m workspaceModel) cmdSetSearch(query string) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		return notesRefreshedMsg{err: coordinator.SetSearch(ctx, query)}
	}
}

func (m workspaceModel) cmdSetTag(tag string) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		return notesRefreshedMsg{err: coordinator.SetTag(ctx, tag)}
	}
}

func (m workspaceModel) cmdNewNote() tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		return editReadyMsg{err: coordinator.NewNote(ctx)}
	}
}

func (m workspaceModel) cmdNoteFromAI(title, content string) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		if err := coordinator.NewNote(ctx); err != nil {
			return editReadyMsg{err: err}
		}
		return editReadyMsg{title: title, content: content}
	}
}

func (m workspaceModel) cmdSave(title, content, tags string) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		coordinator.SetDraft(title, content, tags)
		note, err := coordinator.Save(ctx)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m workspaceModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		return noteDeletedMsg{err: coordinator.Delete(ctx)}
	}
}

func (m workspaceModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: clipboard.WriteAll(text)}
	}
}

func (m workspaceModel) cmdAI(tool aiTool, input string) tea.Cmd {
	ctx := m.ctx
	ai := m.ai

	return func() tea.Msg {
		var (
			result string
			err    error
		)

		switch tool {
		case aiToolSummarizeNote:
			result, err = ai.Summarize(ctx, input)
		case aiToolExpand:
			result, err = ai.ExpandContent(ctx, input)
		case aiToolWebSummary:
			result, err = ai.ScrapeAndSummarize(ctx, input)
		case aiToolChat:
			result, err = ai.ChatWithNotes(ctx, input)
		}

		return aiDoneMsg{tool: tool, result: result, err: err}
	}
}

func saveErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, workspace.ErrEmptyTitle):
		return "Название обязательно"
	case errors.Is(err, workspace.ErrSaveInFlight):
		return "Сохранение уже выполняется"
	case errors.Is(err, adapter.ErrNotFound):
		return "Заметка не найдена на сервере"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func aiResultNoteTitle(tool aiTool) string {
	switch tool {
	case aiToolExpand:
		return "Развернутый текст"
	case aiToolWebSummary:
		return "Саммари страницы"
	case aiToolChat:
		return "Ответ ассистента"
	default:
		return "Саммари заметки"
	}
}
