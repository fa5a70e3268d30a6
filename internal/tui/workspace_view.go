package tui

import (
	"fmt"
	"strings"

	"notewell/internal/workspace"
)

var aiMenuItems = []string{
	"Саммари текущей заметки",
	"Развернуть текст",
	"Саммари веб-страницы",
	"Чат с заметками",
}

func (m workspaceModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeEdit:
		return m.viewEdit()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modeSearch:
		return m.viewSearch()
	case modeTagPick:
		return m.viewTagPick()
	case modeAIMenu:
		return m.viewAIMenu()
	case modeAIPrompt:
		return m.viewAIPrompt()
	case modeAIResult:
		return m.viewAIResult()
	default:
		return m.viewList()
	}
}

func (m workspaceModel) viewList() string {
	out := "Фильтр    : " + filterLabel(m.coordinator.Filter()) + "\n"

	if m.errMsg != "" {
		out += "Ошибка    : " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус    : " + m.status + "\n"
	}
	if m.busy {
		out += "Загрузка...\n"
	}

	notes := m.coordinator.Notes()
	if len(notes) == 0 {
		out += "\nЗаметок нет\n"
	} else {
		out += "\n"
		out += "ID   │ Заголовок                    │ Теги             │ Обновлено\n"
		out += "─────┼──────────────────────────────┼──────────────────┼──────────────────\n"
		for i, note := range notes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-28s │ %-16s │ %s\n",
				cursor,
				i+1,
				fitText(note.Title, 28),
				fitText(valueOrDash(note.Tags), 16),
				note.UpdatedAt.Format("02.01.2006 15:04"),
			)
		}
	}

	return renderPage(
		"МОИ ЗАМЕТКИ",
		strings.TrimRight(out, "\n"),
		"n: новая │ enter: открыть │ e: изм. │ ctrl+d: уд. │ /: поиск │ t: тег │ f: сброс │ a: ИИ │ l: выход",
	)
}

func (m workspaceModel) viewDetail() string {
	note, ok := m.currentNote()
	if !ok {
		return renderPage("ПРОСМОТР ЗАМЕТКИ", "Заметка не найдена", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Название  : " + note.Title + "\n")
	b.WriteString("Теги      : " + valueOrDash(note.Tags) + "\n")
	b.WriteString("Создана   : " + note.CreatedAt.Format("02.01.2006 15:04") + "\n")
	b.WriteString("Обновлена : " + note.UpdatedAt.Format("02.01.2006 15:04") + "\n\n")

	b.WriteString("[ ТЕКСТ ]\n")
	if strings.TrimSpace(note.Content) == "" {
		b.WriteString("(пусто)\n")
	} else {
		b.WriteString(m.renderMarkdown(note.Content))
		b.WriteString("\n")
	}

	if strings.TrimSpace(note.Summary) != "" {
		b.WriteString("\n[ САММАРИ ]\n")
		b.WriteString(note.Summary)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}

	return renderPage(
		"ЗАМЕТКА: "+fitText(note.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"e: изменить │ c: копировать │ ctrl+d: удалить │ a: ИИ │ esc: назад",
	)
}

func (m workspaceModel) viewEdit() string {
	title := "НОВАЯ ЗАМЕТКА"
	if _, editing := m.coordinator.Editing(); editing {
		title = "ИЗМЕНЕНИЕ ЗАМЕТКИ"
	}

	out := "Название  : [ " + m.editTitle.View() + " ]\n"
	out += "Теги      : [ " + m.editTags.View() + " ]\n"
	out += "Текст:\n"
	out += m.editContent.View() + "\n"

	if m.saving {
		out += "\nСохранение...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}

func (m workspaceModel) viewConfirmDelete() string {
	note, ok := m.currentNote()
	name := ""
	if ok {
		name = note.Title
	}

	content := "Удалить \"" + fitText(name, 40) + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}

func (m workspaceModel) viewSearch() string {
	out := "Поиск     : [ " + m.searchInput.View() + " ]\n\n"
	out += "Пустая строка сбрасывает фильтр"

	return renderPage("ПОИСК ЗАМЕТОК", out, "enter: искать │ esc: отмена")
}

func (m workspaceModel) viewTagPick() string {
	out := ""
	for i, tag := range m.tagOptions {
		cursor := " "
		if i == m.tagIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %s\n", cursor, tag)
	}

	return renderPage("ФИЛЬТР ПО ТЕГУ", strings.TrimRight(out, "\n"), "enter: выбрать │ ↑/↓: навигация │ esc: отмена")
}

func (m workspaceModel) viewAIMenu() string {
	out := ""
	for i, item := range aiMenuItems {
		cursor := " "
		if i == m.aiMenuIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, item)
	}

	if m.aiRunning {
		out += "\nЗапрос к ИИ...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage("ИНСТРУМЕНТЫ ИИ", strings.TrimRight(out, "\n"), "1-4/enter: выбрать │ ↑/↓: навигация │ esc: назад")
}

func (m workspaceModel) viewAIPrompt() string {
	var out string
	var hotKeys string

	switch m.aiTool {
	case aiToolExpand:
		out = "Текст для развертывания:\n"
		out += m.aiPromptArea.View() + "\n"
		hotKeys = "enter: новая строка │ ctrl+s: отправить │ esc: назад"
	case aiToolWebSummary:
		out = "URL       : [ " + m.aiPrompt.View() + " ]\n"
		hotKeys = "enter: отправить │ esc: назад"
	default:
		out = "Вопрос    : [ " + m.aiPrompt.View() + " ]\n"
		hotKeys = "enter: отправить │ esc: назад"
	}

	if m.aiRunning {
		out += "\nЗапрос к ИИ...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage(aiPromptTitle(m.aiTool), strings.TrimRight(out, "\n"), hotKeys)
}

func (m workspaceModel) viewAIResult() string {
	out := m.renderMarkdown(m.aiResult)

	if m.busy {
		out += "\nСоздание заметки...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "\nСтатус: " + m.status + "\n"
	}

	return renderPage(
		aiResultNoteTitle(m.aiTool),
		strings.TrimRight(out, "\n"),
		"c: копировать │ s: сохранить как заметку │ esc: назад",
	)
}

func (m workspaceModel) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

func aiPromptTitle(tool aiTool) string {
	switch tool {
	case aiToolExpand:
		return "ИИ: РАЗВЕРНУТЬ ТЕКСТ"
	case aiToolWebSummary:
		return "ИИ: САММАРИ СТРАНИЦЫ"
	default:
		return "ИИ: ЧАТ С ЗАМЕТКАМИ"
	}
}

func filterLabel(filter workspace.FilterState) string {
	switch filter.Mode() {
	case workspace.ModeSearch:
		return "поиск «" + filter.Query() + "»"
	case workspace.ModeTag:
		return "тег «" + filter.Tag() + "»"
	default:
		return "нет"
	}
}
