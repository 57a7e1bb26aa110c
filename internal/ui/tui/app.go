package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/addrbook/internal/domain"
)

type contactItem struct {
	rec *domain.Record
}

func (c contactItem) Title() string       { return c.rec.Name().Value() }
func (c contactItem) Description() string { return clampString(phoneList(c.rec), 48) }
func (c contactItem) FilterValue() string { return c.rec.Name().Value() }

// model pages through an address book one batch at a time. Batches already
// pulled from the iterator are kept so the user can step back.
type model struct {
	theme Theme
	deps  Deps

	loading bool
	err     error

	total     int
	it        *domain.BatchIterator
	pages     [][]*domain.Record
	page      int
	exhausted bool

	contacts list.Model
	toast    string
}

// Run starts the interactive browser and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Contacts"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		loading:  true,
		contacts: l,
	}
}

func (m model) Init() tea.Cmd {
	return cmdLoadBook(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.contacts.SetSize(msg.Width-4, msg.Height-16)
		return m, nil

	case bookLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.deps.Logger.Error("browse.load_failed", "book", msg.path, "err", msg.err)
			return m, nil
		}
		it, err := msg.book.Iterator(m.deps.BatchSize)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.deps.Logger.Info("browse.loaded", "book", msg.path, "contacts", msg.book.Len(), "batch", m.deps.BatchSize)
		m.total = msg.book.Len()
		m.it = it
		m.pages = nil
		m.page = 0
		m.exhausted = false
		m.pull()
		return m, m.showPage()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "n", "right", "tab":
			if m.it == nil {
				return m, nil
			}
			if m.page+1 < len(m.pages) {
				m.page++
				m.toast = ""
				return m, m.showPage()
			}
			if m.pull() {
				m.page = len(m.pages) - 1
				m.toast = ""
				return m, m.showPage()
			}
			m.toast = "No more contacts"
			return m, nil

		case "p", "left", "shift+tab":
			if m.page > 0 {
				m.page--
				m.toast = ""
				return m, m.showPage()
			}
			m.toast = "Already at the first batch"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.contacts, cmd = m.contacts.Update(msg)
	return m, cmd
}

// pull fetches the next batch into pages and reports whether one was found.
func (m *model) pull() bool {
	if m.exhausted || m.it == nil {
		return false
	}
	batch, ok := m.it.Next()
	if !ok {
		m.exhausted = true
		return false
	}
	m.pages = append(m.pages, batch)
	if m.it.Remaining() == 0 {
		m.exhausted = true
	}
	return true
}

func (m *model) showPage() tea.Cmd {
	if len(m.pages) == 0 {
		return m.contacts.SetItems(nil)
	}
	batch := m.pages[m.page]
	items := make([]list.Item, 0, len(batch))
	for _, r := range batch {
		items = append(items, contactItem{rec: r})
	}
	m.contacts.Select(0)
	return m.contacts.SetItems(items)
}

func (m model) selected() (*domain.Record, bool) {
	it, ok := m.contacts.SelectedItem().(contactItem)
	if !ok {
		return nil, false
	}
	return it.rec, true
}

func (m model) batchLabel() string {
	if len(m.pages) == 0 {
		return "Batch 0 of 0"
	}
	pages := fmt.Sprint(len(m.pages))
	if !m.exhausted {
		pages += "+"
	}
	return fmt.Sprintf("Batch %d of %s", m.page+1, pages)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("addrbook") + "\n" +
		m.theme.Subtitle.Render(m.deps.BookPath) + "\n"

	switch {
	case m.loading:
		return wrap.Render(header + "\nLoading…")

	case m.err != nil:
		card := m.theme.Card.Render(userMessage(m.err) + "\n\n" + m.theme.Help.Render("q quit"))
		return wrap.Render(header + "\n" + card)

	case m.total == 0:
		card := m.theme.Card.Render("(no contacts found)\n\n" + m.theme.Help.Render("q quit"))
		return wrap.Render(header + "\n" + card)
	}

	status := m.theme.Subtitle.Render(fmt.Sprintf("%s • %d contact(s)", m.batchLabel(), m.total))

	details := ""
	if rec, ok := m.selected(); ok {
		details = "\n" + m.theme.Card.Render(renderContactDetails(rec, m.deps.Now()))
	}

	footer := m.theme.Help.Render("↑/↓ select • n/→ next batch • p/← previous batch • q quit")
	if m.toast != "" {
		footer = m.theme.Subtitle.Render(m.toast) + "\n" + footer
	}

	return wrap.Render(header + "\n" + status + "\n\n" + m.theme.Card.Render(m.contacts.View()) + details + "\n" + footer)
}
