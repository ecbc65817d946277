package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docdistance/internal/domain"
)

// CorpusPort is the TUI-facing subset of the corpus service.
type CorpusPort interface {
	Documents() []domain.Document
	Rank(label string) ([]domain.ScoredTerm, error)
	Nearest(label string, topK int) ([]domain.SearchResult, error)
	CompareWords(w1, w2 string) (domain.Comparison, error)
	InverseDocumentFrequency() (map[string]float64, error)
}

// Options tunes how rankings are rendered.
type Options struct {
	Limit     int
	Precision int
}

// Model is the Bubble Tea model for the corpus explorer.
type Model struct {
	service   CorpusPort
	tokenizer domain.Tokenizer
	opts      Options
	docs      []domain.Document
	input     textinput.Model
	viewport  viewport.Model
	status    string
	cursor    int
	ready     bool
	lastQuery string
}

// New creates a new TUI model instance. Queries are split into terms with
// tokenizer, the same way documents were.
func New(service CorpusPort, tokenizer domain.Tokenizer, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "word1 word2 to compare letters, or a term for its IDF"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if opts.Precision <= 0 {
		opts.Precision = 4
	}
	return Model{
		service:   service,
		tokenizer: tokenizer,
		opts:      opts,
		docs:      service.Documents(),
		input:     ti,
		viewport:  vp,
		status:    "Loaded. Up/Down to switch documents.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + corpus line
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentDocument())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				terms := m.tokenizer.Tokens(q)
				m.status = m.runQuery(terms)
				m.lastQuery = ""
				if len(terms) == 1 {
					m.lastQuery = terms[0]
				}
				m.input.SetValue("")
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		case "down":
			if len(m.docs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.docs)
				m.viewport.SetContent(m.renderCurrentDocument())
				m.viewport.GotoTop()
				return m, nil
			}
		case "up":
			if len(m.docs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.docs)) % len(m.docs)
				m.viewport.SetContent(m.renderCurrentDocument())
				m.viewport.GotoTop()
				return m, nil
			}
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current document.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Document Distance")
	corpus := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(fmt.Sprintf("%d documents in corpus", len(m.docs)))
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + corpus + "\n" + results + "\n" + input + "\n" + status
}

// runQuery interprets the query terms and returns the status message to show.
func (m Model) runQuery(fields []string) string {
	switch len(fields) {
	case 1:
		idf, err := m.service.InverseDocumentFrequency()
		if err != nil {
			return "Error: " + err.Error()
		}
		v, ok := idf[fields[0]]
		if !ok {
			return fmt.Sprintf("%q does not occur in the corpus", fields[0])
		}
		return fmt.Sprintf("IDF(%s) = %.*f", fields[0], m.opts.Precision, v)
	case 2:
		cmp, err := m.service.CompareWords(fields[0], fields[1])
		if err != nil {
			return "Error: " + err.Error()
		}
		return fmt.Sprintf("similarity(%s, %s) = %.2f  most frequent: %s",
			fields[0], fields[1], cmp.Similarity, strings.Join(cmp.MostFrequent, ", "))
	default:
		return "Enter one term or two words."
	}
}

func (m Model) renderCurrentDocument() string {
	if len(m.docs) == 0 {
		return "No documents loaded."
	}
	doc := m.docs[m.cursor]
	var b strings.Builder
	fmt.Fprintf(&b, "Document %d/%d  %s  (%d tokens)\n\n", m.cursor+1, len(m.docs), doc.Label, len(doc.Tokens))

	ranked, err := m.service.Rank(doc.Label)
	if err != nil {
		b.WriteString("TF-IDF unavailable: " + err.Error() + "\n")
	} else {
		b.WriteString(sectionStyle.Render("TF-IDF (ascending)") + "\n")
		shown := ranked
		if m.opts.Limit > 0 && len(shown) > m.opts.Limit {
			// the most distinctive terms sit at the end of the ranking
			shown = shown[len(shown)-m.opts.Limit:]
		}
		for _, st := range shown {
			line := fmt.Sprintf("  %-24s %.*f", st.Term, m.opts.Precision, st.Score)
			if st.Term == m.lastQuery {
				line = highlightStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	nearest, err := m.service.Nearest(doc.Label, 5)
	if err == nil && len(nearest) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Most similar documents") + "\n")
		for _, r := range nearest {
			fmt.Fprintf(&b, "  %.2f  %s\n", r.Score, r.Document.Label)
		}
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sectionStyle   = lipgloss.NewStyle().Underline(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
