package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hue-recall/internal/core"
	"github.com/vovakirdan/hue-recall/internal/registry"
	"github.com/vovakirdan/hue-recall/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Difficulty  int // Selected difficulty
	MaxUnlocked int // Highest difficulty the player may pick
	Best        int // High score at the selected difficulty
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	styles         menuStyles
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

type menuStyles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	renderer *lipgloss.Renderer
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		item:     r.NewStyle(),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		renderer: r,
	}
}

// NewMenuModel creates a new menu model. Each game starts at its highest
// unlocked difficulty.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		maxUnlocked := 1
		if store != nil {
			if level, err := store.MaxDifficulty(g.ID); err == nil {
				maxUnlocked = level
			}
		}
		item := MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Difficulty:  maxUnlocked,
			MaxUnlocked: maxUnlocked,
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		styles:    newMenuStyles(r),
	}
	for i := range m.items {
		m.refreshBest(i)
	}
	return m
}

// refreshBest reloads the high score shown for an item.
func (m *MenuModel) refreshBest(i int) {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.items[i].GameID, m.items[i].Difficulty); err == nil {
		m.items[i].Best = best
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.changeDifficulty(-1)

	case MenuActionRight:
		m.changeDifficulty(1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// changeDifficulty moves the selected item's difficulty within its unlocked range.
func (m *MenuModel) changeDifficulty(delta int) {
	if len(m.items) == 0 {
		return
	}
	item := &m.items[m.cursor]
	next := core.Clamp(item.Difficulty+delta, 1, item.MaxUnlocked)
	if next != item.Difficulty {
		item.Difficulty = next
		m.refreshBest(m.cursor)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("H U E   R E C A L L"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.hueStrip(21), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Remember the color. Find it again.", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.styles.item
		if i == m.cursor {
			cursor = "> "
			style = m.styles.selected
		}

		line := fmt.Sprintf("%s%-20s  Level %s  Best %d",
			cursor, item.Title, levelPicker(item.Difficulty, item.MaxUnlocked), item.Best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Game  |  Left/Right: Level  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.styles.dim.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// levelPicker shows the selected difficulty with arrows where it can move.
func levelPicker(level, maxUnlocked int) string {
	left, right := " ", " "
	if level > 1 {
		left = "<"
	}
	if level < maxUnlocked {
		right = ">"
	}
	return fmt.Sprintf("%s%d%s", left, level, right)
}

// hueStrip renders n blocks sweeping the hue wheel at constant lightness.
func (m MenuModel) hueStrip(n int) string {
	var b strings.Builder
	for i := range n {
		c := colorful.Hcl(float64(i)*360/float64(n), 0.5, 0.7).Clamped()
		b.WriteString(m.styles.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
		result.Difficulty = m.Selected().Difficulty
	} else {
		result.Quit = true
	}

	return result, nil
}
