package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/streakcore/engine"
	"github.com/nathoo/streakcore/engine/shop"
	"github.com/nathoo/streakcore/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the StreakCore TUI.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated log lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string   // echoed player input (empty for intro)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	m := New(eng)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the intro text.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		game := m.engine.Catalog.Game

		var lines []string
		lines = append(lines, game.Title+" v"+game.Version+" by "+game.Author)
		lines = append(lines, "")

		if game.Intro != "" {
			lines = append(lines, game.Intro)
			lines = append(lines, "")
		}

		lines = append(lines, "Guess letters one at a time. Type /help for commands.")

		return gameOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - boardHeight - 2 // board + status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	lines, system := m.dispatch(input)
	m = m.appendOutput(gameOutputMsg{input: input, lines: lines, isSystem: system})
	return m, nil
}

// dispatch handles one game command. Returns output lines and whether
// they are system messages.
func (m *Model) dispatch(input string) ([]string, bool) {
	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "shop":
		return m.cmdShop(arg), false

	case "buy":
		return m.cmdBuy(arg)

	case "prestige":
		return m.cmdPrestige()

	case "stats":
		return m.cmdStats(), true

	case "new":
		return m.cmdNew()

	default:
		letters := []rune(strings.ToUpper(cmd))
		if len(letters) == 1 && letters[0] >= 'A' && letters[0] <= 'Z' {
			return m.cmdGuess(letters[0])
		}
		return []string{fmt.Sprintf("Unknown command: %s. Guess a single letter, or type /help.", cmd)}, true
	}
}

func (m *Model) cmdGuess(letter rune) ([]string, bool) {
	eng := m.engine

	if eng.Complete() {
		return []string{"All puzzles solved. Type 'new' to start a fresh run."}, true
	}
	if eng.HasGuessed(letter) {
		return []string{fmt.Sprintf("Already guessed %c.", letter)}, true
	}

	switch eng.Guess(letter) {
	case types.GuessSolved:
		lines := []string{fmt.Sprintf("Solved: %s", eng.Mask())}
		res := eng.Win()
		lines = append(lines, fmt.Sprintf("+$%d. Streak: %d.", res.Earned, eng.Streak()))
		if res.Milestone > 0 {
			lines = append(lines, fmt.Sprintf("Milestone %d reached! A star waits in the buffer.", res.Milestone))
		}
		if eng.CanPrestige() {
			lines = append(lines, "Prestige is available. Type 'prestige' to bank your stars.")
		}
		if !res.Advanced {
			lines = append(lines, "Every puzzle is solved. Type 'new' to start a fresh run.")
		}
		return lines, false

	case types.GuessCorrect:
		return []string{fmt.Sprintf("%c is in the phrase.", letter)}, false

	case types.GuessBlocked:
		return []string{fmt.Sprintf("%c is not in the phrase. Your free guess absorbed the miss.", letter)}, false

	case types.GuessBonusStrike:
		return []string{fmt.Sprintf("%c is not in the phrase. A bonus strike absorbed it (%d left).",
			letter, eng.BonusStrikes())}, false

	case types.GuessStrike:
		return []string{fmt.Sprintf("%c is not in the phrase. Strike %d of %d.",
			letter, eng.StrikeCount(), eng.MaxStrikes())}, false

	case types.GuessGameOver:
		lines := []string{
			"Too many strikes. The run is over.",
			fmt.Sprintf("Final streak: %d.", eng.Streak()),
		}
		eng.Lose()
		lines = append(lines, "A new run begins.")
		return lines, false
	}
	return nil, false
}

func (m *Model) cmdShop(list string) []string {
	var lines []string
	switch list {
	case "":
		lines = append(lines, m.shopList("Upgrades", types.KindUpgrade)...)
		lines = append(lines, m.shopList("Consumables", types.KindConsumable)...)
		if m.engine.StarsDisplayUnlocked() {
			lines = append(lines, m.shopList("Prestige", types.KindPrestige)...)
		}
	case "upgrades":
		lines = m.shopList("Upgrades", types.KindUpgrade)
	case "consumables":
		lines = m.shopList("Consumables", types.KindConsumable)
	case "prestige":
		lines = m.shopList("Prestige", types.KindPrestige)
	default:
		lines = []string{"Shop lists: upgrades, consumables, prestige."}
	}
	return lines
}

func (m *Model) shopList(title string, kind types.ItemKind) []string {
	rows := m.engine.ShopListings(kind)

	lines := []string{title + ":"}
	if len(rows) == 0 {
		return append(lines, "  (nothing for sale)")
	}
	for _, row := range rows {
		var notes []string
		if row.Owned > 0 {
			notes = append(notes, fmt.Sprintf("owned %d", row.Owned))
		}
		if row.Maxed {
			notes = append(notes, "maxed")
		} else if row.Disabled {
			notes = append(notes, "unavailable")
		} else if !row.Afford {
			notes = append(notes, "can't afford")
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " [" + strings.Join(notes, ", ") + "]"
		}
		lines = append(lines, fmt.Sprintf("  %-22s %8s  %s%s",
			row.Item.ID, costLabel(row.Item, row.NextCost), row.Item.Description, suffix))
	}
	return lines
}

func costLabel(item types.ShopItem, cost int) string {
	if item.Currency == types.CurrencyStars {
		return fmt.Sprintf("%d star(s)", cost)
	}
	return fmt.Sprintf("$%d", cost)
}

func (m *Model) cmdBuy(id string) ([]string, bool) {
	if id == "" {
		return []string{"Usage: buy <item-id>. Type 'shop' to see what's for sale."}, true
	}

	item, ok := shop.ItemByID(id)
	if !ok {
		return []string{fmt.Sprintf("No such item: %s.", id)}, true
	}

	var bought bool
	switch item.Kind {
	case types.KindUpgrade:
		bought = m.engine.PurchaseUpgrade(id)
	case types.KindConsumable:
		bought = m.engine.PurchaseConsumable(id)
	case types.KindPrestige:
		bought = m.engine.PurchasePrestigeItem(id)
	}

	if !bought {
		return []string{fmt.Sprintf("Can't buy %s right now.", item.Label)}, true
	}

	lines := []string{fmt.Sprintf("Bought %s.", item.Label)}

	if item.Kind == types.KindConsumable && m.engine.SolvedByConsumable() {
		lines = append(lines, fmt.Sprintf("The reveal finished the phrase: %s", m.engine.Mask()))
		lines = append(lines, "No streak or money for a bought win.")
		if !m.engine.AdvanceUnscored() {
			lines = append(lines, "Every puzzle is solved. Type 'new' to start a fresh run.")
		}
	}
	return lines, false
}

func (m *Model) cmdPrestige() ([]string, bool) {
	if !m.engine.CanPrestige() {
		return []string{fmt.Sprintf("Prestige needs a streak of %d and a star in the buffer.",
			engine.PrestigeUnlockStreak)}, true
	}
	buffer := m.engine.StarBuffer()
	m.engine.Prestige()
	return []string{
		fmt.Sprintf("Prestiged! %d star(s) banked. Total stars: %d.", buffer, m.engine.Stars()),
		"A new run begins.",
	}, false
}

func (m *Model) cmdStats() []string {
	eng := m.engine

	lines := []string{
		fmt.Sprintf("Streak: %d (previous run: %d)", eng.Streak(), eng.PreviousStreak()),
		fmt.Sprintf("Rounds won all-time: %d", eng.TotalRoundsCompleted()),
		fmt.Sprintf("Money: $%d", eng.Money()),
	}
	if eng.StarsDisplayUnlocked() {
		lines = append(lines,
			fmt.Sprintf("Stars: %d (buffer: %d)", eng.Stars(), eng.StarBuffer()),
			fmt.Sprintf("Pending milestones: %v", eng.PendingMilestones()),
			fmt.Sprintf("Banked milestones: %v", eng.PermanentMilestones()))
	}
	if eng.PrestigeCount() > 0 {
		lines = append(lines, fmt.Sprintf("Prestiges: %d", eng.PrestigeCount()))
	}
	return append(lines, fmt.Sprintf("Puzzles left in pool: %d", eng.PoolRemaining()))
}

func (m *Model) cmdNew() ([]string, bool) {
	if !m.engine.Complete() {
		return []string{"A run is already in progress."}, true
	}
	m.engine.NewRun()
	return []string{"A new run begins."}, false
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input)}, false
	}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Game commands:",
		"  <letter>           — Guess a letter",
		"  shop [list]        — Browse the shop (upgrades, consumables, prestige)",
		"  buy <item-id>      — Buy an item",
		"  prestige           — Bank buffered stars and reset the run",
		"  stats              — Show run and lifetime stats",
		"  new                — Start over after solving every puzzle",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	eng := m.engine
	return []string{
		fmt.Sprintf("Streak: %d", eng.Streak()),
		fmt.Sprintf("Money: %d  Stars: %d  Buffer: %d", eng.Money(), eng.Stars(), eng.StarBuffer()),
		fmt.Sprintf("Strikes: %d/%d  Bonus: %d", eng.StrikeCount(), eng.MaxStrikes(), eng.BonusStrikes()),
		fmt.Sprintf("Seed: %d  Pool: %d  Complete: %v", eng.RNG.Seed(), eng.PoolRemaining(), eng.Complete()),
	}
}

// appendOutput adds lines to the log and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + board + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" +
		m.renderBoard() + "\n" +
		m.renderStatusBar() + "\n" +
		m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
