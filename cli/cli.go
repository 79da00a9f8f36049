// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the StreakCore game engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/nathoo/streakcore/engine"
	"github.com/nathoo/streakcore/engine/shop"
	"github.com/nathoo/streakcore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the intro and the first board,
// then loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.Engine.Catalog.Game.Intro != "" {
		c.printLine(c.Engine.Catalog.Game.Intro)
		c.printLine("")
	}

	c.printBoard()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		if c.dispatch(input) {
			return
		}
	}
}

// dispatch handles one game command. Returns true if the game should exit.
func (c *CLI) dispatch(input string) bool {
	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "shop":
		c.cmdShop(arg)

	case "buy":
		c.cmdBuy(arg)

	case "prestige":
		c.cmdPrestige()

	case "stats":
		c.cmdStats()

	case "new":
		c.cmdNew()

	default:
		letters := []rune(strings.ToUpper(cmd))
		if len(letters) == 1 && letters[0] >= 'A' && letters[0] <= 'Z' {
			c.cmdGuess(letters[0])
		} else {
			c.printSystem(fmt.Sprintf("Unknown command: %s. Guess a single letter, or type /help.", cmd))
		}
	}
	return false
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input))
	}
	return false
}

func (c *CLI) cmdGuess(letter rune) {
	if c.Engine.Complete() {
		c.printSystem("All puzzles solved. Type 'new' to start a fresh run.")
		return
	}
	if c.Engine.HasGuessed(letter) {
		c.printSystem(fmt.Sprintf("Already guessed %c.", letter))
		return
	}

	switch c.Engine.Guess(letter) {
	case types.GuessSolved:
		c.printLine(fmt.Sprintf("Solved: %s", c.Engine.Mask()))
		res := c.Engine.Win()
		c.printLine(fmt.Sprintf("+$%d. Streak: %d.", res.Earned, c.Engine.Streak()))
		if res.Milestone > 0 {
			c.printLine(fmt.Sprintf("Milestone %d reached! A star waits in the buffer.", res.Milestone))
		}
		if c.Engine.CanPrestige() {
			c.printLine("Prestige is available. Type 'prestige' to bank your stars.")
		}
		if !res.Advanced {
			c.printLine("Every puzzle is solved. Type 'new' to start a fresh run.")
			return
		}
		c.printLine("")
		c.printBoard()

	case types.GuessCorrect:
		c.printBoard()

	case types.GuessBlocked:
		c.printLine(fmt.Sprintf("%c is not in the phrase. Your free guess absorbed the miss.", letter))

	case types.GuessBonusStrike:
		c.printLine(fmt.Sprintf("%c is not in the phrase. A bonus strike absorbed it (%d left).",
			letter, c.Engine.BonusStrikes()))

	case types.GuessStrike:
		c.printLine(fmt.Sprintf("%c is not in the phrase. Strike %d of %d.",
			letter, c.Engine.StrikeCount(), c.Engine.MaxStrikes()))

	case types.GuessGameOver:
		c.printLine("Too many strikes. The run is over.")
		c.printLine(fmt.Sprintf("Final streak: %d.", c.Engine.Streak()))
		c.Engine.Lose()
		c.printLine("")
		c.printLine("A new run begins.")
		c.printBoard()
	}
}

func (c *CLI) cmdShop(list string) {
	switch list {
	case "":
		c.printShopList("Upgrades", c.Engine.ShopListings(types.KindUpgrade))
		c.printShopList("Consumables", c.Engine.ShopListings(types.KindConsumable))
		if c.Engine.StarsDisplayUnlocked() {
			c.printShopList("Prestige", c.Engine.ShopListings(types.KindPrestige))
		}
	case "upgrades":
		c.printShopList("Upgrades", c.Engine.ShopListings(types.KindUpgrade))
	case "consumables":
		c.printShopList("Consumables", c.Engine.ShopListings(types.KindConsumable))
	case "prestige":
		c.printShopList("Prestige", c.Engine.ShopListings(types.KindPrestige))
	default:
		c.printSystem("Shop lists: upgrades, consumables, prestige.")
	}
}

func (c *CLI) printShopList(title string, rows []shop.Listing) {
	c.printLine(title + ":")
	if len(rows) == 0 {
		c.printLine("  (nothing for sale)")
		return
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
		c.printLine(fmt.Sprintf("  %-22s %8s  %s%s",
			row.Item.ID, costLabel(row.Item, row.NextCost), row.Item.Description, suffix))
	}
}

func costLabel(item types.ShopItem, cost int) string {
	if item.Currency == types.CurrencyStars {
		return fmt.Sprintf("%d star(s)", cost)
	}
	return fmt.Sprintf("$%d", cost)
}

func (c *CLI) cmdBuy(id string) {
	if id == "" {
		c.printSystem("Usage: buy <item-id>. Type 'shop' to see what's for sale.")
		return
	}

	item, ok := shop.ItemByID(id)
	if !ok {
		c.printSystem(fmt.Sprintf("No such item: %s.", id))
		return
	}

	var bought bool
	switch item.Kind {
	case types.KindUpgrade:
		bought = c.Engine.PurchaseUpgrade(id)
	case types.KindConsumable:
		bought = c.Engine.PurchaseConsumable(id)
	case types.KindPrestige:
		bought = c.Engine.PurchasePrestigeItem(id)
	}

	if !bought {
		c.printSystem(fmt.Sprintf("Can't buy %s right now.", item.Label))
		return
	}

	c.printLine(fmt.Sprintf("Bought %s.", item.Label))

	if item.Kind == types.KindConsumable && c.Engine.SolvedByConsumable() {
		c.printLine(fmt.Sprintf("The reveal finished the phrase: %s", c.Engine.Mask()))
		c.printLine("No streak or money for a bought win.")
		if !c.Engine.AdvanceUnscored() {
			c.printLine("Every puzzle is solved. Type 'new' to start a fresh run.")
			return
		}
		c.printLine("")
	}
	c.printBoard()
}

func (c *CLI) cmdPrestige() {
	if !c.Engine.CanPrestige() {
		c.printSystem(fmt.Sprintf("Prestige needs a streak of %d and a star in the buffer.",
			engine.PrestigeUnlockStreak))
		return
	}
	buffer := c.Engine.StarBuffer()
	c.Engine.Prestige()
	c.printLine(fmt.Sprintf("Prestiged! %d star(s) banked. Total stars: %d.", buffer, c.Engine.Stars()))
	c.printLine("")
	c.printLine("A new run begins.")
	c.printBoard()
}

func (c *CLI) cmdStats() {
	c.printSystem(fmt.Sprintf("Streak: %d (previous run: %d)", c.Engine.Streak(), c.Engine.PreviousStreak()))
	c.printSystem(fmt.Sprintf("Rounds won all-time: %d", c.Engine.TotalRoundsCompleted()))
	c.printSystem(fmt.Sprintf("Money: $%d", c.Engine.Money()))
	if c.Engine.StarsDisplayUnlocked() {
		c.printSystem(fmt.Sprintf("Stars: %d (buffer: %d)", c.Engine.Stars(), c.Engine.StarBuffer()))
		c.printSystem(fmt.Sprintf("Pending milestones: %v", c.Engine.PendingMilestones()))
		c.printSystem(fmt.Sprintf("Banked milestones: %v", c.Engine.PermanentMilestones()))
	}
	if c.Engine.PrestigeCount() > 0 {
		c.printSystem(fmt.Sprintf("Prestiges: %d", c.Engine.PrestigeCount()))
	}
	c.printSystem(fmt.Sprintf("Puzzles left in pool: %d", c.Engine.PoolRemaining()))
}

func (c *CLI) cmdNew() {
	if !c.Engine.Complete() {
		c.printSystem("A run is already in progress.")
		return
	}
	c.Engine.NewRun()
	c.printLine("A new run begins.")
	c.printBoard()
}

func (c *CLI) cmdHelp() {
	help := []string{
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
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	c.printSystem(fmt.Sprintf("Streak: %d", c.Engine.Streak()))
	c.printSystem(fmt.Sprintf("Money: %d  Stars: %d  Buffer: %d",
		c.Engine.Money(), c.Engine.Stars(), c.Engine.StarBuffer()))
	c.printSystem(fmt.Sprintf("Strikes: %d/%d  Bonus: %d",
		c.Engine.StrikeCount(), c.Engine.MaxStrikes(), c.Engine.BonusStrikes()))
	c.printSystem(fmt.Sprintf("Seed: %d  Pool: %d  Complete: %v",
		c.Engine.RNG.Seed(), c.Engine.PoolRemaining(), c.Engine.Complete()))
}

// printBoard renders the puzzle mask, topic, guesses, and strikes.
func (c *CLI) printBoard() {
	c.printLine(fmt.Sprintf("Topic: %s", c.Engine.Topic()))
	c.printLine(fmt.Sprintf("  %s", spaced(c.Engine.Mask())))

	guessed := c.Engine.GuessedLetters()
	if len(guessed) > 0 {
		c.printLine(fmt.Sprintf("Guessed: %s", string(guessed)))
	}

	status := fmt.Sprintf("Strikes: %d/%d  $%d  Streak: %d",
		c.Engine.StrikeCount(), c.Engine.MaxStrikes(), c.Engine.Money(), c.Engine.Streak())
	if c.Engine.BonusStrikes() > 0 {
		status += fmt.Sprintf("  Bonus: %d", c.Engine.BonusStrikes())
	}
	if c.Engine.FreeGuessActive() {
		status += "  Free guess armed"
	}
	if c.Engine.StarsDisplayUnlocked() {
		status += fmt.Sprintf("  Stars: %d (+%d)", c.Engine.Stars(), c.Engine.StarBuffer())
	}
	c.printLine(status)
}

// spaced widens a mask for readability: letters and underscores get a
// trailing space, word gaps get three.
func spaced(mask string) string {
	var b strings.Builder
	for _, r := range mask {
		if r == ' ' {
			b.WriteString("   ")
			continue
		}
		b.WriteRune(r)
		b.WriteRune(' ')
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
