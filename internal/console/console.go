package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blackjack/pkg/deck"
	"blackjack/pkg/playable/blackjack"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// ErrNoInput is returned when the input stream ends before an answer is given
var ErrNoInput = errors.New("no more input")

// Console is the terminal front end for a blackjack session
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer

	// echo writes answers back to out, so piped transcripts read like a session
	echo bool
}

// New returns a console reading from in and writing to out
// Amounts are formatted for locale, a BCP 47 tag; an unknown tag falls back to English
func New(in io.Reader, out io.Writer, locale string) *Console {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		printer: message.NewPrinter(tag),
	}
}

// NewStdio returns a console on stdin/stdout
func NewStdio(locale string) *Console {
	c := New(os.Stdin, os.Stdout, locale)
	c.echo = !term.IsTerminal(int(os.Stdin.Fd()))

	return c
}

// PromptName asks for the player's name
// The answer is NFC normalized; an empty string means the player gave none
func (c *Console) PromptName() (string, error) {
	c.print("Your name: ")
	line, err := c.readLine()
	if err != nil {
		return "", err
	}

	name := strings.ToValidUTF8(line, "")
	return norm.NFC.String(name), nil
}

// PromptWager asks for a wager until a whole number is entered
func (c *Console) PromptWager(bankroll int) (int, error) {
	for {
		c.print("\nYou have %s\nWager: ", c.money(bankroll))
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		wager, err := strconv.Atoi(strings.TrimPrefix(line, "$"))
		if err != nil {
			c.print("Please enter a whole number.\n")
			continue
		}

		if wager <= 0 || wager > bankroll {
			c.print("Wager must be between %s and %s.\n", c.money(1), c.money(bankroll))
		}

		return wager, nil
	}
}

// PromptYesNo asks a yes/no question until it gets an answer it understands
func (c *Console) PromptYesNo(question string) (bool, error) {
	for {
		c.print("%s (y/n): ", question)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes", "т", "так":
			return true, nil
		case "n", "no", "н", "ні":
			return false, nil
		}

		c.print("Please answer y or n.\n")
	}
}

// Render draws the table
// A hand with a face-down card shows its total as [??]
func (c *Console) Render(state *blackjack.TableState) {
	if state.State == blackjack.RoundStateDealing {
		c.print("\n--- Round %d ---\n", state.Round)
	}

	c.print("%s: %s\n", state.DealerName, formatHand(state.DealerHand))
	c.print("%s: %s\n\n", state.PlayerName, formatHand(state.PlayerHand))

	if !state.IsSettled() {
		return
	}

	c.print("%s\n", c.describe(state))
	c.print("--- Round over ---\nBankroll: %s\n", c.money(state.Bankroll))
}

// Summary prints the end of session report
func (c *Console) Summary(stats blackjack.Stats, bankroll int) {
	if bankroll <= 0 {
		c.print("\nOut of money. Game over.\n")
	}

	c.print("\nRounds: %d  Won: %d  Lost: %d  Pushed: %d  Blackjacks: %d\n",
		stats.Rounds, stats.Wins, stats.Losses, stats.Pushes, stats.Blackjacks)
	c.print("Final bankroll: %s\n", c.money(bankroll))
}

func (c *Console) describe(state *blackjack.TableState) string {
	amount := state.Adjustment
	if amount < 0 {
		amount = -amount
	}

	player, dealer, money := state.PlayerName, state.DealerName, c.money(amount)
	switch state.Outcome {
	case blackjack.OutcomePlayerBlackjack:
		return fmt.Sprintf("Blackjack! %s wins %s.", player, money)
	case blackjack.OutcomeDealerBlackjack:
		return fmt.Sprintf("%s has blackjack. %s loses %s.", dealer, player, money)
	case blackjack.OutcomeNaturalPush:
		return "Both have blackjack. Push."
	case blackjack.OutcomePlayerBust:
		return fmt.Sprintf("%s busts and loses %s.", player, money)
	case blackjack.OutcomeDealerBust:
		return fmt.Sprintf("%s busts. %s wins %s.", dealer, player, money)
	case blackjack.OutcomePlayerWins:
		return fmt.Sprintf("%s wins %s.", player, money)
	case blackjack.OutcomeDealerWins:
		return fmt.Sprintf("%s wins. %s loses %s.", dealer, player, money)
	case blackjack.OutcomePush:
		return "Push."
	}

	return state.Outcome.String()
}

func formatHand(h deck.Hand) string {
	if !h.IsRevealed() {
		return h.String() + " [??]"
	}

	return fmt.Sprintf("%s [%d]", h.String(), h.Total())
}

func (c *Console) money(amount int) string {
	return c.printer.Sprintf("$%d", amount)
}

func (c *Console) print(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// readLine returns the next line without its line ending or surrounding space
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// last line without a newline
	case errors.Is(err, io.EOF):
		return "", ErrNoInput
	default:
		return "", err
	}

	line = strings.TrimSpace(line)
	if c.echo {
		c.print("%s\n", line)
	}

	return line, nil
}

var (
	_ blackjack.Prompter = (*Console)(nil)
	_ blackjack.Renderer = (*Console)(nil)
)
