package blackjack

// Prompter collects decisions from the person at the keyboard
// Implementations re-ask on malformed input and only return an error when input is gone for good
type Prompter interface {
	// PromptWager asks for a wager. The round re-prompts if the answer is not within 1..bankroll
	PromptWager(bankroll int) (int, error)

	// PromptYesNo asks a yes/no question
	PromptYesNo(message string) (bool, error)
}

// Renderer displays the table
type Renderer interface {
	Render(state *TableState)
}
