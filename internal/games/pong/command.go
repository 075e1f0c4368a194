package pong

// CommandKind identifies a match-control command.
type CommandKind int

const (
	CommandNewMatch CommandKind = iota
	CommandQuit
)

// Command is a discrete match-control request, consumed at the start of
// the next tick.
type Command struct {
	Kind     CommandKind
	WinScore int  // Threshold for CommandNewMatch
	Manual   bool // Allows a new match while still playing
}

// NewMatchCommand requests a replay with the given threshold.
// It only takes effect once the current match is over.
func NewMatchCommand(winScore int) Command {
	return Command{Kind: CommandNewMatch, WinScore: winScore}
}

// ManualResetCommand restarts the match immediately, whatever its state.
func ManualResetCommand(winScore int) Command {
	return Command{Kind: CommandNewMatch, WinScore: winScore, Manual: true}
}

// QuitCommand asks the platform to leave the game.
func QuitCommand() Command {
	return Command{Kind: CommandQuit}
}

// drainCommands applies every queued command in order and reports whether
// a quit was requested. Commands that are invalid for the current state,
// or name a threshold that is not offered, are dropped.
func (m *Match) drainCommands() (quit bool) {
	for _, cmd := range m.commands {
		switch cmd.Kind {
		case CommandQuit:
			quit = true
		case CommandNewMatch:
			if m.state != StateGameOver && !cmd.Manual {
				continue
			}
			if !m.cfg.AllowsWinScore(cmd.WinScore) {
				continue
			}
			m.startNewMatch(cmd.WinScore)
		}
	}
	m.commands = m.commands[:0]
	return quit
}
