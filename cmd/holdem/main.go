package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)

// CLI defines the command-line flags
type CLI struct {
	Config  string        `short:"c" help:"Path to HCL table configuration" default:"holdem.hcl"`
	Hands   int           `short:"n" help:"Number of hands to play" default:"10"`
	Seed    int64         `short:"s" help:"Random seed (0 uses the current time)" default:"0"`
	Timeout time.Duration `short:"t" help:"Per-decision timeout for agents" default:"5s"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal("run failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli CLI, logger *log.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Info("starting table", "table", cfg.Name, "seats", cfg.Seats, "seed", seed)

	fmt.Println(titleStyle.Render(fmt.Sprintf(" ♠ ♥ %s ♦ ♣ ", cfg.Name)))

	players := make([]*game.Player, 0, len(cfg.Players))
	agents := make(map[int]game.Agent, len(cfg.Players))
	for seat, pc := range cfg.Players {
		kind := game.AI
		if pc.Type == "human" {
			kind = game.Human
		}
		player := game.NewPlayer(seat, pc.Name, kind, cfg.StartingStack)
		player.Profile = pc.Profile
		players = append(players, player)

		if kind == game.AI {
			agents[seat] = game.NewEquityBot(pc.Name, pc.Profile, randutil.Child(rng), logger)
		} else {
			// Interactive play is handled by an outer UI layer; human
			// seats run as passive callers here.
			agents[seat] = &game.CallingBot{BotName: pc.Name}
		}
	}

	table := game.NewTable(players, cfg.Blinds(), rng, logger)
	engine := game.NewGameEngine(table, agents, logger,
		game.WithActionTimeout(cli.Timeout))

	sessions := make([]*stats.Session, len(players))
	for seat := range sessions {
		sessions[seat] = stats.NewSession(cfg.BigBlind)
	}

	for i := 0; i < cli.Hands; i++ {
		if countFunded(players) < 2 {
			logger.Info("table is down to one funded player, stopping early")
			break
		}

		before := make([]int, len(players))
		for seat, p := range players {
			before[seat] = p.Stack
		}

		result, err := engine.PlayHand()
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		pot := 0
		for _, payout := range result.Payouts {
			pot += payout.Amount
			logger.Info("payout",
				"hand", result.HandNumber,
				"player", players[payout.Seat].Name,
				"amount", payout.Amount,
				"showdown", result.Showdown)
		}
		for seat, p := range players {
			sessions[seat].Add(stats.Outcome{
				NetChips: p.Stack - before[seat],
				PotSize:  pot,
				Showdown: result.Showdown,
			})
		}
	}

	fmt.Println()
	for seat, p := range players {
		session := sessions[seat]
		line := fmt.Sprintf("%-12s %5d chips  %+6.1f bb/hand over %d hands",
			p.Name, p.Stack, session.Mean(), session.Hands)
		if p.Stack >= cfg.StartingStack {
			line = winnerStyle.Render(line)
		}
		fmt.Println(line)
	}
	return nil
}

func countFunded(players []*game.Player) int {
	funded := 0
	for _, p := range players {
		if p.Stack > 0 {
			funded++
		}
	}
	return funded
}
