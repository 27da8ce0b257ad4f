// Package main is the entry point for the xiangqi position-evaluation
// engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/liyu-xiangqi/xiangqi/internal/analyze"
	"github.com/liyu-xiangqi/xiangqi/internal/board"
	"github.com/liyu-xiangqi/xiangqi/internal/config"
	"github.com/liyu-xiangqi/xiangqi/internal/search"
	"github.com/liyu-xiangqi/xiangqi/internal/tui"
	"github.com/liyu-xiangqi/xiangqi/internal/util"
	"github.com/liyu-xiangqi/xiangqi/internal/version"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	fen := flag.String("fen", "", "FEN of the position to evaluate (non-interactive mode)")
	depth := flag.Int("depth", 0, "search depth; 0 uses the configured default")
	runTUI := flag.Bool("tui", false, "launch the interactive Bubble Tea evaluator")
	batchFile := flag.String("batch", "", "path to a file of FENs (one per line) to evaluate in batch")
	showVersion := flag.Bool("version", false, "show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	// Config is loaded once at startup; a missing or malformed file
	// falls back to defaults rather than failing the program.
	cfg := config.LoadConfig()

	effectiveDepth := *depth
	if effectiveDepth <= 0 {
		effectiveDepth = cfg.SearchDepth
	}

	switch {
	case *runTUI:
		os.Exit(runTUIMode(cfg))
	case *batchFile != "":
		os.Exit(runBatchMode(*batchFile, effectiveDepth, cfg))
	case *fen != "":
		os.Exit(runFlagMode(*fen, effectiveDepth))
	default:
		os.Exit(runREPL(effectiveDepth))
	}
}

func printVersion() {
	fmt.Printf("xiangqi %s\n", version.Version)
	fmt.Printf("Build date: %s\n", version.BuildDate)
	fmt.Printf("Git commit: %s\n", version.GitCommit)
}

// runFlagMode evaluates a single FEN given on the command line and exits.
func runFlagMode(fen string, depth int) int {
	b, err := board.BoardFromFEN(fen)
	if err != nil {
		fmt.Printf("Error: invalid FEN: %v\n", err)
		return 1
	}

	e := &search.Engine{}
	result := e.EvalToDepth(b, depth)

	fmt.Printf("score=%s nodes=%d pv=%s\n", result.Score, result.Nodes, formatPV(result.PV))
	return 0
}

// runBatchMode reads one FEN per line from path and evaluates them
// concurrently via internal/analyze, printing one result per line.
func runBatchMode(path string, depth int, cfg config.Config) int {
	file, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error: failed to open batch file: %v\n", err)
		return 1
	}
	defer file.Close()

	var jobs []analyze.Job
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		jobs = append(jobs, analyze.Job{FEN: line, Depth: depth})
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Error: failed to read batch file: %v\n", err)
		return 1
	}

	manager := analyze.NewSessionManager(jobs, cfg.BatchConcurrency)
	results := manager.Run()

	exitCode := 0
	for _, r := range results {
		if r.ParseErr != nil {
			fmt.Printf("fen=%q error=%v\n", r.FEN, r.ParseErr)
			exitCode = 1
			continue
		}
		fmt.Printf("fen=%q score=%s nodes=%d pv=%s\n", r.FEN, r.Score, r.Nodes, formatPV(r.PV))
	}
	return exitCode
}

// runTUIMode launches the interactive Bubble Tea evaluator.
func runTUIMode(cfg config.Config) int {
	model := tui.New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

// runREPL drives an interactive command loop: help, fen, eval, move,
// display, quit. Per-command errors are reported inline; the session
// continues rather than aborting.
func runREPL(depth int) int {
	b := board.NewBoard()
	scanner := bufio.NewScanner(os.Stdin)
	var lastResult search.Result
	haveResult := false

	fmt.Println("xiangqi evaluator REPL. Type 'help' for commands.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])
		args := fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "fen":
			newBoard, err := handleFenCommand(args)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			b = newBoard
		case "eval":
			d := depth
			if len(args) > 0 {
				if parsed, err := strconv.Atoi(args[0]); err == nil && parsed > 0 {
					d = parsed
				}
			}
			e := &search.Engine{}
			result := e.EvalToDepth(b, d)
			lastResult = result
			haveResult = true
			fmt.Printf("score=%s nodes=%d pv=%s\n", result.Score, result.Nodes, formatPV(result.PV))
		case "copy":
			if !haveResult {
				fmt.Println("error: no evaluation to copy yet (run 'eval' first)")
				continue
			}
			text := fmt.Sprintf("%s score=%s pv=%s", b.WriteFEN(), lastResult.Score, formatPV(lastResult.PV))
			if err := util.CopyToClipboard(text); err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Println("copied to clipboard")
		case "move":
			newBoard, err := handleMoveCommand(b, args)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			b = newBoard
		case "display":
			fmt.Println(b.Display())
		case "quit", "exit":
			return 0
		default:
			fmt.Printf("unknown command: %s (type 'help')\n", cmd)
		}
	}

	return 0
}

func handleFenCommand(args []string) (*board.Board, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("usage: fen <FEN string>")
	}
	fen := strings.Join(args, " ")
	return board.BoardFromFEN(fen)
}

func handleMoveCommand(b *board.Board, args []string) (*board.Board, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: move <move text, e.g. a1a4>")
	}

	m, err := board.ParseMoveText(args[0])
	if err != nil {
		return nil, err
	}

	for _, legal := range b.LegalMoves() {
		if legal == m {
			return b.Branch(m), nil
		}
	}
	return nil, fmt.Errorf("illegal move: %s", args[0])
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  help              show this message")
	fmt.Println("  fen <FEN>         load a position from FEN")
	fmt.Println("  eval [depth]      evaluate the current position")
	fmt.Println("  move <move>       apply a legal move, e.g. 'move a1a4'")
	fmt.Println("  copy              copy the last evaluation (FEN + score + PV) to the clipboard")
	fmt.Println("  display           print the current board")
	fmt.Println("  quit              exit the REPL")
}

func formatPV(pv []board.PackedMove) string {
	if len(pv) == 0 {
		return "(none)"
	}
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
