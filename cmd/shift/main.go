// cmd/shift/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/shift/internal/buffer"
	"github.com/bethropolis/shift/internal/config"
	"github.com/bethropolis/shift/internal/drag"
	"github.com/bethropolis/shift/internal/event"
	"github.com/bethropolis/shift/internal/logger"
	"github.com/bethropolis/shift/internal/types"
)

var (
	opName     string
	cursorLine int
	cursorCol  int
	anchorLine int
	anchorCol  int
	extentLine int
	extentCol  int
	count      int
	writeBack  bool
)

func main() {
	// --- Argument & Flag Parsing ---
	flag.StringVar(&opName, "op", "line", "Operation: line, region, region-chars, word")
	flag.IntVar(&cursorLine, "line", 1, "Cursor line (1-based)")
	flag.IntVar(&cursorCol, "col", 1, "Cursor column (1-based)")
	flag.IntVar(&anchorLine, "anchor-line", 0, "Selection anchor line (1-based; enables region ops)")
	flag.IntVar(&anchorCol, "anchor-col", 1, "Selection anchor column (1-based)")
	flag.IntVar(&extentLine, "extent-line", 0, "Selection extent line (1-based)")
	flag.IntVar(&extentCol, "extent-col", 1, "Selection extent column (1-based)")
	flag.IntVar(&count, "n", 0, "Signed move count: negative = up/left, positive = down/right (0 uses configured default, moving down/right)")
	flag.BoolVar(&writeBack, "w", false, "Write the result back to the file instead of stdout")

	cfgFlags := &config.Flags{}
	args := cfgFlags.ParseFlags()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: shift [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	filePath := args[0]

	// --- Configuration & Logger ---
	cfg, err := config.LoadConfig(*cfgFlags.ConfigFilePath, cfgFlags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	logOutput := os.Stderr
	if cfg.Logger.LogFilePath != "" && cfg.Logger.LogFilePath != "-" {
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger.Level(), logOutput)
	cfg.Log()

	// --- Buffer ---
	// Read directly rather than through Load so a trailing newline survives
	// as the final empty line and round-trips exactly.
	content, err := os.ReadFile(filePath)
	if err != nil {
		logger.Fatalf("Failed to read '%s': %v", filePath, err)
	}
	buf := buffer.NewSliceBufferFromString(string(content))

	if count == 0 {
		count = cfg.Drag.DefaultCount
	}

	// --- Engine ---
	events := event.NewManager()
	events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		if data, ok := e.Data.(event.BufferModifiedData); ok {
			logger.Debugf("Buffer modified: %+v", data.Edit)
		}
		return false
	})
	engine := drag.New(drag.WithEventManager(events))

	cursor := types.Position{Line: cursorLine - 1, Col: cursorCol - 1}
	var sel *types.Selection
	if anchorLine > 0 && extentLine > 0 {
		sel = &types.Selection{
			Anchor: types.Position{Line: anchorLine - 1, Col: anchorCol - 1},
			Extent: types.Position{Line: extentLine - 1, Col: extentCol - 1},
		}
	}

	if err := apply(engine, buf, cursor, sel, count); err != nil {
		// Boundary and transposition refusals are user messages, not faults.
		fmt.Fprintf(os.Stderr, "shift: %v\n", err)
		os.Exit(1)
	}

	// --- Output ---
	switch {
	case cfg.Drag.SystemClipboard:
		if err := clipboard.WriteAll(string(buf.Bytes())); err != nil {
			logger.Fatalf("Failed to write clipboard: %v", err)
		}
		logger.Infof("Result placed on system clipboard")
	case writeBack:
		if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
			logger.Fatalf("Failed to write '%s': %v", filePath, err)
		}
		logger.Infof("Wrote result to %s", filePath)
	default:
		os.Stdout.Write(buf.Bytes())
	}
}

// apply routes the requested operation through the engine's dispatchers.
func apply(engine *drag.Engine, buf buffer.Buffer, cursor types.Position, sel *types.Selection, n int) error {
	var err error
	switch opName {
	case "line":
		_, _, err = engine.DragVertical(buf, cursor, nil, n)
	case "region":
		if sel == nil {
			return fmt.Errorf("region op requires -anchor-line and -extent-line")
		}
		_, _, err = engine.DragVertical(buf, cursor, sel, n)
	case "region-chars":
		if sel == nil {
			return fmt.Errorf("region-chars op requires -anchor-line and -extent-line")
		}
		_, _, err = engine.DragHorizontal(buf, cursor, sel, n)
	case "word":
		_, _, err = engine.DragHorizontal(buf, cursor, nil, n)
	default:
		return fmt.Errorf("unknown op '%s'", opName)
	}
	return err
}
