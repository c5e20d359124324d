package main

// The entry point of the kass editor. It handles command-line flags, loads the
// user config, initializes the terminal interface (termbox), and runs the main
// editor loop.

import (
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	if Config.ShowColors {
		PrintColors()
		return
	}

	logPath := ""
	if Config.UseLogFile {
		logPath = Config.LogFilePath
	}
	logger := NewLogger(Config.NumLogs, logPath)

	// Bindings and line numbers; problems are reported, never fatal.
	userCfg, cfgErrs := LoadUserConfig(Config.ConfigPath)
	for _, err := range cfgErrs {
		logger.Log("Config", err.Error())
	}
	if Config.LineNumbers != "" {
		mode, err := ParseLineNumberMode(Config.LineNumbers)
		if err != nil {
			cfgErrs = append(cfgErrs, err)
		} else {
			userCfg.LineNumbers = mode
		}
	}

	if Config.ShowInfo {
		PrintInfo(os.Stdout, Config.ConfigPath, userCfg, cfgErrs)
		return
	}

	session := NewSession(SessionOptions{
		Bindings:    userCfg.Bindings,
		LineNumbers: userCfg.LineNumbers,
		TabWidth:    Config.DefaultTabWidth,
		Log:         logger.Log,
	})
	if err := session.Open(flag.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to open file: %v\n", err)
		os.Exit(1)
	}
	if len(cfgErrs) > 0 {
		session.setError("%v", cfgErrs[0])
	}

	// Initialize termbox for TUI handling.
	if err := termbox.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	termbox.SetInputMode(termbox.InputEsc)
	// Use 256 color mode for better aesthetics.
	termbox.SetOutputMode(termbox.Output256)

	HandleEvents(session, NewRenderer(nil))
	termbox.Close()

	if Config.DevMode {
		for _, msg := range logger.Messages() {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
}
