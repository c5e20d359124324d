package main

// Global configuration of the editor process. Settings are populated from
// command-line flags during initialization; command bindings and the line
// number style come from the user config file (see userconfig.go).

import (
	"flag"
)

// Configuration holds all adjustable process settings.
type Configuration struct {
	ConfigPath      string // JSON user config with command bindings.
	LineNumbers     string // Overrides the config file when set.
	DefaultTabWidth int    // Spaces inserted by Tab in Insert mode.
	UseLogFile      bool   // Whether to write debug logs to a file.
	LogFilePath     string // Where to store the debug logs.
	NumLogs         int    // How many recent logs to keep in memory.
	DevMode         bool   // Print the recent logs to stderr on exit.
	ShowVersion     bool   // Command-line flag to show version and exit.
	ShowColors      bool   // Draw the color palette and exit.
	ShowInfo        bool   // Print the resolved configuration and exit.
}

// Config is the global configuration instance.
var Config Configuration

// InitConfig sets up command-line flags and parses them into the global
// Config.
func InitConfig() {
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "kass.json"
	}

	flag.StringVar(&Config.ConfigPath, "config", defaultPath, "Path to the JSON config file")
	flag.StringVar(&Config.LineNumbers, "line-numbers", "", "Line numbers: none, absolute or relative")
	flag.IntVar(&Config.DefaultTabWidth, "tab-width", 4, "Default tab width")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", "/tmp/kass-debug.log", "Path to log file")
	flag.IntVar(&Config.NumLogs, "num-logs", 50, "Number of log lines kept in memory")
	flag.BoolVar(&Config.DevMode, "dev", false, "Enable development mode")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")
	flag.BoolVar(&Config.ShowColors, "colors", false, "Show the color palette and theme")
	flag.BoolVar(&Config.ShowInfo, "info", false, "Show the resolved configuration")

	flag.Parse()
}
