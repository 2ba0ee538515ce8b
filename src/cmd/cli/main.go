package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"strlens/src/pkg/api"
	"strlens/src/pkg/config"
	"strlens/src/pkg/consoleutil"
	"strlens/src/pkg/query"
	"strlens/src/pkg/store"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
	version    = "0.1.0" // Will be set during build
)

func main() {
	// Create the root command
	rootCmd := &cobra.Command{
		Use:     "strlens",
		Short:   "strlens - String analysis and lookup",
		Long:    `strlens analyzes strings, stores their computed properties, and answers structured and natural-language filter queries.`,
		Version: version,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")

	// Add commands
	rootCmd.AddCommand(
		newAnalyzeCommand(),
		newGetCommand(),
		newRemoveCommand(),
		newListCommand(),
		newAskCommand(),
		newStatusCommand(),
		newStartCommand(),
		newStopCommand(),
		newConfigCommand(),
	)

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAnalyzeCommand creates the analyze command
func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [string]",
		Short: "Analyze a string and store its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[0]

			// Create API client
			client, err := getClient()
			if err != nil {
				return err
			}

			rec, err := client.Analyze(cmd.Context(), value)
			if err != nil {
				return fmt.Errorf("analyze failed: %w", err)
			}

			fmt.Println(consoleutil.FormatSuccess("String analyzed and stored."))
			fmt.Println("")
			displayRecord(rec)

			return nil
		},
	}

	return cmd
}

// newGetCommand creates the get command
func newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [string]",
		Short: "Look up the stored properties of a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			rec, err := client.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("lookup failed: %w", err)
			}

			displayRecord(rec)
			return nil
		},
	}

	return cmd
}

// newRemoveCommand creates the rm command
func newRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm [string]",
		Aliases: []string{"delete"},
		Short:   "Delete the stored record for a string",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}

			fmt.Println(consoleutil.FormatSuccess("String record deleted."))
			return nil
		},
	}

	return cmd
}

// newListCommand creates the list command with structured filter flags
func newListCommand() *cobra.Command {
	var palindrome string
	var minLength int
	var maxLength int
	var wordCount int
	var containsChar string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored strings, optionally filtered by properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			// Build the filter set from the flags that were actually set
			var filters query.FilterSet
			if cmd.Flags().Changed("palindrome") {
				v, err := strconv.ParseBool(palindrome)
				if err != nil {
					return fmt.Errorf("invalid --palindrome value %q: expected true or false", palindrome)
				}
				filters.IsPalindrome = &v
			}
			if cmd.Flags().Changed("min-length") {
				filters.MinLength = &minLength
			}
			if cmd.Flags().Changed("max-length") {
				filters.MaxLength = &maxLength
			}
			if cmd.Flags().Changed("word-count") {
				filters.WordCount = &wordCount
			}
			if cmd.Flags().Changed("contains") {
				filters.ContainsCharacter = &containsChar
			}

			result, err := client.List(cmd.Context(), filters)
			if err != nil {
				return fmt.Errorf("list failed: %w", err)
			}

			if result.Count == 0 {
				fmt.Println("No strings found.")
				return nil
			}

			fmt.Printf("Found %d string(s):\n\n", result.Count)
			displayRecords(result.Data)

			return nil
		},
	}

	cmd.Flags().StringVar(&palindrome, "palindrome", "", "Filter by palindrome property (true/false)")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Filter by minimum length (inclusive)")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Filter by maximum length (inclusive)")
	cmd.Flags().IntVar(&wordCount, "word-count", 0, "Filter by exact word count")
	cmd.Flags().StringVar(&containsChar, "contains", "", "Filter by contained character (case sensitive)")

	return cmd
}

// newAskCommand creates the ask command for natural-language filter queries
func newAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Query stored strings in natural language",
		Long: `Query stored strings with a free-text filter description, for example:
  strlens ask "all palindromic strings longer than 5 characters"
  strlens ask "single word strings containing the letter z"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.Ask(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}

			fmt.Println(consoleutil.Format("Interpreted filters:", consoleutil.Bold))
			displayFilters(result.InterpretedQuery.ParsedFilters)
			fmt.Println("")

			if result.Count == 0 {
				fmt.Println("No strings matched.")
				return nil
			}

			fmt.Printf("Found %d matching string(s):\n\n", result.Count)
			displayRecords(result.Data)

			return nil
		},
	}

	return cmd
}

// newStatusCommand creates the status command
func newStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			// Check daemon health
			healthy, err := client.Health(cmd.Context())
			if err != nil || !healthy {
				return fmt.Errorf("daemon is not running or not responding. Start the daemon with 'strlens start' before using this command")
			}

			// Get daemon status
			status, err := client.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get daemon status: %w", err)
			}

			fmt.Println(consoleutil.Format("strlens Status", consoleutil.Bold, consoleutil.FgCyan))
			fmt.Println(consoleutil.Format("==============", consoleutil.Bold, consoleutil.FgCyan))
			fmt.Println("")

			rows := [][]string{
				{"Daemon", fmt.Sprintf("%s (Uptime: %s)", status.Status, status.Uptime)},
				{"Version", status.Version},
				{"Stored strings", strconv.Itoa(status.RecordCount)},
			}

			// Configuration values reported by the daemon, in stable order
			keys := make([]string, 0, len(status.Config))
			for k := range status.Config {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				rows = append(rows, []string{k, status.Config[k]})
			}

			fmt.Println(consoleutil.FormatTable(nil, rows, true))

			return nil
		},
	}

	return cmd
}

// newStartCommand creates the start command for the daemon
func newStartCommand() *cobra.Command {
	var foreground bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check if daemon is already running
			client, _ := getClient()
			if client != nil {
				healthy, _ := client.Health(cmd.Context())
				if healthy {
					fmt.Println("strlens daemon is already running.")
					return nil
				}
			}

			// Find strlensd executable
			daemonBin, err := exec.LookPath("strlensd")
			if err != nil {
				return fmt.Errorf("strlensd executable not found in PATH: %w", err)
			}

			fmt.Println("Starting strlens daemon...")

			daemonArgs := []string{}
			if configPath != "" {
				daemonArgs = append(daemonArgs, "--config", configPath)
			}
			if debug {
				daemonArgs = append(daemonArgs, "--debug")
			}

			if foreground {
				// Start daemon in foreground
				daemonCmd := exec.Command(daemonBin, daemonArgs...)
				daemonCmd.Stdout = os.Stdout
				daemonCmd.Stderr = os.Stderr

				return daemonCmd.Run()
			}

			// Start daemon in background
			daemonArgs = append(daemonArgs, "--daemon")
			daemonCmd := exec.Command(daemonBin, daemonArgs...)

			if err := daemonCmd.Start(); err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Println("strlens daemon started in background.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&foreground, "foreground", false, "Run in foreground instead of as daemon")

	return cmd
}

// newStopCommand creates the stop command for the daemon
func newStopCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find daemon process
			daemonProcess, err := findDaemonProcess()
			if err != nil {
				return fmt.Errorf("failed to find daemon process: %w", err)
			}

			if daemonProcess == 0 {
				return fmt.Errorf("daemon is not running. Start the daemon with 'strlens start' before using this command")
			}

			// Send SIGTERM to the daemon
			process, err := os.FindProcess(daemonProcess)
			if err != nil {
				return fmt.Errorf("failed to find process: %w", err)
			}

			fmt.Println("Stopping strlens daemon...")
			if err := process.Signal(os.Interrupt); err != nil {
				return fmt.Errorf("failed to send signal: %w", err)
			}

			fmt.Println("Daemon stopping...")
			return nil
		},
	}

	return cmd
}

// newConfigCommand creates the config command group
func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage strlens configuration",
		Long:  `Create, view, and manage strlens configuration files.`,
	}

	// Add subcommands
	cmd.AddCommand(
		newConfigInitCommand(),
		newConfigViewCommand(),
		newConfigShowPathCommand(),
	)

	return cmd
}

// newConfigInitCommand creates a command to initialize a new config file
func newConfigInitCommand() *cobra.Command {
	var outputPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// If output path not specified, use default
			finalPath := outputPath
			if finalPath == "" && configPath != "" {
				finalPath = configPath
			}

			// Check if file already exists
			if finalPath != "" {
				if _, err := os.Stat(finalPath); err == nil && !force {
					return fmt.Errorf("config file already exists at %s. Use --force to overwrite", finalPath)
				}
			}

			// Create default config
			path, err := config.CreateDefaultConfig(finalPath)
			if err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}

			fmt.Printf("Created default configuration file at: %s\n", path)
			fmt.Println("You may want to edit this file to match your setup.")
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "Path where the config file should be created")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config file if it exists")

	return cmd
}

// newConfigViewCommand creates a command to view the current config
func newConfigViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Display configuration settings
			fmt.Println("strlens Configuration")
			fmt.Println("=====================")

			fmt.Println("\nGeneral Settings:")
			fmt.Printf("Data Directory: %s\n", cfg.General.DataDir)
			fmt.Printf("Debug Mode: %v\n", cfg.General.Debug)

			fmt.Println("\nDaemon Settings:")
			fmt.Printf("PID File: %s\n", cfg.Daemon.PIDFile)
			fmt.Printf("Log File: %s\n", cfg.Daemon.LogFile)
			fmt.Printf("Log Level: %s\n", cfg.Daemon.LogLevel)

			fmt.Println("\nAPI Settings:")
			fmt.Printf("Host: %s\n", cfg.API.Host)
			fmt.Printf("Port: %d\n", cfg.API.Port)

			fmt.Println("\nStorage Settings:")
			fmt.Printf("Database Path: %s\n", cfg.Storage.DatabasePath)

			return nil
		},
	}

	return cmd
}

// newConfigShowPathCommand creates a command to show the config file path
func newConfigShowPathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the current config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			var configFilePath string

			// If config path specified, use it
			if configPath != "" {
				configFilePath = configPath
			} else {
				// Fall back to default location
				homeDir, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("failed to get user home directory: %w", err)
				}
				configFilePath = filepath.Join(homeDir, ".config", "strlens", "config.yaml")
			}

			// Check if the file exists
			_, err := os.Stat(configFilePath)
			if os.IsNotExist(err) {
				fmt.Printf("Config file does not exist at: %s\n", configFilePath)
				fmt.Println("Run 'strlens config init' to create a default config file.")
				return nil
			}

			fmt.Printf("Config file path: %s\n", configFilePath)
			return nil
		},
	}

	return cmd
}

// getClient returns an API client configured from settings
func getClient() (*api.Client, error) {
	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create API client
	return api.NewClient(cfg.GetAPIURL()), nil
}

// findDaemonProcess attempts to find the daemon process ID
func findDaemonProcess() (int, error) {
	cmd := exec.Command("pgrep", "strlensd")
	output, err := cmd.Output()
	if err != nil {
		// pgrep returns 1 when no processes match
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return 0, nil
		}
		return 0, err
	}

	var pid int
	_, err = fmt.Sscanf(string(output), "%d", &pid)
	if err != nil {
		return 0, err
	}

	return pid, nil
}

// displayRecord prints the full property table for one stored string
func displayRecord(rec *store.Record) {
	rows := [][]string{
		{"Value", rec.Value},
		{"Length", strconv.Itoa(rec.Properties.Length)},
		{"Palindrome", strconv.FormatBool(rec.Properties.IsPalindrome)},
		{"Unique characters", strconv.Itoa(rec.Properties.UniqueCharacters)},
		{"Word count", strconv.Itoa(rec.Properties.WordCount)},
		{"SHA-256", rec.Properties.SHA256Hash},
		{"Frequency map", formatFrequencyMap(rec.Properties.CharacterFrequency)},
		{"Created at", rec.CreatedAt.Local().Format("2006-01-02 15:04:05")},
	}

	fmt.Println(consoleutil.FormatTable(nil, rows, true))
}

// displayRecords prints a compact listing of multiple records
func displayRecords(records []store.Record) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		props := fmt.Sprintf("len=%d words=%d palindrome=%v",
			rec.Properties.Length, rec.Properties.WordCount, rec.Properties.IsPalindrome)
		rows = append(rows, []string{truncateString(rec.Value, 48), props})
	}

	fmt.Println(consoleutil.FormatTable([]string{"Value", "Properties"}, rows, true))
}

// displayFilters prints the filters parsed from a natural-language query
func displayFilters(filters query.FilterSet) {
	if filters.IsEmpty() {
		fmt.Println("  (none)")
		return
	}

	if filters.IsPalindrome != nil {
		fmt.Printf("  palindrome: %v\n", *filters.IsPalindrome)
	}
	if filters.MinLength != nil {
		fmt.Printf("  min length: %d\n", *filters.MinLength)
	}
	if filters.MaxLength != nil {
		fmt.Printf("  max length: %d\n", *filters.MaxLength)
	}
	if filters.WordCount != nil {
		fmt.Printf("  word count: %d\n", *filters.WordCount)
	}
	if filters.ContainsCharacter != nil {
		fmt.Printf("  contains character: %q\n", *filters.ContainsCharacter)
	}
}

// formatFrequencyMap renders a character frequency map in stable key order
func formatFrequencyMap(freq map[string]int) string {
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, freq[k]))
	}

	return strings.Join(parts, " ")
}

// truncateString shortens a string for display purposes
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
