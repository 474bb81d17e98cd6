package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"paneldeck/app"
	"paneldeck/config"
	"paneldeck/inspect"
	"paneldeck/log"
	"paneldeck/workspace"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version   = "0.3.0"
	debugFlag bool
	rootCmd   = &cobra.Command{
		Use:   "paneldeck",
		Short: "paneldeck - Side-by-side resizable panels, tabs and windows in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if debugFlag {
				_ = os.Setenv("PANELDECK_DEBUG", "1")
			}
			log.Initialize(debugFlag)
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("paneldeck must be run in a terminal")
			}
			// Ask once up front; bubbletea owns stdin after the program starts.
			lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())

			return app.Run(ctx)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset all stored windows and workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			storage := workspace.NewStorage(config.LoadState())
			if err := storage.DeleteAll(); err != nil {
				return fmt.Errorf("failed to reset storage: %w", err)
			}
			fmt.Println("Storage has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("State: %s\n", filepath.Join(configDir, config.StateFileName))
			fmt.Printf("Inspect: %s (%s=1 to enable)\n", inspect.OutputPath(), inspect.EnvInspect)
			return nil
		},
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Print a snapshot of the focused workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			deck, err := workspace.NewStorage(config.LoadState()).LoadDeck(cfg.MaxWindows, cfg.MaxTabs)
			if err != nil {
				return fmt.Errorf("failed to load windows: %w", err)
			}
			if deck == nil {
				return errors.New("no stored workspaces")
			}
			snapshot, err := workspace.EncodeSnapshot(deck.FocusedWindow().SelectedTab())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}

	importCmd = &cobra.Command{
		Use:   "import [snapshot]",
		Short: "Add a workspace from a snapshot to the focused window",
		Long:  "Add a workspace from a snapshot to the focused window. The snapshot is read from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read snapshot: %w", err)
				}
				raw = string(data)
			}
			ws, err := workspace.DecodeSnapshot(strings.TrimSpace(raw))
			if err != nil {
				return err
			}

			cfg := config.LoadConfig()
			storage := workspace.NewStorage(config.LoadState())
			deck, err := storage.LoadDeck(cfg.MaxWindows, cfg.MaxTabs)
			if err != nil {
				return fmt.Errorf("failed to load windows: %w", err)
			}
			if deck == nil {
				deck = workspace.NewDeck(ws, cfg.MaxWindows, cfg.MaxTabs)
			} else if err := deck.FocusedWindow().Add(ws); err != nil {
				return err
			}
			if err := storage.SaveDeck(deck); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported workspace '%s'\n", ws.Title)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of paneldeck",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("paneldeck version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"Write layout, drag and input traces to the debug log")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
