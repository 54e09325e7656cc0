package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/config"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "glfwinfo",
		Short: "Inspect the GLFW library and display",
		Long: `glfwinfo loads libglfw at runtime and reports its version, the
connected monitors, Vulkan support and joysticks. The events command opens a
window described by a config profile and prints what GLFW delivers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			glfwgo.SetLogLevel(level)
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "profile file (default: search $XDG_CONFIG_HOME/glfwgo, ~/.config/glfwgo, .)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "glfwgo log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(vulkanCmd)
	rootCmd.AddCommand(joysticksCmd)
	rootCmd.AddCommand(eventsCmd)
}

// withEventLoop initializes GLFW from the profile's event_loop section and
// terminates it after fn returns.
func withEventLoop(fn func(el *glfwgo.EventLoop, profile *config.Profile) error) error {
	profile, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if profile.File != "" {
		glfwgo.Logger().Info("loaded profile", "file", profile.File)
	}

	el, err := glfwgo.Init(profile.EventLoop)
	if err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer el.Terminate()

	return fn(el, profile)
}
