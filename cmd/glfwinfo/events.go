package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/config"
)

var (
	eventsWindow   string
	eventsDuration time.Duration
	eventsWidth    int
	eventsHeight   int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Open a window and print the events GLFW delivers",
	Long: `Open a window using the hints of a named windows section in the profile
and print every event as it is drained, until the window is closed or the
duration elapses. A zero duration runs until the window is closed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventLoop(func(el *glfwgo.EventLoop, profile *config.Profile) error {
			wcfg, ok := profile.Window(eventsWindow)
			if !ok && eventsWindow != "main" {
				return fmt.Errorf("profile has no window %q", eventsWindow)
			}

			w, err := glfwgo.NewWindow(el, eventsWidth, eventsHeight, "glfwinfo: "+eventsWindow, wcfg)
			if err != nil {
				return fmt.Errorf("failed to create window: %w", err)
			}
			defer w.Destroy()

			fmt.Println(titleStyle.Render(fmt.Sprintf("%s on %s", w.ID(), el.Platform())))
			return pumpEvents(el, w, eventsDuration)
		})
	},
}

func pumpEvents(el *glfwgo.EventLoop, w *glfwgo.Window, d time.Duration) error {
	var deadline time.Time
	if d > 0 {
		deadline = time.Now().Add(d)
	}
	for !w.ShouldClose() {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		for _, ev := range el.WaitEventsTimeout(100 * time.Millisecond) {
			fmt.Println(ev)
			if e, ok := ev.Event.(glfwgo.ErrorEvent); ok {
				fmt.Println(mutedStyle.Render("  " + e.Err.Error()))
			}
		}
	}
	return nil
}

func init() {
	eventsCmd.Flags().StringVarP(&eventsWindow, "window", "w", "main", "windows section of the profile to use")
	eventsCmd.Flags().DurationVarP(&eventsDuration, "duration", "d", 10*time.Second, "how long to run (0 runs until closed)")
	eventsCmd.Flags().IntVar(&eventsWidth, "width", 640, "window width")
	eventsCmd.Flags().IntVar(&eventsHeight, "height", 480, "window height")
}
