package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/config"
)

var joysticksCmd = &cobra.Command{
	Use:   "joysticks",
	Short: "List connected joysticks and gamepads",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventLoop(func(el *glfwgo.EventLoop, _ *config.Profile) error {
			var rows [][]string
			for j := glfwgo.Joystick1; j <= glfwgo.JoystickLast; j++ {
				if !el.JoystickPresent(j) {
					continue
				}
				kind := "joystick"
				if el.JoystickIsGamepad(j) {
					kind = "gamepad"
				}
				rows = append(rows, []string{
					j.String(),
					el.JoystickName(j),
					el.JoystickGUID(j),
					kind,
					fmt.Sprintf("%d/%d/%d", len(el.JoystickAxes(j)), len(el.JoystickButtons(j)), len(el.JoystickHats(j))),
				})
			}
			if len(rows) == 0 {
				fmt.Println(mutedStyle.Render("No joysticks connected"))
				return nil
			}
			fmt.Println(renderTable([]string{"SLOT", "NAME", "GUID", "TYPE", "AXES/BUTTONS/HATS"}, rows))
			return nil
		})
	},
}
