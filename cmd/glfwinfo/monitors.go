package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/config"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List connected monitors and their current video modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventLoop(func(el *glfwgo.EventLoop, _ *config.Profile) error {
			primary, _ := el.PrimaryMonitor()
			monitors := el.Monitors()
			if len(monitors) == 0 {
				fmt.Println(mutedStyle.Render("No monitors connected"))
				return nil
			}

			rows := make([][]string, 0, len(monitors))
			for _, m := range monitors {
				row, err := monitorRow(el, m)
				if err != nil {
					return err
				}
				if m == primary {
					row[0] += " *"
				}
				rows = append(rows, row)
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("Monitors on %s", el.Platform())))
			fmt.Println(renderTable([]string{"NAME", "POSITION", "WORKAREA", "SIZE (MM)", "SCALE", "MODE", "MODES"}, rows))
			return nil
		})
	},
}

func monitorRow(el *glfwgo.EventLoop, m glfwgo.MonitorID) ([]string, error) {
	name, err := el.MonitorName(m)
	if err != nil {
		return nil, err
	}
	x, y, err := el.MonitorPos(m)
	if err != nil {
		return nil, err
	}
	wx, wy, ww, wh, err := el.MonitorWorkarea(m)
	if err != nil {
		return nil, err
	}
	mmW, mmH, err := el.MonitorPhysicalSize(m)
	if err != nil {
		return nil, err
	}
	sx, sy, err := el.MonitorContentScale(m)
	if err != nil {
		return nil, err
	}
	mode, err := el.VideoMode(m)
	if err != nil {
		return nil, err
	}
	modes, err := el.VideoModes(m)
	if err != nil {
		return nil, err
	}
	return []string{
		name,
		fmt.Sprintf("%d,%d", x, y),
		fmt.Sprintf("%dx%d+%d+%d", ww, wh, wx, wy),
		fmt.Sprintf("%dx%d", mmW, mmH),
		fmt.Sprintf("%.2fx%.2f", sx, sy),
		formatMode(mode),
		fmt.Sprint(len(modes)),
	}, nil
}

func formatMode(m glfwgo.VideoMode) string {
	return fmt.Sprintf("%dx%d@%dHz (%d%d%d)", m.Width, m.Height, m.RefreshRate, m.RedBits, m.GreenBits, m.BlueBits)
}
