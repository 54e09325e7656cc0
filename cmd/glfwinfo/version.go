package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the GLFW header and library versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		hMajor, hMinor, hRev := glfwgo.HeaderVersion()
		pairs := [][2]string{
			{"glfwinfo", Version},
			{"Header version", fmt.Sprintf("%d.%d.%d", hMajor, hMinor, hRev)},
			{"OS/arch", platform.GOOS() + "/" + platform.GOARCH()},
		}

		backends := make([]string, 0, len(platform.Backends()))
		for _, b := range platform.Backends() {
			backends = append(backends, string(b))
		}
		pairs = append(pairs, [2]string{"Backends", strings.Join(backends, ", ")})

		major, minor, rev, err := glfwgo.LibraryVersion()
		if err != nil {
			pairs = append(pairs, [2]string{"Library", "not loaded: " + err.Error()})
			fmt.Println(renderPairs(pairs))
			return nil
		}
		desc, _ := glfwgo.LibraryVersionString()
		pairs = append(pairs,
			[2]string{"Library path", glfwgo.LibraryPath()},
			[2]string{"Library version", fmt.Sprintf("%d.%d.%d", major, minor, rev)},
			[2]string{"Version string", desc},
		)
		if missing := glfwgo.MissingSymbols(); len(missing) > 0 {
			pairs = append(pairs, [2]string{"Missing symbols", strings.Join(missing, ", ")})
		}

		fmt.Println(renderPairs(pairs))
		return nil
	},
}
