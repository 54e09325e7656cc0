package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/config"
)

var vulkanCmd = &cobra.Command{
	Use:   "vulkan",
	Short: "Report Vulkan loader support and required instance extensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventLoop(func(el *glfwgo.EventLoop, _ *config.Profile) error {
			if !el.VulkanSupported() {
				fmt.Println(mutedStyle.Render("Vulkan is not available"))
				return nil
			}
			exts, err := el.RequiredInstanceExtensions()
			if err != nil {
				return err
			}
			rows := make([][]string, len(exts))
			for i, ext := range exts {
				rows[i] = []string{ext}
			}
			fmt.Println(titleStyle.Render("Vulkan is available"))
			fmt.Println(renderTable([]string{"REQUIRED INSTANCE EXTENSION"}, rows))
			return nil
		})
	},
}
