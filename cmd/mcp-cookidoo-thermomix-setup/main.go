package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/setup"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-cookidoo-thermomix-setup",
		Short: "Configure the Cookidoo Thermomix MCP server in Claude Desktop",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				var err error
				configPath, err = setup.ClaudeConfigPath()
				if err != nil {
					return err
				}
			}
			return setup.NewWizard(os.Stdin, os.Stdout, configPath).Run()
		},
	}

	root.Flags().String("config", "", "Claude Desktop config file (default: platform location)")

	if err := root.Execute(); err != nil {
		log.Fatalf("setup: %v", err)
	}
}
