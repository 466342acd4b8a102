package main

import "github.com/CNA-DataTeam/CNA-Logistics-App/internal/config"

func init() {
	rootCmd.Version = config.AppVersion
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
