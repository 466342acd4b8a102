package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/ui"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the tasks available to track",
	Args:  cobra.NoArgs,
	RunE:  runTasks,
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts tasks can be attributed to",
	Args:  cobra.NoArgs,
	RunE:  runAccounts,
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the team's full names, for 'stats --user'",
	Args:  cobra.NoArgs,
	RunE:  runUsers,
}

func init() {
	rootCmd.AddCommand(tasksCmd, accountsCmd, usersCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	cat := m.Catalog()
	names := cat.TaskNames()
	tbl := ui.NewTable("TASK", "CADENCES")
	for _, name := range names {
		tbl.Row(name, strings.Join(cat.Cadences(name), ", "))
	}
	fmt.Print(tbl.Render())
	return nil
}

func runAccounts(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	for _, account := range m.Catalog().Accounts {
		fmt.Println(account)
	}
	return nil
}

func runUsers(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	for _, name := range m.Catalog().FullNames() {
		fmt.Println(name)
	}
	return nil
}
