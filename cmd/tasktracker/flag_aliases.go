package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var startFlagAliases = map[string]string{
	"note":     "notes",
	"acct":     "account",
	"covering": "covering-for",
}

func init() {
	addFlagAliases(startCmd, startFlagAliases)
}

func addFlagAliases(cmd *cobra.Command, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	flags := cmd.Flags()
	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
