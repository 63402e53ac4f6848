package main

import (
	studyviper "github.com/fwojciec/study/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd constructs the command tree. Flags that mirror configuration
// keys are bound to v so that they take precedence over file and env.
func newRootCmd(a *app) *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "study",
		Short:         "Render lecture notes and ask the study tutor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			cfg, err := studyviper.Load(v)
			if err != nil {
				return err
			}
			a.configure(cfg)
			a.logger.Debug("config loaded", "file", v.ConfigFileUsed(), "api_url", cfg.APIURL, "parser", cfg.Parser)
			return nil
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	pf.String("api-url", "", "backend base URL")
	pf.Bool("debug", false, "log debug output to stderr")
	_ = v.BindPFlag("api_url", pf.Lookup("api-url"))
	_ = v.BindPFlag("debug", pf.Lookup("debug"))

	cmd.AddCommand(newRenderCmd(a, v))
	cmd.AddCommand(newWhoamiCmd(a))
	cmd.AddCommand(newClassesCmd(a))
	cmd.AddCommand(newSubjectsCmd(a, v))
	cmd.AddCommand(newTopicsCmd(a))
	cmd.AddCommand(newLecturesCmd(a))
	cmd.AddCommand(newLectureCmd(a))
	cmd.AddCommand(newAskCmd(a))
	cmd.AddCommand(newChatCmd(a))
	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newLogoutCmd(a))

	return cmd
}
