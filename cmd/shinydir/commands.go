package shinydir

import (
	"fmt"

	"github.com/arthur-debert/shinydir/pkg/commands"
	rulescmd "github.com/arthur-debert/shinydir/pkg/commands/rules"
	"github.com/arthur-debert/shinydir/pkg/config"
	"github.com/arthur-debert/shinydir/pkg/display"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/arthur-debert/shinydir/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadConfig locates and loads the configuration. Any failure is fatal.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	path, err := paths.FindConfigFile(flags.configPath)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Loading configuration")
	return config.Load(path)
}

func newPresenter(cmd *cobra.Command, cfg *config.Config) *display.Presenter {
	return display.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), style.Options{
		Color:   cfg.Settings.Color,
		Unicode: cfg.Settings.Unicode,
	})
}

func targetArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// dirCompletion completes the optional target argument with directories
func dirCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:               "check [target]",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		Example:           MsgCheckExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			presenter := newPresenter(cmd, cfg)

			result, err := commands.Check(cmd.Context(), commands.CheckOptions{
				Config: cfg,
				Target: targetArg(args),
				OnStart: func(ruleList []*rules.Rule) {
					presenter.Notices(cfg.AutoMove.ScriptWarning && rules.AnyUsesScript(ruleList), false, list)
				},
			})
			if err != nil {
				return err
			}

			if list {
				presenter.List(result.Plan)
			} else {
				presenter.Summary(result.Plan, display.ModeCheck)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, MsgFlagList)
	return cmd
}

func newAutoMoveCmd(flags *globalFlags) *cobra.Command {
	var dry bool

	cmd := &cobra.Command{
		Use:               "auto-move [target]",
		Aliases:           []string{"automove"},
		Short:             MsgAutoMoveShort,
		Long:              MsgAutoMoveLong,
		Example:           MsgAutoMoveExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			presenter := newPresenter(cmd, cfg)

			result, err := commands.AutoMove(cmd.Context(), commands.AutoMoveOptions{
				Config: cfg,
				Target: targetArg(args),
				DryRun: dry,
				OnStart: func(ruleList []*rules.Rule) {
					presenter.Notices(cfg.AutoMove.ScriptWarning && rules.AnyUsesScript(ruleList), dry, false)
				},
			})
			if err != nil {
				return err
			}

			presenter.Summary(result.Plan, display.ModeMove)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dry, "dry", "d", false, MsgFlagDry)
	return cmd
}

func newRulesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "rules [target]",
		Short:             MsgRulesShort,
		Long:              MsgRulesLong,
		GroupID:           "config",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			result, err := commands.ListRules(commands.ListRulesOptions{
				Config: cfg,
				Target: targetArg(args),
			})
			if err != nil {
				return err
			}

			rows := make([]display.RuleRow, 0, len(result.Rules))
			for _, info := range result.Rules {
				rows = append(rows, display.RuleRow{
					Name:      info.Name,
					Directory: info.Directory,
					Strategy:  string(info.Strategy),
					Keep:      rulescmd.Join(info.Keep),
					Exists:    info.Exists,
				})
			}
			return newPresenter(cmd, cfg).RulesTable(rows)
		},
	}
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "config",
	}

	cmd.AddCommand(newConfigInitCmd(flags))
	cmd.AddCommand(newConfigShowCmd(flags))
	cmd.AddCommand(newConfigPathCmd(flags))
	return cmd
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.FindConfigFile(flags.configPath)
			if err != nil {
				return err
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Path:  path,
				Write: !stdout,
			})
			if err != nil {
				return err
			}

			switch {
			case stdout:
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			case result.AlreadyExists:
				fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigExists, paths.ContractHome(result.Path))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, paths.ContractHome(result.Path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, MsgFlagStdout)
	return cmd
}

func newConfigShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.FindConfigFile(flags.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
