package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	v "github.com/Gobd/inputvalidation"
	"github.com/Gobd/inputvalidation/console"
)

const envPrefix = "FOODMENU"

// app carries what the commands share once flags are parsed.
type app struct {
	cfg *viper.Viper
	log *zap.Logger
}

func defaultMenu() v.MenuConfig {
	return v.MenuConfig{
		Options: []string{
			"Please select one of the following food from the menu.",
			"Apple",
			"Orange",
			"Steak",
			"Fried Chicken",
		},
		Policy: v.DefaultPolicy("\n\t**Invalid Input**\n"),
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "foodmenu",
		Short:         "Pick a food from a numbered menu",
		Long:          "foodmenu shows a numbered menu, re-prompting until a listed item is chosen, and prints the choice.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "menu file (yaml, json or toml) replacing the built-in menu")
	flags.Bool("pause", true, "wait for Enter after an invalid answer")
	flags.Bool("clear", true, "clear the screen before each prompt")
	flags.Int("max-attempts", 0, "give up after this many invalid answers (0 retries forever)")
	flags.Bool("verbose", false, "log every attempt to stderr")

	root.AddCommand(newAgeCmd(a))
	root.AddCommand(newSchemaCmd())
	return root
}

// setup binds flags and environment into viper and builds the logger.
// Keys use the config file's spelling so flags, FOODMENU_* variables and
// the menu file all land on the same settings.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"config":       "config",
		"pause":        "pause",
		"clear":        "clear",
		"max_attempts": "max-attempts",
		"verbose":      "verbose",
	} {
		if err := a.cfg.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "binding --%s", flag)
		}
	}
	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	log, err := newLogger(a.cfg.GetBool("verbose"))
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	a.log = log
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// menuConfig layers the built-in menu (viper defaults), the menu file,
// environment and flags, in increasing precedence.
func (a *app) menuConfig() (v.MenuConfig, error) {
	def := defaultMenu()
	a.cfg.SetDefault("options", def.Options)
	a.cfg.SetDefault("invalid", def.Invalid)

	var cfg v.MenuConfig
	if path := a.cfg.GetString("config"); path != "" {
		a.cfg.SetConfigFile(path)
		if err := a.cfg.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "reading menu file %s", path)
		}
	}
	if err := a.cfg.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding menu settings")
	}
	return cfg, nil
}

func (a *app) console(cmd *cobra.Command) *console.Console {
	return console.New(cmd.InOrStdin(), cmd.OutOrStdout())
}

func (a *app) runMenu(cmd *cobra.Command) error {
	cfg, err := a.menuConfig()
	if err != nil {
		return err
	}
	c := a.console(cmd)
	menu, err := v.NewMenu(c, c, cfg, v.WithLogger(a.log))
	if err != nil {
		return err
	}

	choice, err := menu.Read(cmd.Context())
	if err != nil {
		return err
	}
	a.log.Info("menu selection", zap.Int("choice", choice), zap.String("label", menu.Label(choice)))
	if err := c.WriteLine(fmt.Sprintf("You selected: %s", menu.Label(choice))); err != nil {
		return err
	}
	if cfg.Pause {
		return c.Pause()
	}
	return nil
}
