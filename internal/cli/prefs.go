package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mfinvestor/internal/logging"
	"mfinvestor/internal/security"
	"mfinvestor/internal/store"
	"mfinvestor/internal/theme"
)

var errNoStore = errors.New("store unavailable: check the [storage] section of config.toml")

func (a *App) requireStore() (store.KeyValueStore, error) {
	if a.Store == nil {
		return nil, errNoStore
	}
	return a.Store, nil
}

// requireKey returns the store after validating key.
func (a *App) requireKey(key string) (store.KeyValueStore, error) {
	if err := security.ValidateKey(key); err != nil {
		return nil, err
	}
	return a.requireStore()
}

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored light/dark preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the effective theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := theme.Light
			if app.darkMode(cmd) {
				mode = theme.Dark
			}
			return printResult(cmd, "theme", string(mode))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store the theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.requireStore()
			if err != nil {
				return err
			}
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}
			if err := theme.Save(contextOf(cmd), kv, mode); err != nil {
				return err
			}
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]string{"theme": string(mode)})
			}
			output.Success("✓ Theme set to %s", mode)
			return nil
		},
	})

	return cmd
}

func newStoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Read and write client key/value entries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.requireKey(args[0])
			if err != nil {
				return err
			}
			v, err := kv.Get(contextOf(cmd), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, args[0], v)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store value under key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.requireKey(args[0])
			if err != nil {
				return err
			}
			value := security.SanitizeText(args[1])
			if err := kv.Set(contextOf(cmd), args[0], value); err != nil {
				return err
			}
			logger := logging.FromContext(contextOf(cmd))
			logger.Debug().Str("key", args[0]).Str("value", security.LogValue(args[0], value)).Msg("Stored value")
			NewOutput(cmd).Success("✓ Stored %s", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.requireStore()
			if err != nil {
				return err
			}
			lister, ok := kv.(store.Lister)
			if !ok {
				return fmt.Errorf("%s store cannot list keys", app.Config.Storage.Target)
			}
			keys, err := lister.Keys(contextOf(cmd))
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				if keys == nil {
					keys = []string{}
				}
				return output.JSON(keys)
			}
			if len(keys) == 0 {
				output.Info("No keys stored")
				return nil
			}
			for _, k := range keys {
				output.Println(k)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <key>",
		Short: "Remove key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.requireKey(args[0])
			if err != nil {
				return err
			}
			if err := kv.Delete(contextOf(cmd), args[0]); err != nil {
				return err
			}
			NewOutput(cmd).Success("✓ Deleted %s", args[0])
			return nil
		},
	})

	return cmd
}
