package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/store"
)

// redisPasswordEnv holds the redis password so it stays out of shell history.
const redisPasswordEnv = "RESIZABLE_REDIS_PASSWORD"

func redisPassword() string { return os.Getenv(redisPasswordEnv) }

// storeCommand creates the store management command.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage persisted sizes",
	}

	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	cmd.AddCommand(c.storeClearCommand())
	cmd.AddCommand(c.storePathCommand())

	return cmd
}

// storeGetCommand creates the "store get" subcommand.
func (c *CLI) storeGetCommand() *cobra.Command {
	var sf storeFlags
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the size saved under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context(), sf)
			if err != nil {
				return err
			}
			defer st.Close()

			size, ok, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no size saved under %s", args[0])
			}
			printKeyValue("Key", args[0])
			printKeyValue("Width", orDash(size.Width.String()))
			printKeyValue("Height", orDash(size.Height.String()))
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	var sf storeFlags
	cmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Forget the size saved under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context(), sf)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

// storeClearCommand creates the "store clear" subcommand.
func (c *CLI) storeClearCommand() *cobra.Command {
	var sf storeFlags
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved size",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context(), sf)
			if err != nil {
				return err
			}
			defer st.Close()

			if _, ok := st.(*store.NullStore); ok {
				printWarning("No store selected, nothing to clear")
				return nil
			}
			if err := st.Clear(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Cleared saved sizes")
			if fs, ok := st.(*store.FileStore); ok {
				printDetail("Directory: %s", fs.Dir())
			}
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

// storePathCommand creates the "store path" subcommand.
func (c *CLI) storePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default store directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := store.DefaultDir()
			if err != nil {
				return fmt.Errorf("get state dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
