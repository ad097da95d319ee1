package cli

import (
	"github.com/spf13/cobra"

	"github.com/longplay45/swissgrid/internal/config"
	"github.com/longplay45/swissgrid/pkg/deploy"
)

// deployCommand creates the deploy command.
func (c *CLI) deployCommand() *cobra.Command {
	var (
		configPath string
		dryRun     bool
		local      string
		remote     string
		excludes   []string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Publish generated assets to a web host over SFTP",
		Long: `Deploy wipes the contents of the configured remote directory and
uploads the local asset tree in its place. Connection and path settings
come from a TOML config file; --local and --remote override it.`,
		Example: `  swissgrid deploy --config deploy.toml
  swissgrid deploy --config deploy.toml --dry-run
  swissgrid deploy --config deploy.toml --exclude '*.map'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDeploy(configPath)
			if err != nil {
				return err
			}
			if local != "" {
				cfg.Local = local
			}
			if remote != "" {
				cfg.Remote = remote
			}

			prog := newProgress(c.Logger)
			c.Logger.Info("connecting", "host", cfg.Host, "user", cfg.User, "port", cfg.Port)

			client, err := deploy.Connect(deploy.Target{
				Host:          cfg.Host,
				Port:          cfg.Port,
				User:          cfg.User,
				Password:      cfg.Password,
				Key:           cfg.Key,
				KeyPassphrase: cfg.KeyPassphrase,
			})
			if err != nil {
				return err
			}
			defer client.Close()

			opts := []deploy.Option{
				deploy.WithLogger(c.Logger),
				deploy.WithExcludes(cfg.Exclude...),
				deploy.WithExcludes(excludes...),
			}
			if dryRun {
				opts = append(opts, deploy.WithDryRun())
			}

			if err := deploy.New(client, opts...).Run(cfg.Local, cfg.Remote); err != nil {
				return err
			}

			if dryRun {
				printSuccess("Dry run complete, remote untouched")
			} else {
				printSuccess("Deployed %s %s %s", cfg.Local, iconArrow, cfg.Host+":"+cfg.Remote)
			}
			prog.done("Deploy finished")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "deploy.toml", "path to the deploy config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log every action without changing the remote")
	cmd.Flags().StringVar(&local, "local", "", "override the local source directory")
	cmd.Flags().StringVar(&remote, "remote", "", "override the remote target directory")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "additional exclude pattern (repeatable)")

	return cmd
}
