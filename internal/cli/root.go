package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/config"
	"github.com/luismoralesarg/micro-log/internal/logging"
)

// rootOptions holds the persistent flag values applied on top of the layered
// configuration (defaults, JSON file, environment).
type rootOptions struct {
	configPath string
	backend    string
	vaultPath  string
	kvPath     string
	remoteKind string
	verbose    bool
}

func (o *rootOptions) apply(cfg *config.Config) {
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.vaultPath != "" {
		cfg.VaultPath = o.vaultPath
	}
	if o.kvPath != "" {
		cfg.KVPath = o.kvPath
	}
	if o.remoteKind != "" {
		cfg.RemoteKind = o.remoteKind
	}
}

// New builds the microlog command tree.
func New() *cobra.Command {
	o := &rootOptions{}
	var app *App

	cmd := &cobra.Command{
		Use:   "microlog",
		Short: "Personal journaling on the command line.",
		Long: `micro.log keeps dated journal, dream, note, idea and wisdom entries
in a local vault, a key-value store, or an encrypted remote store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(o.configPath)
			if err != nil {
				return err
			}
			o.apply(cfg)

			var log logging.Logger = logging.NewNop()
			if o.verbose {
				log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			app = NewApp(cfg, log)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "path to a JSON config file")
	pf.StringVar(&o.backend, "backend", "", "storage backend: vault, kv or remote")
	pf.StringVar(&o.vaultPath, "vault", "", "filesystem vault root")
	pf.StringVar(&o.kvPath, "kv-path", "", "key-value store directory")
	pf.StringVar(&o.remoteKind, "remote", "", "remote store: s3, postgres or memory")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	appFn := func() *App { return app }
	addAdd(cmd, appFn)
	addList(cmd, appFn)
	addTags(cmd, appFn)
	addPeople(cmd, appFn)
	addIdea(cmd, appFn)
	addHighlight(cmd, appFn)
	addDelete(cmd, appFn)
	addLocation(cmd, appFn)
	addStatus(cmd, appFn)
	addUnlock(cmd, appFn)
	addLock(cmd, appFn)
	addShell(cmd, appFn)

	return cmd
}
