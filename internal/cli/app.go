// Package cli implements the micro-log command line interface: the cobra
// command tree, the interactive shell, and the wiring from configuration to
// storage backend, session gate and journal service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/config"
	"github.com/luismoralesarg/micro-log/internal/filex"
	"github.com/luismoralesarg/micro-log/internal/logging"
	"github.com/luismoralesarg/micro-log/internal/repositories/journal"
	"github.com/luismoralesarg/micro-log/internal/repositories/remote"
	"github.com/luismoralesarg/micro-log/internal/services"
	"github.com/luismoralesarg/micro-log/internal/session"
)

// App carries the wired-up application state shared by all commands. The
// journal service and its backend are built lazily on first use so that
// commands like "location show" never touch storage.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	accounts *config.AccountStore
	session  *session.Session
	out      io.Writer

	svc    *services.JournalService
	closer func() error
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	if log == nil {
		log = logging.NewNop()
	}
	accounts := config.NewAccountStore(cfg.AccountPath)
	return &App{
		cfg:      cfg,
		log:      log,
		accounts: accounts,
		session:  session.NewSession(accounts, log),
		out:      os.Stdout,
	}
}

// Close flushes pending writes and releases the backend.
func (a *App) Close(ctx context.Context) error {
	var err error
	if a.svc != nil {
		err = a.svc.Flush(ctx)
	}
	a.session.Lock()
	if a.closer != nil {
		if cerr := a.closer(); err == nil {
			err = cerr
		}
	}
	return err
}

// vaultPath resolves the filesystem vault root: an explicit config value
// wins, otherwise the storage location saved in the account record.
func (a *App) vaultPath() (string, error) {
	if a.cfg.VaultPath != "" {
		return a.cfg.VaultPath, nil
	}
	acc, err := a.accounts.Load()
	if err != nil {
		return "", err
	}
	if acc.StorageLocation == "" {
		return "", fmt.Errorf("%w: no storage location, run 'microlog location set <path>'", common.ErrNotConfigured)
	}
	return acc.StorageLocation, nil
}

func (a *App) buildRepository(ctx context.Context) (journal.Repository, error) {
	switch a.cfg.Backend {
	case config.BackendVault:
		root, err := a.vaultPath()
		if err != nil {
			return nil, err
		}
		repo := journal.NewVaultRepository(root, filex.OS{})
		if err := repo.Init(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	case config.BackendKV:
		return journal.NewKVRepository(a.cfg.KVPath), nil

	case config.BackendRemote:
		store, err := a.buildRemoteStore(ctx)
		if err != nil {
			return nil, err
		}
		if err := a.ensureUnlocked(ctx); err != nil {
			return nil, err
		}
		accountID, err := a.session.AccountID()
		if err != nil {
			return nil, err
		}
		return journal.NewRemoteRepository(store, a.session, accountID), nil

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", common.ErrNotConfigured, a.cfg.Backend)
	}
}

func (a *App) buildRemoteStore(ctx context.Context) (remote.Store, error) {
	switch a.cfg.RemoteKind {
	case config.RemoteS3:
		return remote.NewS3Store(ctx, remote.S3Config{
			Bucket:       a.cfg.S3Bucket,
			Region:       a.cfg.S3Region,
			AccessKey:    a.cfg.S3AccessKey,
			SecretKey:    a.cfg.S3SecretKey,
			BaseEndpoint: a.cfg.S3BaseEndpoint,
		})
	case config.RemotePostgres:
		store, err := remote.NewPostgresStore(ctx, a.cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		a.closer = store.Close
		return store, nil
	case config.RemoteMemory:
		return remote.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: unknown remote store %q", common.ErrNotConfigured, a.cfg.RemoteKind)
	}
}

// service returns the journal service, building the backend and loading the
// document on first call. The passphrase gate runs before any data is read
// when a passphrase is configured.
func (a *App) service(ctx context.Context) (*services.JournalService, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	acc, err := a.accounts.Load()
	if err != nil {
		return nil, err
	}
	if acc.HasPassphrase() && !a.session.Unlocked() {
		if err := a.ensureUnlocked(ctx); err != nil {
			return nil, err
		}
	}

	repo, err := a.buildRepository(ctx)
	if err != nil {
		return nil, err
	}
	svc := services.NewJournalService(repo, a.log)
	if err := svc.Reload(ctx); err != nil {
		return nil, err
	}
	a.svc = svc
	return svc, nil
}

// ensureUnlocked prompts for the passphrase and unlocks the session. On a
// first run (no verification hash yet) the entered passphrase becomes the
// account passphrase. Key derivation is deliberately slow, so a spinner
// covers the wait.
func (a *App) ensureUnlocked(ctx context.Context) error {
	if a.session.Unlocked() {
		return nil
	}

	acc, err := a.accounts.Load()
	if err != nil {
		return err
	}
	prompt := "Enter passphrase"
	if !acc.HasPassphrase() {
		prompt = "Choose a passphrase"
	}

	pw, err := GetPassphrase(prompt, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Deriving key..."
	s.Start()
	err = a.session.Unlock(ctx, string(pw))
	s.Stop()

	if errors.Is(err, common.ErrInvalidPassphrase) {
		return fmt.Errorf("passphrase does not match: %w", err)
	}
	return err
}
