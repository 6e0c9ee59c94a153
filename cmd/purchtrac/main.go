// Command purchtrac manages tracked purchases, site credentials and memos in a
// local database. It is the composition root: every component is wired here
// with explicit constructor arguments.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jhpk/purchtrac/internal/auth"
	"github.com/jhpk/purchtrac/internal/config"
	pkgcrypto "github.com/jhpk/purchtrac/internal/crypto"
	"github.com/jhpk/purchtrac/internal/errs"
	"github.com/jhpk/purchtrac/internal/migrate"
	"github.com/jhpk/purchtrac/internal/model"
	reposqlite "github.com/jhpk/purchtrac/internal/repository/sqlite"
	"github.com/jhpk/purchtrac/internal/service"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const cipherSaltKey = "cipher.key_salt"

// app bundles the wired services for command dispatch.
type app struct {
	users    service.UserService
	accounts service.AccountService
	products service.ProductService
	memos    service.MemoService
	gate     *auth.Gate
	settings *storage.SettingsDAO
}

func main() {
	dbPath := flag.String("db", "", "database file (overrides PURCHTRAC_DB)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if cfg.GateKey == "" {
		logger.Fatal("missing gate signing key (PURCHTRAC_GATE_KEY)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer db.Close()

	if err := migrate.Up(ctx, db.DB); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// Repositories
	userRepo := reposqlite.NewUserRepo(db)
	accountRepo := reposqlite.NewAccountRepo(db)
	productRepo := reposqlite.NewProductRepo(db)
	memoRepo := reposqlite.NewMemoRepo(db)

	// Services
	seeds := make([]service.DefaultUser, 0, len(cfg.DefaultUsers))
	for _, s := range cfg.DefaultUsers {
		typ, err := model.ParseUserType(s.Type)
		if err != nil {
			logger.Fatal("bad default user config", zap.String("type", s.Type), zap.Error(err))
		}
		seeds = append(seeds, service.DefaultUser{Name: s.Name, Type: typ})
	}
	appSvc := service.NewAppService(userRepo, seeds)

	settings := storage.NewSettingsDAO(db)
	lim := auth.NewAttemptLimiter(15*time.Minute, 5, 15*time.Minute)
	gate := auth.NewGate(settings, []byte(cfg.GateKey), cfg.GateTTL, lim)

	a := &app{
		users:    service.NewUserService(userRepo),
		accounts: service.NewAccountService(accountRepo),
		products: service.NewProductService(productRepo),
		memos:    service.NewMemoService(memoRepo),
		gate:     gate,
		settings: settings,
	}

	logger.Info("starting", zap.String("version", version), zap.String("buildDate", buildDate),
		zap.String("db", cfg.DBPath))

	if err := appSvc.Initialize(ctx); err != nil {
		logger.Fatal("initialize app", zap.Error(err))
	}

	if flag.NArg() == 0 {
		printUsage()
		return
	}
	if err := a.run(ctx, flag.Args()); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`usage: purchtrac [-db file] <command> [options]

  setpass -p <passphrase>                     enroll the gate passphrase
  unlock -p <passphrase>                      open a gate session
  users                                       list users
  user-add -name <n> -type <SELF|MOTHER|FATHER>
  user-rm -id <id>                            delete user and everything it owns
  memos [-q <query>] [-important]             list/search memos
  memo-add -user <id> -title <t> [-content <c>]
  memo-toggle -id <id>                        flip importance
  memo-rm -id <id>
  products [-q <query>] [-status <s>]         list/search products
  product-add -user <id> -name <n> -price <p> -site <s> -release <2006-01-02>
  product-toggle -id <id>                     flip reminder
  product-status -id <id> -status <s>
  product-rm -id <id>
  accounts [-q <query>] [-show]               list credentials (gate session required)
  account-add -user <id> -site <s> -username <u> -password <p> [-url <u>] [-notes <n>]
  account-rm -id <id>
  watch -what <memos|products|users|accounts>  stream snapshots until interrupted`)
}

// ---- session cache (token + cipher key) ----

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "purchtrac")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "purchtrac")
}

func saveSession(token string, key []byte) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(cfgDir(), "token"), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cfgDir(), "key.bin"), key, 0o600)
}

func loadSession() (string, []byte, error) {
	token, err := os.ReadFile(filepath.Join(cfgDir(), "token"))
	if err != nil {
		return "", nil, errors.New("no session (unlock required)")
	}
	key, err := os.ReadFile(filepath.Join(cfgDir(), "key.bin"))
	if err != nil {
		return "", nil, errors.New("no session key (unlock required)")
	}
	return string(token), key, nil
}

// openSession checks the gate before any credential read.
func (a *app) openSession() (*pkgcrypto.Cipher, error) {
	token, key, err := loadSession()
	if err != nil {
		return nil, err
	}
	if err := a.gate.Require(token); err != nil {
		return nil, err
	}
	return pkgcrypto.NewCipher(key)
}

func (a *app) run(ctx context.Context, args []string) error {
	switch cmd := args[0]; cmd {
	case "setpass":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		p := fs.String("p", "", "passphrase")
		_ = fs.Parse(args[1:])
		if *p == "" {
			return errors.New("need -p")
		}
		if err := a.gate.SetPassphrase(ctx, *p); err != nil {
			return err
		}
		// one cipher salt per database, created on first enrollment
		salt, err := a.settings.Get(ctx, cipherSaltKey)
		if err != nil {
			return err
		}
		if salt == nil {
			salt, err = pkgcrypto.RandBytes(16)
			if err != nil {
				return err
			}
			if err := a.settings.Put(ctx, cipherSaltKey, salt); err != nil {
				return err
			}
		}
		fmt.Println("ok")
		return nil

	case "unlock":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		p := fs.String("p", "", "passphrase")
		_ = fs.Parse(args[1:])
		if *p == "" {
			return errors.New("need -p")
		}
		token, err := a.gate.Unlock(ctx, *p)
		if err != nil {
			if errors.Is(err, errs.ErrRateLimited) {
				return errors.New("too many attempts, try again later")
			}
			return err
		}
		salt, err := a.settings.Get(ctx, cipherSaltKey)
		if err != nil {
			return err
		}
		if salt == nil {
			return errors.New("no cipher salt (run setpass first)")
		}
		if err := saveSession(token, pkgcrypto.DeriveKey([]byte(*p), salt)); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil

	case "users":
		users, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%d\t%s\t%s\n", u.ID, u.Name, u.Type)
		}
		return nil

	case "user-add":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		name := fs.String("name", "", "display name")
		typ := fs.String("type", "", "SELF|MOTHER|FATHER")
		_ = fs.Parse(args[1:])
		t, err := model.ParseUserType(*typ)
		if err != nil {
			return err
		}
		id, err := a.users.Save(ctx, model.User{Name: *name, Type: t})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "user-rm":
		return a.deleteByID(ctx, args[1:], a.users.Delete)

	case "memos":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		q := fs.String("q", "", "search query")
		important := fs.Bool("important", false, "only important memos")
		_ = fs.Parse(args[1:])
		var (
			memos []model.Memo
			err   error
		)
		switch {
		case *q != "":
			memos, err = a.memos.Search(ctx, *q)
		case *important:
			memos, err = a.memos.ListImportant(ctx)
		default:
			memos, err = a.memos.List(ctx)
		}
		if err != nil {
			return err
		}
		for _, m := range memos {
			mark := " "
			if m.Important {
				mark = "*"
			}
			fmt.Printf("%d\t%s %s\t%s\n", m.ID, mark, m.Title, m.UpdatedAt.Format(time.DateTime))
		}
		return nil

	case "memo-add":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		user := fs.Int64("user", 0, "owning user id")
		title := fs.String("title", "", "title")
		content := fs.String("content", "", "content")
		_ = fs.Parse(args[1:])
		now := time.Now()
		id, err := a.memos.Save(ctx, model.Memo{
			UserID:    *user,
			Title:     *title,
			Content:   *content,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "memo-toggle":
		return a.toggleByID(ctx, args[1:], a.memos.ToggleImportant)

	case "memo-rm":
		return a.deleteByID(ctx, args[1:], a.memos.Delete)

	case "products":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		q := fs.String("q", "", "search query")
		status := fs.String("status", "", "PLANNED|PURCHASED|CANCELED")
		_ = fs.Parse(args[1:])
		var (
			products []model.Product
			err      error
		)
		switch {
		case *q != "":
			products, err = a.products.Search(ctx, *q)
		case *status != "":
			st, perr := model.ParseProductStatus(*status)
			if perr != nil {
				return perr
			}
			products, err = a.products.ListByStatus(ctx, st)
		default:
			products, err = a.products.List(ctx)
		}
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%d\t%s\t%.2f\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Price, p.SiteName, p.Status, p.ReleaseDate.Format(time.DateOnly))
		}
		return nil

	case "product-add":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		user := fs.Int64("user", 0, "owning user id")
		name := fs.String("name", "", "product name")
		price := fs.Float64("price", 0, "price")
		site := fs.String("site", "", "site name")
		release := fs.String("release", "", "release date (2006-01-02)")
		desc := fs.String("desc", "", "description")
		url := fs.String("url", "", "site url")
		_ = fs.Parse(args[1:])
		rel, err := time.Parse(time.DateOnly, *release)
		if err != nil {
			return fmt.Errorf("bad -release: %w", err)
		}
		now := time.Now()
		id, err := a.products.Save(ctx, model.Product{
			UserID:          *user,
			Name:            *name,
			Description:     *desc,
			Price:           *price,
			SiteName:        *site,
			SiteURL:         *url,
			ReleaseDate:     rel,
			ReminderEnabled: true,
			Status:          model.StatusPlanned,
			Created:         now,
			Updated:         now,
		})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "product-toggle":
		return a.toggleByID(ctx, args[1:], a.products.ToggleReminder)

	case "product-status":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.Int64("id", 0, "product id")
		status := fs.String("status", "", "PLANNED|PURCHASED|CANCELED")
		_ = fs.Parse(args[1:])
		st, err := model.ParseProductStatus(*status)
		if err != nil {
			return err
		}
		p, err := a.products.Get(ctx, *id)
		if err != nil {
			return err
		}
		if p == nil {
			return errors.New("no such product")
		}
		p.Status = st
		p.Updated = time.Now()
		if st == model.StatusPurchased && p.PurchaseDate == nil {
			now := time.Now()
			p.PurchaseDate = &now
		}
		_, err = a.products.Save(ctx, *p)
		return err

	case "product-rm":
		return a.deleteByID(ctx, args[1:], a.products.Delete)

	case "accounts":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		q := fs.String("q", "", "search query")
		show := fs.Bool("show", false, "decrypt passwords")
		_ = fs.Parse(args[1:])
		cipher, err := a.openSession()
		if err != nil {
			return err
		}
		var accounts []model.Account
		if *q != "" {
			accounts, err = a.accounts.Search(ctx, *q)
		} else {
			accounts, err = a.accounts.List(ctx)
		}
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			pass := "••••"
			if *show {
				if pass, err = cipher.Decrypt(acc.Password); err != nil {
					return fmt.Errorf("decrypt account %d: %w", acc.ID, err)
				}
			}
			fmt.Printf("%d\t%s\t%s\t%s\n", acc.ID, acc.SiteName, acc.Username, pass)
		}
		return nil

	case "account-add":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		user := fs.Int64("user", 0, "owning user id")
		site := fs.String("site", "", "site name")
		url := fs.String("url", "", "site url")
		username := fs.String("username", "", "login name")
		password := fs.String("password", "", "plaintext password (encrypted before storage)")
		notes := fs.String("notes", "", "free-text notes")
		_ = fs.Parse(args[1:])
		cipher, err := a.openSession()
		if err != nil {
			return err
		}
		enc, err := cipher.Encrypt(*password)
		if err != nil {
			return err
		}
		id, err := a.accounts.Save(ctx, model.Account{
			UserID:   *user,
			SiteName: *site,
			SiteURL:  *url,
			Username: *username,
			Password: enc,
			Notes:    *notes,
		})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "account-rm":
		if _, err := a.openSession(); err != nil {
			return err
		}
		return a.deleteByID(ctx, args[1:], a.accounts.Delete)

	case "watch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		what := fs.String("what", "memos", "memos|products|users|accounts")
		_ = fs.Parse(args[1:])
		return a.watch(ctx, *what)

	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) deleteByID(ctx context.Context, args []string, del func(context.Context, int64) error) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	return del(ctx, id)
}

func (a *app) toggleByID(ctx context.Context, args []string, toggle func(context.Context, int64) error) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	return toggle(ctx, id)
}

func parseID(args []string) (int64, error) {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.Int64("id", 0, "record id")
	_ = fs.Parse(args)
	if *id == 0 {
		return 0, errors.New("need -id")
	}
	return *id, nil
}

// watch prints each snapshot of the chosen set until the context is cancelled.
func (a *app) watch(ctx context.Context, what string) error {
	switch what {
	case "memos":
		snaps, errc := a.memos.Watch(ctx)
		return consume(ctx, snaps, errc, func(m model.Memo) string {
			return fmt.Sprintf("%d %s", m.ID, m.Title)
		})
	case "products":
		snaps, errc := a.products.Watch(ctx)
		return consume(ctx, snaps, errc, func(p model.Product) string {
			return fmt.Sprintf("%d %s (%s)", p.ID, p.Name, p.Status)
		})
	case "users":
		snaps, errc := a.users.Watch(ctx)
		return consume(ctx, snaps, errc, func(u model.User) string {
			return fmt.Sprintf("%d %s", u.ID, u.Name)
		})
	case "accounts":
		if _, err := a.openSession(); err != nil {
			return err
		}
		snaps, errc := a.accounts.Watch(ctx)
		return consume(ctx, snaps, errc, func(acc model.Account) string {
			return fmt.Sprintf("%d %s/%s", acc.ID, acc.SiteName, acc.Username)
		})
	default:
		return fmt.Errorf("unknown watch target %q", what)
	}
}

func consume[T any](ctx context.Context, snaps <-chan []T, errc <-chan error, line func(T) string) error {
	for {
		select {
		case snap, ok := <-snaps:
			if !ok {
				return nil
			}
			fmt.Printf("-- snapshot (%s, %d records)\n", time.Now().Format(time.TimeOnly), len(snap))
			for _, item := range snap {
				fmt.Println("  " + line(item))
			}
		case err := <-errc:
			return err
		case <-ctx.Done():
			return nil
		}
	}
}
