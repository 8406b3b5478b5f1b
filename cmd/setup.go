package cmd

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Morganamilo/archdiff/pkg/alpmdb"
	"github.com/Morganamilo/archdiff/pkg/config"
	"github.com/Morganamilo/archdiff/pkg/ignore"
	"github.com/Morganamilo/archdiff/pkg/reconcile"
)

// runtimeDeps bundles the collaborators one audit invocation needs. They are
// built per invocation and passed explicitly into the engine; there is no
// process-wide state.
type runtimeDeps struct {
	cfg     config.Config
	log     *zap.Logger
	db      *alpmdb.DB
	matcher *ignore.Matcher
}

// setup resolves the configuration (file, then flag overrides), builds the
// diagnostics logger, opens the package database, and compiles the ignore
// rules. Any failure here is fatal: nothing has been scanned yet.
func setup(cmd *cli.Command) (runtimeDeps, error) {
	cfgPath := stringFlag(cmd, "config")
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = config.DefaultPath
	}

	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return runtimeDeps{}, err
	}
	applyFlags(cmd, &cfg)
	cfg.Normalize()

	log, err := newLogger(isVerbose(cmd))
	if err != nil {
		return runtimeDeps{}, fmt.Errorf("create logger: %w", err)
	}

	db, err := alpmdb.Open(cfg.DBPath)
	if err != nil {
		return runtimeDeps{}, err
	}

	matcher, err := ignore.CompileDir(cfg.IgnoreDir)
	if err != nil {
		return runtimeDeps{}, err
	}

	return runtimeDeps{cfg: cfg, log: log, db: db, matcher: matcher}, nil
}

func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if root := stringFlag(cmd, "root"); root != "" {
		cfg.Root = root
	}
	if dbpath := stringFlag(cmd, "dbpath"); dbpath != "" {
		cfg.DBPath = dbpath
	}
	if repo := stringFlag(cmd, "repo"); repo != "" {
		cfg.Repo = repo
	}
	if ignoreDir := stringFlag(cmd, "ignore"); ignoreDir != "" {
		cfg.IgnoreDir = ignoreDir
	}
	if jobs := intFlag(cmd, "jobs"); jobs > 0 {
		cfg.Jobs = jobs
	}
}

func (d runtimeDeps) engine() *reconcile.Engine {
	return &reconcile.Engine{
		Root:   d.cfg.Root,
		Repo:   d.cfg.Repo,
		Ignore: d.matcher,
		Log:    d.log,
		Jobs:   d.cfg.Jobs,
	}
}

// newLogger builds the diagnostics logger. It writes to stderr only so the
// diff output on stdout stays machine-consumable.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

func flushLogger(log *zap.Logger) {
	if log != nil {
		_ = log.Sync()
	}
}
