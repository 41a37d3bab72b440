// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"objkit/config"
	"objkit/css"
	"objkit/jsonbridge"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	// prepared from configuration by Prepare
	Bridge *jsonbridge.Bridge
	Parser *css.Parser

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Prepare creates domain helpers from loaded configuration. Cfg and Log
// must be set.
func (e *LocalEnv) Prepare() {
	e.Bridge = jsonbridge.New(e.Log,
		jsonbridge.WithComments(e.Cfg.JSON.AllowComments),
		jsonbridge.WithIndent(e.Cfg.JSON.Indent),
	)
	e.Parser = css.NewParser(e.Log)
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
