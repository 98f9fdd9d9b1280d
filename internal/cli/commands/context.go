package commands

import (
	"context"
	"os"

	"github.com/leapstack-labs/codata/internal/cli/output"
	"github.com/leapstack-labs/codata/pkg/prec"
)

// rendererKey stores the output renderer in the command context.
type rendererKey struct{}

// envKey stores the working-precision environment in the command
// context.
type envKey struct{}

// WithRenderer stores the renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	// Default renderer if none in context.
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// WithEnv stores the precision environment in the context.
func WithEnv(ctx context.Context, env *prec.Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// GetEnv retrieves the precision environment from the command context.
// A nil environment reads as the default precision, so commands can
// use the result unconditionally.
func GetEnv(ctx context.Context) *prec.Env {
	if env, ok := ctx.Value(envKey{}).(*prec.Env); ok {
		return env
	}
	return nil
}
