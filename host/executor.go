package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/scriptguard-dev/scriptguard/hostfuncs"
)

// Executor manages the lifecycle of sandboxed WASM scripts.
type Executor struct {
	runtime  wazero.Runtime
	registry *hostfuncs.HandlerRegistry
	log      *slog.Logger
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	// Default registry if not provided
	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry()
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// ScriptInstance represents an instantiated WASM script.
type ScriptInstance struct {
	module api.Module
}

// LoadScript instantiates a WASM module.
func (e *Executor) LoadScript(ctx context.Context, wasmBytes []byte) (*ScriptInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &ScriptInstance{module: mod}, nil
}

// Run calls the "run" export of the script with a JSON-encoded input map
// and returns the raw JSON result.
func (s *ScriptInstance) Run(ctx context.Context, input map[string]any) ([]byte, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	packed, err := s.callRaw(ctx, "run", inputBytes)
	if err != nil {
		return nil, err
	}
	return s.readPacked(packed)
}

// Close releases the script's module.
func (s *ScriptInstance) Close(ctx context.Context) error {
	return s.module.Close(ctx)
}
