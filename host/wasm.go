package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// HostModuleName is the import namespace scripts use for host functions.
const HostModuleName = "scriptguard_host"

func (e *Executor) registerHostFunctions(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(HostModuleName)

	// 1. Register standard handlers from registry
	for _, name := range e.registry.Names() {
		localName := name
		builder.NewFunctionBuilder().
			WithFunc(func(ctx context.Context, m api.Module, packed uint64) uint64 {
				ptr := uint32(packed >> 32)
				length := uint32(packed)
				payload, ok := m.Memory().Read(ptr, length)
				if !ok {
					return 0
				}
				resp, _ := e.registry.Invoke(ctx, localName, payload)
				return packGuestResponse(ctx, m.ExportedFunction("allocate"), m.Memory(), resp)
			}).
			Export(name)
	}

	// 2. Register mandatory log_message function
	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, packed uint64) {
			ptr := uint32(packed >> 32)
			length := uint32(packed)
			payload, ok := m.Memory().Read(ptr, length)
			if !ok {
				return
			}

			var logMsg struct {
				Level   string `json:"level"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(payload, &logMsg); err == nil {
				e.log.Info("Script Log", "level", logMsg.Level, "msg", logMsg.Message)
			} else {
				e.log.Info("Script Log (raw)", "payload", string(payload))
			}
		}).
		Export("log_message")

	_, err := builder.Instantiate(ctx)
	return err
}

// packGuestResponse copies a host response into guest memory through the
// guest's allocate export and returns the packed pointer/length. A guest
// without a usable allocate gets 0 back instead of crashing the host.
func packGuestResponse(ctx context.Context, allocate api.Function, mem api.Memory, resp []byte) uint64 {
	if allocate == nil {
		return 0
	}
	results, err := allocate.Call(ctx, uint64(len(resp)))
	if err != nil || len(results) == 0 {
		return 0
	}
	respPtr := uint32(results[0])
	if !mem.Write(respPtr, resp) {
		return 0
	}
	return (uint64(respPtr) << 32) | uint64(len(resp))
}

func (s *ScriptInstance) callRaw(ctx context.Context, name string, input []byte) (uint64, error) {
	f := s.module.ExportedFunction(name)
	if f == nil {
		return 0, fmt.Errorf("export %q not found", name)
	}

	var results []uint64
	var err error

	if len(input) == 0 {
		results, err = f.Call(ctx)
	} else {
		allocate := s.module.ExportedFunction("allocate")
		if allocate == nil {
			return 0, fmt.Errorf("guest does not export 'allocate'")
		}
		resAlloc, errAlloc := allocate.Call(ctx, uint64(len(input)))
		if errAlloc != nil {
			return 0, fmt.Errorf("failed to allocate in guest: %w", errAlloc)
		}
		if len(resAlloc) == 0 {
			return 0, fmt.Errorf("allocate returned no results")
		}
		ptr := uint32(resAlloc[0])
		if !s.module.Memory().Write(ptr, input) {
			return 0, fmt.Errorf("failed to write input to guest memory")
		}
		results, err = f.Call(ctx, uint64(ptr), uint64(len(input)))
	}

	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0], nil
}

func (s *ScriptInstance) readPacked(packed uint64) ([]byte, error) {
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	if ptr == 0 || length == 0 {
		return nil, fmt.Errorf("null response from script")
	}
	data, ok := s.module.Memory().Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("failed to read response from memory")
	}
	out := make([]byte, length)
	copy(out, data)
	return out, nil
}
