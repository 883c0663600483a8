package bridge

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-ripple/ripple/pkg/counter"
	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/model"
)

// Handle identifies a live model across the boundary.
type Handle uint64

// Sink receives encoded state snapshots, one per effective mutation of
// the handle's model. Implementations live on the foreign side of the
// boundary; they are invoked synchronously with the mutation and must not
// block or call back into the model.
type Sink interface {
	OnState(handle Handle, payload []byte)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(handle Handle, payload []byte)

// OnState calls f.
func (f SinkFunc) OnState(handle Handle, payload []byte) { f(handle, payload) }

// Registry owns the handle table for live models and dispatches boundary
// method calls onto them.
type Registry struct {
	codec MessageCodec
	sink  Sink

	mu       sync.RWMutex
	counters map[Handle]*counter.Counter
	manuals  map[Handle]*counter.ManualOnlyCounter
	nextID   atomic.Uint64
}

// NewRegistry creates a registry pushing snapshots to sink with the given
// codec. A nil codec selects DefaultCodec; a nil sink discards snapshots.
func NewRegistry(codec MessageCodec, sink Sink) *Registry {
	if codec == nil {
		codec = DefaultCodec
	}
	return &Registry{
		codec:    codec,
		sink:     sink,
		counters: make(map[Handle]*counter.Counter),
		manuals:  make(map[Handle]*counter.ManualOnlyCounter),
	}
}

// NewCounter constructs a counter model with the given initial state and
// returns its handle. The registry's sink acts as the model's observer.
func (r *Registry) NewCounter(initial counter.State) Handle {
	h := Handle(r.nextID.Add(1))
	c := counter.New(initial, model.ListenerFunc[counter.State](func(s counter.State) {
		r.push(h, statePayload(s))
	}))
	r.mu.Lock()
	r.counters[h] = c
	r.mu.Unlock()
	return h
}

// NewManualOnly constructs a manual counter model with the given initial
// state and returns its handle.
func (r *Registry) NewManualOnly(initial counter.ManualOnlyState) Handle {
	h := Handle(r.nextID.Add(1))
	m := counter.NewManualOnly(initial, model.ListenerFunc[counter.ManualOnlyState](func(s counter.ManualOnlyState) {
		r.push(h, manualStatePayload(s))
	}))
	r.mu.Lock()
	r.manuals[h] = m
	r.mu.Unlock()
	return h
}

// Release disposes the handle's model, cancelling any ticking process,
// and removes it from the table. Releasing an unknown handle is a no-op.
func (r *Registry) Release(h Handle) {
	r.mu.Lock()
	c := r.counters[h]
	m := r.manuals[h]
	delete(r.counters, h)
	delete(r.manuals, h)
	r.mu.Unlock()

	if c != nil {
		c.Dispose()
	}
	if m != nil {
		m.Dispose()
	}
}

// push encodes a snapshot and delivers it to the sink.
func (r *Registry) push(h Handle, payload any) {
	data, err := r.codec.Encode(payload)
	if err != nil {
		errors.Report(&errors.CoreError{
			Op:   "bridge.push",
			Kind: errors.KindBoundary,
			Err:  err,
		})
		return
	}
	if r.sink != nil {
		r.sink.OnState(h, data)
	}
}

// Call dispatches a boundary method on the handle's model. The result is
// an encoded payload or nil for void operations. A coverAll failure
// surfaces as a *ChannelError with code "HashStateError"; unknown handles
// and methods return ErrHandleNotFound and ErrMethodNotFound. A panic
// during dispatch is recovered and surfaces as a *ChannelError with code
// "InternalError" rather than crossing the boundary.
func (r *Registry) Call(h Handle, method string, args []byte) (result []byte, err error) {
	defer errors.RecoverWithCallback("bridge.Call", func(v any) {
		result = nil
		err = NewChannelError("InternalError", fmt.Sprintf("%s: %v", method, v))
	})

	r.mu.RLock()
	c := r.counters[h]
	m := r.manuals[h]
	r.mu.RUnlock()

	switch {
	case c != nil:
		return r.callCounter(c, method, args)
	case m != nil:
		return r.callManual(m, method, args)
	default:
		return nil, fmt.Errorf("%w: %d", ErrHandleNotFound, h)
	}
}

func (r *Registry) callCounter(c *counter.Counter, method string, args []byte) ([]byte, error) {
	switch method {
	case "increment":
		c.Increment()
		return nil, nil
	case "decrement":
		c.Decrement()
		return nil, nil
	case "reset":
		c.Reset()
		return nil, nil
	case "startAutoIncrementing":
		c.StartAutoIncrementing()
		return nil, nil
	case "stopAutoIncrementing":
		c.StopAutoIncrementing()
		return nil, nil
	case "currentState":
		return r.codec.Encode(statePayload(c.CurrentState()))
	case "sample":
		var in sampleArgs
		if err := r.decodeInto(method, "sampleArgs", args, &in); err != nil {
			return nil, err
		}
		states := c.Sample(in.N)
		out := samplePayload{States: make([]StatePayload, 0, len(states))}
		for _, s := range states {
			out.States = append(out.States, statePayload(s))
		}
		return r.codec.Encode(out)
	case "renderDescription":
		var in renderArgs
		if err := r.decodeInto(method, "renderArgs", args, &in); err != nil {
			return nil, err
		}
		return r.codec.Encode(renderPayload{
			Description: counter.RenderDescription(in.State.state()),
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}
}

func (r *Registry) callManual(m *counter.ManualOnlyCounter, method string, args []byte) ([]byte, error) {
	switch method {
	case "increment":
		m.Increment()
		return nil, nil
	case "decrement":
		m.Decrement()
		return nil, nil
	case "reset":
		m.Reset()
		return nil, nil
	case "currentState":
		return r.codec.Encode(manualStatePayload(m.CurrentState()))
	case "tellFullName":
		var in fullNameArgs
		if err := r.decodeInto(method, "fullNameArgs", args, &in); err != nil {
			return nil, err
		}
		return r.codec.Encode(fullNamePayload{
			FullName: m.TellFullName(in.FirstName, in.LastName),
		})
	case "coverAll":
		var in CoverAllPayload
		if err := r.decodeInto(method, "CoverAllPayload", args, &in); err != nil {
			return nil, err
		}
		outcome, err := m.CoverAll(in.input())
		if err != nil {
			var hashErr *counter.HashStateError
			if stderrors.As(err, &hashErr) {
				return nil, NewChannelError("HashStateError", hashErr.Error())
			}
			return nil, err
		}
		return r.codec.Encode(HashOutcomePayload{Hash: outcome.Hash})
	default:
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}
}

// intoDecoder is satisfied by codecs that can decode into a typed value.
type intoDecoder interface {
	DecodeInto(data []byte, v any) error
}

func (r *Registry) decodeInto(method, dataType string, data []byte, v any) error {
	var err error
	if d, ok := r.codec.(intoDecoder); ok {
		err = d.DecodeInto(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		errors.Report(&errors.CoreError{
			Op:     "bridge.Call",
			Kind:   errors.KindParsing,
			Method: method,
			Err:    err,
		})
		return fmt.Errorf("%w: %s", ErrInvalidArguments, (&errors.ParseError{
			Method:   method,
			DataType: dataType,
			Got:      string(data),
		}).Error())
	}
	return nil
}
