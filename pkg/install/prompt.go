// Package install decides whether to offer "add to home screen" instructions.
//
// The decision is made once per activation from two signals: whether the app
// already runs standalone and the user-agent string. A persisted dismissal
// flag suppresses the prompt for good.
package install

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/notebook/pkg/core"
)

// State of the prompt within one session.
type State int

const (
	// StateHidden covers inactive, standalone, unknown platforms and dismissal
	// during this session.
	StateHidden State = iota
	// StateSuspendedDismissed means a previous session dismissed the prompt.
	StateSuspendedDismissed
	// StateVisible means instructions should be shown for Platform.
	StateVisible
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateSuspendedDismissed:
		return "suspended-dismissed"
	case StateVisible:
		return "visible"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Environment carries the signals read at activation.
type Environment struct {
	UserAgent  string
	Standalone bool
}

// Instructions is the platform-specific copy.
type Instructions struct {
	Heading string
	Steps   string
}

var instructions = map[Platform]Instructions{
	PlatformIOS: {
		Heading: "Install this app on your iPhone:",
		Steps:   "Tap the Share button, then 'Add to Home Screen'.",
	},
	PlatformAndroid: {
		Heading: "Install this app on your Android device:",
		Steps:   "Tap the ⋮ menu, then 'Install app'.",
	},
}

// Prompt is the install prompt state machine.
type Prompt struct {
	flag   *Flag
	logger *slog.Logger

	mu       sync.Mutex
	state    State
	platform Platform
}

// Option configures a Prompt.
type Option func(*promptConfig)

type promptConfig struct {
	key    string
	logger *slog.Logger
}

// WithFlagKey overrides DefaultFlagKey.
func WithFlagKey(key string) Option {
	return func(c *promptConfig) { c.key = key }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *promptConfig) { c.logger = logger }
}

// NewPrompt creates a hidden prompt whose dismissal flag lives in store.
func NewPrompt(store core.Store, opts ...Option) *Prompt {
	cfg := promptConfig{key: DefaultFlagKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Prompt{
		flag:     NewFlag(store, cfg.key, cfg.logger),
		logger:   cfg.logger,
		state:    StateHidden,
		platform: PlatformUnknown,
	}
}

// Activate evaluates env and the dismissal flag and returns the new state.
func (p *Prompt) Activate(ctx context.Context, env Environment) State {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.platform = PlatformUnknown
	switch {
	case p.flag.Get(ctx):
		p.state = StateSuspendedDismissed
	case env.Standalone:
		p.state = StateHidden
	default:
		p.platform = ClassifyPlatform(env.UserAgent)
		if p.platform == PlatformUnknown {
			p.state = StateHidden
		} else {
			p.state = StateVisible
		}
	}

	if p.logger != nil {
		p.logger.Debug("install prompt activated", "state", p.state, "platform", p.platform)
	}
	return p.state
}

// Current returns the current state.
func (p *Prompt) Current() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Platform returns the classified platform, or PlatformUnknown.
func (p *Prompt) Platform() Platform {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.platform
}

// Instructions returns the copy to show. ok is false unless the prompt is visible.
func (p *Prompt) Instructions() (Instructions, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateVisible {
		return Instructions{}, false
	}
	in, ok := instructions[p.platform]
	return in, ok
}

// Dismiss persists the dismissal and hides the prompt.
// If the flag cannot be written the state is left unchanged.
func (p *Prompt) Dismiss(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.flag.Set(ctx, true); err != nil {
		return err
	}
	p.state = StateHidden
	return nil
}

// PromptState is the introspection snapshot of a Prompt.
type PromptState struct {
	State    string `json:"state"`
	Platform string `json:"platform"`
	FlagKey  string `json:"flag_key"`
}

// State implements introspection.Introspectable.
func (p *Prompt) State() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PromptState{
		State:    p.state.String(),
		Platform: string(p.platform),
		FlagKey:  p.flag.Key(),
	}
}

// ComponentType implements introspection.Component.
func (p *Prompt) ComponentType() string {
	return "install-prompt"
}

var _ introspection.Introspectable = (*Prompt)(nil)
var _ introspection.Component = (*Prompt)(nil)
