package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dulceai/dulceai/catalog"
	"github.com/dulceai/dulceai/config"
	"github.com/dulceai/dulceai/core"
	"github.com/dulceai/dulceai/logging"
	"github.com/dulceai/dulceai/memory"
	"github.com/dulceai/dulceai/model"
	"github.com/dulceai/dulceai/observability"
	"github.com/dulceai/dulceai/planning"
	"github.com/dulceai/dulceai/session"
	"github.com/dulceai/dulceai/tool"
)

// AnonymousUserID is used when a request carries no user identifier.
const AnonymousUserID = "anonymous"

// Options configure an Agent beyond config and model.
type Options struct {
	Logger   logging.Logger
	Metrics  *observability.Metrics
	Sessions *session.Store
	Catalog  *catalog.Catalog
	Business catalog.BusinessInfo
	Tools    *tool.Registry
}

// Agent is the orchestrator: it owns the per-user session registry and
// drives planning, decision making, tool lookups and prompt assembly
// around the language-model collaborator.
type Agent struct {
	cfg      config.Config
	llm      model.Model
	sessions *session.Store
	catalog  *catalog.Catalog
	business catalog.BusinessInfo
	tools    *tool.Registry
	logger   logging.Logger
	metrics  *observability.Metrics

	mu          sync.Mutex
	initialized bool
	lastErr     string
}

// New creates an agent with in-memory defaults: built-in catalog, the
// four standard tools, a bounded session store and a no-op logger.
func New(cfg config.Config, llm model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Business: catalog.DefaultBusinessInfo,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.New()
	}
	if opts.Tools == nil {
		opts.Tools = tool.NewRegistry(
			tool.NewProductTool(opts.Catalog),
			tool.NewHoursTool(opts.Business),
			tool.NewContactTool(opts.Business),
			tool.NewOrderTool(opts.Business),
		)
	}
	if opts.Sessions == nil {
		opts.Sessions = session.NewStore(func(o *session.StoreOptions) {
			o.MaxMessages = cfg.Memory.MaxMessages
			o.MaxUsers = cfg.Agent.MaxUsers
		})
	}

	return &Agent{
		cfg:      cfg,
		llm:      llm,
		sessions: opts.Sessions,
		catalog:  opts.Catalog,
		business: opts.Business,
		tools:    opts.Tools,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
}

// Initialize probes the model collaborator with a short greeting and
// marks the agent ready on success. A failed probe leaves the agent in
// degraded mode: Process still answers, using fallback replies only.
func (a *Agent) Initialize(ctx context.Context) error {
	if a.llm == nil {
		a.setLastErr(fmt.Errorf("no model configured"))
		return fmt.Errorf("no model configured")
	}

	start := time.Now()
	_, err := a.llm.Generate(ctx, model.Request{
		Messages: []core.Message{core.NewUserMessage("Hola")},
	})
	logging.LogModelCall(a.logger, a.llm.Info().Name, time.Since(start), err)
	if err != nil {
		a.setLastErr(err)
		return fmt.Errorf("model connection check failed: %w", err)
	}

	a.mu.Lock()
	a.initialized = true
	a.lastErr = ""
	a.mu.Unlock()

	a.logger.Info("agent initialized",
		"model", a.llm.Info().Name,
		"tools", len(a.tools.Names()),
	)
	return nil
}

// Process handles one user message and always returns reply text: the
// model's answer on the happy path, a deterministic fallback when the
// collaborator is unavailable, uninitialized, or anything panics.
func (a *Agent) Process(ctx context.Context, message, userID string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("process recovered from panic", "panic", fmt.Sprintf("%v", r))
			a.countRequest("panic")
			reply = FallbackReply(message)
		}
	}()

	if !a.isInitialized() {
		a.logger.Warn("agent not initialized, using fallback reply")
		a.countRequest("uninitialized")
		return FallbackReply(message)
	}

	if userID == "" {
		userID = AnonymousUserID
	}
	requestID := uuid.NewString()

	sess := a.sessions.GetOrCreate(userID)
	sess.Lock()
	defer sess.Unlock()
	if a.metrics != nil {
		a.metrics.ActiveUsers.Set(float64(a.sessions.Count()))
	}

	sess.Context.TouchLastVisit()

	info := planning.ExtractInfo(message)
	if planning.ShouldSaveContext(message) {
		if info.Name != "" {
			sess.Context.SetName(info.Name)
		}
		// Self-disclosed product mentions double as preference tags.
		for _, p := range info.MentionedProducts {
			sess.Context.AddPreference(p)
		}
	}
	for _, p := range info.MentionedProducts {
		sess.Context.AddRecentProduct(p)
	}

	summary := sess.Context.Summary()
	summary.MessageCount = sess.Memory.Len()

	// Advisory only: the plan is logged, never dispatched.
	plan := planning.Plan(message, summary)
	a.logger.Info("turn planned",
		"request_id", requestID,
		"user_id", userID,
		"steps", len(plan),
		"history", summary.MessageCount,
	)

	style := planning.DecideResponseStyle(summary)

	toolResult := a.runTool(requestID, message, info, sess.Context)

	req := a.buildRequest(sess, message, toolResult, style)

	start := time.Now()
	text, err := a.llm.Generate(ctx, req)
	logging.LogModelCall(a.logger, a.llm.Info().Name, time.Since(start), err)
	if a.metrics != nil {
		a.metrics.ObserveModelLatency(time.Since(start))
	}
	if err != nil {
		a.setLastErr(err)
		a.countRequest("model_error")
		// The user turn is still recorded so later history reflects
		// what was asked; the fallback reply itself is not persisted.
		if a.cfg.Memory.Enabled {
			sess.Memory.AddUserMessage(message)
		}
		return FallbackReply(message)
	}

	if a.cfg.Memory.Enabled {
		sess.Memory.AddUserMessage(message)
		sess.Memory.AddAssistantMessage(text)
	}
	a.countRequest("ok")
	return strings.TrimSpace(text)
}

// runTool selects and resolves at most one tool for the message,
// returning its text block or "" when no tool applies.
func (a *Agent) runTool(requestID, message string, info planning.Info, uc *memory.UserContext) string {
	name, ok := planning.SelectTool(message, a.tools.Names())
	if !ok {
		return ""
	}
	t, ok := a.tools.Get(name)
	if !ok {
		return ""
	}
	if a.metrics != nil {
		a.metrics.ToolSelections.WithLabelValues(name).Inc()
	}

	start := time.Now()
	out, err := t.Run(message, info)
	logging.LogToolRun(a.logger, name, time.Since(start), err)
	if err != nil {
		a.logger.Warn("tool run failed, continuing without tool context",
			"request_id", requestID, "tool", name, "error", err.Error())
		return ""
	}
	if name == "ProcesarPedido" {
		uc.AddOrder(map[string]any{"message": message})
	}
	return out
}

// buildRequest assembles the model request: system prompt, the bounded
// history window, and the user turn with optional tool context.
func (a *Agent) buildRequest(sess *session.Session, message, toolResult string, style planning.Style) model.Request {
	msgs := make([]core.Message, 0, a.cfg.Agent.HistoryWindow+2)
	msgs = append(msgs, core.NewSystemMessage(a.buildSystemPrompt(sess.Context, style)))
	msgs = append(msgs, sess.Memory.History(a.cfg.Agent.HistoryWindow)...)

	userText := message
	if toolResult != "" {
		userText = fmt.Sprintf("%s\n\nINFORMACIÓN DISPONIBLE:\n%s\n\nUsa esta información para responder.", message, toolResult)
	}
	msgs = append(msgs, core.NewUserMessage(userText))

	return model.Request{Messages: msgs}
}

// buildSystemPrompt composes base instructions, the personalization
// fragment and the style directive, in that order.
func (a *Agent) buildSystemPrompt(uc *memory.UserContext, style planning.Style) string {
	prompt := a.cfg.Agent.SystemPrompt
	if frag := uc.PromptFragment(); frag != "" {
		prompt += "\n\nCONTEXTO DEL USUARIO:\n" + frag
	}
	switch style {
	case planning.StyleDetailed:
		prompt += "\n\nINSTRUCCIÓN: Sé detallado y completo en tu respuesta."
	case planning.StyleBrief:
		prompt += "\n\nINSTRUCCIÓN: Sé conciso pero útil."
	case planning.StylePersonalized:
		prompt += "\n\nINSTRUCCIÓN: Personaliza tu respuesta usando el nombre del usuario."
	}
	return prompt
}

// Status is the read-only diagnostic snapshot of the agent.
type Status struct {
	Initialized    bool     `json:"initialized"`
	ModelName      string   `json:"model_name"`
	ModelEndpoint  string   `json:"model_endpoint,omitempty"`
	MemoryEnabled  bool     `json:"memory_enabled"`
	ActiveUsers    int      `json:"active_users"`
	AvailableTools []string `json:"available_tools"`
	LastError      string   `json:"last_error,omitempty"`
}

// Status reports the current diagnostic snapshot.
func (a *Agent) Status() Status {
	a.mu.Lock()
	initialized, lastErr := a.initialized, a.lastErr
	a.mu.Unlock()

	var info model.Info
	if a.llm != nil {
		info = a.llm.Info()
	}
	return Status{
		Initialized:    initialized,
		ModelName:      info.Name,
		ModelEndpoint:  info.Endpoint,
		MemoryEnabled:  a.cfg.Memory.Enabled,
		ActiveUsers:    a.sessions.Count(),
		AvailableTools: a.tools.Names(),
		LastError:      lastErr,
	}
}

// Sessions exposes the registry for diagnostic callers (HTTP layer).
func (a *Agent) Sessions() *session.Store { return a.sessions }

// Catalog exposes the product catalog for the HTTP layer.
func (a *Agent) Catalog() *catalog.Catalog { return a.catalog }

// Business exposes the storefront record for the HTTP layer.
func (a *Agent) Business() catalog.BusinessInfo { return a.business }

func (a *Agent) isInitialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized
}

func (a *Agent) setLastErr(err error) {
	a.mu.Lock()
	a.lastErr = err.Error()
	a.mu.Unlock()
}

func (a *Agent) countRequest(outcome string) {
	if a.metrics != nil {
		a.metrics.Requests.WithLabelValues(outcome).Inc()
	}
}
