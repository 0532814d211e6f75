package service

// HookPos names a position in the evaluation pass where hooks fire, such
// as the start of a pass or a sub-service announcement.
type HookPos struct {
	Name string
}

// HookCtx carries the information about the site where a hook fires: the
// broadcasting scheduler, the position, and the event payload.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is implemented by objects that broadcast scheduling events to
// registered hooks.
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// Hook is a short piece of program invoked on each scheduling event. UI
// and notification layers observe the scheduling service by registering
// hooks.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides hook registration and broadcast for types that
// embed it.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook fires every registered hook with ctx.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
