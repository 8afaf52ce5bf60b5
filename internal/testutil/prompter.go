package testutil

import "sync"

// ScriptedPrompter replays queued confirmation answers and records every
// message it is shown. With an empty queue Confirm answers false.
type ScriptedPrompter struct {
	mu       sync.Mutex
	answers  []bool
	confirms []string
	alerts   []string
}

// NewScriptedPrompter creates a prompter that answers in the given order.
func NewScriptedPrompter(answers ...bool) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Confirm implements prompt.Prompter.
func (p *ScriptedPrompter) Confirm(message string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirms = append(p.confirms, message)
	if len(p.answers) == 0 {
		return false
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

// Alert implements prompt.Prompter.
func (p *ScriptedPrompter) Alert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, message)
}

// Confirms returns the confirmation messages shown so far.
func (p *ScriptedPrompter) Confirms() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.confirms...)
}

// Alerts returns the alert messages shown so far.
func (p *ScriptedPrompter) Alerts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.alerts...)
}
