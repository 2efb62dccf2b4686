package phases

import "fmt"

// Machine is a validated, immutable phase graph
type Machine struct {
	phases      []Phase
	index       map[string]int
	initial     int
	conditions  Conditions
	totalWeight float64
}

// NewMachine validates the graph and binds it to a condition registry. A nil
// registry uses DefaultConditions. Phases are copied.
func NewMachine(phases []Phase, conditions Conditions) (*Machine, error) {
	if conditions == nil {
		conditions = DefaultConditions()
	}
	m := &Machine{
		phases:     make([]Phase, len(phases)),
		index:      make(map[string]int, len(phases)),
		initial:    -1,
		conditions: conditions.Clone(),
	}
	copy(m.phases, phases)

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Machine) validate() error {
	if len(m.phases) == 0 {
		return &GraphError{Message: "graph has no phases"}
	}

	terminals := 0
	for i, p := range m.phases {
		if p.ID == "" {
			return &GraphError{Message: fmt.Sprintf("phase %d has no id", i)}
		}
		if _, dup := m.index[p.ID]; dup {
			return &GraphError{Message: "duplicate phase id", PhaseID: p.ID}
		}
		m.index[p.ID] = i

		if p.Initial {
			if m.initial >= 0 {
				return &GraphError{Message: "more than one initial phase", PhaseID: p.ID}
			}
			m.initial = i
		}
		if p.Terminal {
			terminals++
		}
		if p.ProgressWeight < 0 {
			return &GraphError{Message: "progress weight must not be negative", PhaseID: p.ID}
		}
		if p.Entry.MinExamples < 0 {
			return &GraphError{Message: "entry min_examples must not be negative", PhaseID: p.ID}
		}
		m.totalWeight += p.ProgressWeight
	}
	if m.initial < 0 {
		return &GraphError{Message: "graph has no initial phase"}
	}
	if terminals == 0 {
		return &GraphError{Message: "graph has no terminal phase"}
	}

	for i, p := range m.phases {
		if p.Capture != nil {
			if !p.Capture.Field.Valid() {
				return &GraphError{Message: fmt.Sprintf("unknown capture field %q", p.Capture.Field), PhaseID: p.ID}
			}
			for _, e := range p.Capture.When {
				if !KnownEntity(e) {
					return &GraphError{Message: fmt.Sprintf("unknown entity %q", e), PhaseID: p.ID}
				}
			}
		}
		for _, name := range p.ExitConditions {
			if _, ok := m.conditions[name]; !ok {
				return &GraphError{Message: fmt.Sprintf("unknown exit condition %q", name), PhaseID: p.ID}
			}
		}

		if p.Terminal {
			if len(p.Transitions) > 0 {
				return &GraphError{Message: "terminal phase has transitions", PhaseID: p.ID}
			}
			continue
		}
		if len(p.Transitions) == 0 {
			return &GraphError{Message: "non-terminal phase has no transitions", PhaseID: p.ID}
		}
		for _, t := range p.Transitions {
			if !t.On.Valid() {
				return &GraphError{Message: fmt.Sprintf("unknown event type %q", t.On), PhaseID: p.ID}
			}
			target, ok := m.index[t.To]
			if !ok {
				return &GraphError{Message: fmt.Sprintf("unknown transition target %q", t.To), PhaseID: p.ID}
			}
			if target <= i {
				return &GraphError{Message: fmt.Sprintf("transition to %q does not move forward", t.To), PhaseID: p.ID}
			}
			for _, name := range t.If {
				if _, ok := m.conditions[name]; !ok {
					return &GraphError{Message: fmt.Sprintf("unknown condition %q", name), PhaseID: p.ID}
				}
			}
		}
	}

	if !m.terminalReachable() {
		return &GraphError{Message: "no terminal phase is reachable from the initial phase", PhaseID: m.phases[m.initial].ID}
	}
	return nil
}

func (m *Machine) terminalReachable() bool {
	seen := make([]bool, len(m.phases))
	queue := []int{m.initial}
	seen[m.initial] = true
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if m.phases[i].Terminal {
			return true
		}
		for _, t := range m.phases[i].Transitions {
			j := m.index[t.To]
			if !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	return false
}

// Initial returns the initial phase
func (m *Machine) Initial() Phase {
	return m.phases[m.initial]
}

// Phase returns the phase with the given id
func (m *Machine) Phase(id string) (Phase, bool) {
	i, ok := m.index[id]
	if !ok {
		return Phase{}, false
	}
	return m.phases[i], true
}

// Phases returns a copy of the phases in declared order
func (m *Machine) Phases() []Phase {
	out := make([]Phase, len(m.phases))
	copy(out, m.phases)
	return out
}

// Evaluate reports whether every named condition holds for in
func (m *Machine) Evaluate(names []string, in Input) bool {
	for _, name := range names {
		cond, ok := m.conditions[name]
		if !ok || !cond(in) {
			return false
		}
	}
	return true
}

// ExitReady reports whether every exit condition of the phase holds for in.
// A phase without exit conditions is always ready; an unknown phase never is.
func (m *Machine) ExitReady(phaseID string, in Input) bool {
	phase, ok := m.Phase(phaseID)
	if !ok {
		return false
	}
	return m.Evaluate(phase.ExitConditions, in)
}

// Next returns the first transition of the phase that fires for in. A
// transition fires when its event matches, all its conditions hold and the
// target's entry requirement is met by questionsAsked. Terminal and unknown
// phases never transition.
func (m *Machine) Next(phaseID string, in Input, questionsAsked int) (Transition, bool) {
	phase, ok := m.Phase(phaseID)
	if !ok || phase.Terminal {
		return Transition{}, false
	}

	for _, t := range phase.Transitions {
		if t.On != in.Event {
			continue
		}
		if !m.Evaluate(t.If, in) {
			continue
		}
		target, _ := m.Phase(t.To)
		if questionsAsked < target.Entry.MinExamples {
			continue
		}
		return t, true
	}
	return Transition{}, false
}

// Progress is the share of progress weight held by completed phases, as a
// percentage. Duplicate and unknown ids are ignored.
func (m *Machine) Progress(completed []string) float64 {
	if m.totalWeight == 0 {
		return 0
	}

	sum := 0.0
	seen := make(map[string]bool, len(completed))
	for _, id := range completed {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := m.Phase(id); ok {
			sum += p.ProgressWeight
		}
	}
	pct := sum / m.totalWeight * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
