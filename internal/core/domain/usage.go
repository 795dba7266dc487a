package domain

// UsageReason describes why a reference was considered used.
type UsageReason string

const (
	// ReasonSource means a namespace of the package was referenced in a source file.
	ReasonSource UsageReason = "source"
	// ReasonGlobalUsing means the project imports the package through a global using.
	ReasonGlobalUsing UsageReason = "global-using"
)

// UsageEvent is a single observation that a package is used.
type UsageEvent struct {
	Package   Key
	File      string
	Namespace string
	Reason    UsageReason
}

// UsageAccumulator buffers usage events for one project.
// It is owned by a single goroutine and folded into the project with Apply.
type UsageAccumulator struct {
	projectPath string
	events      []UsageEvent
}

// NewUsageAccumulator creates an accumulator for the project at path.
func NewUsageAccumulator(projectPath string) *UsageAccumulator {
	return &UsageAccumulator{projectPath: projectPath}
}

// Record buffers an event.
func (a *UsageAccumulator) Record(ev UsageEvent) {
	a.events = append(a.events, ev)
}

// Len returns the number of buffered events.
func (a *UsageAccumulator) Len() int {
	return len(a.events)
}

// Events returns the buffered events in recording order.
func (a *UsageAccumulator) Events() []UsageEvent {
	return a.events
}

// Apply marks the references of p named by the buffered events.
// Events for packages that p does not reference are ignored.
// It returns the number of events applied.
func (a *UsageAccumulator) Apply(p *Project) int {
	byKey := make(map[Key][]*PackageReference, len(p.References))
	for _, ref := range p.References {
		k := ref.PackageKey()
		byKey[k] = append(byKey[k], ref)
	}

	applied := 0
	for _, ev := range a.events {
		refs, ok := byKey[ev.Package]
		if !ok {
			continue
		}
		for _, ref := range refs {
			ref.MarkAsUsed(ev.File, ev.Namespace)
		}
		applied++
	}
	a.events = nil
	return applied
}
