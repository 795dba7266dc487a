package domain

// Extraction holds the package declarations read from a project file.
type Extraction struct {
	References   []*PackageReference
	GlobalUsings []GlobalUsing
	Warnings     []string
}

// ApplyTo copies the extracted declarations into p.
func (e *Extraction) ApplyTo(p *Project) {
	p.References = e.References
	p.GlobalUsings = e.GlobalUsings
}
