package domain

// GlobalUsing is a project-wide implicit namespace import.
type GlobalUsing struct {
	PackageID   string
	ProjectPath string
	Condition   string
}

// Key returns the case-insensitive identity: package id and project path.
func (g GlobalUsing) Key() Key {
	return NewKey(g.PackageID + "|" + PathKey(g.ProjectPath).String())
}
