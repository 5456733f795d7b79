package model

// CatalogProject is a Clockify project with its task names.
type CatalogProject struct {
	ID    string
	Name  string
	Tasks []CatalogTask
}

// CatalogTask is a task inside a Clockify project.
type CatalogTask struct {
	ID   string
	Name string
}

// Catalog is the workspace's project/task tree used to ground parsing
// and to resolve names back to IDs on submission.
type Catalog struct {
	WorkspaceID string
	Projects    []CatalogProject
}

// Empty reports whether the catalog carries no workspace context.
func (c Catalog) Empty() bool {
	return c.WorkspaceID == ""
}
