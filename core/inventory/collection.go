package inventory

// Collection describes one resource collection of the API: its URL segment
// and the XML element wrapping each record.
type Collection struct {
	Path    string
	Element string
}

var (
	// Departments is the department catalog.
	Departments = Collection{Path: "departments", Element: "department"}
	// Buildings is the building catalog.
	Buildings = Collection{Path: "buildings", Element: "building"}
)
