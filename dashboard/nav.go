package dashboard

// Section is a page of the dashboard.
type Section struct {
	ID    string
	Title string
}

var Sections = []Section{
	{ID: "dashboard", Title: "Dashboard"},
	{ID: "inventory", Title: "Inventory"},
	{ID: "sales", Title: "Sales"},
	{ID: "customers", Title: "Customers"},
	{ID: "employees", Title: "Employees"},
	{ID: "invoices", Title: "Invoices"},
	{ID: "analytics", Title: "Analytics"},
}

type NavLink struct {
	Section
	Active bool
}

// Nav marks the active section among all sections. ok is false when id
// names no section, in which case no link is active.
func Nav(id string) (links []NavLink, ok bool) {
	links = make([]NavLink, len(Sections))
	for i, s := range Sections {
		active := s.ID == id
		ok = ok || active
		links[i] = NavLink{Section: s, Active: active}
	}
	return links, ok
}
