// Package navigation provides utilities for managing navigation state, tabs and breadcrumbs.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Tab is one panel of a tabbed page.
type Tab struct {
	ID      string
	Label   string
	Heading string
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	Tabs          []Tab
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
		Tabs:          make([]Tab, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// AddTab adds a tab to the context. The heading is shown above the tab content.
func (c *Context) AddTab(id, label, heading string) *Context {
	c.Tabs = append(c.Tabs, Tab{
		ID:      id,
		Label:   label,
		Heading: heading,
	})

	return c
}

// SelectTab makes the tab with the given id the active page.
// Unknown ids select the first tab.
func (c *Context) SelectTab(id string) *Context {
	if len(c.Tabs) == 0 {
		return c
	}

	c.ActivePage = c.Tabs[0].ID

	for _, tab := range c.Tabs {
		if tab.ID == id {
			c.ActivePage = id
			break
		}
	}

	return c
}

// ActiveTab returns the active tab, or an empty tab if none is active.
func (c *Context) ActiveTab() Tab {
	for _, tab := range c.Tabs {
		if tab.ID == c.ActivePage {
			return tab
		}
	}

	return Tab{}
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
