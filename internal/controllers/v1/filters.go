package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies filters for the title, description and search query parameters.
func stringFilters(db, query *gorm.DB, setFields []string, title, description, search string) *gorm.DB {
	if title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", title))
	} else if slices.Contains(setFields, "Title") {
		query = query.Where("title = ''")
	}

	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("title LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// titleFilters applies filters for the title and search query parameters
// for resources that do not have a description column.
func titleFilters(query *gorm.DB, setFields []string, title, search string) *gorm.DB {
	if title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", title))
	} else if slices.Contains(setFields, "Title") {
		query = query.Where("title = ''")
	}

	if search != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	return query
}

// nameFilters applies filters for the name and search query parameters.
func nameFilters(query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	return query
}
