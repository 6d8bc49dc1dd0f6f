package repositories

import "gorm.io/gorm"

// Criteria is an opaque filter predicate applied to a query and evaluated
// entirely by the store. It is gorm's scope shape, so any condition the ORM
// can express is a valid criteria.
type Criteria func(*gorm.DB) *gorm.DB

// And combines criteria into a single conjunction; nil entries are skipped.
func And(criteria ...Criteria) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		for _, c := range criteria {
			if c != nil {
				query = c(query)
			}
		}
		return query
	}
}

// ByID filters on the primary key.
func ByID(id uint) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("id = ?", id)
	}
}

// IDIn filters on membership of the id set.
func IDIn(ids []uint) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("id IN ?", ids)
	}
}

// IDNotIn excludes the id set; an empty set excludes nothing.
func IDNotIn(ids []uint) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return query
		}
		return query.Where("id NOT IN ?", ids)
	}
}

// ByCategoryID filters questions on their category foreign key.
func ByCategoryID(categoryID uint) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("category = ?", categoryID)
	}
}

// TextContains filters questions whose text contains the term,
// case-insensitively.
func TextContains(term string) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("question ILIKE ?", "%"+term+"%")
	}
}

// ByUsername filters users on their unique username.
func ByUsername(username string) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("username = ?", username)
	}
}

// ByType filters categories on their unique type label.
func ByType(categoryType string) Criteria {
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("type = ?", categoryType)
	}
}
