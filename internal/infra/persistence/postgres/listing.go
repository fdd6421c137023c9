package postgres

import (
	"strings"

	"vacuum/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns is the per-listing allow-list of sortable fields, mapping the
// public field name to a qualified column. Every scalar column of the listed
// table belongs in it; anything else sorts by created_at.
type sortColumns struct {
	table   string
	columns map[string]string
}

func newSortColumns(table string, fields ...string) sortColumns {
	columns := make(map[string]string, len(fields)+3)
	for _, field := range append([]string{"id", "created_at", "updated_at"}, fields...) {
		columns[field] = table + "." + field
	}

	return sortColumns{table: table, columns: columns}
}

// alias exposes column under a second public name.
func (s sortColumns) alias(field, column string) sortColumns {
	s.columns[field] = s.table + "." + column

	return s
}

func (s sortColumns) resolve(field string) string {
	if column, ok := s.columns[field]; ok {
		return column
	}

	return s.columns[entity.DefaultSortField]
}

// apply orders by the requested column, then by id in the same direction so
// pages never overlap or skip rows that share a sort value.
func (s sortColumns) apply(db *gorm.DB, query entity.ListQuery) *gorm.DB {
	desc := query.Descending()

	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: s.resolve(query.SortBy), Raw: true}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: s.table + ".id", Raw: true}, Desc: desc})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applySearch keeps rows where any of columns contains term, ignoring case.
func applySearch(db *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return db
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, "LOWER("+column+`) LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}

	return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

// preloading returns a loader attaching the named associations.
func preloading(associations ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, association := range associations {
			db = db.Preload(association)
		}

		return db
	}
}

// paginate counts the filtered rows, then loads one sorted page into dest.
// load, when set, only decorates the page query so associations are never
// attached to the count.
func paginate[M any](filtered *gorm.DB, sort sortColumns, query entity.ListQuery, dest *[]M, load func(*gorm.DB) *gorm.DB) (int64, error) {
	base := filtered.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, err
	}
	offset := query.Offset()
	if total == 0 || offset >= total {
		*dest = []M{}

		return total, nil
	}

	page := sort.apply(base, query).Offset(int(offset)).Limit(query.Limit)
	if load != nil {
		page = load(page)
	}

	if err := page.Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}
