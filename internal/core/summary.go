package core

// MonthlyCategoryTotal is one aggregate row: the summed amount of every
// expense whose date falls in (Year, Month) and whose category matches.
// Month is 1-12. Combinations with no records produce no row.
type MonthlyCategoryTotal struct {
	Year     int
	Month    int
	Category Category
	Total    Money
}
