package domain

// Location is a city or site referenced by hotels and events.
type Location struct {
	Meta
	NameEN    string `db:"name_en" json:"name_en"`
	NameAR    string `db:"name_ar" json:"name_ar"`
	CityEN    string `db:"city_en" json:"city_en"`
	CityAR    string `db:"city_ar" json:"city_ar"`
	Country   string `db:"country" json:"country"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}
