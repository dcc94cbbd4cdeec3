package domain

// Hotel is an accommodation offered in packages.
type Hotel struct {
	Meta
	LocationID       *string  `db:"location_id" json:"location_id"`
	NameEN           string   `db:"name_en" json:"name_en"`
	NameAR           string   `db:"name_ar" json:"name_ar"`
	DescriptionEN    string   `db:"description_en" json:"description_en"`
	DescriptionAR    string   `db:"description_ar" json:"description_ar"`
	AddressEN        string   `db:"address_en" json:"address_en"`
	AddressAR        string   `db:"address_ar" json:"address_ar"`
	Stars            int      `db:"stars" json:"stars"`
	DistanceToHaramM int      `db:"distance_to_haram_m" json:"distance_to_haram_m"`
	ImageURL         string   `db:"image_url" json:"image_url"`
	Gallery          []string `db:"gallery" json:"gallery"`
	IsActive         bool     `db:"is_active" json:"is_active"`
}

// Room is a bookable room type within a hotel.
type Room struct {
	Meta
	HotelID       string  `db:"hotel_id" json:"hotel_id"`
	NameEN        string  `db:"name_en" json:"name_en"`
	NameAR        string  `db:"name_ar" json:"name_ar"`
	DescriptionEN string  `db:"description_en" json:"description_en"`
	DescriptionAR string  `db:"description_ar" json:"description_ar"`
	Capacity      int     `db:"capacity" json:"capacity"`
	Price         float64 `db:"price" json:"price"`
	Currency      string  `db:"currency" json:"currency"`
	ImageURL      string  `db:"image_url" json:"image_url"`
	IsActive      bool    `db:"is_active" json:"is_active"`
}
