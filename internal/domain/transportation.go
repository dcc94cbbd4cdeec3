package domain

// VehicleType enumerates transport modes.
type VehicleType string

const (
	VehicleBus   VehicleType = "bus"
	VehicleCar   VehicleType = "car"
	VehicleVan   VehicleType = "van"
	VehicleTrain VehicleType = "train"
)

// Valid reports whether v is a known vehicle type.
func (v VehicleType) Valid() bool {
	switch v {
	case VehicleBus, VehicleCar, VehicleVan, VehicleTrain:
		return true
	}
	return false
}

// Transportation is a transfer option between airports, hotels and holy sites.
type Transportation struct {
	Meta
	NameEN        string      `db:"name_en" json:"name_en"`
	NameAR        string      `db:"name_ar" json:"name_ar"`
	DescriptionEN string      `db:"description_en" json:"description_en"`
	DescriptionAR string      `db:"description_ar" json:"description_ar"`
	VehicleType   VehicleType `db:"vehicle_type" json:"vehicle_type"`
	Capacity      int         `db:"capacity" json:"capacity"`
	Price         float64     `db:"price" json:"price"`
	Currency      string      `db:"currency" json:"currency"`
	ImageURL      string      `db:"image_url" json:"image_url"`
	IsActive      bool        `db:"is_active" json:"is_active"`
}
