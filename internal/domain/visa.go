package domain

// VisaType enumerates visa products.
type VisaType string

const (
	VisaUmrah   VisaType = "umrah"
	VisaHajj    VisaType = "hajj"
	VisaTourist VisaType = "tourist"
)

// Valid reports whether v is a known visa type.
func (v VisaType) Valid() bool {
	switch v {
	case VisaUmrah, VisaHajj, VisaTourist:
		return true
	}
	return false
}

// Visa is a visa processing service.
type Visa struct {
	Meta
	TitleEN        string   `db:"title_en" json:"title_en"`
	TitleAR        string   `db:"title_ar" json:"title_ar"`
	DescriptionEN  string   `db:"description_en" json:"description_en"`
	DescriptionAR  string   `db:"description_ar" json:"description_ar"`
	RequirementsEN string   `db:"requirements_en" json:"requirements_en"`
	RequirementsAR string   `db:"requirements_ar" json:"requirements_ar"`
	VisaType       VisaType `db:"visa_type" json:"visa_type"`
	ProcessingDays int      `db:"processing_days" json:"processing_days"`
	Price          float64  `db:"price" json:"price"`
	Currency       string   `db:"currency" json:"currency"`
	IsActive       bool     `db:"is_active" json:"is_active"`
}
