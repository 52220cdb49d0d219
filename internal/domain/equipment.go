package domain

type EquipmentAvailability string

const (
	EquipmentAvailable   EquipmentAvailability = "available"
	EquipmentRented      EquipmentAvailability = "rented"
	EquipmentMaintenance EquipmentAvailability = "maintenance"
)

func (a EquipmentAvailability) Valid() bool {
	switch a {
	case EquipmentAvailable, EquipmentRented, EquipmentMaintenance:
		return true
	}
	return false
}

type EquipmentCategory string

const (
	CategoryCameras       EquipmentCategory = "cameras"
	CategoryLenses        EquipmentCategory = "lenses"
	CategoryLighting      EquipmentCategory = "lighting"
	CategoryAudio         EquipmentCategory = "audio"
	CategoryStabilization EquipmentCategory = "stabilization"
	CategoryAccessories   EquipmentCategory = "accessories"
)

func EquipmentCategories() []EquipmentCategory {
	return []EquipmentCategory{
		CategoryCameras, CategoryLenses, CategoryLighting,
		CategoryAudio, CategoryStabilization, CategoryAccessories,
	}
}

func (c EquipmentCategory) Valid() bool {
	for _, known := range EquipmentCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type EquipmentCondition string

const (
	ConditionExcellent EquipmentCondition = "excellent"
	ConditionGood      EquipmentCondition = "good"
	ConditionFair      EquipmentCondition = "fair"
)

func (c EquipmentCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair:
		return true
	}
	return false
}

// Equipment is a vendor listing. Rates are whole currency units with no
// minor-unit scaling; weekly_rate is not constrained against 7x daily_rate.
type Equipment struct {
	ID            int32                 `json:"id"`
	VendorID      int32                 `json:"vendor_id"`
	Vendor        *User                 `json:"vendor,omitempty"`
	Name          string                `json:"name"`
	Brand         string                `json:"brand"`
	Model         string                `json:"model"`
	Category      EquipmentCategory     `json:"category"`
	Subcategory   string                `json:"subcategory"`
	Description   string                `json:"description"`
	Condition     EquipmentCondition    `json:"condition"`
	YearPurchased string                `json:"year_purchased"`
	SerialNumber  string                `json:"serial_number"`
	DailyRate     int64                 `json:"daily_rate"`
	WeeklyRate    int64                 `json:"weekly_rate"`
	Availability  EquipmentAvailability `json:"availability"`
	Accessories   []string              `json:"accessories"`
	CreatedOn     string                `json:"created_on"`
	DeletedOn     *string               `json:"deleted_on,omitempty"`
}
