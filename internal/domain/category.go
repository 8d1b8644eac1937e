package domain

import "github.com/shopspring/decimal"

// AssetCategory is the fixed enumeration of asset kinds. Four of them are
// pension sub-categories whose growth is reported separately from new
// contributions in the monthly breakdown.
type AssetCategory string

const (
	CategoryHousing             AssetCategory = "housing"
	CategoryVacationHome        AssetCategory = "vacation_home"
	CategoryVehicle             AssetCategory = "vehicle"
	CategoryFundsStocks         AssetCategory = "funds_stocks"
	CategoryCash                AssetCategory = "cash"
	CategoryIncomePension       AssetCategory = "income_pension"
	CategoryOccupationalPension AssetCategory = "occupational_pension"
	CategoryPremiumPension      AssetCategory = "premium_pension"
	CategoryIPS                 AssetCategory = "ips"
	CategoryLand                AssetCategory = "land"
	CategoryEquipment           AssetCategory = "equipment"
	CategoryOtherVehicles       AssetCategory = "other_vehicles"
	CategoryPreciousMetals      AssetCategory = "precious_metals"
	CategoryOther               AssetCategory = "other"
)

// AllCategories lists every category in display order.
var AllCategories = []AssetCategory{
	CategoryHousing,
	CategoryVacationHome,
	CategoryVehicle,
	CategoryFundsStocks,
	CategoryCash,
	CategoryIncomePension,
	CategoryOccupationalPension,
	CategoryPremiumPension,
	CategoryIPS,
	CategoryLand,
	CategoryEquipment,
	CategoryOtherVehicles,
	CategoryPreciousMetals,
	CategoryOther,
}

var displayNames = map[AssetCategory]string{
	CategoryHousing:             "Bostad",
	CategoryVacationHome:        "Fritidshus",
	CategoryVehicle:             "Fordon",
	CategoryFundsStocks:         "Fonder & Aktier",
	CategoryCash:                "Kontanter",
	CategoryIncomePension:       "Inkomstpension",
	CategoryOccupationalPension: "Tjänstepension",
	CategoryPremiumPension:      "Premiepension",
	CategoryIPS:                 "IPS",
	CategoryLand:                "Mark",
	CategoryEquipment:           "Utrustning",
	CategoryOtherVehicles:       "Övriga fordon",
	CategoryPreciousMetals:      "Ädelmetaller",
	CategoryOther:               "Övrigt",
}

// DisplayName returns the Swedish label shown to users.
func (c AssetCategory) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// IsPension reports whether the category is one of the four pension
// sub-categories.
func (c AssetCategory) IsPension() bool {
	switch c {
	case CategoryIncomePension, CategoryOccupationalPension, CategoryPremiumPension, CategoryIPS:
		return true
	}
	return false
}

// Default expected annual rates by category. Negative for depreciating
// categories. Overridable per asset; never per jurisdiction, so defining
// them here does not violate the no-embedded-rates rule for RatesConfig.
var defaultAnnualRates = map[AssetCategory]decimal.Decimal{
	CategoryHousing:             decimal.NewFromFloat(0.02),
	CategoryVacationHome:        decimal.NewFromFloat(0.02),
	CategoryVehicle:             decimal.NewFromFloat(-0.11),
	CategoryFundsStocks:         decimal.NewFromFloat(0.07),
	CategoryCash:                decimal.NewFromFloat(0.03),
	CategoryIncomePension:       decimal.NewFromFloat(0.03),
	CategoryOccupationalPension: decimal.NewFromFloat(0.07),
	CategoryPremiumPension:      decimal.NewFromFloat(0.07),
	CategoryIPS:                 decimal.NewFromFloat(0.07),
	CategoryLand:                decimal.NewFromFloat(0.02),
	CategoryEquipment:           decimal.NewFromFloat(-0.05),
	CategoryOtherVehicles:       decimal.NewFromFloat(-0.08),
	CategoryPreciousMetals:      decimal.NewFromFloat(0.04),
	CategoryOther:               decimal.Zero,
}

// DefaultAnnualRate returns the table rate for a category, or zero for an
// unknown category.
func DefaultAnnualRate(c AssetCategory) decimal.Decimal {
	if r, ok := defaultAnnualRates[c]; ok {
		return r
	}
	return decimal.Zero
}
