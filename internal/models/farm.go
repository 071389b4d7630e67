package models

import "github.com/shopspring/decimal"

// Farm is a parcel of land that crops, tasks and transactions belong to.
type Farm struct {
	ID        int64
	Name      string
	Location  string
	Size      decimal.Decimal
	SizeUnit  string
	CreatedAt string // set once at creation
}

// Size units
const (
	SizeUnitAcres      = "acres"
	SizeUnitHectares   = "hectares"
	SizeUnitSquareFeet = "square_feet"
)

// SizeUnits lists accepted size units.
var SizeUnits = []string{SizeUnitAcres, SizeUnitHectares, SizeUnitSquareFeet}
