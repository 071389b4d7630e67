// Package models contains the domain types for farmhand entities.
// Persistence lives behind ports/secondary.RecordStore.
package models

// Kind names an entity kind as understood by the record store.
type Kind string

// Entity kinds.
const (
	KindFarm          Kind = "farm"
	KindCrop          Kind = "crop"
	KindTask          Kind = "task"
	KindTransaction   Kind = "transaction"
	KindInventoryItem Kind = "inventory_item"
)

// Kinds lists every entity kind in dependency order (farms first).
var Kinds = []Kind{KindFarm, KindCrop, KindTask, KindTransaction, KindInventoryItem}

// FilterAll is the view sentinel meaning "no filter".
const FilterAll = "all"

// FarmScoped is implemented by entities that belong to a farm.
type FarmScoped interface {
	FarmRef() int64
}
