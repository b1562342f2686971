package entity

// Item is the catalog's view of a listed item at checkout time
type Item struct {
	ID         string
	SellerID   string
	Price      int64
	BusinessID *string // set when the listing belongs to a local business
	Available  bool
}

// HasBusiness reports whether reviews can be attached to this item's business
func (i *Item) HasBusiness() bool {
	return i.BusinessID != nil && *i.BusinessID != ""
}
