package entity

// Party is a side of a transaction
type Party string

const (
	PartyBuyer  Party = "buyer"
	PartySeller Party = "seller"
)

// SystemActor identifies actions taken by the engine itself, such as auto-release
const SystemActor = "system"

// IsValid reports whether p is buyer or seller
func (p Party) IsValid() bool {
	return p == PartyBuyer || p == PartySeller
}

// PartyOf returns which side of the transaction userID is on
func (t *Transaction) PartyOf(userID string) (Party, bool) {
	switch {
	case userID == "":
		return "", false
	case userID == t.BuyerID:
		return PartyBuyer, true
	case userID == t.SellerID:
		return PartySeller, true
	}
	return "", false
}

// UserFor returns the user holding party p on this transaction
func (t *Transaction) UserFor(p Party) string {
	switch p {
	case PartyBuyer:
		return t.BuyerID
	case PartySeller:
		return t.SellerID
	}
	return ""
}
