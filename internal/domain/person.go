package domain

// DocumentType classifies the identity document carried by a person.
type DocumentType string

const (
	DocumentTypeDNI      DocumentType = "DNI"
	DocumentTypeNIE      DocumentType = "NIE"
	DocumentTypePassport DocumentType = "PASSPORT"
)

// PersonalInformation holds the identity data shared by athletes and coaches.
// The document value acts as a natural key for lookups; uniqueness is enforced
// by an index on the store, not by the service layer.
type PersonalInformation struct {
	Name         string       `bson:"name" json:"name"`
	Surname      string       `bson:"surname" json:"surname"`
	DocumentType DocumentType `bson:"documentType" json:"documentType"`
	Document     string       `bson:"document" json:"document"`
}
