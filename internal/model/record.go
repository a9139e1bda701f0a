package model

// Record is the sole persisted entity: a name with a storage-assigned identifier.
// ID is opaque to every layer above the repository. It is serialized as "_id"
// so existing clients keep reading the field they always have.
type Record struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
