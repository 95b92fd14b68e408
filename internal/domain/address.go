package domain

// A single routable location. Text is the display address submitted to the
// routing provider. ID is set only when the address originates from a stored
// entity; raw caller strings carry no identifier.
// Immutable once handed to the measurement pipeline.
type Address struct {
	Text string
	ID   *int64
}

func NewAddress(text string) Address { return Address{Text: text} }

func NewStoredAddress(id int64, text string) Address {
	return Address{Text: text, ID: &id}
}
