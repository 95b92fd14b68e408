package dto

type AddressResponse struct {
	AddressID   int64  `json:"address_id"`
	DisplayText string `json:"display_text"`
}

type ListAddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}
