package handlers

import (
	"log"
	"net/http"

	"travel-matrix-service/internal/api/dto"
	"travel-matrix-service/internal/ports"
)

// AddressHandler exposes read-only stored-address retrieval endpoints.
type AddressHandler struct {
	Repo ports.AddressRepository
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	addrs, err := h.Repo.ListAddresses(r.Context())
	if err != nil {
		log.Printf("list addresses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAddressesResponse{
		Addresses: make([]dto.AddressResponse, 0, len(addrs)),
	}
	for _, a := range addrs {
		if a.ID == nil {
			continue
		}
		res.Addresses = append(res.Addresses, dto.AddressResponse{
			AddressID:   *a.ID,
			DisplayText: a.Text,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
