package matrix

import (
	"context"
	"fmt"

	"travel-matrix-service/internal/ports"
)

// MockMatrixClient serves queued responses in FIFO order and records every
// request it receives.
type MockMatrixClient struct {
	Requests  []ports.MatrixRequest
	Responses []*ports.MatrixResponse
	Err       error
}

func (m *MockMatrixClient) FetchMatrix(ctx context.Context, req ports.MatrixRequest) (*ports.MatrixResponse, error) {
	m.Requests = append(m.Requests, req)

	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Responses) == 0 {
		return nil, fmt.Errorf("mock matrix client: no response queued for call %d", len(m.Requests))
	}

	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return resp, nil
}

// UniformResponse builds an all-OK response grid of rows x cols cells, every
// cell carrying the given meters and seconds.
func UniformResponse(rows, cols int, meters, seconds int64) *ports.MatrixResponse {
	resp := &ports.MatrixResponse{Status: ports.StatusOK}
	for i := 0; i < rows; i++ {
		row := ports.MatrixRow{Elements: make([]ports.MatrixElement, 0, cols)}
		for j := 0; j < cols; j++ {
			row.Elements = append(row.Elements, ports.MatrixElement{
				Status:   ports.StatusOK,
				Distance: ports.ValueText{Value: meters},
				Duration: ports.ValueText{Value: seconds},
			})
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}
