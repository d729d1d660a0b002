package http

import (
	"time"

	"meetsync/internal/integration"
)

// --- Response DTOs ---

// integrationResp deliberately omits token fields.
type integrationResp struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	CalendarID  string    `json:"calendar_id,omitempty"`
	IsConnected bool      `json:"is_connected"`
	IsPrimary   bool      `json:"is_primary"`
	LastSynced  time.Time `json:"last_synced,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newIntegrationResp(in integration.Integration) integrationResp {
	return integrationResp{
		ID:          in.ID,
		Type:        string(in.Type),
		Name:        in.Name,
		CalendarID:  in.CalendarID,
		IsConnected: in.IsConnected,
		IsPrimary:   in.IsPrimary,
		LastSynced:  in.LastSynced,
		CreatedAt:   in.CreatedAt,
	}
}

type listResp struct {
	Integrations []integrationResp `json:"integrations"`
	Total        int               `json:"total"`
}

func (h *handler) newListResp(out integration.ListOutput) listResp {
	items := make([]integrationResp, len(out.Integrations))
	for i, in := range out.Integrations {
		items[i] = newIntegrationResp(in)
	}
	return listResp{Integrations: items, Total: len(items)}
}

type detailResp struct {
	Integration integrationResp `json:"integration"`
}

func (h *handler) newDetailResp(out integration.DetailOutput) detailResp {
	return detailResp{Integration: newIntegrationResp(out.Integration)}
}

type setPrimaryResp struct {
	Integration integrationResp `json:"integration"`
}

func (h *handler) newSetPrimaryResp(out integration.SetPrimaryOutput) setPrimaryResp {
	return setPrimaryResp{Integration: newIntegrationResp(out.Integration)}
}

type disconnectResp struct {
	Integration integrationResp `json:"integration"`
}

func (h *handler) newDisconnectResp(out integration.DisconnectOutput) disconnectResp {
	return disconnectResp{Integration: newIntegrationResp(out.Integration)}
}
