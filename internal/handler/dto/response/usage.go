package response

import "studio-booking/internal/usecase/commands"

type UsageIngestResponse struct {
	UserID         string   `json:"user_id"`
	BilledCopies   int64    `json:"billed_copies"`
	BilledStencils int64    `json:"billed_stencils"`
	ChargedCents   int64    `json:"charged_cents"`
	Resets         []string `json:"resets"`
}

type UsageBatchItemResponse struct {
	UserID string               `json:"user_id"`
	Result *UsageIngestResponse `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type UsageBatchResponse struct {
	Results []UsageBatchItemResponse `json:"results"`
}

func ToUsageIngestResponse(r *commands.IngestResult) UsageIngestResponse {
	resets := make([]string, 0, len(r.Resets))
	for _, counter := range r.Resets {
		resets = append(resets, string(counter))
	}
	return UsageIngestResponse{
		UserID:         r.UserID.String(),
		BilledCopies:   r.BilledCopies,
		BilledStencils: r.BilledStencils,
		ChargedCents:   r.ChargedCents,
		Resets:         resets,
	}
}

func ToUsageBatchResponse(results []commands.BatchRecordResult) UsageBatchResponse {
	items := make([]UsageBatchItemResponse, 0, len(results))
	for _, r := range results {
		item := UsageBatchItemResponse{UserID: r.UserID.String()}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else if r.Result != nil {
			res := ToUsageIngestResponse(r.Result)
			item.Result = &res
		}
		items = append(items, item)
	}
	return UsageBatchResponse{Results: items}
}
