package dto

import "deposit-gateway/internal/core/domain"

// InitiateDepositRequest is the request body for starting a deposit.
type InitiateDepositRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0,lte=92233720368547758"`
	Method    string `json:"method" binding:"required,oneof=VNPAY MOMO ZALOPAY BANK_TRANSFER"`
	ReturnURL string `json:"return_url,omitempty" binding:"omitempty,max=512,safe_url"`
}

// SubmitProofRequest carries the object-store key of an uploaded transfer receipt.
type SubmitProofRequest struct {
	ProofReference string `json:"proof_reference" binding:"required,max=512,proof_ref"`
}

// DecisionRequest is an admin verdict. Amount is only read for APPROVE;
// zero approves the requested amount.
type DecisionRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=APPROVE REJECT"`
	Amount  int64  `json:"amount" binding:"gte=0,lte=92233720368547758"`
	Reason  string `json:"reason" binding:"max=500"`
}

// WalletBalanceResponse is the response for balance query.
type WalletBalanceResponse struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// LedgerListResponse wraps a page of ledger entries.
type LedgerListResponse struct {
	Items      []domain.LedgerEntry `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}
