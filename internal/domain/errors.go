package domain

import "errors"

var (
	// ErrPartNotFound signals a missing inventory record.
	ErrPartNotFound = errors.New("part not found")
	// ErrStoreUnavailable signals that the inventory store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrEnhancerDisabled signals that no enhancer credentials are configured.
	ErrEnhancerDisabled = errors.New("enhancer disabled")
	// ErrEnhancerFailed signals a failed or undecodable enhancer call.
	ErrEnhancerFailed = errors.New("enhancer failed")
	// ErrEnhancerQuotaExceeded signals that the enhancer token budget is spent.
	ErrEnhancerQuotaExceeded = errors.New("enhancer token quota exceeded")
)
