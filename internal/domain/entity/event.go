package entity

import "time"

// EventType identifies a lifecycle change worth telling the parties about
type EventType string

const (
	EventTransactionCreated   EventType = "transaction.created"
	EventTransactionPaid      EventType = "transaction.paid"
	EventTransactionShipped   EventType = "transaction.shipped"
	EventTransactionDelivered EventType = "transaction.delivered"
	EventTransactionCompleted EventType = "transaction.completed"
	EventTransactionCancelled EventType = "transaction.cancelled"
	EventReleaseFailed        EventType = "transaction.release_failed"
	EventDisputeOpened        EventType = "dispute.opened"
	EventDisputeEvidence      EventType = "dispute.evidence_submitted"
	EventDisputeUnderReview   EventType = "dispute.under_review"
	EventDisputeResolved      EventType = "dispute.resolved"
	EventDisputeClosed        EventType = "dispute.closed"
)

// Event is the payload handed to the notifier after a committed change
type Event struct {
	Type          EventType
	TransactionID string
	DisputeID     string
	Recipients    []string
	Status        string
	OccurredAt    time.Time
}

// TransactionEvent builds an event addressed to both parties
func TransactionEvent(eventType EventType, txn *Transaction, at time.Time) Event {
	return Event{
		Type:          eventType,
		TransactionID: txn.ID,
		Recipients:    []string{txn.BuyerID, txn.SellerID},
		Status:        string(txn.Status),
		OccurredAt:    at,
	}
}

// DisputeEvent builds an event about d addressed to both parties of txn
func DisputeEvent(eventType EventType, d *Dispute, txn *Transaction, at time.Time) Event {
	return Event{
		Type:          eventType,
		TransactionID: txn.ID,
		DisputeID:     d.ID,
		Recipients:    []string{txn.BuyerID, txn.SellerID},
		Status:        string(d.Status),
		OccurredAt:    at,
	}
}
